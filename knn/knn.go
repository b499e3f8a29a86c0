// Package knn implements a brute-force K-Nearest-Neighbors classifier.
//
// Prediction scans the full training set, takes the k nearest rows by
// Euclidean distance, and majority-votes their labels. Both tie-breaks are
// deterministic: equidistant neighbors prefer the lower row index, and tied
// votes resolve to the lexicographically smallest label.
package knn

import (
	"fmt"
	"sort"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/distance"
)

// Classifier is a fitted K-Nearest-Neighbors model. It keeps a reference to
// the training data, which must not be mutated while the classifier is in
// use.
type Classifier struct {
	k      int
	data   [][]float64
	labels []string
	dim    int
}

// New creates a classifier over the given training rows and their labels.
func New(k int, data [][]float64, labels []string) (*Classifier, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty training set", clustergo.ErrInvalidParameter)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d out of range [1, %d]", clustergo.ErrInvalidParameter, k, n)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d rows", clustergo.ErrInvalidParameter, len(labels), n)
	}

	dim := len(data[0])
	for _, row := range data {
		if len(row) != dim {
			return nil, &clustergo.DimensionMismatchError{Expected: dim, Actual: len(row)}
		}
	}

	return &Classifier{k: k, data: data, labels: labels, dim: dim}, nil
}

// Predict returns the majority label among the k nearest training rows.
func (c *Classifier) Predict(x []float64) (string, error) {
	if len(x) != c.dim {
		return "", &clustergo.DimensionMismatchError{Expected: c.dim, Actual: len(x)}
	}

	type neighbor struct {
		index int
		dist  float64
	}

	neighbors := make([]neighbor, len(c.data))
	for i, row := range c.data {
		neighbors[i] = neighbor{index: i, dist: distance.Euclidean(x, row)}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].dist != neighbors[j].dist {
			return neighbors[i].dist < neighbors[j].dist
		}
		return neighbors[i].index < neighbors[j].index
	})

	votes := make(map[string]int, c.k)
	for _, nb := range neighbors[:c.k] {
		votes[c.labels[nb.index]]++
	}

	var winner string
	best := -1
	for label, count := range votes {
		if count > best || (count == best && label < winner) {
			best = count
			winner = label
		}
	}

	return winner, nil
}

// PredictBatch predicts every row of x in order.
func (c *Classifier) PredictBatch(x [][]float64) ([]string, error) {
	predicted := make([]string, len(x))
	for i, row := range x {
		label, err := c.Predict(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		predicted[i] = label
	}

	return predicted, nil
}

// Accuracy returns the fraction of predictions matching the actual labels.
func Accuracy(predicted, actual []string) (float64, error) {
	if len(predicted) == 0 {
		return 0, fmt.Errorf("%w: no predictions", clustergo.ErrInvalidParameter)
	}
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("%w: %d predictions vs %d labels",
			clustergo.ErrInvalidParameter, len(predicted), len(actual))
	}

	hits := 0
	for i, p := range predicted {
		if p == actual[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(predicted)), nil
}
