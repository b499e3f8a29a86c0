package evaluate

import (
	"fmt"
	"math"

	"github.com/hupe1980/clustergo"
	"github.com/hupe1980/clustergo/distance"
)

// WCSS computes the within-cluster sum of squares: for every cluster, the sum
// of squared Euclidean distances between its rows and its centroid. Lower is
// tighter.
func WCSS(data [][]float64, clusters [][]int, centroids [][]float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty dataset", clustergo.ErrInvalidParameter)
	}
	if len(clusters) != len(centroids) {
		return 0, fmt.Errorf("%w: %d clusters vs %d centroids",
			clustergo.ErrInvalidParameter, len(clusters), len(centroids))
	}

	var total float64
	for j, cluster := range clusters {
		for _, i := range cluster {
			if i < 0 || i >= len(data) {
				return 0, fmt.Errorf("%w: row index %d out of range", clustergo.ErrInvalidParameter, i)
			}
			total += distance.SquaredEuclidean(data[i], centroids[j])
		}
	}

	return total, nil
}

// Silhouette computes the mean silhouette score of a labeling: per row, the
// cohesion-vs-separation ratio (b-a)/max(a,b) where a is the mean distance to
// the row's own cluster and b the mean distance to the nearest other cluster.
// Rows in singleton clusters contribute 0. The result is in [-1, 1].
//
// The score is undefined when the labeling has fewer than 2 occupied clusters
// or when every row is its own cluster; both fail with
// clustergo.ErrDegenerateInput.
func Silhouette(data [][]float64, labels []int) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty dataset", clustergo.ErrInvalidParameter)
	}
	if len(labels) != n {
		return 0, fmt.Errorf("%w: %d labels for %d rows", clustergo.ErrInvalidParameter, len(labels), n)
	}

	maxLabel := 0
	for _, l := range labels {
		if l < 0 {
			return 0, fmt.Errorf("%w: negative label %d", clustergo.ErrInvalidParameter, l)
		}
		if l > maxLabel {
			maxLabel = l
		}
	}

	counts := make([]int, maxLabel+1)
	for _, l := range labels {
		counts[l]++
	}

	occupied := 0
	for _, c := range counts {
		if c > 0 {
			occupied++
		}
	}
	if occupied < 2 {
		return 0, fmt.Errorf("%w: silhouette undefined for a single cluster", clustergo.ErrDegenerateInput)
	}
	if occupied == n {
		return 0, fmt.Errorf("%w: silhouette undefined when every row is its own cluster", clustergo.ErrDegenerateInput)
	}

	sums := make([]float64, maxLabel+1)

	var total float64
	for i := range data {
		own := labels[i]
		if counts[own] == 1 {
			continue // singleton cluster, s(i) = 0
		}

		for j := range sums {
			sums[j] = 0
		}
		for j := range data {
			if j == i {
				continue
			}
			sums[labels[j]] += distance.Euclidean(data[i], data[j])
		}

		a := sums[own] / float64(counts[own]-1)

		b := math.Inf(1)
		for j, c := range counts {
			if j == own || c == 0 {
				continue
			}
			if mean := sums[j] / float64(c); mean < b {
				b = mean
			}
		}

		if m := math.Max(a, b); m > 0 {
			total += (b - a) / m
		}
	}

	return total / float64(n), nil
}
