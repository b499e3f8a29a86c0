package clustergo

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/clustergo/distance"
)

// Result is the outcome of a completed K-Means run.
type Result struct {
	// Centroids holds the final centroid positions, one per cluster.
	Centroids [][]float64

	// Clusters maps each cluster index to the dataset row indices assigned to
	// it. Clusters partition the row indices; a cluster may be empty.
	Clusters [][]int

	// Labels maps each dataset row index to its cluster index in [0, k-1].
	Labels []int

	// Iterations is the number of assign/update iterations performed.
	Iterations int

	// Converged reports whether the centroids stabilized before the iteration
	// cap. False means the cap was reached, which is not an error.
	Converged bool
}

// InitialCentroids deterministically selects k distinct rows of data as
// starting centroids, drawn without replacement from a PRNG seeded with seed.
// The returned centroids are copies; mutating them does not affect data.
//
// Identical seed, dataset and k always yield the identical centroid set.
func InitialCentroids(data [][]float64, k int, seed int64) ([][]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrInvalidParameter)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d out of range [1, %d]", ErrInvalidParameter, k, n)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic by design

	perm := rng.Perm(n)
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = slices.Clone(data[perm[i]])
	}

	return centroids, nil
}

// KMeans runs Lloyd's algorithm: alternate assignment of rows to their
// nearest centroid and recomputation of centroids as cluster means, until the
// centroids stabilize or the iteration cap is reached.
//
// A KMeans engine is stateless across runs and safe for reuse.
type KMeans struct {
	opts options
}

// New creates a KMeans engine with the given options.
func New(opts ...Option) *KMeans {
	o := options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return &KMeans{opts: o}
}

// Run clusters data starting from the given initial centroids. The number of
// clusters is len(initial). Neither data nor initial is mutated; the engine
// copies the centroids before iterating.
//
// Assignment ties resolve to the lowest-indexed centroid. A cluster with no
// assigned rows retains its previous centroid. Reaching the iteration cap
// without convergence returns the current state with Converged=false.
func (km *KMeans) Run(data [][]float64, initial [][]float64) (*Result, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrInvalidParameter)
	}

	k := len(initial)
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d out of range [1, %d]", ErrInvalidParameter, k, n)
	}

	dim := len(data[0])
	for _, row := range data {
		if len(row) != dim {
			return nil, &DimensionMismatchError{Expected: dim, Actual: len(row)}
		}
	}
	for _, c := range initial {
		if len(c) != dim {
			return nil, &DimensionMismatchError{Expected: dim, Actual: len(c)}
		}
	}

	centroids := make([][]float64, k)
	for i, c := range initial {
		centroids[i] = slices.Clone(c)
	}
	prev := make([][]float64, k)
	for i := range prev {
		prev[i] = make([]float64, dim)
	}

	labels := make([]int, n)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}

	result := &Result{Labels: labels}

	for iter := 1; iter <= km.opts.maxIterations; iter++ {
		// Assignment step: nearest centroid by squared Euclidean distance,
		// first minimum wins on ties.
		for i, row := range data {
			best := 0
			minDist := math.Inf(1)
			for j, c := range centroids {
				if d := distance.SquaredEuclidean(row, c); d < minDist {
					minDist = d
					best = j
				}
			}
			labels[i] = best
		}

		if km.opts.observer != nil {
			km.opts.observer(iter, wcssOf(data, labels, centroids))
		}

		// Update step: centroid becomes the mean of its rows. Empty clusters
		// keep their previous centroid.
		for j := 0; j < k; j++ {
			copy(prev[j], centroids[j])
			counts[j] = 0
			for d := range sums[j] {
				sums[j][d] = 0
			}
		}
		for i, row := range data {
			floats.Add(sums[labels[i]], row)
			counts[labels[i]]++
		}
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				copy(centroids[j], sums[j])
				floats.Scale(1/float64(counts[j]), centroids[j])
			}
		}

		km.opts.logger.Debug("kmeans iteration",
			"iteration", iter,
			"k", k,
		)

		result.Iterations = iter

		if centroidsStable(centroids, prev, km.opts.tolerance) {
			result.Converged = true
			break
		}
	}

	result.Centroids = centroids
	result.Clusters = groupByLabel(labels, k)

	return result, nil
}

// RunSeeded is a convenience that combines InitialCentroids and Run.
func (km *KMeans) RunSeeded(data [][]float64, k int, seed int64) (*Result, error) {
	initial, err := InitialCentroids(data, k, seed)
	if err != nil {
		return nil, err
	}

	return km.Run(data, initial)
}

// centroidsStable reports whether every centroid is element-wise within tol
// of its previous position.
func centroidsStable(centroids, prev [][]float64, tol float64) bool {
	for i := range centroids {
		if !floats.EqualApprox(centroids[i], prev[i], tol) {
			return false
		}
	}

	return true
}

// groupByLabel inverts a labeling into cluster index -> row indices.
func groupByLabel(labels []int, k int) [][]int {
	clusters := make([][]int, k)
	for i, label := range labels {
		clusters[label] = append(clusters[label], i)
	}

	return clusters
}

// wcssOf computes the within-cluster sum of squares for a labeling against
// the given centroids. Kept internal for observer instrumentation; the public
// metric lives in the evaluate package.
func wcssOf(data [][]float64, labels []int, centroids [][]float64) float64 {
	var total float64
	for i, row := range data {
		total += distance.SquaredEuclidean(row, centroids[labels[i]])
	}

	return total
}
