// Package distance provides the Euclidean distance primitives used by the
// clustering engine and the evaluator.
//
// # Supported Metrics
//
//   - MetricSquaredEuclidean: squared L2 distance (default for assignment)
//   - MetricEuclidean: plain L2 distance (used by the silhouette score)
//
// # Usage
//
//	d := distance.SquaredEuclidean(a, b)
//	fn, err := distance.Provider(distance.MetricEuclidean)
package distance
