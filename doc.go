// Package clustergo implements K-Means clustering (Lloyd's algorithm) with
// deterministic seeded initialization.
//
// The engine is intentionally small: it operates on an in-memory feature
// matrix, runs single-threaded, and performs no I/O. Cluster-quality metrics
// (WCSS, silhouette score, K-sweeps with elbow detection) live in the
// evaluate subpackage; a companion brute-force K-Nearest-Neighbors classifier
// lives in knn.
//
// # Quick Start
//
//	data := [][]float64{{1, 1}, {1, 2}, {4, 4}, {4, 5}}
//
//	km := clustergo.New(clustergo.WithMaxIterations(100))
//	result, err := km.RunSeeded(data, 2, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Centroids, result.Labels)
//
// Initialization is an explicit, seeded step. The same seed, dataset and k
// always produce the same initial centroids and therefore the same run:
//
//	initial, _ := clustergo.InitialCentroids(data, 2, 42)
//	result, _ := km.Run(data, initial)
//
// # Determinism
//
// Ties in the assignment step resolve to the lowest-indexed centroid, and a
// cluster that becomes empty retains its previous centroid. Together with the
// seeded initializer this makes runs bit-for-bit reproducible.
//
// # Non-convergence
//
// Hitting the iteration cap is a normal terminal state, not an error; check
// Result.Converged when it matters.
package clustergo
