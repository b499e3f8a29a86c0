// Package evaluate computes cluster-quality metrics for completed K-Means
// runs: within-cluster sum of squares (WCSS), mean silhouette score, and
// K-sweeps that combine both across a range of cluster counts for elbow-style
// model selection.
//
// # Usage
//
//	records, err := evaluate.Sweep(data, 2, 7, seed)
//	best, err := evaluate.Elbow(records)
//
// Silhouette is undefined for K=1 and K=n and fails with
// clustergo.ErrDegenerateInput; Sweep marks those points with
// SilhouetteOK=false instead of aborting.
package evaluate
