// Package testutil provides deterministic data generators for clustering
// tests and benchmarks.
package testutil
