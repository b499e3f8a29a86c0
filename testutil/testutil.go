package testutil

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // test data only
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// UniformRows generates num rows with values in [0, 1).
func (r *RNG) UniformRows(num, dim int) [][]float64 {
	rows := make([][]float64, num)
	for i := range rows {
		rows[i] = make([]float64, dim)
		for j := range rows[i] {
			rows[i][j] = r.rand.Float64()
		}
	}

	return rows
}

// Blobs generates perCenter rows around each center with Gaussian noise of
// the given spread. Rows are ordered by center, so the ground-truth label of
// row i is i/perCenter.
func (r *RNG) Blobs(perCenter int, centers [][]float64, spread float64) [][]float64 {
	rows := make([][]float64, 0, perCenter*len(centers))
	for _, center := range centers {
		for n := 0; n < perCenter; n++ {
			row := make([]float64, len(center))
			for j := range row {
				row[j] = center[j] + r.rand.NormFloat64()*spread
			}
			rows = append(rows, row)
		}
	}

	return rows
}
