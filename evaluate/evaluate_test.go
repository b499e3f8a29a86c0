package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo"
)

func TestWCSS(t *testing.T) {
	data := [][]float64{{1, 1}, {1, 2}, {4, 4}, {4, 5}}
	clusters := [][]int{{0, 1}, {2, 3}}
	centroids := [][]float64{{1, 1.5}, {4, 4.5}}

	wcss, err := WCSS(data, clusters, centroids)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, wcss, 1e-12)
}

func TestWCSS_SingletonClusters(t *testing.T) {
	data := [][]float64{{0, 0}, {5, 5}}
	clusters := [][]int{{0}, {1}}
	centroids := [][]float64{{0, 0}, {5, 5}}

	wcss, err := WCSS(data, clusters, centroids)
	require.NoError(t, err)
	assert.InDelta(t, 0, wcss, 1e-12)
}

func TestWCSS_Errors(t *testing.T) {
	data := [][]float64{{0, 0}}

	_, err := WCSS(nil, [][]int{{0}}, [][]float64{{0, 0}})
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)

	_, err = WCSS(data, [][]int{{0}}, [][]float64{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)

	_, err = WCSS(data, [][]int{{7}}, [][]float64{{0, 0}})
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)
}

func TestSilhouette(t *testing.T) {
	// Two tight pairs far apart: cohesion 1, separation ~10.
	data := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
	labels := []int{0, 0, 1, 1}

	s, err := Silhouette(data, labels)
	require.NoError(t, err)
	assert.InDelta(t, 0.90025, s, 1e-4)
}

func TestSilhouette_SingletonContributesZero(t *testing.T) {
	data := [][]float64{{0, 0}, {10, 0}, {10, 1}}
	labels := []int{0, 1, 1}

	s, err := Silhouette(data, labels)
	require.NoError(t, err)
	assert.InDelta(t, 0.60017, s, 1e-4)
}

func TestSilhouette_Degenerate(t *testing.T) {
	t.Run("SingleCluster", func(t *testing.T) {
		data := [][]float64{{0, 0}, {1, 1}, {2, 2}}

		_, err := Silhouette(data, []int{0, 0, 0})
		assert.ErrorIs(t, err, clustergo.ErrDegenerateInput)
	})

	t.Run("EveryRowItsOwnCluster", func(t *testing.T) {
		data := [][]float64{{0, 0}, {1, 1}, {2, 2}}

		_, err := Silhouette(data, []int{0, 1, 2})
		assert.ErrorIs(t, err, clustergo.ErrDegenerateInput)
	})
}

func TestSilhouette_Errors(t *testing.T) {
	_, err := Silhouette(nil, nil)
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)

	_, err = Silhouette([][]float64{{0, 0}, {1, 1}}, []int{0})
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)

	_, err = Silhouette([][]float64{{0, 0}, {1, 1}}, []int{0, -1})
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)
}
