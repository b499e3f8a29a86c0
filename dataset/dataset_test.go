package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo"
)

const sampleCSV = `species,bill_length,bill_depth,body_mass
adelie,39.1,18.7,3750
adelie,39.5,17.4,3800
gentoo,NA,14.3,5400
gentoo,46.5,,5700
chinstrap,48.4,17.2,3900
`

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV), "bill_length", "bill_depth")
	require.NoError(t, err)

	assert.Equal(t, []string{"bill_length", "bill_depth"}, table.Columns)
	assert.Equal(t, 2, table.Dropped) // NA bill_length, empty bill_depth
	assert.Equal(t, [][]float64{
		{39.1, 18.7},
		{39.5, 17.4},
		{48.4, 17.2},
	}, table.Rows)
}

func TestReadCSV_AllColumns(t *testing.T) {
	csv := "x,y\n1,2\n3,4\n"

	table, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, table.Columns)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, table.Rows)
	assert.Zero(t, table.Dropped)
}

func TestReadCSV_DropsShortAndNonNumericRows(t *testing.T) {
	csv := "x,y\n1,2\n3\nfoo,4\nNaN,5\n6,7\n"

	table, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {6, 7}}, table.Rows)
	assert.Equal(t, 3, table.Dropped)
}

func TestReadCSV_UnknownColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("x,y\n1,2\n"), "z")
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)
}

func TestSelect(t *testing.T) {
	table := &Table{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]float64{{1, 2, 3}, {4, 5, 6}},
	}

	got, err := table.Select("c", "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a"}, got.Columns)
	assert.Equal(t, [][]float64{{3, 1}, {6, 4}}, got.Rows)

	_, err = table.Select("nope")
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)
}

func TestDescribe(t *testing.T) {
	table := &Table{
		Columns: []string{"x"},
		Rows:    [][]float64{{1}, {2}, {3}, {4}},
	}

	summaries, err := Describe(table)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "x", s.Column)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 1.2909944487, s.StdDev, 1e-9)
	assert.InDelta(t, 1, s.Min, 1e-12)
	assert.InDelta(t, 4, s.Max, 1e-12)
}

func TestDescribe_Empty(t *testing.T) {
	_, err := Describe(&Table{Columns: []string{"x"}})
	assert.ErrorIs(t, err, clustergo.ErrInvalidParameter)
}
