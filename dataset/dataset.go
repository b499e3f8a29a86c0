// Package dataset loads numeric feature tables for clustering and
// classification. Rows containing missing or non-numeric values are dropped
// at load time, so downstream consumers always see a dense matrix.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/hupe1980/clustergo"
)

// Table is an in-memory numeric feature table. All rows have the same
// dimension, in the order given by Columns.
type Table struct {
	Columns []string
	Rows    [][]float64

	// Dropped counts input rows excluded for missing or non-numeric cells.
	Dropped int
}

// Matrix returns the feature matrix backing the table. The matrix is shared,
// not copied; treat it as read-only.
func (t *Table) Matrix() [][]float64 { return t.Rows }

// Select projects the table onto the given columns, in the given order.
func (t *Table) Select(cols ...string) (*Table, error) {
	indices := make([]int, len(cols))
	for i, name := range cols {
		idx := slices.Index(t.Columns, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: column %q not found", clustergo.ErrInvalidParameter, name)
		}
		indices[i] = idx
	}

	rows := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]float64, len(indices))
		for j, idx := range indices {
			rows[i][j] = row[idx]
		}
	}

	return &Table{Columns: slices.Clone(cols), Rows: rows, Dropped: t.Dropped}, nil
}

// ReadCSV reads a header-prefixed CSV stream into a Table. If features are
// given, only those columns are kept, in the given order; otherwise every
// column is kept. Rows with missing, non-numeric or NaN cells in the selected
// columns are dropped and counted in Dropped.
func ReadCSV(r io.Reader, features ...string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows are handled as missing values

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if len(features) == 0 {
		features = header
	}

	indices := make([]int, len(features))
	for i, name := range features {
		idx := slices.Index(header, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: column %q not found", clustergo.ErrInvalidParameter, name)
		}
		indices[i] = idx
	}

	table := &Table{Columns: slices.Clone(features)}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		row := make([]float64, len(indices))
		ok := true
		for j, idx := range indices {
			if idx >= len(record) {
				ok = false
				break
			}
			v, parseErr := parseCell(record[idx])
			if parseErr != nil {
				ok = false
				break
			}
			row[j] = v
		}

		if !ok {
			table.Dropped++
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "NA" {
		return 0, fmt.Errorf("missing value")
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("missing value")
	}

	return v, nil
}

// Summary holds descriptive statistics for one column.
type Summary struct {
	Column string
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes per-column summary statistics for diagnostic reporting.
func Describe(t *Table) ([]Summary, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", clustergo.ErrInvalidParameter)
	}

	summaries := make([]Summary, len(t.Columns))
	values := make([]float64, len(t.Rows))

	for j, col := range t.Columns {
		for i, row := range t.Rows {
			values[i] = row[j]
		}

		s := Summary{Column: col}
		var err error
		if s.Mean, err = stats.Mean(values); err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		if s.Median, err = stats.Median(values); err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		if len(values) > 1 {
			if s.StdDev, err = stats.StdDevS(values); err != nil {
				return nil, fmt.Errorf("column %q: %w", col, err)
			}
		}
		if s.Min, err = stats.Min(values); err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		if s.Max, err = stats.Max(values); err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}

		summaries[j] = s
	}

	return summaries, nil
}
