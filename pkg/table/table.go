// Package table holds tabular results prepared for export.
package table

import (
	"strconv"
	"strings"
)

// Table is a named table of string cells.
type Table struct {
	// Name is appended to the output prefix to build a file name, for
	// example "coi" or "contributions_ssp245".
	Name string

	Columns []string
	Rows    [][]string
}

// New creates an empty table with given columns.
func New(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Add appends a row. Missing cells are filled with empty strings, extra
// cells are dropped.
func (t *Table) Add(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ContributionColumns returns indices of columns that hold contributions
// of criteria.
func (t *Table) ContributionColumns() []int {
	var res []int
	for i, v := range t.Columns {
		if strings.Contains(strings.ToLower(v), "contribution") {
			res = append(res, i)
		}
	}
	return res
}

// MaxContribution returns the index of the contribution column with the
// largest value in a row, or -1 if the table has no contribution columns.
// Values are percentages like "31.82%", unparsable values count as zero.
// On ties the leftmost column wins.
func (t *Table) MaxContribution(row []string) int {
	res := -1
	var maxVal float64
	for _, i := range t.ContributionColumns() {
		var val float64
		if i < len(row) {
			val = parsePercent(row[i])
		}
		if res == -1 || val > maxVal {
			res, maxVal = i, val
		}
	}
	return res
}

func parsePercent(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return res
}
