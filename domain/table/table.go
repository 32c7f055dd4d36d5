package table

import (
	"strings"
)

// Missing is the cell value used for absent entries. Loaders normalize
// short rows and blank cells to this value so every column has equal length.
const Missing = ""

// Table is an ordered set of named columns over string cells.
// It is built once by a loader and never mutated afterwards.
type Table struct {
	headers []string
	cells   map[string][]string
	rows    int
}

// FromRows builds a Table from a header row and data rows.
// Cells are trimmed; rows shorter than the header are padded with Missing,
// trailing cells beyond the header are dropped.
func FromRows(headers []string, rows [][]string) *Table {
	clean := make([]string, len(headers))
	for i, h := range headers {
		clean[i] = strings.TrimSpace(h)
	}

	cells := make(map[string][]string, len(clean))
	for _, h := range clean {
		cells[h] = make([]string, 0, len(rows))
	}

	for _, row := range rows {
		for i, h := range clean {
			if i < len(row) {
				cells[h] = append(cells[h], strings.TrimSpace(row[i]))
			} else {
				cells[h] = append(cells[h], Missing)
			}
		}
	}

	return &Table{headers: clean, cells: cells, rows: len(rows)}
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cells[name]
	return ok
}

// Column returns the cell values for the named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	col, ok := t.cells[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(col))
	copy(out, col)
	return out, true
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.headers)
}

// IsMissing reports whether a cell holds no value.
func IsMissing(cell string) bool {
	return cell == Missing
}
