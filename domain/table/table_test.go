package table

import (
	"testing"
)

func TestFromRowsPadsShortRows(t *testing.T) {
	tbl := FromRows([]string{"a", "b", "c"}, [][]string{
		{"1", "2", "3"},
		{"4", "5"},
		{"6"},
	})

	if tbl.RowCount() != 3 {
		t.Fatalf("Expected 3 rows, got %d", tbl.RowCount())
	}
	if tbl.ColumnCount() != 3 {
		t.Fatalf("Expected 3 columns, got %d", tbl.ColumnCount())
	}

	// Every column must have equal length
	for _, h := range tbl.Headers() {
		col, ok := tbl.Column(h)
		if !ok {
			t.Fatalf("Column %s should exist", h)
		}
		if len(col) != 3 {
			t.Errorf("Column %s: expected length 3, got %d", h, len(col))
		}
	}

	c, _ := tbl.Column("c")
	if !IsMissing(c[1]) || !IsMissing(c[2]) {
		t.Errorf("Expected padded cells to be missing, got %q, %q", c[1], c[2])
	}
}

func TestFromRowsTrimsWhitespace(t *testing.T) {
	tbl := FromRows([]string{" name ", "score"}, [][]string{
		{" alice ", " 10 "},
	})

	if !tbl.HasColumn("name") {
		t.Fatalf("Expected trimmed header 'name', headers: %v", tbl.Headers())
	}
	col, _ := tbl.Column("name")
	if col[0] != "alice" {
		t.Errorf("Expected trimmed cell 'alice', got %q", col[0])
	}
}

func TestColumnMissingKey(t *testing.T) {
	tbl := FromRows([]string{"a"}, [][]string{{"1"}})

	if tbl.HasColumn("b") {
		t.Error("HasColumn should be false for unknown column")
	}
	if _, ok := tbl.Column("b"); ok {
		t.Error("Column should report missing key")
	}
}

func TestColumnCopyIsolation(t *testing.T) {
	tbl := FromRows([]string{"a"}, [][]string{{"1"}, {"2"}})

	col, _ := tbl.Column("a")
	col[0] = "mutated"

	again, _ := tbl.Column("a")
	if again[0] != "1" {
		t.Errorf("Table cells must be immutable, got %q", again[0])
	}
}
