package table

import (
	"bytes"
	"strings"
	"testing"
)

func newTestTable() *Table {
	t := New("id", "Name", "score")
	t.Append(Row{"id": "IPC-2015", "Name": "Consumer price index", "score": "1"})
	t.Append(Row{"id": "IPPI-2015", "Name": "Producer price index", "score": "2"})
	t.Append(Row{"id": "CHOMAGE", "Name": "Unemployment", "score": "3"})
	return t
}

func TestHeadPreservesOrder(t *testing.T) {
	tbl := newTestTable()

	head := tbl.Head(2)
	if head.NumRows() != 2 {
		t.Fatalf("expected 2 rows after Head(2), got %d", head.NumRows())
	}
	if head.Cell(0, "id") != "IPC-2015" || head.Cell(1, "id") != "IPPI-2015" {
		t.Fatalf("Head(2) did not keep the first rows in order: %v", head.Rows)
	}
}

func TestHeadLargerThanTable(t *testing.T) {
	tbl := newTestTable()

	if got := tbl.Head(100).NumRows(); got != 3 {
		t.Errorf("Head(100) should keep all 3 rows, got %d", got)
	}
	if got := tbl.Head(-1).NumRows(); got != 3 {
		t.Errorf("Head(-1) should keep all 3 rows, got %d", got)
	}
}

func TestTextColumnsExcludesNumeric(t *testing.T) {
	tbl := newTestTable()

	textual := tbl.TextColumns()
	if len(textual) != 2 {
		t.Fatalf("expected 2 textual columns, got %v", textual)
	}
	for _, col := range textual {
		if col == "score" {
			t.Error("numeric column 'score' should not be textual")
		}
	}
}

func TestTextColumnsIgnoresEmptyCells(t *testing.T) {
	tbl := New("mixed")
	tbl.Append(Row{"mixed": ""})
	tbl.Append(Row{"mixed": "42"})

	if cols := tbl.TextColumns(); len(cols) != 0 {
		t.Errorf("column with only numeric values should not be textual, got %v", cols)
	}

	tbl.Append(Row{"mixed": "abc"})
	if cols := tbl.TextColumns(); len(cols) != 1 {
		t.Errorf("column with one textual value should be textual, got %v", cols)
	}
}

func TestWriteCSV(t *testing.T) {
	tbl := New("id", "Name")
	tbl.Append(Row{"id": "IPC-2015", "Name": "Consumer price index"})
	tbl.Append(Row{"id": "X"}) // missing Name cell

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "id,Name" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[2] != "X," {
		t.Errorf("missing cell should serialize empty, got %q", lines[2])
	}
}

func TestCellOutOfRange(t *testing.T) {
	tbl := newTestTable()
	if got := tbl.Cell(99, "id"); got != "" {
		t.Errorf("out-of-range Cell should be empty, got %q", got)
	}
}
