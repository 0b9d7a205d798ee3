// Package table holds the shared tabular value type for data returned by the
// INSEE catalog service. Both the dataset catalog and per-dataset IDBank
// listings are plain string tables: an ordered list of column names plus rows
// of cells keyed by column. Column order is authoritative and preserved
// through truncation, JSON round-trips and CSV output.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Row is a single table row, cells keyed by column name. Missing columns
// read as empty strings.
type Row map[string]string

// Table is an ordered-column string table.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row. Cells for unknown columns are kept in the row but are
// invisible to column-order operations (CSV output, Cell).
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Cell returns the cell value for the given row index and column, or the
// empty string when the row has no value for it.
func (t *Table) Cell(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return t.Rows[i][column]
}

// Head returns a new table holding the first n rows in original order. The
// column order is shared; rows are referenced, not copied. A negative n or
// n >= NumRows returns a table with all rows.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{
		Columns: t.Columns,
		Rows:    t.Rows[:n],
	}
}

// TextColumns returns the columns considered textual: those with at least
// one non-empty cell that does not parse as a number. Columns whose every
// non-empty cell is numeric (and columns with no values at all) are excluded
// from keyword matching.
func (t *Table) TextColumns() []string {
	var textual []string
	for _, col := range t.Columns {
		if t.columnIsTextual(col) {
			textual = append(textual, col)
		}
	}
	return textual
}

func (t *Table) columnIsTextual(column string) bool {
	for _, row := range t.Rows {
		v := row[column]
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return true
		}
	}
	return false
}

// WriteCSV writes the table to w with the column names as header row and
// cells in declared column order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
