package source

import (
	"strings"

	"github.com/sharkfolio/sharkgen/internal/model"
)

// Table is a fully loaded pitch table: a header row naming columns and the
// data rows below it.
type Table struct {
	Header []string
	Rows   []Row
	index  map[string]int
}

// Row is one record of the table. Fields are looked up by column name.
type Row struct {
	Line   int // 1-based position in the source, header is line 1
	fields []string
	index  map[string]int
}

// NewTable builds a Table from a header and its data records. Record i is
// assigned line i+2. Short records are allowed; absent trailing cells read
// as blank.
func NewTable(header []string, records [][]string) *Table {
	index := make(map[string]int, len(header))
	clean := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		clean[i] = h
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		rows = append(rows, Row{Line: i + 2, fields: rec, index: index})
	}
	return &Table{Header: clean, Rows: rows, index: index}
}

// HasColumn reports whether the header names column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[column]
	return ok
}

// MissingColumns returns the columns from want that the header lacks, in
// the order given.
func (t *Table) MissingColumns(want []string) []string {
	var missing []string
	for _, c := range want {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Raw returns the cell for column exactly as read, or "" when the column or
// cell is absent.
func (r Row) Raw(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Value is Raw with surrounding whitespace removed.
func (r Row) Value(column string) string {
	return strings.TrimSpace(r.Raw(column))
}

// Get is Value with blank cells replaced by the N/A sentinel.
func (r Row) Get(column string) string {
	if v := r.Value(column); v != "" {
		return v
	}
	return model.NotAvailable
}
