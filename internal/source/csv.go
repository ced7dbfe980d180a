package source

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVReader reads delimited pitch tables with a header row.
type CSVReader struct {
	// Comma overrides the field delimiter. Zero means ','.
	Comma rune
}

// Format returns the reader name.
func (c *CSVReader) Format() string { return "csv" }

// Read parses a CSV table. Rows may have fewer or more fields than the
// header. An empty input yields an empty table.
func (c *CSVReader) Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if c.Comma != 0 {
		cr.Comma = c.Comma
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return NewTable(nil, nil), nil
	}
	return NewTable(records[0], records[1:]), nil
}
