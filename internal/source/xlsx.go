package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads a pitch table from an Excel workbook. The first row of
// the sheet is the header.
type XLSXReader struct {
	// Sheet names the worksheet to read. Empty means the first sheet.
	Sheet string
}

// Format returns the reader name.
func (x *XLSXReader) Format() string { return "xlsx" }

// Read loads the configured sheet of the workbook in r.
func (x *XLSXReader) Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return NewTable(nil, nil), nil
	}
	return NewTable(rows[0], rows[1:]), nil
}
