package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of a spreadsheet chart export. The first
// row is the header.
func (l *Loader) ReadXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	defer rows.Close()

	var h header
	result := &Result{}
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", result.Rows+1, err)
		}
		if len(record) == 0 {
			continue
		}
		if h == nil {
			if h, err = parseHeader(record); err != nil {
				return nil, err
			}
			continue
		}
		l.add(result, h, record)
	}
	if h == nil {
		return nil, fmt.Errorf("empty sheet %q", sheets[0])
	}
	return result, rows.Error()
}
