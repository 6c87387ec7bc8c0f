package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads a comma-separated chart export with a header row.
func (l *Loader) ReadCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	names, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	h, err := parseHeader(names)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", result.Rows+1, err)
		}
		l.add(result, h, record)
	}
	return result, nil
}
