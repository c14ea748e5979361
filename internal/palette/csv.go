package palette

import (
	"encoding/csv"
	"errors"
	"io"
)

// RecordWidth is the widest record shape an element can use:
// r, g, b, a and name.
const RecordWidth = 5

// ReadDelimited reads CSV or TSV rows of unequal length. Every row is padded
// with empty cells to at least width so positional lookups never fail, and
// every cell stays raw text.
func ReadDelimited(r io.Reader, delimiter rune, width int) ([]any, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records []any
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		cells := make([]any, max(len(row), width))
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		records = append(records, cells)
	}
	return records, nil
}

func delimiterFor(ext string) rune {
	if ext == "tsv" {
		return '\t'
	}
	return ','
}
