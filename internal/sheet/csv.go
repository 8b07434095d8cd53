// ABOUTME: CSV source for Google Sheets exports and saved CSV files.
// ABOUTME: Strips a UTF-8 BOM and sniffs comma, semicolon, or tab delimiters.
package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a whole CSV document into a Table.
func ReadCSV(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.Comma = sniffDelimiter(data)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	t := Table(records)
	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}
	return t, nil
}

// sniffDelimiter counts candidate delimiters outside quotes in the first
// few lines and picks the most frequent. Comma wins ties.
func sniffDelimiter(data []byte) rune {
	counts := map[rune]int{',': 0, ';': 0, '\t': 0}
	inQuotes := false
	lines := 0
	for _, b := range data {
		switch {
		case b == '"':
			inQuotes = !inQuotes
		case b == '\n' && !inQuotes:
			lines++
		case !inQuotes:
			if _, ok := counts[rune(b)]; ok {
				counts[rune(b)]++
			}
		}
		if lines >= 10 {
			break
		}
	}

	best := ','
	for _, d := range []rune{';', '\t'} {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}
