package parser

import (
	"fmt"
	"io"
)

// ParseCSV reads a spreadsheet CSV export and normalizes it into entries.
// Malformed content never fails: missing fields default to empty values.
// Only a read error of page is returned.
func ParseCSV(page io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(page)
	if err != nil {
		return nil, fmt.Errorf("can not read csv: %w", err)
	}
	return ParseCSVString(string(content)), nil
}

// ParseCSVString is ParseCSV for text that is already in memory.
func ParseCSVString(text string) []Entry {
	return ParseRows(Tokenize(text))
}

// ParseRows locates the header in rows and maps the rows after it.
func ParseRows(rows [][]string) []Entry {
	rows = NormalizeRows(rows)
	if len(rows) == 0 {
		return []Entry{}
	}
	headerIndex := LocateHeader(rows)
	return MapRows(rows[headerIndex], rows[headerIndex+1:])
}
