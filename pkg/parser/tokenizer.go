package parser

import (
	"strings"
	"unicode"
)

// Tokenize splits spreadsheet CSV export text into rows of raw cells.
//
// A double quote toggles quoted mode, and inside quotes a doubled quote is a
// literal one. Commas and newlines are literal inside quotes. Carriage
// returns are dropped everywhere, quoted fields included.
func Tokenize(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cur      strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cur.WriteByte('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			row = append(row, cur.String())
			cur.Reset()
		case ch == '\n' && !inQuotes:
			row = append(row, cur.String())
			rows = append(rows, row)
			row = nil
			cur.Reset()
		case ch == '\r':
		default:
			cur.WriteByte(ch)
		}
	}
	if cur.Len() > 0 || len(row) > 0 {
		row = append(row, cur.String())
		rows = append(rows, row)
	}
	return rows
}

// NormalizeRows trims every cell. The byte order mark counts as whitespace.
func NormalizeRows(rows [][]string) [][]string {
	normalized := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = trimCell(cell)
		}
		normalized = append(normalized, cells)
	}
	return normalized
}

func trimCell(cell string) string {
	return strings.TrimFunc(cell, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
