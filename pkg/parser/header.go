package parser

import "strings"

// headerKeywords mark a header row. Norwegian sheet titles first, English after.
var headerKeywords = []string{
	"tittel",
	"tittel på ord",
	"ordklasse",
	"definisjon",
	"definition",
	"word",
}

// LocateHeader returns the index of the first row that has a cell containing
// a header keyword. Without a match the first row is the header.
func LocateHeader(rows [][]string) int {
	for i, row := range rows {
		if isHeaderRow(row) {
			return i
		}
	}
	return 0
}

func isHeaderRow(row []string) bool {
	for _, cell := range row {
		lc := strings.ToLower(cell)
		for _, keyword := range headerKeywords {
			if strings.Contains(lc, keyword) {
				return true
			}
		}
	}
	return false
}
