package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var tableMatcher = cascadia.MustCompile(`table`)
var tableRowMatcher = cascadia.MustCompile(`tr`)
var tableCellMatcher = cascadia.MustCompile(`td`)

// ParseTableHTML reads a sheet published as an HTML page. The first table of
// the page is read row by row; rows without td cells (column letters, row
// numbers) are skipped. The rows then go through the same header and column
// mapping as CSV.
func ParseTableHTML(page io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("can not parse page: %w", err)
	}

	var rows [][]string
	doc.FindMatcher(tableMatcher).First().
		FindMatcher(tableRowMatcher).
		Each(func(i int, tr *goquery.Selection) {
			cells := tr.ChildrenMatcher(tableCellMatcher).Map(cellText)
			if len(cells) == 0 {
				return
			}
			rows = append(rows, cells)
		})
	return ParseRows(rows), nil
}

// cellText keeps line breaks of a cell, which goquery's Text drops.
func cellText(i int, cell *goquery.Selection) string {
	var parts []string
	cell.Contents().Each(func(i int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "#text":
			parts = append(parts, sel.Text())
		case "br":
			parts = append(parts, "\n")
		default:
			parts = append(parts, cellText(i, sel))
		}
	})
	return strings.Join(parts, "")
}
