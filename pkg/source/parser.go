package source

import (
	"io"

	"github.com/darkclainer/ordbok/pkg/parser"
)

type Parser interface {
	ParseCSV(page io.Reader) ([]parser.Entry, error)
	ParseHTML(page io.Reader) ([]parser.Entry, error)
}

// SheetParser parses spreadsheet exports: CSV downloads and HTML published pages.
type SheetParser struct{}

func (p *SheetParser) ParseCSV(page io.Reader) ([]parser.Entry, error) {
	return parser.ParseCSV(page)
}

func (p *SheetParser) ParseHTML(page io.Reader) ([]parser.Entry, error) {
	return parser.ParseTableHTML(page)
}
