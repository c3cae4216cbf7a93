package source

import (
	"encoding/json"
	"io"

	"github.com/darkclainer/ordbok/pkg/parser"
)

// JSONParser parses entries from JSON format. Use it for testing
type JSONParser struct{}

func (p *JSONParser) ParseCSV(page io.Reader) ([]parser.Entry, error) {
	var entries []parser.Entry
	if err := json.NewDecoder(page).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *JSONParser) ParseHTML(page io.Reader) ([]parser.Entry, error) {
	return p.ParseCSV(page)
}
