package dictionary

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/darkclainer/ordbok/pkg/parser"
)

//go:embed data/words.json
var bundledWords []byte

// Bundled returns the entries shipped with the binary.
func Bundled() ([]parser.Entry, error) {
	return LoadJSON(bytes.NewReader(bundledWords))
}

// LoadFile reads entries from a JSON file in the bundled format.
func LoadFile(path string) ([]parser.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can not open %s: %w", path, err)
	}
	defer file.Close()
	entries, err := LoadJSON(file)
	if err != nil {
		return nil, fmt.Errorf("can not load %s: %w", path, err)
	}
	return entries, nil
}

// LoadJSON decodes a JSON array of entries and restores their invariants.
func LoadJSON(r io.Reader) ([]parser.Entry, error) {
	var entries []parser.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("can not decode entries: %w", err)
	}
	normalized := make([]parser.Entry, 0, len(entries))
	for _, e := range entries {
		normalized = append(normalized, e.Normalize())
	}
	return normalized, nil
}
