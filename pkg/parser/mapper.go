package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// field lists the accepted header names of one Entry field in priority order.
type field struct {
	aliases []string
	// positional falls back to the first column when no alias header exists.
	positional bool
}

var (
	idField = field{
		aliases:    []string{"id", "#"},
		positional: true,
	}
	wordField = field{
		aliases:    []string{"tittel på ord", "tittel", "title", "word"},
		positional: true,
	}
	partOfSpeechField = field{
		aliases: []string{"ordklasse", "ordklasse:"},
	}
	inflectionsField = field{
		aliases: []string{"bøyninger", "bøyning", "variants"},
	}
	notesField = field{
		aliases: []string{"tilleggsinformasjon", "tilleggsinfo", "tilleggsinformasjon:"},
	}
	genericDefinitionAliases = []string{"definition", "definisjon"}
)

var definitionKeywords = []string{"definisjon", "definition"}

var headerNumberRegexp = regexp.MustCompile(`\d+`)

type definitionColumn struct {
	header string
	order  float64
}

// record is a single data row addressed by lowercased header name.
type record struct {
	values map[string]string
	cells  []string
}

func newRecord(headers, cells []string) *record {
	values := make(map[string]string, len(headers))
	for i, h := range headers {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		values[h] = value
	}
	return &record{values: values, cells: cells}
}

// resolve returns the value of the first alias present as a header, even an
// empty one.
func (r *record) resolve(f field) string {
	for _, alias := range f.aliases {
		if value, ok := r.values[alias]; ok {
			return value
		}
	}
	if f.positional && len(r.cells) > 0 {
		return r.cells[0]
	}
	return ""
}

// MapRows turns data rows into entries using the header row for column names.
// Rows whose cells are all empty are skipped.
func MapRows(header []string, rows [][]string) []Entry {
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.ToLower(h)
	}
	defColumns := definitionColumns(headers)

	entries := make([]Entry, 0, len(rows))
	for _, cells := range rows {
		if isEmptyRow(cells) {
			continue
		}
		rec := newRecord(headers, cells)
		definitions := collectDefinitions(rec, defColumns)
		entries = append(entries, Entry{
			ID:           rec.resolve(idField),
			Word:         rec.resolve(wordField),
			PartOfSpeech: rec.resolve(partOfSpeechField),
			Inflections:  rec.resolve(inflectionsField),
			Notes:        rec.resolve(notesField),
			Definitions:  definitions,
			Definition:   primary(definitions),
		})
	}
	return entries
}

// definitionColumns returns definition-like headers ordered by the first
// number in their name. Headers without a number sort as 0.
func definitionColumns(headers []string) []definitionColumn {
	var columns []definitionColumn
	for _, h := range headers {
		if !isDefinitionHeader(h) {
			continue
		}
		columns = append(columns, definitionColumn{header: h, order: headerNumber(h)})
	}
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].order < columns[j].order
	})
	return columns
}

func isDefinitionHeader(h string) bool {
	for _, keyword := range definitionKeywords {
		if strings.Contains(h, keyword) {
			return true
		}
	}
	return false
}

func headerNumber(h string) float64 {
	digits := headerNumberRegexp.FindString(h)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return n
}

func collectDefinitions(rec *record, columns []definitionColumn) []string {
	definitions := []string{}
	for _, c := range columns {
		if value := rec.values[c.header]; value != "" {
			definitions = append(definitions, value)
		}
	}
	if len(definitions) > 0 {
		return definitions
	}
	for _, alias := range genericDefinitionAliases {
		if value := rec.values[alias]; value != "" {
			return []string{value}
		}
	}
	return definitions
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
