package dictionary

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/darkclainer/ordbok/pkg/parser"
)

// Filter returns entries where query is a case-insensitive substring of the
// word, part of speech, inflections, notes or any definition. A blank query
// returns entries as is.
func Filter(entries []parser.Entry, query string) []parser.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	results := []parser.Entry{}
	for _, e := range entries {
		if matches(lower, e, query) {
			results = append(results, e)
		}
	}
	return results
}

func matches(lower cases.Caser, e parser.Entry, query string) bool {
	fields := []string{e.Word, e.PartOfSpeech, e.Inflections, e.Notes, e.Definition}
	for _, f := range fields {
		if f != "" && strings.Contains(lower.String(f), query) {
			return true
		}
	}
	for _, d := range e.Definitions {
		if strings.Contains(lower.String(d), query) {
			return true
		}
	}
	return false
}
