package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkclainer/ordbok/pkg/parser"
)

var testEntries = []parser.Entry{
	{
		ID:           "1",
		Word:         "Hus",
		PartOfSpeech: "substantiv",
		Inflections:  "huset, hus",
		Definitions:  []string{"et bygg", "bolig"},
		Definition:   "et bygg",
	},
	{
		ID:           "2",
		Word:         "gå",
		PartOfSpeech: "verb",
		Inflections:  "gikk, har gått",
		Notes:        "Uregelmessig",
		Definitions:  []string{"bevege seg til fots"},
		Definition:   "bevege seg til fots",
	},
	{
		ID:          "3",
		Word:        "ære",
		Definitions: []string{},
	},
}

func TestFilter(t *testing.T) {
	testCases := map[string]struct {
		query    string
		expected []parser.Entry
	}{
		"empty query": {
			query:    "",
			expected: testEntries,
		},
		"blank query": {
			query:    "  \t",
			expected: testEntries,
		},
		"word case insensitive": {
			query:    "HUS",
			expected: testEntries[:1],
		},
		"query is trimmed": {
			query:    "  hus ",
			expected: testEntries[:1],
		},
		"primary definition": {
			query:    "BYGG",
			expected: testEntries[:1],
		},
		"secondary definition": {
			query:    "bolig",
			expected: testEntries[:1],
		},
		"part of speech": {
			query:    "verb",
			expected: testEntries[1:2],
		},
		"inflections": {
			query:    "gått",
			expected: testEntries[1:2],
		},
		"notes": {
			query:    "uregelmessig",
			expected: testEntries[1:2],
		},
		"non ascii": {
			query:    "ÆR",
			expected: testEntries[2:],
		},
		"substring of several": {
			query:    "s",
			expected: testEntries[:2],
		},
		"no match": {
			query:    "bil",
			expected: []parser.Entry{},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Filter(testEntries, tc.query))
		})
	}
}

func TestFilterDefinitionsOnly(t *testing.T) {
	entries := []parser.Entry{
		{Word: "x", Definitions: []string{"first", "Second Meaning"}},
	}
	assert.Equal(t, entries, Filter(entries, "second"))
}
