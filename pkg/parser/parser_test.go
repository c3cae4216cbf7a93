package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVString(t *testing.T) { // nolint:funlen // test
	testCases := map[string]struct {
		text     string
		expected []Entry
	}{
		"empty text": {
			text:     "",
			expected: []Entry{},
		},
		"header only": {
			text:     "Tittel,Definisjon\n",
			expected: []Entry{},
		},
		"numbered definitions": {
			text: "Tittel, Ordklasse, Definisjon 1, Definisjon 2\n" +
				"Hus, substantiv, \"et bygg\", \"bolig\"\n",
			expected: []Entry{
				{
					ID:           "Hus",
					Word:         "Hus",
					PartOfSpeech: "substantiv",
					Definitions:  []string{"et bygg", "bolig"},
					Definition:   "et bygg",
				},
			},
		},
		"definitions sorted by number not position": {
			text: "Word,Definition 10,Definition 2,Definition,Definition 1\n" +
				"run,ten,two,zero,one\n",
			expected: []Entry{
				{
					ID:          "run",
					Word:        "run",
					Definitions: []string{"zero", "one", "two", "ten"},
					Definition:  "zero",
				},
			},
		},
		"empty definitions skipped": {
			text: "Tittel,Definisjon 1,Definisjon 2,Definisjon 3\n" +
				"hus,,bolig,\n",
			expected: []Entry{
				{
					ID:          "hus",
					Word:        "hus",
					Definitions: []string{"bolig"},
					Definition:  "bolig",
				},
			},
		},
		"no definition values": {
			text: "Tittel,Definisjon\nhus,\n",
			expected: []Entry{
				{
					ID:          "hus",
					Word:        "hus",
					Definitions: []string{},
				},
			},
		},
		"all field aliases": {
			text: "#,Tittel på ord,Ordklasse:,Bøyning,Tilleggsinfo,Definisjon\n" +
				"7,gå,verb,gikk gått,uregelmessig,bevege seg\n",
			expected: []Entry{
				{
					ID:           "7",
					Word:         "gå",
					PartOfSpeech: "verb",
					Inflections:  "gikk gått",
					Notes:        "uregelmessig",
					Definitions:  []string{"bevege seg"},
					Definition:   "bevege seg",
				},
			},
		},
		"alias priority": {
			text: "Word,Title,Tittel,Tittel på ord\nw,ti,tt,tpo\n",
			expected: []Entry{
				{
					ID:          "w",
					Word:        "tpo",
					Definitions: []string{},
				},
			},
		},
		"present empty alias beats first column": {
			text: "ID,Word\n,hello\n",
			expected: []Entry{
				{
					Word:        "hello",
					Definitions: []string{},
				},
			},
		},
		"header below preamble and blank rows": {
			text: "Ordboka eksport\n\n,,\nTittel,Definisjon\nhus,bygg\nbil,kjøretøy\n",
			expected: []Entry{
				{ID: "hus", Word: "hus", Definitions: []string{"bygg"}, Definition: "bygg"},
				{ID: "bil", Word: "bil", Definitions: []string{"kjøretøy"}, Definition: "kjøretøy"},
			},
		},
		"first row is header without keywords": {
			text: "a,b\n1,2\n",
			expected: []Entry{
				{ID: "1", Word: "1", Definitions: []string{}},
			},
		},
		"empty rows dropped": {
			text: "Tittel,Definisjon\n,\nhus,bygg\n  ,   \n\nbil,\n",
			expected: []Entry{
				{ID: "hus", Word: "hus", Definitions: []string{"bygg"}, Definition: "bygg"},
				{ID: "bil", Word: "bil", Definitions: []string{}},
			},
		},
		"short row": {
			text: "Tittel,Ordklasse,Definisjon\nhus\n",
			expected: []Entry{
				{ID: "hus", Word: "hus", Definitions: []string{}},
			},
		},
		"quoted multiline definition": {
			text: "Tittel,Definisjon\r\nsitat,\"han sa \"\"hei\"\",\r\nog gikk\"\r\n",
			expected: []Entry{
				{
					ID:          "sitat",
					Word:        "sitat",
					Definitions: []string{"han sa \"hei\",\nog gikk"},
					Definition:  "han sa \"hei\",\nog gikk",
				},
			},
		},
		"byte order mark": {
			text: "\uFEFFTittel,Definisjon\nhus,bygg\n",
			expected: []Entry{
				{ID: "hus", Word: "hus", Definitions: []string{"bygg"}, Definition: "bygg"},
			},
		},
		"case insensitive headers": {
			text: "TITTEL,ORDKLASSE,DEFINISJON\nHus,Substantiv,Bygg\n",
			expected: []Entry{
				{
					ID:           "Hus",
					Word:         "Hus",
					PartOfSpeech: "Substantiv",
					Definitions:  []string{"Bygg"},
					Definition:   "Bygg",
				},
			},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseCSVString(tc.text))
		})
	}
}

func TestParseCSVRowCount(t *testing.T) {
	var b strings.Builder
	b.WriteString("Tittel,Definisjon 1,Definisjon 2\n")
	for i := 0; i < 50; i++ {
		b.WriteString("ord,\"en, to\",tre\n")
		if i%10 == 0 {
			b.WriteString(",,\n")
		}
	}
	entries, err := ParseCSV(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Len(t, entries, 50)
	for _, e := range entries {
		assert.NotNil(t, e.Definitions)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestParseCSVReadError(t *testing.T) {
	entries, err := ParseCSV(failingReader{})
	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestLocateHeader(t *testing.T) {
	testCases := map[string]struct {
		rows     [][]string
		expected int
	}{
		"no rows": {
			expected: 0,
		},
		"first row": {
			rows:     [][]string{{"Word", "Definition"}, {"a", "b"}},
			expected: 0,
		},
		"after blank rows": {
			rows:     [][]string{{""}, {"", ""}, {"Tittel"}, {"hus"}},
			expected: 2,
		},
		"keyword as substring": {
			rows:     [][]string{{"notes"}, {"Keywords", "x"}},
			expected: 1,
		},
		"no keyword falls back to first": {
			rows:     [][]string{{"a"}, {"b"}},
			expected: 0,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LocateHeader(tc.rows))
		})
	}
}

func TestEntryNormalize(t *testing.T) {
	testCases := map[string]struct {
		entry    Entry
		expected Entry
	}{
		"nil definitions": {
			entry:    Entry{Word: "a"},
			expected: Entry{Word: "a", Definitions: []string{}},
		},
		"only primary definition": {
			entry:    Entry{Word: "a", Definition: "b"},
			expected: Entry{Word: "a", Definitions: []string{"b"}, Definition: "b"},
		},
		"stale primary definition": {
			entry:    Entry{Word: "a", Definitions: []string{"c", "d"}, Definition: "b"},
			expected: Entry{Word: "a", Definitions: []string{"c", "d"}, Definition: "c"},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.entry.Normalize())
		})
	}
}
