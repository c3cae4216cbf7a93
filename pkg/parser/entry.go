package parser

// Entry is one normalized dictionary record.
type Entry struct {
	ID           string   `json:"id"`
	Word         string   `json:"word"`
	PartOfSpeech string   `json:"ordklasse,omitempty"`
	Inflections  string   `json:"boyninger,omitempty"`
	Notes        string   `json:"tilleggsinformasjon,omitempty"`
	Definitions  []string `json:"definitions"`
	// Definition is the primary definition, the first of Definitions.
	Definition string `json:"definition"`
}

// Normalize restores Entry invariants for records that were not produced by
// the parser, e.g. decoded from JSON: Definitions is never nil and
// Definition always equals its first item.
func (e Entry) Normalize() Entry {
	if len(e.Definitions) == 0 && e.Definition != "" {
		e.Definitions = []string{e.Definition}
	}
	if e.Definitions == nil {
		e.Definitions = []string{}
	}
	e.Definition = primary(e.Definitions)
	return e
}

func primary(definitions []string) string {
	if len(definitions) == 0 {
		return ""
	}
	return definitions[0]
}
