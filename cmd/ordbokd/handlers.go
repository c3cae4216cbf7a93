package main

import (
	"net/http"

	"github.com/darkclainer/ordbok/pkg/parser"
)

type ResponseEntries struct {
	Query   string         `json:"query,omitempty"`
	Count   int            `json:"count"`
	Entries []parser.Entry `json:"entries"`
}

func (s *Server) handleEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		entries := s.dict.Entries()
		s.respondJSON(w, &ResponseEntries{
			Count:   len(entries),
			Entries: entries,
		}, http.StatusOK)
	}
}

// handleSearch filters entries by the q parameter. A missing or blank q
// returns every entry.
func (s *Server) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		query := r.URL.Query().Get("q")
		results := s.dict.Search(query)
		s.respondJSON(w, &ResponseEntries{
			Query:   query,
			Count:   len(results),
			Entries: results,
		}, http.StatusOK)
	}
}
