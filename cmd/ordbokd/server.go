package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/darkclainer/ordbok/pkg/dictionary"
	"github.com/darkclainer/ordbok/pkg/parser"
	"github.com/darkclainer/ordbok/pkg/source"
)

type Server struct {
	http.Server
	mux    http.ServeMux
	conf   *Config
	logger *zap.Logger
	dict   *dictionary.Dictionary
	src    source.Source
}

func New(logger *zap.Logger, conf *Config) (*Server, error) {
	entries, err := localEntries(conf)
	if err != nil {
		return nil, err
	}
	s := newServer(logger, conf, dictionary.New(logger, entries))
	if conf.Source.URL == "" {
		logger.Info("Remote sheet not configured, serving local entries",
			zap.Int("entries", len(entries)),
		)
		return s, nil
	}

	var src source.Source
	src = source.NewRemote(nil, nil, &source.Config{
		ExtraHeader: conf.Source.ExtraHeader,
		MaxWorkers:  conf.Source.MaxWorkers,
	})
	if conf.Cached.Path != "" || conf.Cached.InMemory {
		db, err := source.OpenDB(&conf.Cached)
		if err != nil {
			return nil, err
		}
		src = source.NewCached(src, db, logger)
	}
	s.src = src
	s.dict.LoadRemote(src, conf.Source.URL)
	return s, nil
}

func newServer(logger *zap.Logger, conf *Config, dict *dictionary.Dictionary) *Server {
	s := &Server{
		conf:   conf,
		logger: logger,
		dict:   dict,
	}
	s.mux.HandleFunc("/entries", s.middleLogging(s.handleEntries()))
	s.mux.HandleFunc("/search", s.middleLogging(s.handleSearch()))
	s.Addr = conf.Host
	s.Server.Handler = &s.mux
	return s
}

func localEntries(conf *Config) ([]parser.Entry, error) {
	if conf.Data.Path != "" {
		return dictionary.LoadFile(conf.Data.Path)
	}
	entries, err := dictionary.Bundled()
	if err != nil {
		return nil, fmt.Errorf("can not load bundled entries: %w", err)
	}
	return entries, nil
}

func (s *Server) Close(ctx context.Context) error {
	var reasons []string
	if serverErr := s.Server.Shutdown(ctx); serverErr != nil {
		reasons = append(reasons, "server shutdown failed: "+serverErr.Error())
	}
	if s.src != nil {
		if sourceErr := s.src.Close(ctx); sourceErr != nil {
			reasons = append(reasons, "source close failed: "+sourceErr.Error())
		}
	}
	if len(reasons) > 0 {
		return fmt.Errorf("close failed because: %s", strings.Join(reasons, " AND "))
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, vPtr interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	buffer := new(bytes.Buffer)
	if err := json.NewEncoder(buffer).Encode(vPtr); err != nil {
		s.logger.Error("encodig failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"encoding error"}`))
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(buffer.Bytes())
}

func (s *Server) middleLogging(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request",
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.String("client", r.RemoteAddr),
			zap.String("method", r.Method),
		)
		handler(w, r)
	}
}
