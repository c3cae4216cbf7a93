package source

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v2"

	"github.com/darkclainer/ordbok/pkg/parser"
)

type keyType byte

const (
	entriesKey keyType = iota + 1
)

// CachedEntries is the last non-empty result fetched from one source.
type CachedEntries struct {
	Entries   []parser.Entry `json:"entries"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// Storage keeps fetched entries in badger, keyed by source URL.
type Storage struct {
	DB *badger.DB
}

func (s *Storage) GetEntries(sourceURL string) (*CachedEntries, error) {
	var cached CachedEntries
	err := s.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(marshalKey(sourceURL, entriesKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("can not get cached entries: %w", err)
	}
	return &cached, nil
}

func (s *Storage) PutEntries(sourceURL string, entries []parser.Entry, fetchedAt time.Time) error {
	value, err := json.Marshal(&CachedEntries{
		Entries:   entries,
		FetchedAt: fetchedAt,
	})
	if err != nil {
		return fmt.Errorf("can not marshal entries: %w", err)
	}
	err = s.DB.Update(func(txn *badger.Txn) error {
		return txn.Set(marshalKey(sourceURL, entriesKey), value)
	})
	if err != nil {
		return fmt.Errorf("can not put entries: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func marshalKey(k string, t keyType) []byte {
	result := make([]byte, 0, len(k)+1)
	result = append(result, byte(t))
	return append(result, []byte(k)...)
}
