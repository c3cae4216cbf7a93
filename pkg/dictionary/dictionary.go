package dictionary

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/darkclainer/ordbok/pkg/parser"
)

// Fetcher loads entries from a remote sheet.
type Fetcher interface {
	Fetch(ctx context.Context, sourceURL string) ([]parser.Entry, error)
}

// Dictionary holds the current entry collection and query. The collection
// starts with local entries and can be replaced once by a remote sheet.
type Dictionary struct {
	entries atomic.Value // []parser.Entry
	query   atomic.Value // string
	logger  *zap.Logger

	once sync.Once
	done chan struct{}
}

func New(logger *zap.Logger, entries []parser.Entry) *Dictionary {
	if logger == nil {
		logger = zap.NewNop()
	}
	if entries == nil {
		entries = []parser.Entry{}
	}
	d := &Dictionary{logger: logger}
	d.entries.Store(entries)
	d.query.Store("")
	return d
}

func (d *Dictionary) Entries() []parser.Entry {
	return d.entries.Load().([]parser.Entry)
}

func (d *Dictionary) Query() string {
	return d.query.Load().(string)
}

func (d *Dictionary) SetQuery(query string) {
	d.query.Store(query)
}

// Results is Entries filtered by Query, evaluated on every call.
func (d *Dictionary) Results() []parser.Entry {
	return Filter(d.Entries(), d.Query())
}

// Search filters Entries by query without touching the stored query.
func (d *Dictionary) Search(query string) []parser.Entry {
	return Filter(d.Entries(), query)
}

// LoadRemote fetches sourceURL in the background and, if the sheet has any
// entries, replaces the collection with them. Failures are logged and keep
// the current entries. Only the first call with a non-empty URL starts a
// fetch; later calls return the same channel, closed once the fetch ends.
// An empty URL disables remote loading and returns a closed channel.
func (d *Dictionary) LoadRemote(f Fetcher, sourceURL string) <-chan struct{} {
	if sourceURL == "" {
		done := make(chan struct{})
		close(done)
		return done
	}
	d.once.Do(func() {
		d.done = make(chan struct{})
		go d.loadRemote(f, sourceURL)
	})
	return d.done
}

func (d *Dictionary) loadRemote(f Fetcher, sourceURL string) {
	defer close(d.done)
	logger := d.logger.With(zap.String("url", sourceURL))

	entries, err := fetch(f, sourceURL)
	if err != nil {
		logger.Warn("Failed to fetch remote sheet, keeping local entries", zap.Error(err))
		return
	}
	if len(entries) == 0 {
		logger.Warn("Remote sheet has no entries, keeping local entries")
		return
	}
	d.entries.Store(entries)
	logger.Info("Loaded remote sheet", zap.Int("entries", len(entries)))
}

func fetch(f Fetcher, sourceURL string) (entries []parser.Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entries, err = nil, fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return f.Fetch(context.Background(), sourceURL)
}
