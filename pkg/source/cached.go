package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v2"
	"go.uber.org/zap"

	"github.com/darkclainer/ordbok/pkg/parser"
)

type CachedConfig struct {
	Path     string
	InMemory bool
}

// OpenDB opens the badger database described by config.
func OpenDB(config *CachedConfig) (*badger.DB, error) {
	opts := badger.DefaultOptions(config.Path).WithLogger(nil)
	if config.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("can not open cache: %w", err)
	}
	return db, nil
}

// Cached remembers the last non-empty result of every source URL and serves
// it when the wrapped source fails or comes back empty.
type Cached struct {
	source  Source
	storage *Storage
	logger  *zap.Logger
	now     func() time.Time
}

func NewCached(source Source, storage *badger.DB, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{
		source:  source,
		storage: &Storage{DB: storage},
		logger:  logger,
		now:     time.Now,
	}
}

func (c *Cached) Fetch(ctx context.Context, sourceURL string) ([]parser.Entry, error) {
	key := NormalizeSheetURL(sourceURL)
	entries, err := c.source.Fetch(ctx, sourceURL)
	if err == nil && len(entries) > 0 {
		if putErr := c.storage.PutEntries(key, entries, c.now()); putErr != nil {
			c.logger.Warn("Can not cache fetched entries",
				zap.Error(putErr),
				zap.String("url", key),
			)
		}
		return entries, nil
	}

	cached, cacheErr := c.storage.GetEntries(key)
	if cacheErr != nil {
		if !errors.Is(cacheErr, badger.ErrKeyNotFound) {
			c.logger.Warn("Can not read cached entries",
				zap.Error(cacheErr),
				zap.String("url", key),
			)
		}
		return entries, err
	}
	c.logger.Info("Serving cached entries",
		zap.NamedError("fetch_error", err),
		zap.String("url", key),
		zap.Int("entries", len(cached.Entries)),
		zap.Time("fetched_at", cached.FetchedAt),
	)
	return cached.Entries, nil
}

func (c *Cached) Close(ctx context.Context) error {
	var errs []error
	if closeErr := c.source.Close(ctx); closeErr != nil {
		errs = append(errs, fmt.Errorf("source close failed: %w", closeErr))
	}
	if closeErr := c.storage.Close(); closeErr != nil {
		errs = append(errs, fmt.Errorf("storage close failed: %w", closeErr))
	}
	if len(errs) != 0 {
		var strErrs []string
		for _, e := range errs {
			strErrs = append(strErrs, e.Error())
		}
		summary := strings.Join(strErrs, " AND ")
		return fmt.Errorf("while closing next errors happend: %s", summary)
	}
	return nil
}
