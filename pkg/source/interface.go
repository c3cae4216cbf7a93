package source

import (
	"context"

	"github.com/darkclainer/ordbok/pkg/parser"
)

//go:generate go run github.com/vektra/mockery/cmd/mockery -name Source -output ../mocks/

// Source loads the entries of a remote dictionary sheet.
type Source interface {
	Fetch(ctx context.Context, sourceURL string) ([]parser.Entry, error)
	Close(ctx context.Context) error
}
