// Package persist moves a store.Store to and from durable storage.
//
// A backend that finds nothing to load (missing file) leaves the matching
// in-memory collection exactly as it was, so seed data survives a first run.
package persist

import (
	"context"

	"evman/src-cli/store"
)

type Backend interface {
	Load(ctx context.Context, s *store.Store) error
	Save(ctx context.Context, s *store.Store) error
}

var (
	_ Backend = (*JSONFiles)(nil)
	_ Backend = (*SQLite)(nil)
)
