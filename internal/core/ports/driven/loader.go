package driven

import (
	"context"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

// DocumentLoader fetches documents from an external content store
// (a cloud document folder, a source-code hosting service). The core
// makes no assumptions about how documents were obtained; it only
// requires each to carry a "source" metadata tag.
type DocumentLoader interface {
	// Load returns the ordered document collection for this loader.
	// An empty slice with a nil error is a valid result and means the
	// store simply had nothing relevant.
	Load(ctx context.Context) ([]domain.Document, error)

	// Name identifies the loader for logging.
	Name() string
}

// DocumentCache persists acquired document collections between restarts
// so that a temporarily unreachable content store does not leave a
// knowledge domain empty. It caches raw documents only; built indices
// are never persisted.
type DocumentCache interface {
	// ReplaceCollection atomically replaces the cached documents for the
	// named collection.
	ReplaceCollection(ctx context.Context, collection string, docs []domain.Document) error

	// LoadCollection returns the cached documents for the named
	// collection, or an empty slice if none are cached.
	LoadCollection(ctx context.Context, collection string) ([]domain.Document, error)

	// Close releases resources.
	Close() error
}
