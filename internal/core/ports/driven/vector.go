package driven

import (
	"context"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

// VectorIndex answers nearest-neighbour queries over the chunk vectors of
// exactly one knowledge domain. An index is built once from a non-empty
// (chunk, vector) sequence and is read-only thereafter, so concurrent
// queries need no synchronisation.
//
// A domain with no input documents has no index at all (a nil interface
// value); the retrieval dispatcher, not the index, guards against that.
type VectorIndex interface {
	// Query returns the k chunks whose vectors are closest to the query
	// vector under the index's distance metric, ordered nearest-first.
	// Ties are broken by original insertion order. A k larger than the
	// index population returns all chunks without error.
	Query(ctx context.Context, vector []float32, k int) ([]domain.Chunk, error)

	// Len returns the number of chunks held by the index.
	Len() int
}
