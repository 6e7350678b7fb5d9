// Package flat provides an exact in-memory vector index.
//
// The index is built once from a (chunk, vector) sequence and is read-only
// afterwards, so concurrent queries require no locking. Distance metric:
// cosine similarity, computed identically at build time and query time.
// Exact brute-force scoring is deliberate - the corpus is a single person's
// profile, small enough that approximate structures buy nothing.
package flat

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index holds the vectors and chunks of one knowledge domain.
type Index struct {
	dimension int
	vectors   [][]float32
	norms     []float64
	chunks    []domain.Chunk
}

// Build constructs an index from an ordered (chunk, vector) sequence.
// The sequence must be non-empty and every vector must share one
// dimension; violations are construction errors, not query-time surprises.
func Build(chunks []domain.Chunk, vectors [][]float32) (*Index, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: empty chunk sequence", domain.ErrInvalidInput)
	}
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("%w: %d chunks but %d vectors", domain.ErrInvalidInput, len(chunks), len(vectors))
	}

	dimension := len(vectors[0])
	if dimension == 0 {
		return nil, fmt.Errorf("%w: zero-dimension vector", domain.ErrInvalidInput)
	}

	idx := &Index{
		dimension: dimension,
		vectors:   make([][]float32, len(vectors)),
		norms:     make([]float64, len(vectors)),
		chunks:    make([]domain.Chunk, len(chunks)),
	}
	copy(idx.chunks, chunks)

	for i, v := range vectors {
		if len(v) != dimension {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d",
				domain.ErrInvalidInput, i, len(v), dimension)
		}
		idx.vectors[i] = v
		idx.norms[i] = norm(v)
	}

	return idx, nil
}

// Len returns the number of chunks held by the index.
func (idx *Index) Len() int {
	return len(idx.chunks)
}

// Dimension returns the vector dimension the index was built with.
func (idx *Index) Dimension() int {
	return idx.dimension
}

// Query returns the k chunks nearest to the query vector by cosine
// similarity, nearest-first. Ties keep insertion order. k larger than the
// population returns everything; k <= 0 returns nothing.
func (idx *Index) Query(_ context.Context, vector []float32, k int) ([]domain.Chunk, error) {
	if len(vector) != idx.dimension {
		return nil, fmt.Errorf("%w: query vector has dimension %d, want %d",
			domain.ErrInvalidInput, len(vector), idx.dimension)
	}
	if k <= 0 {
		return []domain.Chunk{}, nil
	}
	if k > len(idx.chunks) {
		k = len(idx.chunks)
	}

	queryNorm := norm(vector)

	scored := make([]int, len(idx.chunks))
	scores := make([]float64, len(idx.chunks))
	for i := range idx.vectors {
		scored[i] = i
		scores[i] = cosine(idx.vectors[i], idx.norms[i], vector, queryNorm)
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(scored, func(a, b int) bool {
		return scores[scored[a]] > scores[scored[b]]
	})

	out := make([]domain.Chunk, k)
	for i := 0; i < k; i++ {
		out[i] = idx.chunks[scored[i]]
	}
	return out, nil
}

// cosine computes the cosine similarity of two vectors given their
// precomputed L2 norms. A zero vector scores 0 against everything.
func cosine(a []float32, aNorm float64, b []float32, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (aNorm * bNorm)
}

// norm computes the L2 norm of a vector.
func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
