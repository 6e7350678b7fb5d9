package services

import (
	"context"
	"fmt"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driving"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// DefaultTopK is the default number of chunks returned per query.
const DefaultTopK = 4

// Retriever dispatches a classified question against the knowledge bases.
// It is the single seam between routing and retrieval: the only place in
// the core that inspects index nullity.
type Retriever struct {
	bases    *KnowledgeBases
	embedder driven.EmbeddingService
	topK     int
}

// RetrieverOption configures the retriever.
type RetrieverOption func(*Retriever)

// WithTopK sets how many chunks each retrieval returns.
func WithTopK(k int) RetrieverOption {
	return func(r *Retriever) {
		if k > 0 {
			r.topK = k
		}
	}
}

// NewRetriever creates a retrieval dispatcher over the built knowledge
// bases. The embedding service must be the same one used at build time.
func NewRetriever(bases *KnowledgeBases, embedder driven.EmbeddingService, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		bases:    bases,
		embedder: embedder,
		topK:     DefaultTopK,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve selects the index for the given domain - falling back to the
// personal index when that domain has none - and returns the top-k nearest
// chunks. Both indices absent yields an empty retrieval with a nil error:
// "no knowledge base" is a degraded state, not a failure. The only hard
// error is an unreachable embedding model, without which no query vector
// exists.
func (r *Retriever) Retrieve(
	ctx context.Context, question string, dom domain.KnowledgeDomain,
) (domain.Retrieval, error) {
	index, selection := r.selectIndex(dom)

	ret := domain.Retrieval{
		Domain:    dom,
		Selection: selection,
		Chunks:    []domain.Chunk{},
	}

	if selection == domain.SelectionNone {
		logger.Warn("Retriever: no knowledge base available for %s", dom)
		return ret, nil
	}

	if r.embedder == nil {
		return ret, domain.ErrEmbeddingUnavailable
	}

	vector, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return ret, fmt.Errorf("embed question: %w", err)
	}

	chunks, err := index.Query(ctx, vector, r.topK)
	if err != nil {
		return ret, fmt.Errorf("query %s index: %w", dom, err)
	}

	logger.Debug("Retriever: %s via %s selection, %d chunks", dom, selection, len(chunks))
	ret.Chunks = chunks
	return ret, nil
}

// selectIndex picks the index for the domain and tags how it was found.
func (r *Retriever) selectIndex(dom domain.KnowledgeDomain) (driven.VectorIndex, domain.Selection) {
	if idx := r.bases.Index(dom); idx != nil {
		return idx, domain.SelectionFound
	}
	if idx := r.bases.Index(domain.DomainPersonal); idx != nil {
		logger.Info("Retriever: %s index absent, falling back to %s", dom, domain.DomainPersonal)
		return idx, domain.SelectionFellBack
	}
	return nil, domain.SelectionNone
}

// Knowledge bundles routing and retrieval behind the driving port.
type Knowledge struct {
	*Router
	*Retriever
}

// Ensure Knowledge implements the interface.
var _ driving.KnowledgeService = Knowledge{}

// NewKnowledge creates the combined knowledge service.
func NewKnowledge(router *Router, retriever *Retriever) Knowledge {
	return Knowledge{Router: router, Retriever: retriever}
}
