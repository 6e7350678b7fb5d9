package services

import (
	"context"
	"sync"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/chunker"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/vectorindex/flat"
)

// KnowledgeBases is the immutable pair of per-domain vector indices.
// It is constructed once by KnowledgeBaseService.Build and handed to the
// retriever; a domain whose document collection was empty or whose build
// failed has a nil index, which callers must handle explicitly.
type KnowledgeBases struct {
	personal driven.VectorIndex
	project  driven.VectorIndex
}

// Index returns the index for the given domain, or nil if that domain
// has none.
func (kb *KnowledgeBases) Index(dom domain.KnowledgeDomain) driven.VectorIndex {
	switch dom {
	case domain.DomainProject:
		return kb.project
	default:
		return kb.personal
	}
}

// Empty reports whether no domain has an index at all.
func (kb *KnowledgeBases) Empty() bool {
	return kb.personal == nil && kb.project == nil
}

// KnowledgeBaseService builds the per-domain vector indices at startup:
// chunk the documents, embed the chunks, construct the index.
type KnowledgeBaseService struct {
	chunker  *chunker.Chunker
	embedder driven.EmbeddingService
}

// NewKnowledgeBaseService creates a builder using the given chunker and
// embedding service. The same embedding service must later be handed to
// the retriever so query vectors live in the same space as the indexed ones.
func NewKnowledgeBaseService(ch *chunker.Chunker, embedder driven.EmbeddingService) *KnowledgeBaseService {
	return &KnowledgeBaseService{chunker: ch, embedder: embedder}
}

// Build constructs the two domain indices from the given document
// collections. The builds run concurrently - they share no mutable state -
// and fail independently: one domain's model outage leaves that index nil
// and never aborts the other. An empty collection is an informational
// condition, not an error; the returned handle is complete either way.
func (s *KnowledgeBaseService) Build(
	ctx context.Context, personalDocs, projectDocs []domain.Document,
) *KnowledgeBases {
	logger.Section("Knowledge Base Build")

	kb := &KnowledgeBases{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		kb.personal = s.buildDomain(ctx, domain.DomainPersonal, personalDocs)
	}()
	go func() {
		defer wg.Done()
		kb.project = s.buildDomain(ctx, domain.DomainProject, projectDocs)
	}()

	wg.Wait()

	logger.Info("Knowledge bases built: personal=%t, project=%t",
		kb.personal != nil, kb.project != nil)
	return kb
}

// buildDomain runs chunk -> embed -> index for one document collection.
// Every failure path returns nil so the caller's other domain is untouched.
func (s *KnowledgeBaseService) buildDomain(
	ctx context.Context, dom domain.KnowledgeDomain, docs []domain.Document,
) driven.VectorIndex {
	if len(docs) == 0 {
		logger.Info("No documents for %s, skipping index build", dom)
		return nil
	}

	chunks := s.chunker.Split(docs)
	if len(chunks) == 0 {
		logger.Info("Documents for %s produced no chunks, skipping index build", dom)
		return nil
	}
	logger.Debug("Split %d documents into %d chunks for %s", len(docs), len(chunks), dom)

	if s.embedder == nil {
		logger.Error("Cannot build %s index: %v", dom, domain.ErrEmbeddingUnavailable)
		return nil
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		logger.Error("Embedding failed for %s, index left empty: %v", dom, err)
		return nil
	}

	idx, err := flat.Build(chunks, vectors)
	if err != nil {
		logger.Error("Index construction failed for %s: %v", dom, err)
		return nil
	}

	logger.Info("Built %s index with %d chunks (%d dimensions)", dom, idx.Len(), idx.Dimension())
	return idx
}
