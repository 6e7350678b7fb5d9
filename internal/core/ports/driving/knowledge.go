package driving

import (
	"context"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

// KnowledgeService exposes the retrieval engine to external actors:
// routing a question to a knowledge domain and fetching grounding context
// from the matching vector index.
type KnowledgeService interface {
	// Classify routes a question to a knowledge domain. It never fails:
	// unreachable or ambiguous model output resolves to the personal
	// domain.
	Classify(ctx context.Context, question string) domain.KnowledgeDomain

	// Retrieve runs a top-k nearest-neighbour query against the index for
	// the given domain, falling back to the personal index when that
	// domain has none. Both indices absent yields an empty retrieval with
	// a nil error. The only hard error is an unreachable embedding model.
	Retrieve(ctx context.Context, question string, dom domain.KnowledgeDomain) (domain.Retrieval, error)
}

// AssistantService answers questions end to end: classify, retrieve,
// generate.
type AssistantService interface {
	// Ask produces a grounded answer for the question. An empty knowledge
	// base degrades to a fixed "not available" answer rather than an error.
	Ask(ctx context.Context, question string) (domain.Answer, error)
}
