package domain

// KnowledgeDomain is the closed set of topical domains a question can be
// routed to. It is assigned per query by the router and never persisted.
type KnowledgeDomain string

const (
	// DomainPersonal covers skills, education, experience, contact
	// details and personal background. It is also the fail-open default
	// whenever classification is ambiguous or impossible.
	DomainPersonal KnowledgeDomain = "personal_info"

	// DomainProject covers technical projects, repositories, code and
	// architecture.
	DomainProject KnowledgeDomain = "project_info"
)

// Valid reports whether d is one of the known knowledge domains.
func (d KnowledgeDomain) Valid() bool {
	return d == DomainPersonal || d == DomainProject
}

// Selection describes how the retrieval dispatcher arrived at an index.
// Distinguishing a genuine hit from a degraded fallback lets callers and
// tests observe the routing outcome, not just the final chunk list.
type Selection int

const (
	// SelectionNone means no index was available in any domain.
	SelectionNone Selection = iota

	// SelectionFound means the index matching the requested domain was used.
	SelectionFound

	// SelectionFellBack means the requested domain's index was absent and
	// the personal index served the query instead.
	SelectionFellBack
)

// String returns a human-readable name for the selection outcome.
func (s Selection) String() string {
	switch s {
	case SelectionFound:
		return "found"
	case SelectionFellBack:
		return "fell_back"
	default:
		return "none"
	}
}

// Retrieval is the result of dispatching one query against the knowledge
// bases. Chunks are ordered nearest-first; an empty slice with
// SelectionNone means no knowledge base is available, which callers must
// treat as a degraded state rather than an error.
type Retrieval struct {
	// Domain is the knowledge domain the query was classified into.
	Domain KnowledgeDomain

	// Selection records whether the preferred index was used, a fallback
	// occurred, or no index was available.
	Selection Selection

	// Chunks are the matched segments, nearest-first.
	Chunks []Chunk
}

// Answer is the assistant's response to one question.
type Answer struct {
	// Text is the generated answer in markdown.
	Text string

	// Domain is the knowledge domain the question was routed to.
	Domain KnowledgeDomain

	// Selection records the index selection outcome for the retrieval.
	Selection Selection

	// Sources are the chunks the answer was grounded on, nearest-first.
	Sources []Chunk
}
