package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrModelUnavailable indicates the embedding or language model
	// endpoint cannot be reached. During index construction this is fatal
	// for that domain's build only; at query time it is the one hard
	// failure surfaced to the caller, since no retrieval can proceed
	// without a query vector.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
