// Package domain defines the core business entities for the portfolio
// assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An immutable unit of ingested content
//   - Chunk: A retrievable segment derived from a document
//   - KnowledgeDomain: The closed set of routing labels
//   - Retrieval: The outcome of dispatching one query
//   - Answer: The assistant's response to one question
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
