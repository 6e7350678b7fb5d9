// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - EmbeddingService: Generates vector embeddings. Index construction
//     and query-time retrieval both depend on it.
//   - VectorIndex: Stores built chunk vectors and answers top-k queries.
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Language model operations. Without it, routing falls
//     back to the personal domain and answer generation is disabled.
//   - DocumentLoader: Fetches documents from an external content store.
//     A missing loader simply yields an empty collection for its domain.
//   - DocumentCache: Persists acquired documents between restarts so an
//     unreachable content store does not leave a domain empty.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
