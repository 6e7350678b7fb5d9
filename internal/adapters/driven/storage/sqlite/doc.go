// Package sqlite provides a SQLite-backed document cache.
//
// The cache stores the raw document collections acquired from content
// stores (GitHub, Google Drive) so they survive restarts. It deliberately
// does not persist embeddings or indices - those are rebuilt in memory
// on every start.
package sqlite
