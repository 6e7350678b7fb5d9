// Package github implements a document loader for GitHub repositories.
//
// The loader fetches every public repository of a configured user and
// turns each one into a single document: a core information block (name,
// description, primary language, topics) plus the high-value sections of
// its README. READMEs are not ingested wholesale - only sections whose
// headings match a whitelist (features, tech stack, architecture and the
// like) make it into the document, which keeps installation instructions
// and badge noise out of the project knowledge base.
//
// # Authentication
//
// A Personal Access Token (classic or fine-grained) is required. Public
// repository data only needs the public_repo scope. Authenticated requests
// get 5,000 API calls per hour; unauthenticated access is not supported.
//
// # Rate Limiting
//
// The loader uses a dual-strategy rate limiter:
//
//  1. Proactive throttling: a token bucket caps requests at roughly
//     1.2 per second, staying well under the hourly limit.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset
//     headers are tracked, and the loader waits out the reset when the
//     remaining quota runs low.
//
// # Document Structure
//
// Each document carries metadata:
//
//   - source: "github_project", or "self" when the repository is the one
//     hosting this assistant (so the model can answer questions about
//     its own architecture)
//   - repo_name: the repository name
//   - url: the repository's HTML URL
package github
