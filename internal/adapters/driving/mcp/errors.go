// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the portfolio assistant. It lets AI clients ask grounded questions about
// Alyyan's portfolio and inspect the retrieved context directly.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
