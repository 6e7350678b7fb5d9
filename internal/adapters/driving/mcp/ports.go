package mcp

import (
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions end to end.
	Assistant driving.AssistantService

	// Knowledge exposes classification and raw retrieval.
	Knowledge driving.KnowledgeService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Knowledge is optional; without it only the ask tool is registered.
	return nil
}
