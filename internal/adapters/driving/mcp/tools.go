package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question about Alyyan's portfolio"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Sources  []string `json:"sources,omitempty"`
}

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Question string `json:"question" jsonschema:"the question to retrieve grounding context for"`
	Domain   string `json:"domain,omitempty" jsonschema:"knowledge domain to query: personal_info or project_info (default: classified automatically)"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Domain    string        `json:"domain"`
	Selection string        `json:"selection"`
	Chunks    []ChunkOutput `json:"chunks"`
}

// ChunkOutput represents a single retrieved chunk.
type ChunkOutput struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question about Alyyan's portfolio and get a grounded answer",
	}, s.handleAsk)

	if s.ports.Knowledge != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "retrieve",
			Description: "Retrieve the raw knowledge base context for a question without generating an answer",
		}, s.handleRetrieve)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Assistant.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:   answer.Text,
		Category: string(answer.Domain),
	}
	for _, chunk := range answer.Sources {
		output.Sources = append(output.Sources, chunk.Source())
	}

	return nil, output, nil
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	dom := domain.KnowledgeDomain(input.Domain)
	if !dom.Valid() {
		dom = s.ports.Knowledge.Classify(ctx, input.Question)
	}

	retrieval, err := s.ports.Knowledge.Retrieve(ctx, input.Question, dom)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Domain:    string(retrieval.Domain),
		Selection: retrieval.Selection.String(),
		Chunks:    make([]ChunkOutput, len(retrieval.Chunks)),
	}
	for i, chunk := range retrieval.Chunks {
		output.Chunks[i] = ChunkOutput{
			Content: chunk.Content,
			Source:  chunk.Source(),
		}
	}

	return nil, output, nil
}
