package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// defaultRoutePrompt is the fallback prompt when no PromptStore is configured.
// The output is constrained to the two labels so parsing stays trivial.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultRoutePrompt = `You are a query routing expert. Classify the user's question into exactly one of two categories:

1. personal_info: questions about Alyyan's skills, education, experience, contact details, or personal background.
2. project_info: questions about specific technical projects, repositories, code, or architecture.

User Question: "%s"

Respond with exactly one word, either personal_info or project_info, and nothing else.

Category:`

// routeMaxTokens bounds the classification response; one label is enough.
const routeMaxTokens = 8

// Router classifies a question into a knowledge domain using a language
// model with deterministic decoding. It is a pure text-classification
// step, fully decoupled from retrieval: it never touches the indices.
type Router struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
}

// Ensure Router satisfies the prompt customisation hook.
var _ driven.PromptStoreAware = (*Router)(nil)

// NewRouter creates a query router. The LLM service may be nil, in which
// case every question resolves to the personal domain.
func NewRouter(llm driven.LLMService) *Router {
	return &Router{llm: llm}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (r *Router) SetPromptStore(store driven.PromptStore) {
	r.promptStore = store
}

// Classify routes the question to a knowledge domain. The model is asked
// for a constrained one-word answer with decoding pinned deterministic, so
// the same question yields the same label run to run. Any failure - model
// unreachable, ambiguous output, neither label present - resolves to the
// personal domain rather than aborting the request.
func (r *Router) Classify(ctx context.Context, question string) domain.KnowledgeDomain {
	if r.llm == nil {
		logger.Warn("Router: no LLM configured, defaulting to %s", domain.DomainPersonal)
		return domain.DomainPersonal
	}

	prompt := fmt.Sprintf(r.loadPrompt(driven.PromptRouteQuery, defaultRoutePrompt), question)

	response, err := r.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:     routeMaxTokens,
		Deterministic: true,
	})
	if err != nil {
		logger.Warn("Router: classification failed, defaulting to %s: %v", domain.DomainPersonal, err)
		return domain.DomainPersonal
	}

	dom := parseDomainLabel(response)
	logger.Debug("Router: %q -> %s (raw response %q)", question, dom, strings.TrimSpace(response))
	return dom
}

// parseDomainLabel extracts a knowledge domain from the raw model output.
// An exact label match is tried first; otherwise a case-insensitive
// substring scan. Both labels present, or neither, defaults to personal.
func parseDomainLabel(response string) domain.KnowledgeDomain {
	cleaned := strings.ToLower(strings.TrimSpace(response))

	switch domain.KnowledgeDomain(cleaned) {
	case domain.DomainPersonal:
		return domain.DomainPersonal
	case domain.DomainProject:
		return domain.DomainProject
	}

	hasPersonal := strings.Contains(cleaned, string(domain.DomainPersonal))
	hasProject := strings.Contains(cleaned, string(domain.DomainProject))

	if hasProject && !hasPersonal {
		return domain.DomainProject
	}
	return domain.DomainPersonal
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (r *Router) loadPrompt(name, fallback string) string {
	if r.promptStore == nil {
		return fallback
	}
	prompt, err := r.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
