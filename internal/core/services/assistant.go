package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driving"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// NoKnowledgeAnswer is returned when no knowledge base is available.
const NoKnowledgeAnswer = "Knowledge base is not available."

// chunkSeparator joins retrieved chunks into the context blob. Double
// newline is the documented, stable joining rule; changing it changes
// what the model sees and breaks answer reproducibility.
const chunkSeparator = "\n\n"

// defaultAnswerPrompt is the fallback prompt when no PromptStore is configured.
// Placeholders: %s (context), %s (question).
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const defaultAnswerPrompt = `### ROLE ###
You are an expert AI assistant for Alyyan Ahmed's professional portfolio, named "PortfolioAI".
You must be professional, articulate, and provide well-structured, readable answers.

### TASK ###
Your task is to answer questions about Alyyan Ahmed based *exclusively* on the provided context information.
Do not use any external knowledge.

### FORMATTING RULES ###
- **Use Markdown for all formatting.**
- Use **bolding** for emphasis on key terms, technologies, or titles.
- Use bullet points (using ` + "`-`" + `) for lists of skills, projects, or responsibilities.
- Keep answers concise and to the point.

### BEHAVIORAL RULES ###
1. **Analyze the User's Question:** Understand the user's intent.
2. **Scan the Context:** Find the answer only within the provided context.
3. **Synthesize a Professional Answer:** Formulate a direct answer using the specified Markdown formatting.
4. **Handle Missing Information:** If the answer is not in the context, you MUST state: "Based on the provided information, I cannot answer that question." Do not apologize or guess.
5. **Self-Awareness:** If the user asks about "you" (the AI), your purpose, or your architecture, you MUST prioritize information from context that has the source 'self'.

### CONTEXT ###
%s

### USER QUESTION ###
%s

### YOUR ANSWER (in Markdown) ###`

// Assistant answers questions end to end: classify the question, retrieve
// grounding context from the matching knowledge base, and generate a
// markdown answer with the language model.
type Assistant struct {
	router      *Router
	retriever   *Retriever
	llm         driven.LLMService
	promptStore driven.PromptStore
}

// Ensure Assistant implements the interfaces.
var (
	_ driving.AssistantService = (*Assistant)(nil)
	_ driven.PromptStoreAware  = (*Assistant)(nil)
)

// NewAssistant creates the assistant service.
func NewAssistant(router *Router, retriever *Retriever, llm driven.LLMService) *Assistant {
	return &Assistant{router: router, retriever: retriever, llm: llm}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (a *Assistant) SetPromptStore(store driven.PromptStore) {
	a.promptStore = store
}

// Ask produces a grounded answer for the question.
//
// Per-query state machine: received -> classified -> index selected
// (possibly via fallback) -> retrieved -> answered. Routing failures
// degrade to the personal domain inside the router; an empty knowledge
// base degrades to a fixed answer here. Only an unreachable model is a
// genuine error for the caller.
func (a *Assistant) Ask(ctx context.Context, question string) (domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	logger.Section("Question")
	logger.Debug("Question: %q", question)

	dom := a.router.Classify(ctx, question)

	retrieval, err := a.retriever.Retrieve(ctx, question, dom)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("retrieve context: %w", err)
	}

	answer := domain.Answer{
		Domain:    retrieval.Domain,
		Selection: retrieval.Selection,
		Sources:   retrieval.Chunks,
	}

	if retrieval.Selection == domain.SelectionNone {
		answer.Text = NoKnowledgeAnswer
		return answer, nil
	}

	if a.llm == nil {
		return domain.Answer{}, domain.ErrLLMUnavailable
	}

	contextBlob := joinChunks(retrieval.Chunks)
	logger.Debug("Context: %d chunks, %d bytes", len(retrieval.Chunks), len(contextBlob))

	prompt := fmt.Sprintf(a.loadPrompt(driven.PromptAnswer, defaultAnswerPrompt), contextBlob, question)

	text, err := a.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "user", Content: prompt},
	}, driven.ChatOptions{})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("generate answer: %w", err)
	}

	answer.Text = strings.TrimSpace(text)
	return answer, nil
}

// joinChunks concatenates chunk contents with the stable separator.
func joinChunks(chunks []domain.Chunk) string {
	parts := make([]string, len(chunks))
	for i := range chunks {
		parts[i] = chunks[i].Content
	}
	return strings.Join(parts, chunkSeparator)
}

// loadPrompt loads a prompt from the store, falling back to the default if unavailable.
func (a *Assistant) loadPrompt(name, fallback string) string {
	if a.promptStore == nil {
		return fallback
	}
	prompt, err := a.promptStore.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
