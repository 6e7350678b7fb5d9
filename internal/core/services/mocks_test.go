package services

import (
	"context"
	"strings"
	"sync"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbedder implements driven.EmbeddingService with a deterministic
// embedding function, so index contents are fully predictable. The knowledge
// base builder embeds both domains concurrently, so the mutable state is
// mutex-guarded.
type mockEmbedder struct {
	fn       func(text string) []float32
	embedErr error
	dims     int

	mu    sync.Mutex
	calls int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.fn(text), nil
}

// embedCalls returns the number of Embed invocations so far.
func (m *mockEmbedder) embedCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		result[i] = vec
	}
	return result, nil
}

func (m *mockEmbedder) Dimensions() int { return m.dims }

func (m *mockEmbedder) ModelName() string { return "mock-embedder" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// bagVocab is the fixed vocabulary for bag-of-words test embeddings.
var bagVocab = []string{
	"alyyan", "backend", "experience", "years",
	"repo", "caching", "proxy", "load", "balancer", "built",
}

// bagOfWords embeds text as term counts over bagVocab. Texts sharing
// vocabulary score high cosine similarity, unrelated texts score zero.
func bagOfWords(text string) []float32 {
	lowered := strings.ToLower(text)
	vec := make([]float32, len(bagVocab))
	for i, term := range bagVocab {
		vec[i] = float32(strings.Count(lowered, term))
	}
	return vec
}

func newBagEmbedder() *mockEmbedder {
	return &mockEmbedder{fn: bagOfWords, dims: len(bagVocab)}
}

// mockLLM implements driven.LLMService with canned responses.
type mockLLM struct {
	generateResp  string
	generateErr   error
	chatResp      string
	chatErr       error
	generateCalls int
	chatCalls     int
	lastPrompt    string
	lastOptions   driven.GenerateOptions
}

func (m *mockLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.generateCalls++
	m.lastPrompt = prompt
	m.lastOptions = opts
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.generateResp, nil
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	m.chatCalls++
	if len(messages) > 0 {
		m.lastPrompt = messages[len(messages)-1].Content
	}
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.chatResp, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// mockPromptStore implements driven.PromptStore backed by a map.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", errNoPrompt
}

func (m *mockPromptStore) Reload() {}

var errNoPrompt = errFixed("prompt not found")

// errFixed is a trivial constant error type for mocks.
type errFixed string

func (e errFixed) Error() string { return string(e) }
