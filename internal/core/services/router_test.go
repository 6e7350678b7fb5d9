package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

func TestClassify_ProjectLabel(t *testing.T) {
	llm := &mockLLM{generateResp: "project_info"}
	router := NewRouter(llm)

	dom := router.Classify(context.Background(), "How does the caching proxy work?")

	assert.Equal(t, domain.DomainProject, dom)
	assert.Equal(t, 1, llm.generateCalls)
}

func TestClassify_PersonalLabel(t *testing.T) {
	llm := &mockLLM{generateResp: "personal_info"}
	router := NewRouter(llm)

	dom := router.Classify(context.Background(), "Where did Alyyan study?")

	assert.Equal(t, domain.DomainPersonal, dom)
}

func TestClassify_Deterministic(t *testing.T) {
	llm := &mockLLM{generateResp: "project_info"}
	router := NewRouter(llm)

	first := router.Classify(context.Background(), "Tell me about Repo X")
	second := router.Classify(context.Background(), "Tell me about Repo X")

	assert.Equal(t, first, second)
	// Deterministic decoding must be requested on every call.
	assert.True(t, llm.lastOptions.Deterministic)
}

func TestClassify_QuestionEmbeddedInPrompt(t *testing.T) {
	llm := &mockLLM{generateResp: "personal_info"}
	router := NewRouter(llm)

	router.Classify(context.Background(), "What backend experience does Alyyan have?")

	assert.Contains(t, llm.lastPrompt, "What backend experience does Alyyan have?")
}

func TestClassify_FreeFormResponse(t *testing.T) {
	// Models often answer in prose; the substring scan must still find
	// the label.
	llm := &mockLLM{generateResp: "Category: PROJECT_INFO, because the question is about code."}
	router := NewRouter(llm)

	dom := router.Classify(context.Background(), "Which language is Repo X written in?")

	assert.Equal(t, domain.DomainProject, dom)
}

func TestClassify_DefaultsOnJunkResponse(t *testing.T) {
	llm := &mockLLM{generateResp: "I am not sure what you mean."}
	router := NewRouter(llm)

	dom := router.Classify(context.Background(), "hmm?")

	assert.Equal(t, domain.DomainPersonal, dom)
}

func TestClassify_DefaultsWhenBothLabelsPresent(t *testing.T) {
	llm := &mockLLM{generateResp: "personal_info or project_info, hard to say"}
	router := NewRouter(llm)

	dom := router.Classify(context.Background(), "Tell me everything")

	assert.Equal(t, domain.DomainPersonal, dom)
}

func TestClassify_DefaultsOnModelError(t *testing.T) {
	llm := &mockLLM{generateErr: errors.New("connection refused")}
	router := NewRouter(llm)

	dom := router.Classify(context.Background(), "What projects exist?")

	assert.Equal(t, domain.DomainPersonal, dom)
}

func TestClassify_DefaultsWithoutLLM(t *testing.T) {
	router := NewRouter(nil)

	dom := router.Classify(context.Background(), "anything")

	assert.Equal(t, domain.DomainPersonal, dom)
}

func TestClassify_CustomPrompt(t *testing.T) {
	llm := &mockLLM{generateResp: "project_info"}
	router := NewRouter(llm)
	router.SetPromptStore(&mockPromptStore{prompts: map[string]string{
		"route_query": "Pick a label for: %s",
	}})

	router.Classify(context.Background(), "question text")

	assert.Equal(t, "Pick a label for: question text", llm.lastPrompt)
}

func TestParseDomainLabel(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     domain.KnowledgeDomain
	}{
		{"exact personal", "personal_info", domain.DomainPersonal},
		{"exact project", "project_info", domain.DomainProject},
		{"uppercase", "PROJECT_INFO", domain.DomainProject},
		{"surrounding whitespace", "  project_info\n", domain.DomainProject},
		{"embedded", "the category is project_info.", domain.DomainProject},
		{"neither", "general_info", domain.DomainPersonal},
		{"both", "personal_info project_info", domain.DomainPersonal},
		{"empty", "", domain.DomainPersonal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseDomainLabel(tc.response))
		})
	}
}
