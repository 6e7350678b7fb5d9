package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/chunker"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

func buildBases(t *testing.T, embedder *mockEmbedder, personal, project []domain.Document) *KnowledgeBases {
	t.Helper()
	svc := NewKnowledgeBaseService(chunker.New(), embedder)
	return svc.Build(context.Background(), personal, project)
}

func TestRetrieve_Found(t *testing.T) {
	embedder := newBagEmbedder()
	kb := buildBases(t, embedder,
		[]domain.Document{personalDoc("Alyyan has 3 years of backend experience")},
		[]domain.Document{projectDoc("Repo X: a caching proxy built with a load balancer")},
	)
	retriever := NewRetriever(kb, embedder)

	ret, err := retriever.Retrieve(context.Background(), "caching proxy details", domain.DomainProject)

	require.NoError(t, err)
	assert.Equal(t, domain.SelectionFound, ret.Selection)
	assert.Equal(t, domain.DomainProject, ret.Domain)
	require.NotEmpty(t, ret.Chunks)
	assert.Equal(t, domain.SourceGitHubProject, ret.Chunks[0].Source())
}

func TestRetrieve_FallsBackToPersonal(t *testing.T) {
	embedder := newBagEmbedder()
	kb := buildBases(t, embedder,
		[]domain.Document{personalDoc("Alyyan has 3 years of backend experience")},
		nil, // no project documents -> nil project index
	)
	retriever := NewRetriever(kb, embedder)

	ret, err := retriever.Retrieve(context.Background(), "any project question", domain.DomainProject)

	require.NoError(t, err)
	assert.Equal(t, domain.SelectionFellBack, ret.Selection)
	require.NotEmpty(t, ret.Chunks)
	assert.Equal(t, domain.SourceDriveDocument, ret.Chunks[0].Source())
}

func TestRetrieve_BothIndicesAbsent(t *testing.T) {
	embedder := newBagEmbedder()
	kb := buildBases(t, embedder, nil, nil)
	retriever := NewRetriever(kb, embedder)

	before := embedder.embedCalls()
	ret, err := retriever.Retrieve(context.Background(), "anything", domain.DomainPersonal)

	require.NoError(t, err)
	assert.Equal(t, domain.SelectionNone, ret.Selection)
	assert.Empty(t, ret.Chunks)
	// No embedding call should happen when there is nothing to query.
	assert.Equal(t, before, embedder.embedCalls())
}

func TestRetrieve_EmbedderFailureSurfaces(t *testing.T) {
	embedder := newBagEmbedder()
	kb := buildBases(t, embedder,
		[]domain.Document{personalDoc("some text")},
		nil,
	)

	// Model goes away between build and query.
	embedder.embedErr = fmt.Errorf("dial tcp: %w", domain.ErrModelUnavailable)
	retriever := NewRetriever(kb, embedder)

	_, err := retriever.Retrieve(context.Background(), "question", domain.DomainPersonal)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModelUnavailable))
}

func TestRetrieve_TopKDefault(t *testing.T) {
	embedder := newBagEmbedder()
	// Ten small documents -> ten chunks in the personal index.
	docs := make([]domain.Document, 10)
	for i := range docs {
		docs[i] = personalDoc(fmt.Sprintf("backend note %d with experience", i))
	}
	kb := buildBases(t, embedder, docs, nil)
	retriever := NewRetriever(kb, embedder)

	ret, err := retriever.Retrieve(context.Background(), "backend experience", domain.DomainPersonal)

	require.NoError(t, err)
	assert.Len(t, ret.Chunks, DefaultTopK)
}

func TestRetrieve_TopKLargerThanPopulation(t *testing.T) {
	embedder := newBagEmbedder()
	kb := buildBases(t, embedder,
		[]domain.Document{personalDoc("backend"), personalDoc("experience")},
		nil,
	)
	retriever := NewRetriever(kb, embedder, WithTopK(20))

	ret, err := retriever.Retrieve(context.Background(), "backend", domain.DomainPersonal)

	require.NoError(t, err)
	assert.Len(t, ret.Chunks, 2)
}

func TestRetrieve_NilEmbedder(t *testing.T) {
	embedder := newBagEmbedder()
	kb := buildBases(t, embedder, []domain.Document{personalDoc("text")}, nil)
	retriever := NewRetriever(kb, nil)

	_, err := retriever.Retrieve(context.Background(), "question", domain.DomainPersonal)

	assert.True(t, errors.Is(err, domain.ErrEmbeddingUnavailable))
}
