package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/chunker"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

func personalDoc(content string) domain.Document {
	return domain.Document{
		Content:  content,
		Metadata: map[string]string{domain.MetadataSource: domain.SourceDriveDocument},
	}
}

func projectDoc(content string) domain.Document {
	return domain.Document{
		Content:  content,
		Metadata: map[string]string{domain.MetadataSource: domain.SourceGitHubProject},
	}
}

func TestBuild_BothDomains(t *testing.T) {
	svc := NewKnowledgeBaseService(chunker.New(), newBagEmbedder())

	kb := svc.Build(context.Background(),
		[]domain.Document{personalDoc("Alyyan has 3 years of backend experience")},
		[]domain.Document{projectDoc("Repo X: a caching proxy built with a load balancer")},
	)

	require.NotNil(t, kb)
	assert.NotNil(t, kb.Index(domain.DomainPersonal))
	assert.NotNil(t, kb.Index(domain.DomainProject))
	assert.False(t, kb.Empty())
}

func TestBuild_EmptyCollectionsYieldNilIndices(t *testing.T) {
	svc := NewKnowledgeBaseService(chunker.New(), newBagEmbedder())

	kb := svc.Build(context.Background(), nil, nil)

	require.NotNil(t, kb)
	assert.Nil(t, kb.Index(domain.DomainPersonal))
	assert.Nil(t, kb.Index(domain.DomainProject))
	assert.True(t, kb.Empty())
}

func TestBuild_OneEmptyDomainIsValid(t *testing.T) {
	svc := NewKnowledgeBaseService(chunker.New(), newBagEmbedder())

	kb := svc.Build(context.Background(),
		[]domain.Document{personalDoc("Alyyan has 3 years of backend experience")},
		nil,
	)

	assert.NotNil(t, kb.Index(domain.DomainPersonal))
	assert.Nil(t, kb.Index(domain.DomainProject))
	assert.False(t, kb.Empty())
}

func TestBuild_EmbedderFailureIsolatedPerDomain(t *testing.T) {
	// The embedder fails outright; both domains end up nil but Build
	// itself never fails.
	embedder := newBagEmbedder()
	embedder.embedErr = domain.ErrModelUnavailable
	svc := NewKnowledgeBaseService(chunker.New(), embedder)

	kb := svc.Build(context.Background(),
		[]domain.Document{personalDoc("some personal text")},
		[]domain.Document{projectDoc("some project text")},
	)

	require.NotNil(t, kb)
	assert.True(t, kb.Empty())
}

func TestBuild_NilEmbedder(t *testing.T) {
	svc := NewKnowledgeBaseService(chunker.New(), nil)

	kb := svc.Build(context.Background(),
		[]domain.Document{personalDoc("text")},
		nil,
	)

	require.NotNil(t, kb)
	assert.True(t, kb.Empty())
}

func TestBuild_WhitespaceOnlyDocuments(t *testing.T) {
	svc := NewKnowledgeBaseService(chunker.New(), newBagEmbedder())

	kb := svc.Build(context.Background(),
		[]domain.Document{{Content: "", Metadata: map[string]string{}}},
		nil,
	)

	// A document with no content produces no chunks, hence no index.
	assert.Nil(t, kb.Index(domain.DomainPersonal))
}

func TestKnowledgeBases_IndexSelection(t *testing.T) {
	svc := NewKnowledgeBaseService(chunker.New(), newBagEmbedder())
	kb := svc.Build(context.Background(),
		[]domain.Document{personalDoc("personal body")},
		[]domain.Document{projectDoc("project body")},
	)

	assert.NotSame(t, kb.Index(domain.DomainPersonal), kb.Index(domain.DomainProject))
	// Unknown labels resolve to the personal index, matching the
	// fail-open routing default.
	assert.Equal(t, kb.Index(domain.DomainPersonal), kb.Index(domain.KnowledgeDomain("bogus")))
}
