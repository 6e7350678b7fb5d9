package github

import (
	"context"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := NewLoader(ctx, Config{Username: "AlyyanAhmed21"})
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = NewLoader(ctx, Config{Token: "ghp_test"})
	assert.ErrorIs(t, err, ErrMissingUsername)

	loader, err := NewLoader(ctx, Config{Token: "ghp_test", Username: "AlyyanAhmed21"})
	require.NoError(t, err)
	assert.Equal(t, "github", loader.Name())
}

func TestCoreInfo(t *testing.T) {
	repo := &gh.Repository{
		Name:        gh.Ptr("caching-proxy"),
		Description: gh.Ptr("A caching reverse proxy"),
		Language:    gh.Ptr("Go"),
		Topics:      []string{"networking", "cache"},
	}

	got := coreInfo(repo)

	assert.Equal(t,
		"Repository Name: caching-proxy\n"+
			"Description: A caching reverse proxy\n"+
			"Primary Language: Go\n"+
			"Topics: networking, cache",
		got)
}

func TestCoreInfo_MissingFields(t *testing.T) {
	repo := &gh.Repository{Name: gh.Ptr("bare-repo")}

	got := coreInfo(repo)

	assert.Contains(t, got, "Repository Name: bare-repo")
	assert.Contains(t, got, "Description: \n")
	assert.Contains(t, got, "Topics: ")
}
