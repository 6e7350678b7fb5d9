package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Config holds the loader configuration.
type Config struct {
	// Token is the GitHub access token (required).
	Token string

	// Username is the GitHub user whose public repositories to load (required).
	Username string

	// SelfRepoName, if set, marks that repository's document with
	// source "self" so the assistant can answer questions about itself.
	SelfRepoName string
}

// Loader turns a user's public GitHub repositories into project documents.
type Loader struct {
	client       *Client
	username     string
	selfRepoName string
}

// NewLoader creates a GitHub document loader.
func NewLoader(ctx context.Context, cfg Config) (*Loader, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}
	if cfg.Username == "" {
		return nil, ErrMissingUsername
	}

	return &Loader{
		client:       NewClient(ctx, cfg.Token),
		username:     cfg.Username,
		selfRepoName: cfg.SelfRepoName,
	}, nil
}

// Name identifies the loader for logging.
func (l *Loader) Name() string {
	return "github"
}

// Load fetches all public repositories of the configured user and builds
// one document per repository. A repository without a README still yields
// a document from its core information alone.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	logger.Section("GitHub")
	logger.Info("Fetching repository data for user %q", l.username)

	repos, err := l.client.ListPublicRepos(ctx, l.username)
	if err != nil {
		return nil, fmt.Errorf("list repos for %q: %w", l.username, err)
	}

	docs := make([]domain.Document, 0, len(repos))
	for _, repo := range repos {
		if repo.GetPrivate() {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		doc, err := l.buildDocument(ctx, repo)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	logger.Info("Processed %d public repositories", len(docs))
	return docs, nil
}

// buildDocument assembles the document for one repository: the core info
// block plus any relevant README sections.
func (l *Loader) buildDocument(ctx context.Context, repo *gh.Repository) (domain.Document, error) {
	name := repo.GetName()
	logger.Debug("Processing repo: %s", name)

	content := coreInfo(repo)

	readme, err := l.client.GetReadme(ctx, l.username, name)
	switch {
	case err == nil:
		if summary := extractRelevantSections(readme); summary != "" {
			content += "\n\n--- Key Information from README ---\n" + summary
		}
	case IsNotFound(err):
		// Repositories without a README are common.
		logger.Debug("No README for %s", name)
	default:
		return domain.Document{}, fmt.Errorf("readme for %q: %w", name, err)
	}

	metadata := map[string]string{
		domain.MetadataSource: domain.SourceGitHubProject,
		"repo_name":           name,
		"url":                 repo.GetHTMLURL(),
	}
	if l.selfRepoName != "" && name == l.selfRepoName {
		metadata[domain.MetadataSource] = domain.SourceSelf
		logger.Debug("Tagged %s as self-repository", name)
	}

	return domain.Document{Content: content, Metadata: metadata}, nil
}

// coreInfo renders the always-included repository facts.
func coreInfo(repo *gh.Repository) string {
	lines := []string{
		"Repository Name: " + repo.GetName(),
		"Description: " + repo.GetDescription(),
		"Primary Language: " + repo.GetLanguage(),
		"Topics: " + strings.Join(repo.Topics, ", "),
	}
	return strings.Join(lines, "\n")
}
