package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driven/config/file"
	ollamaembed "github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driven/embedding/ollama"
	ollamallm "github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driven/llm/ollama"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driven/storage/sqlite"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driving/cli"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/chunker"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/connectors/github"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/connectors/google/drive"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/services"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// Cache collections, one per connector. The self-repository split into the
// personal knowledge domain happens after caching, so the cache always
// holds raw connector output.
const (
	collectionGitHub = "github"
	collectionDrive  = "gdrive"
)

func main() {
	// Missing .env is fine; settings fall back to the config file.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}
	go func() {
		if err := promptStore.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Prompt watcher stopped: %v", err)
		}
	}()

	llm := ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL: setting(configStore, "OLLAMA_BASE_URL", "ollama.base_url"),
		Model:   setting(configStore, "OLLAMA_LLM_MODEL", "ollama.llm_model"),
	})
	defer llm.Close()

	embedder := ollamaembed.NewEmbeddingService(ollamaembed.Config{
		BaseURL: setting(configStore, "OLLAMA_BASE_URL", "ollama.base_url"),
		Model:   setting(configStore, "OLLAMA_EMBED_MODEL", "ollama.embed_model"),
	})
	defer embedder.Close()

	if err := llm.Ping(ctx); err != nil {
		logger.Warn("Ollama is not reachable, answers will degrade: %v", err)
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
	}

	personalDocs, projectDocs := loadDocuments(ctx, configStore, cache)

	bases := services.NewKnowledgeBaseService(chunker.New(), embedder).
		Build(ctx, personalDocs, projectDocs)

	router := services.NewRouter(llm)
	router.SetPromptStore(promptStore)

	retriever := services.NewRetriever(bases, embedder)

	assistant := services.NewAssistant(router, retriever, llm)
	assistant.SetPromptStore(promptStore)

	cli.SetServices(&cli.Services{
		Assistant: assistant,
		Knowledge: services.NewKnowledge(router, retriever),
		Config:    configStore,
	})

	return cli.Execute(ctx)
}

// openCache opens the document cache. A cache failure is never fatal: the
// connectors still work, only the offline fallback is lost.
func openCache() driven.DocumentCache {
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Document cache unavailable: %v", err)
		return nil
	}
	return store
}

// loadDocuments acquires the two document collections. Connector output
// refreshes the cache; a connector failure falls back to the cached
// collection so a flaky network never empties a knowledge domain.
func loadDocuments(
	ctx context.Context, cfg driven.ConfigStore, cache driven.DocumentCache,
) (personal, project []domain.Document) {
	logger.Section("Document Acquisition")

	githubDocs := acquire(ctx, cache, collectionGitHub, func(ctx context.Context) ([]domain.Document, error) {
		loader, err := github.NewLoader(ctx, github.Config{
			Token:        setting(cfg, "GITHUB_ACCESS_TOKEN", "github.token"),
			Username:     setting(cfg, "GITHUB_USERNAME", "github.username"),
			SelfRepoName: setting(cfg, "SELF_REPO_NAME", "github.self_repo"),
		})
		if err != nil {
			return nil, err
		}
		return loader.Load(ctx)
	})

	driveDocs := acquire(ctx, cache, collectionDrive, func(ctx context.Context) ([]domain.Document, error) {
		loader, err := drive.NewLoader(ctx, drive.Config{
			CredentialsFile: setting(cfg, "GOOGLE_APPLICATION_CREDENTIALS", "gdrive.credentials_file"),
			FolderID:        setting(cfg, "GOOGLE_DRIVE_CV_FOLDER_ID", "gdrive.folder_id"),
		})
		if err != nil {
			return nil, err
		}
		return loader.Load(ctx)
	})

	// The assistant's own repository describes who it is, so it joins the
	// personal collection instead of the project one.
	personal = driveDocs
	for _, doc := range githubDocs {
		if doc.Source() == domain.SourceSelf {
			personal = append(personal, doc)
			continue
		}
		project = append(project, doc)
	}

	logger.Info("Documents acquired: personal=%d, project=%d", len(personal), len(project))
	return personal, project
}

// acquire runs one connector and keeps the cache in sync with its output.
// On failure the cached collection serves as a stale-but-usable substitute.
func acquire(
	ctx context.Context,
	cache driven.DocumentCache,
	collection string,
	load func(context.Context) ([]domain.Document, error),
) []domain.Document {
	docs, err := load(ctx)
	if err != nil {
		logger.Warn("Loading %s documents failed: %v", collection, err)
		if cache == nil {
			return nil
		}
		cached, cerr := cache.LoadCollection(ctx, collection)
		if cerr != nil {
			logger.Warn("Reading cached %s documents failed: %v", collection, cerr)
			return nil
		}
		if len(cached) > 0 {
			logger.Info("Using %d cached %s documents", len(cached), collection)
		}
		return cached
	}

	if cache != nil && len(docs) > 0 {
		if err := cache.ReplaceCollection(ctx, collection, docs); err != nil {
			logger.Warn("Caching %s documents failed: %v", collection, err)
		}
	}

	return docs
}

// setting resolves a configuration value, environment first, config file
// second.
func setting(cfg driven.ConfigStore, envKey, configKey string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return cfg.GetString(configKey)
}
