package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
)

func TestPromptStore_LoadCreatesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRouteQuery)
	require.NoError(t, err)
	assert.Contains(t, prompt, "personal_info")
	assert.Contains(t, prompt, "project_info")

	// Default files are materialised on first load.
	assert.FileExists(t, filepath.Join(tmpDir, "route_query.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "answer.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "README.md"))
}

func TestPromptStore_UserFileOverridesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	custom := "Classify this: %s"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "route_query.txt"), []byte(custom), 0600))

	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptRouteQuery)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}

func TestPromptStore_ReloadPicksUpChanges(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	// Prime the cache with the default.
	first, err := store.Load(driven.PromptRouteQuery)
	require.NoError(t, err)

	edited := "Edited: %s"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "route_query.txt"), []byte(edited), 0600))

	// Cached value survives until a reload.
	cached, err := store.Load(driven.PromptRouteQuery)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()

	fresh, err := store.Load(driven.PromptRouteQuery)
	require.NoError(t, err)
	assert.Equal(t, edited, fresh)
}

func TestPromptStore_TrimsFileContent(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "answer.txt"), []byte("\n  prompt body %s %s \n\n"), 0600))

	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptAnswer)
	require.NoError(t, err)
	assert.Equal(t, "prompt body %s %s", prompt)
}

func TestPromptStore_WatchReloadsOnEdit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewPromptStore(tmpDir)
	require.NoError(t, err)

	// Prime the cache.
	_, err = store.Load(driven.PromptRouteQuery)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	// Give the watcher a moment to register before editing.
	time.Sleep(100 * time.Millisecond)

	edited := "Hot reloaded: %s"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "route_query.txt"), []byte(edited), 0600))

	require.Eventually(t, func() bool {
		prompt, err := store.Load(driven.PromptRouteQuery)
		return err == nil && prompt == edited
	}, 5*time.Second, 50*time.Millisecond, "edit never observed through the watcher")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
