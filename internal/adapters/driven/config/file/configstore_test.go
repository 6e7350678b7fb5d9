package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("ollama.model", "llama3"))

	val, ok := store.Get("ollama.model")
	assert.True(t, ok)
	assert.Equal(t, "llama3", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("github.user", "AlyyanAhmed21"))
	require.NoError(t, store.Set("retriever.top_k", 4))
	require.NoError(t, store.Set("server.enabled", true))

	assert.Equal(t, "AlyyanAhmed21", store.GetString("github.user"))
	assert.Equal(t, 4, store.GetInt("retriever.top_k"))
	assert.True(t, store.GetBool("server.enabled"))

	// Missing keys return zero values.
	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))

	// Type mismatches return zero values too.
	assert.Equal(t, "", store.GetString("retriever.top_k"))
	assert.Equal(t, 0, store.GetInt("github.user"))
	assert.False(t, store.GetBool("github.user"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("github.repos", []string{"ai-portfolio", "caching-proxy"}))

	assert.Equal(t, []string{"ai-portfolio", "caching-proxy"}, store.GetStringSlice("github.repos"))
	assert.Nil(t, store.GetStringSlice("nonexistent"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("drive.folder_id", "abc123"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "abc123", reopened.GetString("drive.folder_id"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[ollama]\nmodel = \"llama3\"\ntop_k = 6\n\n[github]\nuser = \"AlyyanAhmed21\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "llama3", store.GetString("ollama.model"))
	assert.Equal(t, 6, store.GetInt("ollama.top_k")) // TOML parses to int64
	assert.Equal(t, "AlyyanAhmed21", store.GetString("github.user"))
}

func TestConfigStore_LoadMissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("github.token", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
