package images

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasraugi/presentes-api/internal/config"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	url, err := store.Save(context.Background(), "presente.png", "image/png", 4, strings.NewReader("fake"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/presente.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "presente.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake", string(data))
}

func TestLocalStoreSanitizesPath(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	url, err := store.Save(context.Background(), "../escape.png", "image/png", 1, strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/escape.png", url)

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
}

func TestNewStorePicksLocalWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()

	store, err := NewStore(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)
}
