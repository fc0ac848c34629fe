package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store := NewFSStore(t.TempDir())

	exists, err := store.Exists("foo-news")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Write("foo-news", []byte("content")))

	exists, err = store.Exists("foo-news")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(store.Location("foo-news"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestFSStoreCreatesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "site", "content")
	store := NewFSStore(root)

	require.NoError(t, store.Write("foo-news", []byte("x")))
	assert.Equal(t, filepath.Join(root, "foo-news", "index.md"), store.Location("foo-news"))
}

func TestFSStoreLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	store := NewFSStore(root)
	require.NoError(t, store.Write("foo-news", []byte("x")))

	entries, err := os.ReadDir(filepath.Join(root, "foo-news"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.md", entries[0].Name())
}
