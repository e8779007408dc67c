package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := fs.Get(KeyCredential)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fs.Set(KeyCredential, "secret-token"))

	value, ok, err := fs.Get(KeyCredential)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret-token", value)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Set(KeyScheduledPosts, `[{"id":"a"}]`))
	require.NoError(t, fs.Set(KeyScheduledPosts, `[]`))

	value, ok, err := fs.Get(KeyScheduledPosts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestFileStore_DeleteMissingKeyIsNoop(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, fs.Delete("never-set"))
}

func TestFileStore_Delete(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Set(KeyCredential, "secret"))
	require.NoError(t, fs.Delete(KeyCredential))

	_, ok, err := fs.Get(KeyCredential)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CredentialPermissions(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Set(KeyCredential, "secret"))

	info, err := os.Stat(filepath.Join(dir, KeyCredential+".json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_EmptyDirRejected(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)

	var storeErr *Error
	assert.ErrorAs(t, err, &storeErr)
}

func TestMemStore_RoundTrip(t *testing.T) {
	ms := NewMemStore()

	_, ok, err := ms.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ms.Set("k", "v"))
	value, ok, err := ms.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)

	require.NoError(t, ms.Delete("k"))
	_, ok, err = ms.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
