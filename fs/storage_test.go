package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/codehunter"
	"github.com/fwojciec/codehunter/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: File Storage
// Each key lives in its own file, replaced atomically on every write

func TestStorage_SetThenGet(t *testing.T) {
	t.Parallel()

	// Given a storage in a directory that does not exist yet
	dir := filepath.Join(t.TempDir(), "store")
	s := fs.NewStorage(dir)
	ctx := context.Background()

	// When I store a value
	err := s.Set(ctx, "code-hunter-history", []byte(`[]`))

	// Then it can be read back
	require.NoError(t, err)
	value, err := s.Get(ctx, "code-hunter-history")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	// And the directory holds only the value file
	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, filepath.Base(s.KeyPath("code-hunter-history")), names[0].Name())
}

func TestStorage_GetMissingKey(t *testing.T) {
	t.Parallel()

	s := fs.NewStorage(t.TempDir())

	_, err := s.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, codehunter.ENOTFOUND, codehunter.ErrorCode(err))
}

func TestStorage_SetOverwrites(t *testing.T) {
	t.Parallel()

	s := fs.NewStorage(t.TempDir())
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", []byte("one")))

	require.NoError(t, s.Set(ctx, "k", []byte("two")))

	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)
}

func TestStorage_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the file", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStorage(t.TempDir())
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("v")))

		require.NoError(t, s.Delete(ctx, "k"))

		_, err := os.Stat(s.KeyPath("k"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		t.Parallel()

		s := fs.NewStorage(t.TempDir())

		assert.NoError(t, s.Delete(context.Background(), "missing"))
	})
}

func TestStorage_KeyPathStaysInsideDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := fs.NewStorage(dir)

	path := s.KeyPath("../../etc/passwd")

	assert.Equal(t, dir, filepath.Dir(path))
	assert.NotEqual(t, s.KeyPath("a"), s.KeyPath("b"))
}

func TestStorage_SetFailsWhenDirectoryIsAFile(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	s := fs.NewStorage(file)

	err := s.Set(context.Background(), "k", []byte("v"))

	require.Error(t, err)
}

// Story: History kept in files behaves like any other storage

func TestStorage_History(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	h := codehunter.NewHistory(fs.NewStorage(dir), codehunter.HistoryConfig{})

	entry, err := h.Add(ctx, "https://example.com", []codehunter.SourceFile{
		{Name: "script.js", Language: codehunter.LanguageScript, Content: "let a = 1;", Size: "10 B"},
	})
	require.NoError(t, err)

	entries, err := codehunter.NewHistory(fs.NewStorage(dir), codehunter.HistoryConfig{}).Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)

	require.NoError(t, h.Clear(ctx))
	_, err = os.Stat(fs.NewStorage(dir).KeyPath(codehunter.DefaultHistoryKey))
	assert.True(t, os.IsNotExist(err), "history file should be removed by Clear")
}
