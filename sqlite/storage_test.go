package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/codehunter"
	"github.com/fwojciec/codehunter/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing key", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewStorage(setupTestDB(t))

		_, err := s.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, codehunter.ENOTFOUND, codehunter.ErrorCode(err))
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewStorage(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte(`[1,2,3]`)))

		value, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[1,2,3]`), value)
	})
}

func TestStorage_Set(t *testing.T) {
	t.Parallel()

	t.Run("overwrites existing value", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		s := sqlite.NewStorage(db)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("one")))
		require.NoError(t, s.Set(ctx, "k", []byte("two")))

		value, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), value)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewStorage(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))

		value, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), value)
	})
}

func TestStorage_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes key", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewStorage(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "k", []byte("v")))

		require.NoError(t, s.Delete(ctx, "k"))

		_, err := s.Get(ctx, "k")
		assert.Equal(t, codehunter.ENOTFOUND, codehunter.ErrorCode(err))
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewStorage(setupTestDB(t))

		assert.NoError(t, s.Delete(context.Background(), "missing"))
	})
}

// Story: History persisted in SQLite survives a new session

func TestStorage_HistoryRoundTrip(t *testing.T) {
	t.Parallel()

	// Given a history backed by SQLite with a few extractions
	db := setupTestDB(t)
	ctx := context.Background()
	h := codehunter.NewHistory(sqlite.NewStorage(db), codehunter.HistoryConfig{MaxEntries: 3})
	files := []codehunter.SourceFile{
		{Name: "index.html", Language: codehunter.LanguageMarkup, Content: "<p>hi</p>", Size: "9 B"},
	}
	var last codehunter.HistoryEntry
	for i := 0; i < 5; i++ {
		var err error
		last, err = h.Add(ctx, fmt.Sprintf("https://site-%d.example", i), files)
		require.NoError(t, err)
	}

	// When a new session loads it
	entries, err := codehunter.NewHistory(sqlite.NewStorage(db), codehunter.HistoryConfig{MaxEntries: 3}).Load(ctx)

	// Then only the most recent entries remain, newest first
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, last.ID, entries[0].ID)
	assert.True(t, last.CreatedAt.Equal(entries[0].CreatedAt))
	assert.Equal(t, files, entries[0].Files)
	assert.Equal(t, "https://site-2.example", entries[2].URL)

	// And clearing removes the row entirely
	require.NoError(t, h.Clear(ctx))
	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&count))
	assert.Zero(t, count)
}

func TestStorage_CorruptHistoryIsDiscarded(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()
	s := sqlite.NewStorage(db)
	require.NoError(t, s.Set(ctx, codehunter.DefaultHistoryKey, []byte("<<garbage>>")))

	entries, err := codehunter.NewHistory(s, codehunter.HistoryConfig{}).Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, entries)
	_, err = s.Get(ctx, codehunter.DefaultHistoryKey)
	assert.Equal(t, codehunter.ENOTFOUND, codehunter.ErrorCode(err))
}
