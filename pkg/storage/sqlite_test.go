package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-challenge/soft75/pkg/model"
	"github.com/soft-challenge/soft75/pkg/storage"
)

func newTestDB(t *testing.T) *storage.SQLite {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLite_GetMissing(t *testing.T) {
	store := newTestDB(t)

	_, ok, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_SetGet(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tracker:days", `{"1":{}}`))

	v, ok, err := store.Get(ctx, "tracker:days")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"1":{}}`, v)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestSQLite_Delete(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is fine.
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestSQLite_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := storage.NewSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Close())

	store, err = storage.NewSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSQLite_JournalAppendRecent(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		entry := &model.JournalEntry{
			Kind:      model.JournalToggle,
			Day:       i + 1,
			Habit:     model.HabitDiet,
			Done:      true,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Append(ctx, entry))
		assert.NotEmpty(t, entry.ID)
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Day, "newest first")
	assert.Equal(t, 2, entries[1].Day)
}

func TestSQLite_JournalReset(t *testing.T) {
	store := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, &model.JournalEntry{Kind: model.JournalReset}))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.JournalReset, entries[0].Kind)
	assert.Empty(t, string(entries[0].Habit))
}

func TestMemory(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v"))
	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}
