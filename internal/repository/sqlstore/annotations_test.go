package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum-domini-api/internal/repository"
	"github.com/verbum-domini-api/internal/testutil"
)

func TestToggleBookmark(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()
	tr := testutil.CreateTestTranslation(t, store, "DR")
	verse := testutil.CreateTestVerse(t, store, tr, "John", 1, 1, "In the beginning was the Word")

	on, err := store.ToggleBookmark(ctx, "alice", verse.ID)
	require.NoError(t, err)
	assert.True(t, on)

	marks, err := store.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, verse.ID, marks[0].ID)
	assert.Nil(t, marks[0].Color)

	other, err := store.ListBookmarks(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other)

	on, err = store.ToggleBookmark(ctx, "alice", verse.ID)
	require.NoError(t, err)
	assert.False(t, on)

	marks, err = store.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func TestHighlights(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store.WithClock(func() time.Time { return now })

	tr := testutil.CreateTestTranslation(t, store, "DR")
	v1 := testutil.CreateTestVerse(t, store, tr, "John", 1, 1, "one")
	v2 := testutil.CreateTestVerse(t, store, tr, "John", 1, 2, "two")

	h, err := store.SetHighlight(ctx, "alice", v1.ID, "#059669")
	require.NoError(t, err)
	assert.Equal(t, "#059669", h.Color)
	assert.True(t, h.CreatedAt.Equal(now))

	now = now.Add(time.Minute)
	_, err = store.SetHighlight(ctx, "alice", v2.ID, "#7c3aed")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	h2, err := store.SetHighlight(ctx, "alice", v1.ID, "#dc2626")
	require.NoError(t, err)
	assert.Equal(t, h.ID, h2.ID)
	assert.Equal(t, "#dc2626", h2.Color)
	assert.True(t, h2.UpdatedAt.After(h2.CreatedAt))

	list, err := store.ListHighlights(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, v1.ID, list[0].ID, "most recently changed first")
	require.NotNil(t, list[0].Color)
	assert.Equal(t, "#dc2626", *list[0].Color)

	// bookmarks carry the highlight colour
	_, err = store.ToggleBookmark(ctx, "alice", v2.ID)
	require.NoError(t, err)
	marks, err := store.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, marks, 1)
	require.NotNil(t, marks[0].Color)
	assert.Equal(t, "#7c3aed", *marks[0].Color)

	require.NoError(t, store.ClearHighlight(ctx, "alice", v1.ID))
	require.NoError(t, store.ClearHighlight(ctx, "alice", v1.ID))
	list, err = store.ListHighlights(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotes(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	store.WithClock(func() time.Time { return now })

	tr := testutil.CreateTestTranslation(t, store, "DR")
	verse := testutil.CreateTestVerse(t, store, tr, "Tobit", 1, 1, "Tobias of the tribe")

	first, err := store.AddNote(ctx, "alice", verse.ID, "first")
	require.NoError(t, err)
	now = now.Add(time.Second)
	_, err = store.AddNote(ctx, "alice", verse.ID, "second")
	require.NoError(t, err)
	_, err = store.AddNote(ctx, "bob", verse.ID, "bob's")
	require.NoError(t, err)

	notes, err := store.ListNotes(ctx, "alice", verse.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Content)
	assert.Equal(t, "second", notes[1].Content)

	err = store.DeleteNote(ctx, "bob", first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "only the owner may delete")

	require.NoError(t, store.DeleteNote(ctx, "alice", first.ID))
	err = store.DeleteNote(ctx, "alice", first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	notes, err = store.ListNotes(ctx, "alice", verse.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "second", notes[0].Content)
}
