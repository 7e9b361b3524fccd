package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
	"github.com/verbum-domini-api/internal/testutil"
)

func setupAnnotations(t *testing.T) (*AnnotationService, *models.Verse) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	dr := testutil.CreateTestTranslation(t, store, "DR")
	verse := testutil.CreateTestVerse(t, store, dr, "John", 3, 16, "For God so loved the world")
	return NewAnnotationService(store, store), verse
}

func strPtr(s string) *string { return &s }

func TestAnnotationService_ToggleBookmark(t *testing.T) {
	ctx := context.Background()
	svc, verse := setupAnnotations(t)

	on, err := svc.ToggleBookmark(ctx, "alice", verse.ID)
	require.NoError(t, err)
	assert.True(t, on)

	marks, err := svc.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, verse.ID, marks[0].ID)

	off, err := svc.ToggleBookmark(ctx, "alice", verse.ID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = svc.ToggleBookmark(ctx, "", verse.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ToggleBookmark(ctx, "alice", "no-such-verse")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAnnotationService_SetHighlight(t *testing.T) {
	ctx := context.Background()
	svc, verse := setupAnnotations(t)

	h, err := svc.SetHighlight(ctx, "alice", verse.ID, strPtr("#FBBF24"))
	require.NoError(t, err)
	assert.Equal(t, "#fbbf24", h.Color)

	for _, bad := range []string{"yellow", "#fff", "#gggggg", "fbbf24"} {
		_, err := svc.SetHighlight(ctx, "alice", verse.ID, strPtr(bad))
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}

	cleared, err := svc.SetHighlight(ctx, "alice", verse.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared)

	list, err := svc.ListHighlights(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAnnotationService_Notes(t *testing.T) {
	ctx := context.Background()
	svc, verse := setupAnnotations(t)

	_, err := svc.AddNote(ctx, "alice", verse.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	note, err := svc.AddNote(ctx, "alice", verse.ID, "  The heart of the Gospel ")
	require.NoError(t, err)
	assert.Equal(t, "The heart of the Gospel", note.Content)

	notes, err := svc.ListNotes(ctx, "bob", verse.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.ErrorIs(t, svc.DeleteNote(ctx, "bob", note.ID), repository.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, "", note.ID), ErrUnauthorized)
	require.NoError(t, svc.DeleteNote(ctx, "alice", note.ID))

	notes, err = svc.ListNotes(ctx, "alice", verse.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
