package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

// ToggleBookmark flips the bookmark on (userID, verseID) and reports whether
// the verse is bookmarked afterwards.
func (s *Store) ToggleBookmark(ctx context.Context, userID, verseID string) (bool, error) {
	bookmarked := false
	err := s.withTx(ctx, func(tx *Store) error {
		removed, err := tx.exec(ctx, `DELETE FROM bookmarks WHERE user_id = ? AND verse_id = ?`, userID, verseID)
		if err != nil {
			return fmt.Errorf("delete bookmark: %w", err)
		}
		if removed > 0 {
			return nil
		}

		_, err = tx.exec(ctx, `
			INSERT INTO bookmarks (id, user_id, verse_id, created_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (user_id, verse_id) DO NOTHING`,
			uuid.NewString(), userID, verseID, tx.timestamp())
		if err != nil {
			return fmt.Errorf("insert bookmark: %w", err)
		}
		bookmarked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return bookmarked, nil
}

// ListBookmarks returns the user's bookmarked verses, newest first, with any highlight colour
func (s *Store) ListBookmarks(ctx context.Context, userID string) ([]models.AnnotatedVerse, error) {
	var out []models.AnnotatedVerse
	err := s.selectAll(ctx, &out, `
		SELECT v.id, v.translation_id, v.chapter_id, v.number, v.text, v.book_name, v.chapter_number,
		       h.color, b.created_at AS marked_at
		FROM bookmarks b
		JOIN verses v ON v.id = b.verse_id
		LEFT JOIN highlights h ON h.user_id = b.user_id AND h.verse_id = b.verse_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC, v.book_name, v.chapter_number, v.number`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	if out == nil {
		out = []models.AnnotatedVerse{}
	}
	return out, nil
}

// SetHighlight sets the highlight colour on (userID, verseID), replacing any previous colour
func (s *Store) SetHighlight(ctx context.Context, userID, verseID, color string) (*models.Highlight, error) {
	var out models.Highlight
	err := s.withTx(ctx, func(tx *Store) error {
		now := tx.timestamp()
		_, err := tx.exec(ctx, `
			INSERT INTO highlights (id, user_id, verse_id, color, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, verse_id) DO UPDATE SET
				color = excluded.color,
				updated_at = excluded.updated_at`,
			uuid.NewString(), userID, verseID, color, now, now)
		if err != nil {
			return fmt.Errorf("upsert highlight: %w", err)
		}
		return tx.get(ctx, &out, `
			SELECT id, user_id, verse_id, color, created_at, updated_at
			FROM highlights WHERE user_id = ? AND verse_id = ?`,
			userID, verseID)
	})
	if err != nil {
		return nil, fmt.Errorf("set highlight: %w", err)
	}
	return &out, nil
}

// ClearHighlight removes the highlight if present
func (s *Store) ClearHighlight(ctx context.Context, userID, verseID string) error {
	if _, err := s.exec(ctx, `DELETE FROM highlights WHERE user_id = ? AND verse_id = ?`, userID, verseID); err != nil {
		return fmt.Errorf("clear highlight: %w", err)
	}
	return nil
}

// ListHighlights returns the user's highlighted verses, most recently changed first
func (s *Store) ListHighlights(ctx context.Context, userID string) ([]models.AnnotatedVerse, error) {
	var out []models.AnnotatedVerse
	err := s.selectAll(ctx, &out, `
		SELECT v.id, v.translation_id, v.chapter_id, v.number, v.text, v.book_name, v.chapter_number,
		       h.color, h.updated_at AS marked_at
		FROM highlights h
		JOIN verses v ON v.id = h.verse_id
		WHERE h.user_id = ?
		ORDER BY h.updated_at DESC, v.book_name, v.chapter_number, v.number`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	if out == nil {
		out = []models.AnnotatedVerse{}
	}
	return out, nil
}

// AddNote attaches a new note to a verse
func (s *Store) AddNote(ctx context.Context, userID, verseID, content string) (*models.Note, error) {
	now := s.timestamp()
	note := models.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		VerseID:   verseID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.exec(ctx, `
		INSERT INTO notes (id, user_id, verse_id, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.UserID, note.VerseID, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}
	return &note, nil
}

// ListNotes returns the user's notes on one verse, oldest first
func (s *Store) ListNotes(ctx context.Context, userID, verseID string) ([]models.Note, error) {
	var out []models.Note
	err := s.selectAll(ctx, &out, `
		SELECT id, user_id, verse_id, content, created_at, updated_at
		FROM notes
		WHERE user_id = ? AND verse_id = ?
		ORDER BY created_at, id`,
		userID, verseID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if out == nil {
		out = []models.Note{}
	}
	return out, nil
}

// DeleteNote removes a note owned by userID
func (s *Store) DeleteNote(ctx context.Context, userID, noteID string) error {
	n, err := s.exec(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, noteID, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete note %s: %w", noteID, repository.ErrNotFound)
	}
	return nil
}
