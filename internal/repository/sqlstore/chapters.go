package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/verbum-domini-api/internal/models"
)

// UpsertChapter returns the chapter (bookID, number), creating it if needed.
// An existing row is never modified.
func (s *Store) UpsertChapter(ctx context.Context, bookID string, number int) (*models.Chapter, error) {
	if bookID == "" {
		return nil, fmt.Errorf("upsert chapter: book id is required")
	}
	if number <= 0 {
		return nil, fmt.Errorf("upsert chapter: invalid chapter number %d", number)
	}

	var out models.Chapter
	err := s.get(ctx, &out, `
		INSERT INTO chapters (id, book_id, number)
		VALUES (?, ?, ?)
		ON CONFLICT (book_id, number) DO UPDATE SET number = excluded.number
		RETURNING id, book_id, number`,
		uuid.NewString(), bookID, number)
	if err != nil {
		return nil, fmt.Errorf("upsert chapter %d: %w", number, err)
	}
	return &out, nil
}

// GetChapter looks up a chapter by book and number
func (s *Store) GetChapter(ctx context.Context, bookID string, number int) (*models.Chapter, error) {
	var out models.Chapter
	err := s.get(ctx, &out, `SELECT id, book_id, number FROM chapters WHERE book_id = ? AND number = ?`, bookID, number)
	if err != nil {
		return nil, fmt.Errorf("get chapter %d: %w", number, notFound(err))
	}
	return &out, nil
}

// ListChapters returns a book's chapters ordered by number
func (s *Store) ListChapters(ctx context.Context, bookID string) ([]models.Chapter, error) {
	var out []models.Chapter
	if err := s.selectAll(ctx, &out, `SELECT id, book_id, number FROM chapters WHERE book_id = ? ORDER BY number`, bookID); err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	if out == nil {
		out = []models.Chapter{}
	}
	return out, nil
}
