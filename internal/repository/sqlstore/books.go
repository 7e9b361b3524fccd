package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/verbum-domini-api/internal/canon"
	"github.com/verbum-domini-api/internal/models"
)

const bookColumns = `id, name, abbreviation, abbreviation_key, canon_order, testament, book_group, is_deuterocanonical`

// UpsertBook inserts the canonical book or, when its abbreviation already
// exists, refreshes only the order, the deuterocanonical flag and the key.
func (s *Store) UpsertBook(ctx context.Context, d canon.Descriptor) (*models.Book, error) {
	if d.Abbreviation == "" || d.Name == "" {
		return nil, fmt.Errorf("upsert book: name and abbreviation are required")
	}

	var out models.Book
	err := s.get(ctx, &out, `
		INSERT INTO books (id, name, abbreviation, abbreviation_key, canon_order, testament, book_group, is_deuterocanonical)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (abbreviation) DO UPDATE SET
			canon_order = excluded.canon_order,
			is_deuterocanonical = excluded.is_deuterocanonical,
			abbreviation_key = excluded.abbreviation_key
		RETURNING `+bookColumns,
		uuid.NewString(), d.Name, d.Abbreviation, d.Key(), d.Order,
		string(d.Testament), string(d.Group), d.IsDeuterocanonical)
	if err != nil {
		return nil, fmt.Errorf("upsert book %s: %w", d.Name, err)
	}
	return &out, nil
}

// FindBookByName looks up a book by its exact canonical name
func (s *Store) FindBookByName(ctx context.Context, name string) (*models.Book, error) {
	var out models.Book
	if err := s.get(ctx, &out, `SELECT `+bookColumns+` FROM books WHERE name = ?`, name); err != nil {
		return nil, fmt.Errorf("find book %q: %w", name, notFound(err))
	}
	return &out, nil
}

// GetBookByKey looks up a book by its abbreviation key, normalizing the input
func (s *Store) GetBookByKey(ctx context.Context, key string) (*models.BookDetail, error) {
	var out models.BookDetail
	err := s.get(ctx, &out, `
		SELECT b.id, b.name, b.abbreviation, b.abbreviation_key, b.canon_order, b.testament,
		       b.book_group, b.is_deuterocanonical,
		       (SELECT COUNT(*) FROM chapters c WHERE c.book_id = b.id) AS chapter_count
		FROM books b
		WHERE b.abbreviation_key = ?`, canon.Key(key))
	if err != nil {
		return nil, fmt.Errorf("get book %q: %w", key, notFound(err))
	}
	return &out, nil
}

// ListBooks returns all books in canonical order
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	var out []models.Book
	if err := s.selectAll(ctx, &out, `SELECT `+bookColumns+` FROM books ORDER BY canon_order, name`); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if out == nil {
		out = []models.Book{}
	}
	return out, nil
}
