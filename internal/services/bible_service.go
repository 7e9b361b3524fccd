package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

// BibleService serves the read side of the canon and verse text
type BibleService struct {
	catalog repository.Catalog
}

// NewBibleService creates a new bible service
func NewBibleService(catalog repository.Catalog) *BibleService {
	return &BibleService{catalog: catalog}
}

// ListBooks returns all books in canon order
func (s *BibleService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return s.catalog.ListBooks(ctx)
}

// GetBook looks a book up by its case-insensitive abbreviation
func (s *BibleService) GetBook(ctx context.Context, abbreviation string) (*models.BookDetail, error) {
	return s.catalog.GetBookByKey(ctx, abbreviation)
}

// ListChapters returns the chapters of a book ordered by number
func (s *BibleService) ListChapters(ctx context.Context, abbreviation string) ([]models.Chapter, error) {
	book, err := s.catalog.GetBookByKey(ctx, abbreviation)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListChapters(ctx, book.ID)
}

// ListTranslations returns every translation
func (s *BibleService) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	return s.catalog.ListTranslations(ctx)
}

// GetChapterVerses returns a chapter's verses in one translation. An unknown
// translation, book or chapter yields an empty list.
func (s *BibleService) GetChapterVerses(ctx context.Context, translation, abbreviation string, chapter int) ([]models.Verse, error) {
	tr, ch, err := s.resolveChapter(ctx, translation, abbreviation, chapter)
	if errors.Is(err, repository.ErrNotFound) {
		return []models.Verse{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.catalog.ListChapterVerses(ctx, tr.ID, ch.ID)
}

// GetVerse returns one verse, or repository.ErrNotFound
func (s *BibleService) GetVerse(ctx context.Context, translation, abbreviation string, chapter, verse int) (*models.Verse, error) {
	tr, ch, err := s.resolveChapter(ctx, translation, abbreviation, chapter)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetVerse(ctx, tr.ID, ch.ID, verse)
}

func (s *BibleService) resolveChapter(ctx context.Context, translation, abbreviation string, chapter int) (*models.Translation, *models.Chapter, error) {
	tr, err := s.catalog.GetTranslationByAbbreviation(ctx, translation)
	if err != nil {
		return nil, nil, fmt.Errorf("get translation %s: %w", translation, err)
	}
	book, err := s.catalog.GetBookByKey(ctx, abbreviation)
	if err != nil {
		return nil, nil, fmt.Errorf("get book %s: %w", abbreviation, err)
	}
	ch, err := s.catalog.GetChapter(ctx, book.ID, chapter)
	if err != nil {
		return nil, nil, fmt.Errorf("get chapter %s %d: %w", book.Name, chapter, err)
	}
	return tr, ch, nil
}
