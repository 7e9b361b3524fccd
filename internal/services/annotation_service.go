package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// AnnotationService manages a user's bookmarks, highlights and notes
type AnnotationService struct {
	annotations repository.AnnotationRepository
	verses      repository.VerseRepository
}

// NewAnnotationService creates a new annotation service
func NewAnnotationService(annotations repository.AnnotationRepository, verses repository.VerseRepository) *AnnotationService {
	return &AnnotationService{annotations: annotations, verses: verses}
}

// ToggleBookmark flips the bookmark on a verse and reports whether it is now set
func (s *AnnotationService) ToggleBookmark(ctx context.Context, userID, verseID string) (bool, error) {
	if err := s.check(ctx, userID, verseID); err != nil {
		return false, err
	}
	return s.annotations.ToggleBookmark(ctx, userID, verseID)
}

// ListBookmarks returns the user's bookmarked verses, newest first
func (s *AnnotationService) ListBookmarks(ctx context.Context, userID string) ([]models.AnnotatedVerse, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.annotations.ListBookmarks(ctx, userID)
}

// SetHighlight colours a verse. A nil color clears the highlight and returns nil.
func (s *AnnotationService) SetHighlight(ctx context.Context, userID, verseID string, color *string) (*models.Highlight, error) {
	if err := s.check(ctx, userID, verseID); err != nil {
		return nil, err
	}
	if color == nil {
		return nil, s.annotations.ClearHighlight(ctx, userID, verseID)
	}
	if !hexColor.MatchString(*color) {
		return nil, fmt.Errorf("%w: color must be #rrggbb", ErrInvalidInput)
	}
	return s.annotations.SetHighlight(ctx, userID, verseID, strings.ToLower(*color))
}

// ListHighlights returns the user's highlighted verses, most recently changed first
func (s *AnnotationService) ListHighlights(ctx context.Context, userID string) ([]models.AnnotatedVerse, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	return s.annotations.ListHighlights(ctx, userID)
}

// AddNote attaches a note to a verse
func (s *AnnotationService) AddNote(ctx context.Context, userID, verseID, content string) (*models.Note, error) {
	if err := s.check(ctx, userID, verseID); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: note content is required", ErrInvalidInput)
	}
	return s.annotations.AddNote(ctx, userID, verseID, content)
}

// ListNotes returns the user's notes on a verse, oldest first
func (s *AnnotationService) ListNotes(ctx context.Context, userID, verseID string) ([]models.Note, error) {
	if err := s.check(ctx, userID, verseID); err != nil {
		return nil, err
	}
	return s.annotations.ListNotes(ctx, userID, verseID)
}

// DeleteNote removes one of the user's notes; other users' notes are not found
func (s *AnnotationService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	return s.annotations.DeleteNote(ctx, userID, noteID)
}

func (s *AnnotationService) check(ctx context.Context, userID, verseID string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if _, err := s.verses.GetVerseByID(ctx, verseID); err != nil {
		return fmt.Errorf("get verse %s: %w", verseID, err)
	}
	return nil
}
