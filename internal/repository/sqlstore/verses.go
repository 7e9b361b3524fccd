package sqlstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

// loadChunkSize bounds the rows per multi-row INSERT, keeping the bind
// parameter count under both drivers' limits.
const loadChunkSize = 500

const verseColumns = `id, translation_id, chapter_id, number, text, book_name, chapter_number`

// LoadVerses bulk-inserts a chapter's verses in ascending verse order. Rows
// whose (translation, chapter, number) already exist are skipped untouched.
func (s *Store) LoadVerses(ctx context.Context, batch repository.VerseBatch) (int, error) {
	if batch.TranslationID == "" || batch.ChapterID == "" {
		return 0, fmt.Errorf("load verses: translation and chapter ids are required")
	}
	if len(batch.Entries) == 0 {
		return 0, nil
	}

	numbers := make([]int, 0, len(batch.Entries))
	for n := range batch.Entries {
		if n <= 0 {
			return 0, fmt.Errorf("load verses: invalid verse number %d in %s %d", n, batch.BookName, batch.ChapterNumber)
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	inserted := 0
	for start := 0; start < len(numbers); start += loadChunkSize {
		end := start + loadChunkSize
		if end > len(numbers) {
			end = len(numbers)
		}

		chunk := numbers[start:end]
		placeholders := make([]string, len(chunk))
		args := make([]interface{}, 0, len(chunk)*7)
		for i, n := range chunk {
			placeholders[i] = "(?, ?, ?, ?, ?, ?, ?)"
			args = append(args, uuid.NewString(), batch.TranslationID, batch.ChapterID,
				n, batch.Entries[n], batch.BookName, batch.ChapterNumber)
		}

		query := `INSERT INTO verses (` + verseColumns + `) VALUES ` +
			strings.Join(placeholders, ", ") +
			` ON CONFLICT (translation_id, chapter_id, number) DO NOTHING`
		n, err := s.exec(ctx, query, args...)
		if err != nil {
			return inserted, fmt.Errorf("load verses %s %d: %w", batch.BookName, batch.ChapterNumber, err)
		}
		inserted += int(n)
	}
	return inserted, nil
}

// UpsertVerse writes one verse, replacing its text if it already exists
func (s *Store) UpsertVerse(ctx context.Context, v models.Verse) (*models.Verse, error) {
	if v.Number <= 0 {
		return nil, fmt.Errorf("upsert verse: invalid verse number %d", v.Number)
	}

	var out models.Verse
	err := s.get(ctx, &out, `
		INSERT INTO verses (`+verseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (translation_id, chapter_id, number) DO UPDATE SET text = excluded.text
		RETURNING `+verseColumns,
		uuid.NewString(), v.TranslationID, v.ChapterID, v.Number, v.Text, v.BookName, v.ChapterNumber)
	if err != nil {
		return nil, fmt.Errorf("upsert verse %s %d:%d: %w", v.BookName, v.ChapterNumber, v.Number, err)
	}
	return &out, nil
}

// GetVerse looks up one verse by its natural key
func (s *Store) GetVerse(ctx context.Context, translationID, chapterID string, number int) (*models.Verse, error) {
	var out models.Verse
	err := s.get(ctx, &out, `
		SELECT `+verseColumns+` FROM verses
		WHERE translation_id = ? AND chapter_id = ? AND number = ?`,
		translationID, chapterID, number)
	if err != nil {
		return nil, fmt.Errorf("get verse %d: %w", number, notFound(err))
	}
	return &out, nil
}

// GetVerseByID looks up one verse by id
func (s *Store) GetVerseByID(ctx context.Context, id string) (*models.Verse, error) {
	var out models.Verse
	if err := s.get(ctx, &out, `SELECT `+verseColumns+` FROM verses WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("get verse %s: %w", id, notFound(err))
	}
	return &out, nil
}

// ListChapterVerses returns a chapter's verses in one translation ordered by number
func (s *Store) ListChapterVerses(ctx context.Context, translationID, chapterID string) ([]models.Verse, error) {
	var out []models.Verse
	err := s.selectAll(ctx, &out, `
		SELECT `+verseColumns+` FROM verses
		WHERE translation_id = ? AND chapter_id = ?
		ORDER BY number`,
		translationID, chapterID)
	if err != nil {
		return nil, fmt.Errorf("list chapter verses: %w", err)
	}
	if out == nil {
		out = []models.Verse{}
	}
	return out, nil
}

// ListBookVerses returns every verse of a book in one translation, ordered by chapter and verse
func (s *Store) ListBookVerses(ctx context.Context, translationID, bookID string) ([]models.Verse, error) {
	var out []models.Verse
	err := s.selectAll(ctx, &out, `
		SELECT v.id, v.translation_id, v.chapter_id, v.number, v.text, v.book_name, v.chapter_number
		FROM verses v
		JOIN chapters c ON c.id = v.chapter_id
		WHERE v.translation_id = ? AND c.book_id = ?
		ORDER BY c.number, v.number`,
		translationID, bookID)
	if err != nil {
		return nil, fmt.Errorf("list book verses: %w", err)
	}
	if out == nil {
		out = []models.Verse{}
	}
	return out, nil
}

// CountVerses returns the number of verses stored for a translation
func (s *Store) CountVerses(ctx context.Context, translationID string) (int, error) {
	var n int
	if err := s.get(ctx, &n, `SELECT COUNT(*) FROM verses WHERE translation_id = ?`, translationID); err != nil {
		return 0, fmt.Errorf("count verses: %w", err)
	}
	return n, nil
}
