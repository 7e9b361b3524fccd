package repository

import (
	"context"
	"errors"
	"time"

	"github.com/verbum-domini-api/internal/canon"
	"github.com/verbum-domini-api/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist
	ErrNotFound = errors.New("not found")
	// ErrTransient marks a storage failure that may succeed if retried, such
	// as a dropped connection, a deadlock or a busy database
	ErrTransient = errors.New("transient storage failure")
)

// TranslationRepository defines operations on translations
type TranslationRepository interface {
	// UpsertTranslation creates the translation if its abbreviation is new; existing rows are left as they are
	UpsertTranslation(ctx context.Context, t models.Translation) (*models.Translation, error)
	GetTranslationByAbbreviation(ctx context.Context, abbreviation string) (*models.Translation, error)
	ListTranslations(ctx context.Context) ([]models.Translation, error)
}

// BookRepository defines operations on canonical books
type BookRepository interface {
	// UpsertBook is keyed by abbreviation. On conflict only the order, the
	// deuterocanonical flag and the abbreviation key are updated.
	UpsertBook(ctx context.Context, d canon.Descriptor) (*models.Book, error)
	FindBookByName(ctx context.Context, name string) (*models.Book, error)
	GetBookByKey(ctx context.Context, key string) (*models.BookDetail, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
}

// ChapterRepository defines operations on chapters
type ChapterRepository interface {
	// UpsertChapter is keyed by (bookID, number) and never modifies an existing row
	UpsertChapter(ctx context.Context, bookID string, number int) (*models.Chapter, error)
	GetChapter(ctx context.Context, bookID string, number int) (*models.Chapter, error)
	ListChapters(ctx context.Context, bookID string) ([]models.Chapter, error)
}

// VerseBatch is the set of verses of one chapter in one translation
type VerseBatch struct {
	TranslationID string
	ChapterID     string
	BookName      string
	ChapterNumber int
	Entries       map[int]string
}

// VerseRepository defines operations on verse text
type VerseRepository interface {
	// LoadVerses bulk-inserts a chapter's verses, skipping numbers that already
	// exist for the translation and chapter. Existing text is never changed.
	// It returns the number of rows inserted.
	LoadVerses(ctx context.Context, batch VerseBatch) (int, error)
	// UpsertVerse writes a single verse, overwriting the text on conflict
	UpsertVerse(ctx context.Context, v models.Verse) (*models.Verse, error)
	GetVerse(ctx context.Context, translationID, chapterID string, number int) (*models.Verse, error)
	GetVerseByID(ctx context.Context, id string) (*models.Verse, error)
	ListChapterVerses(ctx context.Context, translationID, chapterID string) ([]models.Verse, error)
	ListBookVerses(ctx context.Context, translationID, bookID string) ([]models.Verse, error)
	CountVerses(ctx context.Context, translationID string) (int, error)
}

// Catalog groups the scripture repositories used together by seeding and ingestion
type Catalog interface {
	TranslationRepository
	BookRepository
	ChapterRepository
	VerseRepository
}

// TxCatalog is a Catalog that can run a unit of work in one transaction
type TxCatalog interface {
	Catalog
	InTx(ctx context.Context, fn func(Catalog) error) error
}

// LockRepository defines the ingestion run marker
type LockRepository interface {
	// AcquireLock records runID as the holder of name. It returns false when
	// another run holds the lock. Holders older than staleAfter are evicted first.
	AcquireLock(ctx context.Context, name, runID string, staleAfter time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, name, runID string) error
}

// AnnotationRepository defines per-user bookmarks, highlights and notes
type AnnotationRepository interface {
	// ToggleBookmark removes the bookmark if present, otherwise creates it, and reports the new state
	ToggleBookmark(ctx context.Context, userID, verseID string) (bool, error)
	ListBookmarks(ctx context.Context, userID string) ([]models.AnnotatedVerse, error)
	SetHighlight(ctx context.Context, userID, verseID, color string) (*models.Highlight, error)
	ClearHighlight(ctx context.Context, userID, verseID string) error
	ListHighlights(ctx context.Context, userID string) ([]models.AnnotatedVerse, error)
	AddNote(ctx context.Context, userID, verseID, content string) (*models.Note, error)
	ListNotes(ctx context.Context, userID, verseID string) ([]models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// VectorSearchRepository defines operations for vector similarity search
type VectorSearchRepository interface {
	// SearchVersesByEmbedding returns the topK verses closest to embedding,
	// optionally restricted to one translation abbreviation
	SearchVersesByEmbedding(ctx context.Context, embedding []float64, translation string, topK int) ([]models.ScoredVerse, error)
}

// EmbeddingRepository defines storage of verse embeddings
type EmbeddingRepository interface {
	VersesWithoutEmbedding(ctx context.Context, translationID string, limit int) ([]models.Verse, error)
	StoreEmbeddings(ctx context.Context, embeddings map[string][]float64) error
}
