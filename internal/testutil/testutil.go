// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/verbum-domini-api/internal/canon"
	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository/sqlstore"
	"github.com/verbum-domini-api/pkg/schema/config"
	"github.com/verbum-domini-api/pkg/schema/db"
)

var dbCounter atomic.Int64

// SetupTestDB opens a private in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1))

	conn, err := db.Open(context.Background(), &config.Config{
		DatabaseDriver: db.DriverSQLite,
		DatabaseURL:    dsn,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// SetupTestStore returns a store over a fresh test database
func SetupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	return sqlstore.New(SetupTestDB(t))
}

// CreateTestTranslation inserts a translation by abbreviation
func CreateTestTranslation(t *testing.T, store *sqlstore.Store, abbreviation string) *models.Translation {
	t.Helper()

	tr, err := store.UpsertTranslation(context.Background(), models.Translation{
		Abbreviation: abbreviation,
		Name:         abbreviation + " Test Edition",
		Language:     "English",
	})
	if err != nil {
		t.Fatalf("Failed to create test translation: %v", err)
	}
	return tr
}

// SeedCanon inserts all 73 canonical books
func SeedCanon(t *testing.T, store *sqlstore.Store) {
	t.Helper()

	for _, d := range canon.Books() {
		if _, err := store.UpsertBook(context.Background(), d); err != nil {
			t.Fatalf("Failed to seed book %s: %v", d.Name, err)
		}
	}
}

// CreateTestVerse inserts a book (if needed), a chapter and one verse
func CreateTestVerse(t *testing.T, store *sqlstore.Store, translation *models.Translation, bookName string, chapter, number int, text string) *models.Verse {
	t.Helper()
	ctx := context.Background()

	d, ok := canon.ByName(bookName)
	if !ok {
		t.Fatalf("Unknown canonical book %q", bookName)
	}
	book, err := store.UpsertBook(ctx, d)
	if err != nil {
		t.Fatalf("Failed to create test book: %v", err)
	}
	ch, err := store.UpsertChapter(ctx, book.ID, chapter)
	if err != nil {
		t.Fatalf("Failed to create test chapter: %v", err)
	}
	v, err := store.UpsertVerse(ctx, models.Verse{
		TranslationID: translation.ID,
		ChapterID:     ch.ID,
		Number:        number,
		Text:          text,
		BookName:      book.Name,
		ChapterNumber: ch.Number,
	})
	if err != nil {
		t.Fatalf("Failed to create test verse: %v", err)
	}
	return v
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
