package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sqlx.DB) error {
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CreateVectorSchema creates the pgvector extension and the verse embedding
// table. PostgreSQL only.
func CreateVectorSchema(ctx context.Context, conn *sqlx.DB, dimensions int) error {
	if conn.DriverName() != DriverPostgres {
		return fmt.Errorf("vector search requires PostgreSQL, got %s", conn.DriverName())
	}
	if dimensions <= 0 {
		return fmt.Errorf("invalid embedding dimensions %d", dimensions)
	}
	ddl := fmt.Sprintf(vectorSchema, dimensions)
	if _, err := conn.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create vector schema: %w", err)
	}
	return nil
}

// The schema is portable between PostgreSQL and SQLite.
const schema = `
-- Translations
CREATE TABLE IF NOT EXISTS translations (
    id TEXT PRIMARY KEY,
    abbreviation TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    language TEXT NOT NULL,
    copyright TEXT,
    is_public_domain BOOLEAN NOT NULL DEFAULT FALSE
);

-- Canonical books
CREATE TABLE IF NOT EXISTS books (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    abbreviation TEXT NOT NULL UNIQUE,
    abbreviation_key TEXT NOT NULL UNIQUE,
    canon_order INTEGER NOT NULL,
    testament TEXT NOT NULL CHECK (testament IN ('OLD', 'NEW')),
    book_group TEXT NOT NULL,
    is_deuterocanonical BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_books_canon_order ON books(canon_order);

-- Chapters
CREATE TABLE IF NOT EXISTS chapters (
    id TEXT PRIMARY KEY,
    book_id TEXT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
    number INTEGER NOT NULL,
    UNIQUE (book_id, number)
);

-- Verses
CREATE TABLE IF NOT EXISTS verses (
    id TEXT PRIMARY KEY,
    translation_id TEXT NOT NULL REFERENCES translations(id) ON DELETE CASCADE,
    chapter_id TEXT NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
    number INTEGER NOT NULL,
    text TEXT NOT NULL,
    book_name TEXT NOT NULL,
    chapter_number INTEGER NOT NULL,
    UNIQUE (translation_id, chapter_id, number)
);

CREATE INDEX IF NOT EXISTS idx_verses_chapter ON verses(chapter_id);
CREATE INDEX IF NOT EXISTS idx_verses_reference ON verses(translation_id, book_name, chapter_number, number);

-- Bookmarks
CREATE TABLE IF NOT EXISTS bookmarks (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    verse_id TEXT NOT NULL REFERENCES verses(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, verse_id)
);

-- Highlights
CREATE TABLE IF NOT EXISTS highlights (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    verse_id TEXT NOT NULL REFERENCES verses(id) ON DELETE CASCADE,
    color TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, verse_id)
);

-- Notes
CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    verse_id TEXT NOT NULL REFERENCES verses(id) ON DELETE CASCADE,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_user_verse ON notes(user_id, verse_id);

-- Ingestion run markers
CREATE TABLE IF NOT EXISTS ingestion_locks (
    lock_name TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    started_at TIMESTAMP NOT NULL
);
`

const vectorSchema = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS verse_embeddings (
    verse_id TEXT PRIMARY KEY REFERENCES verses(id) ON DELETE CASCADE,
    embedding vector(%d) NOT NULL
);
`
