package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

var (
	_ repository.VectorSearchRepository = (*VectorSearchRepository)(nil)
	_ repository.EmbeddingRepository    = (*VectorSearchRepository)(nil)
)

// VectorSearchRepository implements vector search and embedding storage for PostgreSQL with pgvector
type VectorSearchRepository struct {
	db *sqlx.DB
}

// NewVectorSearchRepository creates a new PostgreSQL vector search repository
func NewVectorSearchRepository(db *sqlx.DB) *VectorSearchRepository {
	return &VectorSearchRepository{db: db}
}

// SearchVersesByEmbedding performs vector similarity search on verses using pgvector.
// An empty translation searches every translation.
func (r *VectorSearchRepository) SearchVersesByEmbedding(ctx context.Context, embedding []float64, translation string, topK int) ([]models.ScoredVerse, error) {
	vec := pgvector.NewVector(float32Slice(embedding))

	results := []models.ScoredVerse{}
	err := r.db.SelectContext(ctx, &results, `
		SELECT v.id AS verse_id, t.abbreviation AS translation, v.book_name AS book,
		       v.chapter_number AS chapter, v.number AS verse, v.text,
		       1 - (e.embedding <=> $1::vector) AS score
		FROM verse_embeddings e
		JOIN verses v ON v.id = e.verse_id
		JOIN translations t ON t.id = v.translation_id
		WHERE ($2 = '' OR t.abbreviation = $2)
		ORDER BY e.embedding <=> $1::vector
		LIMIT $3
	`, vec, translation, topK)
	if err != nil {
		return nil, fmt.Errorf("vector search verses: %w", err)
	}
	return results, nil
}

// VersesWithoutEmbedding returns up to limit verses of a translation that have no embedding yet
func (r *VectorSearchRepository) VersesWithoutEmbedding(ctx context.Context, translationID string, limit int) ([]models.Verse, error) {
	verses := []models.Verse{}
	err := r.db.SelectContext(ctx, &verses, `
		SELECT v.id, v.translation_id, v.chapter_id, v.number, v.text, v.book_name, v.chapter_number
		FROM verses v
		LEFT JOIN verse_embeddings e ON e.verse_id = v.id
		WHERE v.translation_id = $1 AND e.verse_id IS NULL
		ORDER BY v.id
		LIMIT $2
	`, translationID, limit)
	if err != nil {
		return nil, fmt.Errorf("list verses without embedding: %w", err)
	}
	return verses, nil
}

// StoreEmbeddings writes embeddings keyed by verse id in one transaction, replacing existing vectors
func (r *VectorSearchRepository) StoreEmbeddings(ctx context.Context, embeddings map[string][]float64) error {
	if len(embeddings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin embedding tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO verse_embeddings (verse_id, embedding)
		VALUES ($1, $2)
		ON CONFLICT (verse_id) DO UPDATE SET embedding = excluded.embedding
	`)
	if err != nil {
		return fmt.Errorf("prepare embedding insert: %w", err)
	}
	defer stmt.Close()

	for verseID, embedding := range embeddings {
		if _, err := stmt.ExecContext(ctx, verseID, pgvector.NewVector(float32Slice(embedding))); err != nil {
			return fmt.Errorf("store embedding for verse %s: %w", verseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit embeddings: %w", err)
	}
	return nil
}

// EachEmbedding calls fn for every stored embedding, ordered by translation then reference.
// An empty translation covers all translations.
func (r *VectorSearchRepository) EachEmbedding(ctx context.Context, translation string, fn func(verseID, translation string, embedding []float32) error) error {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT v.id, t.abbreviation, e.embedding
		FROM verse_embeddings e
		JOIN verses v ON v.id = e.verse_id
		JOIN translations t ON t.id = v.translation_id
		JOIN chapters c ON c.id = v.chapter_id
		JOIN books b ON b.id = c.book_id
		WHERE ($1 = '' OR t.abbreviation = $1)
		ORDER BY t.abbreviation, b.canon_order, c.number, v.number
	`, translation)
	if err != nil {
		return fmt.Errorf("query embeddings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var verseID, abbreviation string
		var vec pgvector.Vector
		if err := rows.Scan(&verseID, &abbreviation, &vec); err != nil {
			return fmt.Errorf("scan embedding: %w", err)
		}
		if err := fn(verseID, abbreviation, vec.Slice()); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate embeddings: %w", err)
	}
	return nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}
