package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/repository"
)

// DefaultEmbedBatchSize is the number of verses embedded per request
const DefaultEmbedBatchSize = 100

// VerseEmbedder turns verse texts into document vectors, index-aligned with texts
type VerseEmbedder interface {
	EmbedVerses(ctx context.Context, texts []string) ([][]float64, error)
}

// EmbedService fills in missing verse embeddings for a translation
type EmbedService struct {
	translations repository.TranslationRepository
	embeddings   repository.EmbeddingRepository
	embedder     VerseEmbedder
	logger       *zap.Logger
}

// NewEmbedService creates an embedding backfill service
func NewEmbedService(translations repository.TranslationRepository, embeddings repository.EmbeddingRepository, embedder VerseEmbedder, logger *zap.Logger) *EmbedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmbedService{
		translations: translations,
		embeddings:   embeddings,
		embedder:     embedder,
		logger:       logger,
	}
}

// EmbedTranslation embeds every verse of translation lacking an embedding,
// batchSize at a time, and returns the number embedded. Each batch is
// stored before the next is fetched, so an interrupted run resumes.
func (s *EmbedService) EmbedTranslation(ctx context.Context, translation string, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = DefaultEmbedBatchSize
	}

	tr, err := s.translations.GetTranslationByAbbreviation(ctx, translation)
	if err != nil {
		return 0, fmt.Errorf("get translation %s: %w", translation, err)
	}

	total := 0
	for {
		verses, err := s.embeddings.VersesWithoutEmbedding(ctx, tr.ID, batchSize)
		if err != nil {
			return total, err
		}
		if len(verses) == 0 {
			return total, nil
		}

		texts := make([]string, len(verses))
		for i, v := range verses {
			texts[i] = v.Text
		}
		vectors, err := s.embedder.EmbedVerses(ctx, texts)
		if err != nil {
			return total, fmt.Errorf("embed verses: %w", err)
		}
		if len(vectors) != len(verses) {
			return total, fmt.Errorf("embedder returned %d vectors for %d verses", len(vectors), len(verses))
		}

		batch := make(map[string][]float64, len(verses))
		for i, v := range verses {
			batch[v.ID] = vectors[i]
		}
		if err := s.embeddings.StoreEmbeddings(ctx, batch); err != nil {
			return total, err
		}

		total += len(verses)
		s.logger.Debug("Embedded batch",
			zap.String("translation", tr.Abbreviation),
			zap.Int("batch", len(verses)),
			zap.Int("total", total),
		)
	}
}
