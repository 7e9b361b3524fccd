package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

// QueryEmbedder turns a search query into a vector
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float64, error)
}

// VectorSearchService handles semantic verse search over a vector backend
type VectorSearchService struct {
	vectorRepo repository.VectorSearchRepository
	embedder   QueryEmbedder
}

// NewVectorSearchService creates a new vector search service
func NewVectorSearchService(vectorRepo repository.VectorSearchRepository, embedder QueryEmbedder) *VectorSearchService {
	return &VectorSearchService{
		vectorRepo: vectorRepo,
		embedder:   embedder,
	}
}

// SearchVerses embeds a query and performs vector search
func (s *VectorSearchService) SearchVerses(ctx context.Context, query, translation string, topK int) ([]models.ScoredVerse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	embedding, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.vectorRepo.SearchVersesByEmbedding(ctx, embedding, translation, topK)
}

// SearchVersesCitations performs vector search and returns as citations
func (s *VectorSearchService) SearchVersesCitations(ctx context.Context, query, translation string, topK int) ([]models.Citation, error) {
	scoredVerses, err := s.SearchVerses(ctx, query, translation, topK)
	if err != nil {
		return nil, err
	}

	citations := make([]models.Citation, len(scoredVerses))
	for i, v := range scoredVerses {
		score := v.Score
		citations[i] = models.Citation{
			VerseID:        v.VerseID,
			Translation:    v.Translation,
			Text:           v.Text,
			Book:           v.Book,
			Chapter:        v.Chapter,
			Verse:          v.Verse,
			RelevanceScore: &score,
		}
	}
	return citations, nil
}
