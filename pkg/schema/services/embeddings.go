package services

import (
	"context"
	"fmt"
	"io"

	"github.com/verbum-domini-api/pkg/schema/config"
)

// EmbeddingsService handles text embedding operations using a pluggable backend
type EmbeddingsService struct {
	embedder Embedder
}

// NewEmbeddingsService builds the backend named by cfg.EmbeddingProvider.
// The caller owns the service and must Close it.
func NewEmbeddingsService(ctx context.Context, cfg *config.Config) (*EmbeddingsService, error) {
	var embedder Embedder
	switch cfg.EmbeddingProvider {
	case "vertex":
		vertex, err := NewVertexEmbedder(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Vertex AI embedder: %w", err)
		}
		embedder = vertex
	case "custom", "":
		embedder = NewCustomEmbedder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
	}
	return NewEmbeddingsServiceWith(embedder), nil
}

// NewEmbeddingsServiceWith wraps an existing embedder
func NewEmbeddingsServiceWith(embedder Embedder) *EmbeddingsService {
	return &EmbeddingsService{embedder: embedder}
}

// EmbedQuery embeds a query for retrieval
func (s *EmbeddingsService) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return s.embedder.Embed(ctx, query, TaskTypeQuery)
}

// EmbedVerse embeds a verse as a document for retrieval
func (s *EmbeddingsService) EmbedVerse(ctx context.Context, text string) ([]float64, error) {
	return s.embedder.Embed(ctx, text, TaskTypeDocument)
}

// EmbedVerses embeds verse texts as documents, index-aligned with texts
func (s *EmbeddingsService) EmbedVerses(ctx context.Context, texts []string) ([][]float64, error) {
	return s.embedder.EmbedBatch(ctx, texts, TaskTypeDocument)
}

// Close releases the backend's client, if it holds one
func (s *EmbeddingsService) Close() error {
	if closer, ok := s.embedder.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
