package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
	"github.com/verbum-domini-api/internal/testutil"
)

// memEmbeddings keeps embeddings in memory over a fixed verse list
type memEmbeddings struct {
	verses []models.Verse
	stored map[string][]float64
	calls  int
}

func (m *memEmbeddings) VersesWithoutEmbedding(_ context.Context, translationID string, limit int) ([]models.Verse, error) {
	out := []models.Verse{}
	for _, v := range m.verses {
		if _, ok := m.stored[v.ID]; ok || v.TranslationID != translationID {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *memEmbeddings) StoreEmbeddings(_ context.Context, embeddings map[string][]float64) error {
	m.calls++
	for id, e := range embeddings {
		m.stored[id] = e
	}
	return nil
}

type lengthEmbedder struct {
	short bool
	err   error
}

func (l lengthEmbedder) EmbedVerses(_ context.Context, texts []string) ([][]float64, error) {
	if l.err != nil {
		return nil, l.err
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		out[i] = []float64{float64(len(text))}
	}
	if l.short {
		out = out[:len(out)-1]
	}
	return out, nil
}

func TestEmbedService_EmbedTranslation(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	dr := testutil.CreateTestTranslation(t, store, "DR")

	mem := &memEmbeddings{stored: map[string][]float64{}}
	for i := 1; i <= 5; i++ {
		mem.verses = append(mem.verses, models.Verse{ID: string(rune('a' + i)), TranslationID: dr.ID, Text: "verse"})
	}
	mem.verses = append(mem.verses, models.Verse{ID: "other", TranslationID: "elsewhere", Text: "skip"})

	svc := NewEmbedService(store, mem, lengthEmbedder{}, nil)
	n, err := svc.EmbedTranslation(ctx, "DR", 2)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 3, mem.calls)
	assert.Len(t, mem.stored, 5)
	assert.Equal(t, []float64{5}, mem.stored["b"])

	again, err := svc.EmbedTranslation(ctx, "DR", 2)
	require.NoError(t, err)
	assert.Zero(t, again)
}

func TestEmbedService_Errors(t *testing.T) {
	ctx := context.Background()
	store := testutil.SetupTestStore(t)
	dr := testutil.CreateTestTranslation(t, store, "DR")
	mem := &memEmbeddings{
		verses: []models.Verse{{ID: "a", TranslationID: dr.ID, Text: "x"}, {ID: "b", TranslationID: dr.ID, Text: "y"}},
		stored: map[string][]float64{},
	}

	_, err := NewEmbedService(store, mem, lengthEmbedder{}, nil).EmbedTranslation(ctx, "KJV", 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = NewEmbedService(store, mem, lengthEmbedder{short: true}, nil).EmbedTranslation(ctx, "DR", 10)
	assert.ErrorContains(t, err, "1 vectors for 2 verses")

	boom := errors.New("quota exceeded")
	_, err = NewEmbedService(store, mem, lengthEmbedder{err: boom}, nil).EmbedTranslation(ctx, "DR", 10)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mem.stored)
}
