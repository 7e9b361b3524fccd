package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/verbum-domini-api/internal/models"
)

const translationColumns = `id, abbreviation, name, language, copyright, is_public_domain`

// UpsertTranslation creates the translation by abbreviation. An existing row
// is returned unchanged.
func (s *Store) UpsertTranslation(ctx context.Context, t models.Translation) (*models.Translation, error) {
	if t.Abbreviation == "" {
		return nil, fmt.Errorf("upsert translation: abbreviation is required")
	}

	var out models.Translation
	err := s.get(ctx, &out, `
		INSERT INTO translations (id, abbreviation, name, language, copyright, is_public_domain)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (abbreviation) DO UPDATE SET abbreviation = excluded.abbreviation
		RETURNING `+translationColumns,
		uuid.NewString(), t.Abbreviation, t.Name, t.Language, t.Copyright, t.IsPublicDomain)
	if err != nil {
		return nil, fmt.Errorf("upsert translation %s: %w", t.Abbreviation, err)
	}
	return &out, nil
}

// GetTranslationByAbbreviation looks up a translation by exact abbreviation
func (s *Store) GetTranslationByAbbreviation(ctx context.Context, abbreviation string) (*models.Translation, error) {
	var out models.Translation
	err := s.get(ctx, &out, `SELECT `+translationColumns+` FROM translations WHERE abbreviation = ?`, abbreviation)
	if err != nil {
		return nil, fmt.Errorf("get translation %s: %w", abbreviation, notFound(err))
	}
	return &out, nil
}

// ListTranslations returns all translations ordered by abbreviation
func (s *Store) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	var out []models.Translation
	if err := s.selectAll(ctx, &out, `SELECT `+translationColumns+` FROM translations ORDER BY abbreviation`); err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	if out == nil {
		out = []models.Translation{}
	}
	return out, nil
}
