// Package seed loads the canon, the known translations and a handful of
// hand-curated sample verses.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/canon"
	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/repository"
)

// Summary counts what a seed run wrote
type Summary struct {
	Translations int
	Books        int
	Verses       int
}

// Run seeds the catalog in one transaction. It is safe to repeat: existing
// translations are left alone, books are refreshed and sample verse text
// is overwritten.
func Run(ctx context.Context, store repository.TxCatalog, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	books := canon.Books()
	if err := canon.Validate(books); err != nil {
		return nil, fmt.Errorf("validate canon: %w", err)
	}

	summary := &Summary{}
	err := store.InTx(ctx, func(c repository.Catalog) error {
		translations := make(map[string]*models.Translation, len(Translations))
		for _, t := range Translations {
			rec, err := c.UpsertTranslation(ctx, t)
			if err != nil {
				return err
			}
			translations[rec.Abbreviation] = rec
			summary.Translations++
		}

		stored := make(map[string]*models.Book, len(books))
		for _, d := range books {
			rec, err := c.UpsertBook(ctx, d)
			if err != nil {
				return err
			}
			stored[d.Name] = rec
			summary.Books++
		}

		for _, sv := range SampleVerses {
			tr, ok := translations[sv.Translation]
			if !ok {
				return fmt.Errorf("sample verse references unknown translation %s", sv.Translation)
			}
			b, ok := stored[sv.Book]
			if !ok {
				return fmt.Errorf("sample verse references unknown book %s", sv.Book)
			}
			ch, err := c.UpsertChapter(ctx, b.ID, sv.Chapter)
			if err != nil {
				return err
			}
			if _, err := c.UpsertVerse(ctx, models.Verse{
				TranslationID: tr.ID,
				ChapterID:     ch.ID,
				Number:        sv.Number,
				Text:          sv.Text,
				BookName:      b.Name,
				ChapterNumber: ch.Number,
			}); err != nil {
				return err
			}
			summary.Verses++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("Seed complete",
		zap.Int("translations", summary.Translations),
		zap.Int("books", summary.Books),
		zap.Int("sample_verses", summary.Verses))
	return summary, nil
}
