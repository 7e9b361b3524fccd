// Package export writes a stored translation back out in the source feed's
// shape, one JSON object per line and one book per object:
//
//	{"Genesis":{"1":{"1":"In the beginning..."}}}
package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/verbum-domini-api/internal/repository"
)

// Summary counts what was written
type Summary struct {
	Books    int
	Chapters int
	Verses   int
}

// WriteTranslation writes every book of translation that has verses, in canon order
func WriteTranslation(ctx context.Context, w io.Writer, catalog repository.Catalog, translation string) (*Summary, error) {
	tr, err := catalog.GetTranslationByAbbreviation(ctx, translation)
	if err != nil {
		return nil, fmt.Errorf("get translation %s: %w", translation, err)
	}
	books, err := catalog.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	buf := bufio.NewWriter(w)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	summary := &Summary{}

	for _, book := range books {
		verses, err := catalog.ListBookVerses(ctx, tr.ID, book.ID)
		if err != nil {
			return summary, err
		}
		if len(verses) == 0 {
			continue
		}

		// encoding/json orders map keys lexically; Parse sorts them numerically on the way back in
		chapters := make(map[string]map[string]string)
		for _, v := range verses {
			key := strconv.Itoa(v.ChapterNumber)
			if chapters[key] == nil {
				chapters[key] = make(map[string]string)
				summary.Chapters++
			}
			chapters[key][strconv.Itoa(v.Number)] = v.Text
		}

		if err := encoder.Encode(map[string]interface{}{book.Name: chapters}); err != nil {
			return summary, fmt.Errorf("write book %s: %w", book.Name, err)
		}
		summary.Books++
		summary.Verses += len(verses)
	}

	if err := buf.Flush(); err != nil {
		return summary, fmt.Errorf("flush export: %w", err)
	}
	return summary, nil
}
