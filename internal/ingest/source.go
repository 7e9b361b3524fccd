package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Document is a parsed external translation in source book order
type Document struct {
	Books []SourceBook
}

// SourceBook is one book under its external name
type SourceBook struct {
	Name     string
	Chapters []SourceChapter
}

// SourceChapter holds a chapter's verses sorted by number
type SourceChapter struct {
	Number int
	Verses []SourceVerse
}

// SourceVerse is one numbered verse of text
type SourceVerse struct {
	Number int
	Text   string
}

// Entries returns the chapter's verses keyed by number
func (c SourceChapter) Entries() map[int]string {
	entries := make(map[int]string, len(c.Verses))
	for _, v := range c.Verses {
		entries[v.Number] = v.Text
	}
	return entries
}

// Source yields the external translation document
type Source interface {
	Fetch(ctx context.Context) (*Document, error)
}

// HTTPSource fetches a {book: {chapter: {verse: text}}} JSON document with one GET
type HTTPSource struct {
	url    string
	client *http.Client
	retry  Retry
	logger *zap.Logger
}

// NewHTTPSource creates a source for url. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client, retry Retry, logger *zap.Logger) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPSource{url: url, client: client, retry: retry, logger: logger}
}

// Fetch downloads and parses the document. Transport errors and 5xx responses
// are retried; anything else fails at once.
func (s *HTTPSource) Fetch(ctx context.Context) (*Document, error) {
	var doc *Document
	err := s.retry.Do(ctx, func(attempt int) error {
		d, err := s.fetchOnce(ctx)
		if err != nil {
			var perm *permanentError
			if !errors.As(err, &perm) {
				s.logger.Warn("Source fetch failed",
					zap.String("url", s.url),
					zap.Int("attempt", attempt),
					zap.Error(err))
			}
			return err
		}
		doc = d
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrMalformedSource) || errors.Is(err, ErrSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.url, err)
	}
	return doc, nil
}

func (s *HTTPSource) fetchOnce(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, permanent(fmt.Errorf("%w: create request: %v", ErrSourceUnavailable, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("source returned %s", resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, permanent(fmt.Errorf("%w: %s returned %s", ErrSourceUnavailable, s.url, resp.Status))
	}

	doc, err := Parse(resp.Body)
	if err != nil {
		return nil, permanent(err)
	}
	return doc, nil
}

// Parse reads a {book: {chapter: {verse: text}}} document. Books keep their
// document order; chapters and verses are sorted by number.
func Parse(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	doc := &Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		name, ok := tok.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: invalid book name %v", ErrMalformedSource, tok)
		}

		var raw map[string]map[string]string
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: book %q: %v", ErrMalformedSource, name, err)
		}

		book, err := parseBook(name, raw)
		if err != nil {
			return nil, err
		}
		doc.Books = append(doc.Books, book)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: after document: %v", ErrMalformedSource, err)
		}
		return nil, fmt.Errorf("%w: unexpected %v after document", ErrMalformedSource, tok)
	}
	if len(doc.Books) == 0 {
		return nil, fmt.Errorf("%w: document has no books", ErrMalformedSource)
	}
	return doc, nil
}

func parseBook(name string, raw map[string]map[string]string) (SourceBook, error) {
	book := SourceBook{Name: name, Chapters: make([]SourceChapter, 0, len(raw))}
	chapterKeys := make(map[int]string, len(raw))
	for chKey, verses := range raw {
		chNum, err := positiveInt(chKey)
		if err != nil {
			return SourceBook{}, fmt.Errorf("%w: book %q chapter %q: %v", ErrMalformedSource, name, chKey, err)
		}
		if prev, dup := chapterKeys[chNum]; dup {
			a, b := ordered(prev, chKey)
			return SourceBook{}, fmt.Errorf("%w: book %q chapters %q and %q are both chapter %d", ErrMalformedSource, name, a, b, chNum)
		}
		chapterKeys[chNum] = chKey

		ch := SourceChapter{Number: chNum, Verses: make([]SourceVerse, 0, len(verses))}
		verseKeys := make(map[int]string, len(verses))
		for vKey, text := range verses {
			vNum, err := positiveInt(vKey)
			if err != nil {
				return SourceBook{}, fmt.Errorf("%w: book %q chapter %d verse %q: %v", ErrMalformedSource, name, chNum, vKey, err)
			}
			if prev, dup := verseKeys[vNum]; dup {
				a, b := ordered(prev, vKey)
				return SourceBook{}, fmt.Errorf("%w: book %q chapter %d verses %q and %q are both verse %d", ErrMalformedSource, name, chNum, a, b, vNum)
			}
			verseKeys[vNum] = vKey
			ch.Verses = append(ch.Verses, SourceVerse{Number: vNum, Text: text})
		}
		sort.Slice(ch.Verses, func(i, j int) bool { return ch.Verses[i].Number < ch.Verses[j].Number })
		book.Chapters = append(book.Chapters, ch)
	}
	sort.Slice(book.Chapters, func(i, j int) bool { return book.Chapters[i].Number < book.Chapters[j].Number })
	return book, nil
}

func ordered(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformedSource, want, tok)
	}
	return nil
}
