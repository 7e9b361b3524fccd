// Package ingest loads an external translation into the canonical catalog.
//
// A run fetches the whole source document, reconciles each external book
// name against the canon and loads that book's chapters and verses in one
// transaction. Fetch and parse failures abort the run before anything is
// written; a book that cannot be resolved is skipped with a warning.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/models"
	"github.com/verbum-domini-api/internal/reconcile"
	"github.com/verbum-domini-api/internal/repository"
)

// Store is the storage a run needs
type Store interface {
	repository.TxCatalog
	repository.LockRepository
}

// Config controls one runner
type Config struct {
	// Translation is the abbreviation the verses are loaded under
	Translation string
	Map         *reconcile.Map
	Retry       Retry
	// LockTTL is how old a lock must be before it is treated as abandoned
	LockTTL time.Duration
}

// SkippedBook records an external book that was not loaded
type SkippedBook struct {
	External  string
	Canonical string
	Err       error
}

// Report summarizes a run
type Report struct {
	RunID          string
	Translation    string
	Books          int
	Chapters       int
	VersesInserted int
	Skipped        []SkippedBook
	Duration       time.Duration
}

// Runner executes ingestion runs
type Runner struct {
	store  Store
	source Source
	cfg    Config
	logger *zap.Logger
}

// NewRunner creates a runner. A nil map resolves every name to itself.
func NewRunner(store Store, source Source, cfg Config, logger *zap.Logger) (*Runner, error) {
	if cfg.Translation == "" {
		return nil, fmt.Errorf("translation abbreviation is required")
	}
	if cfg.Map == nil {
		m, err := reconcile.New(nil, reconcile.ModeOpen)
		if err != nil {
			return nil, err
		}
		cfg.Map = m
	}
	if cfg.Retry.Attempts == 0 {
		cfg.Retry = DefaultRetry
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{store: store, source: source, cfg: cfg, logger: logger}, nil
}

// LockName is the advisory lock held while a translation is being ingested
func LockName(translation string) string {
	return "ingest:" + translation
}

// Run performs one ingestion. On a fatal error the partial report is
// returned with the error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString(), Translation: r.cfg.Translation, Skipped: []SkippedBook{}}
	defer func() { report.Duration = time.Since(start) }()
	log := r.logger.With(zap.String("run_id", report.RunID), zap.String("translation", r.cfg.Translation))

	lock := LockName(r.cfg.Translation)
	acquired, err := r.store.AcquireLock(ctx, lock, report.RunID, r.cfg.LockTTL)
	if err != nil {
		return report, fmt.Errorf("%w: acquire lock: %v", ErrStorageUnavailable, err)
	}
	if !acquired {
		return report, fmt.Errorf("%w: %s", ErrRunAlreadyInProgress, lock)
	}
	defer func() {
		if err := r.store.ReleaseLock(context.WithoutCancel(ctx), lock, report.RunID); err != nil {
			log.Warn("Failed to release ingestion lock", zap.String("lock", lock), zap.Error(err))
		}
	}()

	log.Info("Starting ingestion")

	translation, err := r.store.GetTranslationByAbbreviation(ctx, r.cfg.Translation)
	if errors.Is(err, repository.ErrNotFound) {
		return report, fmt.Errorf("%w: %s (run seed first)", ErrTranslationNotFound, r.cfg.Translation)
	}
	if err != nil {
		return report, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	log.Debug("Fetching source")
	doc, err := r.source.Fetch(ctx)
	if err != nil {
		return report, err
	}
	log.Info("Parsed source", zap.Int("books", len(doc.Books)))

	loaded := make(map[string]string, len(doc.Books))
	for _, sb := range doc.Books {
		canonical, ok := r.cfg.Map.Lookup(sb.Name)
		if !ok {
			r.skip(log, report, sb.Name, "", ErrUnmappedBook)
			continue
		}
		if prev, dup := loaded[canonical]; dup {
			r.skip(log, report, sb.Name, canonical, fmt.Errorf("%w: already loaded from %q", ErrDuplicateTarget, prev))
			continue
		}

		book, err := r.findBook(ctx, canonical)
		if errors.Is(err, ErrBookNotFound) {
			r.skip(log, report, sb.Name, canonical, err)
			continue
		}
		if err != nil {
			return report, err
		}
		loaded[canonical] = sb.Name

		chapters, inserted, err := r.loadBook(ctx, log, translation, book, sb)
		if err != nil {
			return report, err
		}
		report.Books++
		report.Chapters += chapters
		report.VersesInserted += inserted

		log.Info("Loaded book",
			zap.String("book", book.Name),
			zap.String("external", sb.Name),
			zap.Int("chapters", chapters),
			zap.Int("inserted", inserted))
	}

	log.Info("Ingestion complete",
		zap.Int("books", report.Books),
		zap.Int("chapters", report.Chapters),
		zap.String("verses_inserted", humanize.Comma(int64(report.VersesInserted))),
		zap.Int("skipped", len(report.Skipped)),
		zap.Duration("duration", time.Since(start)))
	return report, nil
}

func (r *Runner) skip(log *zap.Logger, report *Report, external, canonical string, err error) {
	report.Skipped = append(report.Skipped, SkippedBook{External: external, Canonical: canonical, Err: err})
	log.Warn("Skipping book",
		zap.String("external", external),
		zap.String("canonical", canonical),
		zap.String("reason", err.Error()))
}

func (r *Runner) findBook(ctx context.Context, canonical string) (*models.Book, error) {
	var book *models.Book
	err := r.cfg.Retry.Do(ctx, func(int) error {
		b, err := r.store.FindBookByName(ctx, canonical)
		if errors.Is(err, repository.ErrNotFound) {
			return permanent(fmt.Errorf("%w: %q", ErrBookNotFound, canonical))
		}
		if err != nil {
			return retryable(err)
		}
		book = b
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: find book %q: %v", ErrStorageUnavailable, canonical, err)
	}
	return book, nil
}

// retryable marks every error other than a transient storage failure as permanent
func retryable(err error) error {
	if err == nil || errors.Is(err, repository.ErrTransient) {
		return err
	}
	return permanent(err)
}

// loadBook writes every chapter of sb in one transaction, retrying the whole
// transaction on failure.
func (r *Runner) loadBook(ctx context.Context, log *zap.Logger, tr *models.Translation, book *models.Book, sb SourceBook) (int, int, error) {
	var chapters, inserted int
	err := r.cfg.Retry.Do(ctx, func(attempt int) error {
		chapters, inserted = 0, 0
		err := r.store.InTx(ctx, func(c repository.Catalog) error {
			for _, sc := range sb.Chapters {
				ch, err := c.UpsertChapter(ctx, book.ID, sc.Number)
				if err != nil {
					return err
				}
				n, err := c.LoadVerses(ctx, repository.VerseBatch{
					TranslationID: tr.ID,
					ChapterID:     ch.ID,
					BookName:      book.Name,
					ChapterNumber: ch.Number,
					Entries:       sc.Entries(),
				})
				if err != nil {
					return err
				}
				chapters++
				inserted += n
			}
			return nil
		})
		if err != nil {
			log.Warn("Book load failed",
				zap.String("book", book.Name),
				zap.Int("attempt", attempt),
				zap.Error(err))
		}
		return retryable(err)
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: load %s: %v", ErrStorageUnavailable, book.Name, err)
	}
	return chapters, inserted, nil
}
