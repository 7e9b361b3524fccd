package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/verbum-domini-api/internal/reconcile"
	"github.com/verbum-domini-api/internal/repository"
	"github.com/verbum-domini-api/internal/repository/sqlstore"
	"github.com/verbum-domini-api/internal/testutil"
)

type staticSource struct {
	doc *Document
	err error
}

func (s staticSource) Fetch(context.Context) (*Document, error) {
	return s.doc, s.err
}

func book(name string, chapters ...SourceChapter) SourceBook {
	return SourceBook{Name: name, Chapters: chapters}
}

func chapter(number int, texts ...string) SourceChapter {
	ch := SourceChapter{Number: number}
	for i, text := range texts {
		ch.Verses = append(ch.Verses, SourceVerse{Number: i + 1, Text: text})
	}
	return ch
}

func seededStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	store := testutil.SetupTestStore(t)
	testutil.SeedCanon(t, store)
	testutil.CreateTestTranslation(t, store, "DR")
	return store
}

func douayMap(t *testing.T) *reconcile.Map {
	t.Helper()
	_, m, err := reconcile.Load("douay-rheims")
	require.NoError(t, err)
	return m
}

func newRunner(t *testing.T, store Store, src Source, m *reconcile.Map) *Runner {
	t.Helper()
	r, err := NewRunner(store, src, Config{Translation: "DR", Map: m, Retry: fastRetry, LockTTL: time.Hour}, zap.NewNop())
	require.NoError(t, err)
	return r
}

func verseTexts(t *testing.T, store *sqlstore.Store, bookName string, chapterNumber int) []string {
	t.Helper()
	ctx := context.Background()

	tr, err := store.GetTranslationByAbbreviation(ctx, "DR")
	require.NoError(t, err)
	b, err := store.FindBookByName(ctx, bookName)
	require.NoError(t, err)
	ch, err := store.GetChapter(ctx, b.ID, chapterNumber)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	require.NoError(t, err)
	verses, err := store.ListChapterVerses(ctx, tr.ID, ch.ID)
	require.NoError(t, err)

	var texts []string
	for _, v := range verses {
		texts = append(texts, v.Text)
	}
	return texts
}

func TestRun_ReconcilesDouayNames(t *testing.T) {
	store := seededStore(t)
	doc := &Document{Books: []SourceBook{
		book("Josue", chapter(1, "After the death of Moses")),
		book("1 Kings", chapter(1, "There was a man of Ramathaimsophim")),
		book("3 Kings", chapter(1, "Now king David was old")),
	}}

	report, err := newRunner(t, store, staticSource{doc: doc}, douayMap(t)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Books)
	assert.Equal(t, 3, report.Chapters)
	assert.Equal(t, 3, report.VersesInserted)
	assert.Empty(t, report.Skipped)

	assert.Equal(t, []string{"After the death of Moses"}, verseTexts(t, store, "Joshua", 1))
	assert.Equal(t, []string{"There was a man of Ramathaimsophim"}, verseTexts(t, store, "1 Samuel", 1))
	assert.Equal(t, []string{"Now king David was old"}, verseTexts(t, store, "1 Kings", 1))
}

func TestRun_Idempotent(t *testing.T) {
	store := seededStore(t)
	doc := &Document{Books: []SourceBook{
		book("Genesis", chapter(1, "A", "B", "C"), chapter(2, "D")),
	}}
	runner := newRunner(t, store, staticSource{doc: doc}, douayMap(t))

	first, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, first.VersesInserted)

	second, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.VersesInserted)
	assert.Equal(t, 2, second.Chapters)
	assert.NotEqual(t, first.RunID, second.RunID)

	tr, err := store.GetTranslationByAbbreviation(context.Background(), "DR")
	require.NoError(t, err)
	count, err := store.CountVerses(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRun_DoesNotOverwriteExistingVerses(t *testing.T) {
	store := seededStore(t)
	runner := newRunner(t, store, staticSource{doc: &Document{Books: []SourceBook{
		book("Genesis", chapter(1, "A", "B")),
	}}}, nil)
	_, err := runner.Run(context.Background())
	require.NoError(t, err)

	runner = newRunner(t, store, staticSource{doc: &Document{Books: []SourceBook{
		book("Genesis", chapter(1, "X", "Y", "C")),
	}}}, nil)
	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.VersesInserted)

	assert.Equal(t, []string{"A", "B", "C"}, verseTexts(t, store, "Genesis", 1))
}

func TestRun_SkipsUnknownBook(t *testing.T) {
	store := seededStore(t)
	doc := &Document{Books: []SourceBook{
		book("Prayer of Manasses", chapter(1, "O Lord almighty")),
		book("Ruth", chapter(1, "In the days of one of the judges")),
	}}

	report, err := newRunner(t, store, staticSource{doc: doc}, douayMap(t)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Books)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Prayer of Manasses", report.Skipped[0].External)
	assert.ErrorIs(t, report.Skipped[0].Err, ErrBookNotFound)
	assert.Equal(t, []string{"In the days of one of the judges"}, verseTexts(t, store, "Ruth", 1))
}

func TestRun_SkipsDuplicateTarget(t *testing.T) {
	store := seededStore(t)
	doc := &Document{Books: []SourceBook{
		book("Josue", chapter(1, "from Josue")),
		book("Joshua", chapter(1, "from Joshua")),
	}}

	report, err := newRunner(t, store, staticSource{doc: doc}, douayMap(t)).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "Joshua", report.Skipped[0].External)
	assert.Equal(t, "Joshua", report.Skipped[0].Canonical)
	assert.ErrorIs(t, report.Skipped[0].Err, ErrDuplicateTarget)
	assert.Equal(t, []string{"from Josue"}, verseTexts(t, store, "Joshua", 1))
}

func TestRun_ClosedMapSkipsUnmapped(t *testing.T) {
	store := seededStore(t)
	m, err := reconcile.New(map[string]string{"Josue": "Joshua"}, reconcile.ModeClosed)
	require.NoError(t, err)

	doc := &Document{Books: []SourceBook{
		book("Josue", chapter(1, "a")),
		book("Genesis", chapter(1, "b")),
	}}
	report, err := newRunner(t, store, staticSource{doc: doc}, m).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Books)
	require.Len(t, report.Skipped, 1)
	assert.ErrorIs(t, report.Skipped[0].Err, ErrUnmappedBook)
	assert.Nil(t, verseTexts(t, store, "Genesis", 1))
}

func TestRun_ServerErrorWritesNothing(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := sqlstore.New(conn)
	testutil.SeedCanon(t, store)
	testutil.CreateTestTranslation(t, store, "DR")

	src, calls, stop := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer stop()

	_, err := newRunner(t, store, src, douayMap(t)).Run(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 0, testutil.CountRows(t, conn, "verses"))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "chapters"))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "ingestion_locks"), "lock released after failure")
}

func TestRun_LockHeld(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	ok, err := store.AcquireLock(ctx, LockName("DR"), "other-run", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	doc := &Document{Books: []SourceBook{book("Genesis", chapter(1, "A"))}}
	_, err = newRunner(t, store, staticSource{doc: doc}, nil).Run(ctx)
	assert.ErrorIs(t, err, ErrRunAlreadyInProgress)
	assert.Nil(t, verseTexts(t, store, "Genesis", 1))

	require.NoError(t, store.ReleaseLock(ctx, LockName("DR"), "other-run"))
	_, err = newRunner(t, store, staticSource{doc: doc}, nil).Run(ctx)
	require.NoError(t, err)
}

func TestRun_MissingTranslation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := sqlstore.New(conn)
	testutil.SeedCanon(t, store)

	doc := &Document{Books: []SourceBook{book("Genesis", chapter(1, "A"))}}
	_, err := newRunner(t, store, staticSource{doc: doc}, nil).Run(context.Background())
	assert.ErrorIs(t, err, ErrTranslationNotFound)
	assert.Equal(t, 0, testutil.CountRows(t, conn, "ingestion_locks"))
}

func TestRun_MalformedSourceIsFatal(t *testing.T) {
	store := seededStore(t)
	_, err := newRunner(t, store, staticSource{err: ErrMalformedSource}, nil).Run(context.Background())
	assert.ErrorIs(t, err, ErrMalformedSource)
}

// failingStore fails every verse load with err
type failingStore struct {
	*sqlstore.Store
	err      error
	attempts int
}

func (s *failingStore) InTx(ctx context.Context, fn func(repository.Catalog) error) error {
	return s.Store.InTx(ctx, func(c repository.Catalog) error {
		return fn(failingCatalog{Catalog: c, owner: s})
	})
}

type failingCatalog struct {
	repository.Catalog
	owner *failingStore
}

func (c failingCatalog) LoadVerses(context.Context, repository.VerseBatch) (int, error) {
	c.owner.attempts++
	return 0, c.owner.err
}

func TestRun_StorageFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		attempts int
	}{
		{"transient error retried", fmt.Errorf("%w: connection reset by peer", repository.ErrTransient), 3},
		{"constraint error not retried", errors.New("UNIQUE constraint failed: verses.id"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := testutil.SetupTestDB(t)
			base := sqlstore.New(conn)
			testutil.SeedCanon(t, base)
			testutil.CreateTestTranslation(t, base, "DR")
			store := &failingStore{Store: base, err: tt.err}

			doc := &Document{Books: []SourceBook{
				book("Genesis", chapter(1, "A")),
				book("Exodus", chapter(1, "B")),
			}}
			report, err := newRunner(t, store, staticSource{doc: doc}, nil).Run(context.Background())
			assert.ErrorIs(t, err, ErrStorageUnavailable)
			assert.Equal(t, tt.attempts, store.attempts)
			assert.Equal(t, 0, report.Books)
			assert.Equal(t, 0, testutil.CountRows(t, conn, "chapters"), "in-flight book rolled back")
			assert.Equal(t, 0, testutil.CountRows(t, conn, "ingestion_locks"))
		})
	}
}

type slowSource struct {
	delay time.Duration
}

func (s slowSource) Fetch(context.Context) (*Document, error) {
	time.Sleep(s.delay)
	return nil, ErrSourceUnavailable
}

func TestRun_ReportsDurationOnFatalError(t *testing.T) {
	store := seededStore(t)
	report, err := newRunner(t, store, slowSource{delay: 5 * time.Millisecond}, nil).Run(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	require.NotNil(t, report)
	assert.GreaterOrEqual(t, report.Duration, 5*time.Millisecond)
}

func TestNewRunner_RequiresTranslation(t *testing.T) {
	_, err := NewRunner(nil, nil, Config{}, nil)
	assert.Error(t, err)
}
