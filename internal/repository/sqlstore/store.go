// Package sqlstore implements the repository interfaces on sqlx for both
// PostgreSQL and SQLite. Queries are written with ? placeholders and rebound
// for the active driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/verbum-domini-api/internal/repository"
)

// Store is the SQL-backed catalog, annotation and lock repository
type Store struct {
	db  *sqlx.DB // nil while bound to a transaction
	q   sqlx.ExtContext
	now func() time.Time
}

var (
	_ repository.TxCatalog            = (*Store)(nil)
	_ repository.LockRepository       = (*Store)(nil)
	_ repository.AnnotationRepository = (*Store)(nil)
)

// New creates a store over an open database handle
func New(db *sqlx.DB) *Store {
	return &Store{db: db, q: db, now: time.Now}
}

// WithClock replaces the time source used for timestamps
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// DB returns the underlying handle, or nil inside a transaction
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// InTx runs fn against a store bound to one transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. Nested calls reuse
// the outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(repository.Catalog) error) error {
	return s.withTx(ctx, func(tx *Store) error { return fn(tx) })
}

func (s *Store) withTx(ctx context.Context, fn func(*Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classify(err))
	}
	defer tx.Rollback()

	if err := fn(&Store{q: tx, now: s.now}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", classify(err))
	}
	return nil
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Store) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return classify(sqlx.GetContext(ctx, s.q, dest, s.q.Rebind(query), args...))
}

func (s *Store) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return classify(sqlx.SelectContext(ctx, s.q, dest, s.q.Rebind(query), args...))
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := s.q.ExecContext(ctx, s.q.Rebind(query), args...)
	if err != nil {
		return 0, classify(err)
	}
	n, err := res.RowsAffected()
	return n, classify(err)
}

// notFound maps sql.ErrNoRows to repository.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
