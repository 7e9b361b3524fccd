package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/verbum-domini-api/internal/repository"
)

// AcquireLock records runID as the holder of the named lock. A holder that
// started more than staleAfter ago is evicted; staleAfter <= 0 never evicts.
func (s *Store) AcquireLock(ctx context.Context, name, runID string, staleAfter time.Duration) (bool, error) {
	acquired := false
	err := s.withTx(ctx, func(tx *Store) error {
		var holder struct {
			RunID     string    `db:"run_id"`
			StartedAt time.Time `db:"started_at"`
		}
		err := tx.get(ctx, &holder, `SELECT run_id, started_at FROM ingestion_locks WHERE lock_name = ?`, name)
		switch {
		case err == nil:
			if staleAfter <= 0 || tx.now().Sub(holder.StartedAt) < staleAfter {
				return nil
			}
			if _, err := tx.exec(ctx, `DELETE FROM ingestion_locks WHERE lock_name = ? AND run_id = ?`, name, holder.RunID); err != nil {
				return fmt.Errorf("evict stale lock %s: %w", name, err)
			}
		case !errors.Is(notFound(err), repository.ErrNotFound):
			return fmt.Errorf("read lock %s: %w", name, err)
		}

		n, err := tx.exec(ctx, `
			INSERT INTO ingestion_locks (lock_name, run_id, started_at)
			VALUES (?, ?, ?)
			ON CONFLICT (lock_name) DO NOTHING`,
			name, runID, tx.timestamp())
		if err != nil {
			return fmt.Errorf("insert lock %s: %w", name, err)
		}
		acquired = n == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return acquired, nil
}

// ReleaseLock removes the lock if runID still holds it
func (s *Store) ReleaseLock(ctx context.Context, name, runID string) error {
	if _, err := s.exec(ctx, `DELETE FROM ingestion_locks WHERE lock_name = ? AND run_id = ?`, name, runID); err != nil {
		return fmt.Errorf("release lock %s: %w", name, err)
	}
	return nil
}
