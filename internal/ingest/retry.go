package ingest

import (
	"context"
	"errors"
	"time"
)

// Retry is a bounded exponential backoff policy
type Retry struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry is three attempts starting at 500ms
var DefaultRetry = Retry{Attempts: 3, BaseDelay: 500 * time.Millisecond}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// permanent marks err as not worth retrying
func permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do calls op until it succeeds, returns a permanent error, or the attempt
// budget is spent. It returns the last error seen.
func (r Retry) Do(ctx context.Context, op func(attempt int) error) error {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = op(attempt)
		if err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}
	return err
}

func (r Retry) backoff(attempt int) time.Duration {
	if r.BaseDelay <= 0 {
		return 0
	}
	return r.BaseDelay << (attempt - 1)
}
