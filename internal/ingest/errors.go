package ingest

import "errors"

// Fatal errors abort the whole run.
var (
	ErrSourceUnavailable    = errors.New("source unavailable")
	ErrMalformedSource      = errors.New("malformed source")
	ErrRunAlreadyInProgress = errors.New("ingestion run already in progress")
	ErrTranslationNotFound  = errors.New("translation not found")
	ErrStorageUnavailable   = errors.New("storage unavailable")
)

// Local errors skip one book; the run continues.
var (
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateTarget = errors.New("canonical book already loaded in this run")
	ErrUnmappedBook    = errors.New("book not in reconciliation map")
)
