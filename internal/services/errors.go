package services

import "errors"

var (
	// ErrInvalidInput is returned when a request value fails validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when an operation needs a user id and has none
	ErrUnauthorized = errors.New("unauthorized")
)
