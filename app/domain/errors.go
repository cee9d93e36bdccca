package domain

import "errors"

// Sentinel errors shared across layers. The REST boundary maps these to
// HTTP statuses; repositories and usecases return them wrapped.
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
)
