package domain

import "errors"

var (
	// ErrNotFound is returned on the read path when the requested resource
	// does not exist. Store mutations never return it; an absent id there is
	// a silent no-op.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides which login field was rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	// ErrGenerationFailed wraps description-generator failures. It is
	// non-fatal: the caller surfaces a notice and keeps the form draft.
	ErrGenerationFailed = errors.New("description generation failed")
	// ErrStaleRequest marks an async completion superseded by a newer call;
	// its result has been discarded.
	ErrStaleRequest = errors.New("request superseded")
)
