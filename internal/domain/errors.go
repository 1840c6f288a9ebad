package domain

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned by stores when a unique key already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrMalformedReference marks a stored reference that cannot be coerced to an identifier.
	ErrMalformedReference = errors.New("malformed record reference")
)
