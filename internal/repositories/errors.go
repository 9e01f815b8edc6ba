package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Services match
// on these with errors.Is and translate them into caller-facing failures.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a uniqueness constraint rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
)
