package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrModelUnavailable indicates the embedding model failed to
	// initialize or run. Search cannot proceed without embeddings; there is
	// no keyword fallback. Callers present this as "search unavailable",
	// which is distinct from an empty result set.
	ErrModelUnavailable = errors.New("embedding model unavailable")

	// ErrEmptyIndex indicates a project has no documents, or none of its
	// documents contain extractable text. Recoverable: callers present
	// "nothing to search yet".
	ErrEmptyIndex = errors.New("no documents to index")

	// ErrInvalidQuery indicates an empty or whitespace-only query string.
	// Recoverable: callers prompt for input instead of searching.
	ErrInvalidQuery = errors.New("empty query")
)
