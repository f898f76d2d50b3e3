package model

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the store and engine. Callers discriminate
// with errors.Is.
var (
	// ErrNotFound indicates an operation referenced a nonexistent
	// tracker id or category title.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTitle indicates a category creation or rename
	// collided with an existing title.
	ErrDuplicateTitle = errors.New("category title already exists")

	// ErrEmptyTitle indicates a tracker or category title was blank.
	ErrEmptyTitle = errors.New("title must not be empty")
)

// DecodeError wraps a per-row reconstruction failure during a bulk
// fetch. Such rows are logged and skipped, never fatal to the fetch.
type DecodeError struct {
	Entity string
	ID     string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s %s: %v", e.Entity, e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
