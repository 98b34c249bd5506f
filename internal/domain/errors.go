package domain

import "errors"

var (
	// ErrValidation is returned when a required input is missing or blank.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate is returned when a bookmark with the same URL already exists.
	ErrDuplicate = errors.New("bookmark already exists")
	// ErrNotFound is returned when no bookmark matches the requested id.
	ErrNotFound = errors.New("bookmark not found")
	// ErrPersistence is returned when the collection could not be written.
	// The in-memory collection is left as it was before the call.
	ErrPersistence = errors.New("failed to persist bookmarks")
	// ErrCorruptBlob is returned when a stored collection cannot be decoded.
	ErrCorruptBlob = errors.New("stored collection is unreadable")
)
