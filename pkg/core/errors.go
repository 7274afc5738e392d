package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned when an identifier or version number does
	// not resolve to anything.
	ErrNotFound = errors.New("note not found")

	// ErrAmbiguous is returned when an operation requiring a unique match
	// resolves to more than one note.
	ErrAmbiguous = errors.New("identifier matches multiple notes")

	// ErrNoPreviousVersion is returned by rollback when there is nothing
	// before version 1 to roll back to.
	ErrNoPreviousVersion = errors.New("no previous version to roll back to")
)
