package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is inactive.
	ErrNotFound = errors.New("record not found")

	// ErrDegraded is returned by the in-memory catalog stand-in for any
	// write: degraded mode serves reads only.
	ErrDegraded = errors.New("store degraded: writes unavailable")

	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)
