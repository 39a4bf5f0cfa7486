package mktemp

import "errors"

var (
	// ErrDirUnavailable indicates the requested or default parent directory
	// cannot be resolved or is not a directory.
	ErrDirUnavailable = errors.New("parent directory unavailable")

	// ErrCollisionExhausted indicates every generated candidate path already
	// existed within the retry budget.
	ErrCollisionExhausted = errors.New("no unused temp path found")

	// ErrCreationFailed indicates the underlying create call failed for a
	// reason other than a name collision.
	ErrCreationFailed = errors.New("temp path creation failed")

	// ErrCleanupFailed indicates the underlying remove call failed while
	// closing the handle.
	ErrCleanupFailed = errors.New("temp path cleanup failed")
)
