package core

import "errors"

// Errors returned by Repository implementations. The Store never hands them
// to its callers; it turns them into an Outcome.
var (
	// ErrNotFound means there is no persisted state yet.
	ErrNotFound = errors.New("annotations file not found")
	// ErrCorrupt means persisted state exists but cannot be decoded.
	ErrCorrupt = errors.New("annotations file is corrupt")
)
