package types

import "errors"

// Standard errors returned by the maintenance tools.
var (
	ErrDatabaseNotFound = errors.New("database file not found")
	ErrNotADatabaseFile = errors.New("database path is a directory")
	ErrCancelled        = errors.New("operation cancelled")
)
