package export

import "errors"

var (
	// ErrWrite indicates the table could not be created, written or synced.
	ErrWrite = errors.New("export: write failed")

	// ErrMismatch indicates a table that does not match the size-class mapping.
	ErrMismatch = errors.New("export: table does not match mapper")
)
