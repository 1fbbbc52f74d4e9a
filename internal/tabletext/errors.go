package tabletext

import "errors"

var (
	// ErrMalformed indicates a line that is not "<size>, <index>".
	ErrMalformed = errors.New("tabletext: malformed record")

	// ErrUnsupportedEncoding indicates an unknown encoding name.
	ErrUnsupportedEncoding = errors.New("tabletext: unsupported encoding")
)
