// Package export writes and verifies the size to class index table.
//
// The table has one line per size from sizeclass.MinSize to
// sizeclass.MaxSize, in ascending order and without a header:
//
//	1, 0
//	2, 0
//	...
//	3968, 79
//
// Callers must not export to the same path concurrently without their own
// serialization; the atomic rename only guarantees that the last writer
// leaves a complete file.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/sizeclass/internal/tabletext"
	"github.com/joshuapare/sizeclass/internal/writer"
	"github.com/joshuapare/sizeclass/sizeclass"
)

// NumRecords is the number of lines in a full table.
const NumRecords = sizeclass.MaxSize - sizeclass.MinSize + 1

// Encoding names the character encoding of a table file.
type Encoding = tabletext.Encoding

// Supported encodings.
const (
	EncodingUTF8        = tabletext.EncodingUTF8
	EncodingUTF16LE     = tabletext.EncodingUTF16LE
	EncodingWindows1252 = tabletext.EncodingWindows1252
)

// ParseEncoding normalizes an encoding name ("utf8", "UTF-16LE", "cp1252", ...).
func ParseEncoding(name string) (Encoding, error) {
	return tabletext.ParseEncoding(name)
}

// Options controls how a table is written.
type Options struct {
	Encoding Encoding // Output encoding (default UTF-8)
	WithBOM  bool     // Prefix a byte-order mark (UTF-8 and UTF-16LE only)
	Sync     bool     // Flush file data to stable storage before renaming
}

// DefaultOptions returns UTF-8 output without BOM, synced to disk.
func DefaultOptions() Options {
	return Options{
		Encoding: EncodingUTF8,
		Sync:     true,
	}
}

// Sink receives a table. writer.FileWriter and writer.MemWriter implement it.
type Sink interface {
	WriteTable(fill func(io.Writer) error) error
}

// CreateCSV writes the full table to path with DefaultOptions, creating or
// replacing the file.
func CreateCSV(path string) error {
	return WriteFile(path, DefaultOptions())
}

// WriteFile writes the full table to path. The file is written to a temp
// file in the same directory and renamed into place, so path never holds a
// partial table.
func WriteFile(path string, opts Options) error {
	err := WriteSink(&writer.FileWriter{Path: path, Sync: opts.Sync}, opts)
	if err != nil && !errors.Is(err, tabletext.ErrUnsupportedEncoding) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}

// WriteSink writes the full table to s.
func WriteSink(s Sink, opts Options) error {
	enc, err := tabletext.ParseEncoding(string(opts.Encoding))
	if err != nil {
		return err
	}
	opts.Encoding = enc

	if err := s.WriteTable(func(w io.Writer) error { return Write(w, opts) }); err != nil {
		if errors.Is(err, ErrWrite) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Write streams the full table to w.
func Write(w io.Writer, opts Options) error {
	enc, err := tabletext.ParseEncoding(string(opts.Encoding))
	if err != nil {
		return err
	}

	e, err := tabletext.NewEncoder(w, enc, opts.WithBOM)
	if err != nil {
		return err
	}

	for size := sizeclass.MinSize; size <= sizeclass.MaxSize; size++ {
		idx, err := sizeclass.Index(size)
		if err != nil {
			return err
		}
		if err := e.Write(tabletext.Record{Size: size, Index: idx}); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	if err := e.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
