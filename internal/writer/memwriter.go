package writer

import (
	"bytes"
	"io"
)

// MemWriter captures table bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteTable replaces Buf with fill's output. Buf is left untouched if fill
// fails.
func (w *MemWriter) WriteTable(fill func(io.Writer) error) error {
	var b bytes.Buffer
	if err := fill(&b); err != nil {
		return err
	}
	w.Buf = append(w.Buf[:0], b.Bytes()...)
	return nil
}
