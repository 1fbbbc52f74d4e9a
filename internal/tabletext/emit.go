// Package tabletext reads and writes the size to class index text table.
//
// Each record is one line, "<size>, <index>\n", with no header. Tables can be
// written and read as UTF-8, UTF-16LE or Windows-1252.
package tabletext

import (
	"bufio"
	"io"
	"strconv"

	"golang.org/x/text/transform"
)

// Record is one table row.
type Record struct {
	Size  int
	Index int
}

// AppendRecord appends the text form of r, including the trailing newline.
func AppendRecord(dst []byte, r Record) []byte {
	dst = strconv.AppendInt(dst, int64(r.Size), 10)
	dst = append(dst, Separator...)
	dst = strconv.AppendInt(dst, int64(r.Index), 10)
	return append(dst, Newline)
}

// Encoder writes records to an underlying writer.
type Encoder struct {
	tw  *transform.Writer
	bw  *bufio.Writer
	buf []byte
}

// NewEncoder returns an Encoder writing to w in enc. Close must be called to
// flush buffered output; it does not close w.
func NewEncoder(w io.Writer, enc Encoding, withBOM bool) (*Encoder, error) {
	te, err := enc.encoder(withBOM)
	if err != nil {
		return nil, err
	}
	tw := transform.NewWriter(w, te.NewEncoder())
	return &Encoder{
		tw:  tw,
		bw:  bufio.NewWriterSize(tw, writerBufferSize),
		buf: make([]byte, 0, 32),
	}, nil
}

// Write emits a single record.
func (e *Encoder) Write(r Record) error {
	e.buf = AppendRecord(e.buf[:0], r)
	_, err := e.bw.Write(e.buf)
	return err
}

// Close flushes all buffered output.
func (e *Encoder) Close() error {
	if err := e.bw.Flush(); err != nil {
		return err
	}
	return e.tw.Close()
}

// Emit writes recs to w in enc.
func Emit(w io.Writer, enc Encoding, withBOM bool, recs []Record) error {
	e, err := NewEncoder(w, enc, withBOM)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err := e.Write(r); err != nil {
			return err
		}
	}
	return e.Close()
}
