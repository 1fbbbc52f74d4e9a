package tabletext

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/transform"
)

// ParseRecord parses one line without its trailing newline.
func ParseRecord(line string) (Record, error) {
	sizeText, indexText, ok := strings.Cut(line, Separator)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %q in %q", ErrMalformed, Separator, line)
	}
	size, err := strconv.Atoi(sizeText)
	if err != nil {
		return Record{}, fmt.Errorf("%w: size %q", ErrMalformed, sizeText)
	}
	index, err := strconv.Atoi(indexText)
	if err != nil {
		return Record{}, fmt.Errorf("%w: index %q", ErrMalformed, indexText)
	}
	return Record{Size: size, Index: index}, nil
}

// Decoder reads records one line at a time.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder returns a Decoder reading enc-encoded text from r.
func NewDecoder(r io.Reader, enc Encoding) (*Decoder, error) {
	te, err := enc.decoder()
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(transform.NewReader(r, te.NewDecoder()))
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)
	scanner.Split(scanRecordLines)
	return &Decoder{scanner: scanner}, nil
}

// scanRecordLines splits on '\n' only. Unlike bufio.ScanLines it keeps a
// trailing '\r', so CRLF input fails to parse instead of passing silently.
func scanRecordLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, Newline); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Next returns the next record, or io.EOF after the last one.
// Blank lines are malformed.
func (d *Decoder) Next() (Record, error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return Record{}, fmt.Errorf("%w: line %d: too long", ErrMalformed, d.line+1)
			}
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	d.line++
	rec, err := ParseRecord(d.scanner.Text())
	if err != nil {
		return Record{}, fmt.Errorf("line %d: %w", d.line, err)
	}
	return rec, nil
}

// Text returns the last line read, without its newline.
func (d *Decoder) Text() string {
	return d.scanner.Text()
}

// Line returns the 1-based number of the last line read.
func (d *Decoder) Line() int {
	return d.line
}

// Parse reads every record from r.
func Parse(r io.Reader, enc Encoding) ([]Record, error) {
	d, err := NewDecoder(r, enc)
	if err != nil {
		return nil, err
	}
	var recs []Record
	for {
		rec, err := d.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}
