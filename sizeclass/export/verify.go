package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/sizeclass/internal/tabletext"
	"github.com/joshuapare/sizeclass/sizeclass"
)

// Verify reads a table from r and checks that it holds exactly NumRecords
// records matching sizeclass.Index, in ascending size order. Every line must
// be byte-identical to what Write emits: no signs, leading zeros or '\r'.
func Verify(r io.Reader, enc Encoding) error {
	enc, err := tabletext.ParseEncoding(string(enc))
	if err != nil {
		return err
	}
	d, err := tabletext.NewDecoder(r, enc)
	if err != nil {
		return err
	}

	for size := sizeclass.MinSize; size <= sizeclass.MaxSize; size++ {
		rec, err := d.Next()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: table ends after %d records, want %d",
				ErrMismatch, size-sizeclass.MinSize, NumRecords)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMismatch, err)
		}

		want, err := sizeclass.Index(size)
		if err != nil {
			return err
		}
		wantLine := tabletext.AppendRecord(nil, tabletext.Record{Size: size, Index: want})
		wantLine = wantLine[:len(wantLine)-1]
		if rec.Size != size || rec.Index != want || d.Text() != string(wantLine) {
			return fmt.Errorf("%w: line %d: got %q, want %q", ErrMismatch, d.Line(), d.Text(), wantLine)
		}
	}

	if _, err := d.Next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMismatch, err)
		}
		return fmt.Errorf("%w: extra records after line %d", ErrMismatch, NumRecords)
	}
	return nil
}

// VerifyFile opens path and runs Verify on it.
func VerifyFile(path string, enc Encoding) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return Verify(f, enc)
}
