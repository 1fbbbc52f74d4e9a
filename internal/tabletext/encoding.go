package tabletext

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names the character encoding of a table file.
type Encoding string

// ParseEncoding normalizes an encoding name such as "UTF-8", "utf-16le" or
// "cp1252". The empty string selects UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch norm {
	case "", "utf8":
		return EncodingUTF8, nil
	case "utf16le", "utf16":
		return EncodingUTF16LE, nil
	case "windows1252", "cp1252", "latin1":
		return EncodingWindows1252, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// String returns the canonical encoding name.
func (e Encoding) String() string {
	return string(e)
}

// encoder returns the x/text encoding used to write a table.
// withBOM has no effect for Windows-1252, which has no byte-order mark.
func (e Encoding) encoder(withBOM bool) (encoding.Encoding, error) {
	switch e {
	case "", EncodingUTF8:
		if withBOM {
			return unicode.UTF8BOM, nil
		}
		return encoding.Nop, nil
	case EncodingUTF16LE:
		if withBOM {
			return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
		}
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(e))
	}
}

// decoder returns the x/text encoding used to read a table. A leading
// byte-order mark is stripped when present.
func (e Encoding) decoder() (encoding.Encoding, error) {
	switch e {
	case "", EncodingUTF8:
		return unicode.UTF8BOM, nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, string(e))
	}
}
