package tabletext

const (
	// Separator sits between the size and index columns
	Separator = ", "

	// Newline ends every record, including the last
	Newline = '\n'

	// EncodingUTF8 is plain UTF-8 (the default)
	EncodingUTF8 Encoding = "utf8"

	// EncodingUTF16LE is UTF-16 little-endian
	EncodingUTF16LE Encoding = "utf16le"

	// EncodingWindows1252 is the Windows-1252 (Latin-1) code page
	EncodingWindows1252 Encoding = "windows1252"

	// writerBufferSize covers the full default table in a handful of flushes
	writerBufferSize = 16 * 1024

	// maxLineSize bounds a single record line when scanning
	maxLineSize = 256
)
