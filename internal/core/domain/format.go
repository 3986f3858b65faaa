package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a document format on the wire.
type Format string

// Supported document formats.
const (
	FormatTxt  Format = "txt"
	FormatMd   Format = "md"
	FormatHTML Format = "html"
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
	FormatRTF  Format = "rtf"
)

// formats is the fixed, ordered set of supported format identifiers.
// The same set applies to both input and output; whether a given
// conversion actually succeeds depends on backend availability at
// runtime, not on this set.
var formats = []Format{FormatTxt, FormatMd, FormatHTML, FormatDocx, FormatPDF, FormatRTF}

// InputFormats returns the supported input format identifiers in
// declaration order.
func InputFormats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// OutputFormats returns the supported output format identifiers in
// declaration order.
func OutputFormats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// FormatNames renders a format list as a comma-separated string for
// error messages and reports.
func FormatNames(fs []Format) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat normalises and validates a format identifier.
// Matching is case-insensitive and surrounding whitespace is ignored.
// Unknown identifiers fail with ErrUnsupportedFormat; the message
// names the rejected value and enumerates the valid set.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: '%s'. Supported: %s", ErrUnsupportedFormat, s, FormatNames(formats))
}

// Binary reports whether the format's content travels base64-encoded
// on the wire.
func (f Format) Binary() bool {
	return f == FormatDocx || f == FormatPDF
}

// FormatFromFilename guesses a format from a filename extension.
// The second return value is false when the extension is unknown.
func FormatFromFilename(name string) (Format, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return "", false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", false
	}
	return f, true
}
