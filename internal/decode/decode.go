// Package decode turns Base64 text into width-bounded byte segments.
//
// Decoding is forgiving in the same way browsers' atob is: ASCII whitespace
// is ignored and trailing padding is optional. Anything else outside the
// standard alphabet is rejected.
package decode

import (
	"encoding/base64"
	"errors"
	"strings"
)

// DefaultWidth is the default maximum segment length in bytes.
const DefaultWidth = 512

// ErrMalformed is returned when text is not valid Base64.
var ErrMalformed = errors.New("malformed base64")

// Base64 decodes text into a freshly allocated byte slice.
func Base64(text string) ([]byte, error) {
	s := stripSpace(text)
	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}
	if len(s)%4 == 1 {
		return nil, ErrMalformed
	}
	out, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return out, nil
}

// Split slices data into consecutive segments of at most width bytes.
// Segments alias data. A width <= 0 uses DefaultWidth. Empty data yields
// no segments.
func Split(data []byte, width int) [][]byte {
	if width <= 0 {
		width = DefaultWidth
	}
	if len(data) == 0 {
		return nil
	}
	segs := make([][]byte, 0, (len(data)+width-1)/width)
	for off := 0; off < len(data); off += width {
		end := min(off+width, len(data))
		segs = append(segs, data[off:end:end])
	}
	return segs
}

// Segments decodes text and splits the result at width.
func Segments(text string, width int) ([][]byte, error) {
	data, err := Base64(text)
	if err != nil {
		return nil, err
	}
	return Split(data, width), nil
}

// stripSpace removes the ASCII whitespace atob ignores.
func stripSpace(s string) string {
	if strings.IndexAny(s, " \t\n\f\r") < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
