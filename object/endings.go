package object

import (
	"errors"
	"fmt"
)

// ErrInvalidEndings is returned when parsing an unknown line-ending mode.
var ErrInvalidEndings = errors.New("object: invalid endings")

// Endings controls how line endings are handled when an Object is built.
type Endings uint8

const (
	// EndingsTransparent leaves content unmodified.
	EndingsTransparent Endings = iota

	// EndingsNative rewrites \r\n, \r and \n to the host newline.
	EndingsNative
)

// String returns the mode name.
func (e Endings) String() string {
	switch e {
	case EndingsTransparent:
		return "transparent"
	case EndingsNative:
		return "native"
	default:
		return "unknown"
	}
}

// ParseEndings parses a mode name as returned by String.
func ParseEndings(s string) (Endings, error) {
	switch s {
	case "transparent":
		return EndingsTransparent, nil
	case "native":
		return EndingsNative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidEndings, s)
	}
}

// convertLineEndings replaces every \r\n, lone \r and lone \n with nl.
func convertLineEndings(data []byte, nl string) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			out = append(out, nl...)
		case '\n':
			out = append(out, nl...)
		default:
			out = append(out, data[i])
		}
	}
	return out
}
