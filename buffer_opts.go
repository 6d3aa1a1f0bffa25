package blobbify

import (
	"log/slog"

	"github.com/meigma/blobbify/internal/decode"
)

// DefaultDecodeChunkWidth is the default maximum size of a stored sub-segment.
const DefaultDecodeChunkWidth = decode.DefaultWidth

// Option configures a Buffer.
type Option func(*Buffer)

// WithDecodeChunkWidth sets the maximum number of bytes per stored sub-segment.
// The width bounds individual allocations only and never changes the
// assembled output. Values <= 0 use DefaultDecodeChunkWidth.
func WithDecodeChunkWidth(n int) Option {
	return func(b *Buffer) {
		if n <= 0 {
			n = DefaultDecodeChunkWidth
		}
		b.width = n
	}
}

// WithMIMEType sets the MIME type of assembled objects (default: empty).
func WithMIMEType(typ string) Option {
	return func(b *Buffer) {
		b.mimeType = typ
	}
}

// WithEndings sets the line-ending mode of assembled objects
// (default: EndingsTransparent).
func WithEndings(e Endings) Option {
	return func(b *Buffer) {
		b.endings = e
	}
}

// WithRegistry sets the registry used by ObjectURL (default: registry.Default).
func WithRegistry(r ObjectRegistry) Option {
	return func(b *Buffer) {
		b.registry = r
	}
}

// WithLogger sets the logger for buffer operations.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Buffer) {
		b.logger = logger
	}
}
