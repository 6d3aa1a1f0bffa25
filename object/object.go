package object

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"
)

// Interface compliance.
var (
	_ io.ReaderAt = (*Object)(nil)
	_ io.WriterTo = (*Object)(nil)
)

// Object is an immutable byte sequence with a MIME type.
type Object struct {
	data    []byte
	typ     string
	endings Endings

	digestOnce sync.Once
	digest     digest.Digest
}

// Option configures a new Object.
type Option func(*Object)

// WithType sets the MIME type. Types containing bytes outside the printable
// ASCII range are replaced by the empty string; others are lowercased.
func WithType(typ string) Option {
	return func(o *Object) {
		o.typ = normalizeType(typ)
	}
}

// WithEndings sets how line endings in the parts are treated.
func WithEndings(e Endings) Option {
	return func(o *Object) {
		o.endings = e
	}
}

// New concatenates parts, in order, into a new Object.
//
// The parts are copied; callers may reuse them after New returns.
func New(parts [][]byte, opts ...Option) *Object {
	o := &Object{}
	for _, opt := range opts {
		opt(o)
	}
	data := bytes.Join(parts, nil)
	if data == nil {
		data = []byte{}
	}
	if o.endings == EndingsNative {
		data = convertLineEndings(data, nativeNewline)
	}
	o.data = data
	return o
}

// Size returns the length of the object in bytes.
func (o *Object) Size() int64 {
	return int64(len(o.data))
}

// Type returns the normalized MIME type, possibly empty.
func (o *Object) Type() string {
	return o.typ
}

// Endings returns the line-ending mode the object was built with.
func (o *Object) Endings() Endings {
	return o.endings
}

// Bytes returns a copy of the object's content.
func (o *Object) Bytes() []byte {
	return bytes.Clone(o.data)
}

// Text returns the content as a string.
func (o *Object) Text() string {
	return string(o.data)
}

// NewReader returns a reader over the content.
func (o *Object) NewReader() *bytes.Reader {
	return bytes.NewReader(o.data)
}

// ReadAt implements io.ReaderAt.
func (o *Object) ReadAt(p []byte, off int64) (int, error) {
	return o.NewReader().ReadAt(p, off)
}

// WriteTo implements io.WriterTo.
func (o *Object) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(o.data)
	return int64(n), err
}

// Digest returns the SHA-256 digest of the content.
func (o *Object) Digest() digest.Digest {
	o.digestOnce.Do(func() {
		o.digest = digest.FromBytes(o.data)
	})
	return o.digest
}

// Slice returns a new Object holding the bytes in [start, end).
//
// Negative offsets count back from the end. Offsets are clamped to the
// object bounds and an end before start yields an empty object. The result
// shares storage with o and has transparent line endings.
func (o *Object) Slice(start, end int64, contentType string) *Object {
	size := o.Size()
	start = clampOffset(start, size)
	end = clampOffset(end, size)
	if end < start {
		end = start
	}
	return &Object{
		data: o.data[start:end:end],
		typ:  normalizeType(contentType),
	}
}

func clampOffset(off, size int64) int64 {
	if off < 0 {
		return max(size+off, 0)
	}
	return min(off, size)
}

func normalizeType(typ string) string {
	for i := 0; i < len(typ); i++ {
		if typ[i] < 0x20 || typ[i] > 0x7e {
			return ""
		}
	}
	return strings.ToLower(typ)
}
