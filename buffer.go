package blobbify

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/meigma/blobbify/internal/decode"
	"github.com/meigma/blobbify/internal/sizing"
	"github.com/meigma/blobbify/object"
	"github.com/meigma/blobbify/registry"
)

// chunk holds the decoded bytes of one Append/Insert call.
// segs are ordered by their offset in the decoded payload.
type chunk struct {
	pos  int
	segs [][]byte
	size int64
}

// Buffer collects decoded chunks and assembles them into an Object on demand.
//
// Chunks are ordered by position tag, never by call order. AppendBase64 tags
// each chunk with the next free position; InsertBase64At uses an explicit
// one. The assembled Object is cached until the next mutation, so repeated
// calls to Blob return the same pointer.
//
// A rejected call leaves the buffer exactly as it was. Buffer is safe for
// concurrent use.
type Buffer struct {
	mu     sync.Mutex
	chunks []chunk // insertion order
	next   int     // greater than every position ever stored
	cached *object.Object

	width    int
	mimeType string
	endings  Endings
	registry ObjectRegistry
	logger   *slog.Logger
}

// New creates an empty Buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		width:   DefaultDecodeChunkWidth,
		endings: EndingsTransparent,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = registry.Default
	}
	return b
}

// log returns the logger, falling back to a discard logger if nil.
func (b *Buffer) log() *slog.Logger {
	if b.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.logger
}

// AppendBase64 decodes text and stores it after every chunk added so far.
//
// Returns ErrInvalidInput if text is not valid Base64.
func (b *Buffer) AppendBase64(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	after, ok := sizing.AddInt(b.next, 1)
	if !ok {
		return fmt.Errorf("%w: cannot append after position %d", ErrPositionOverflow, b.next)
	}
	segs, err := b.decode(text)
	if err != nil {
		return err
	}
	b.store(b.next, segs)
	b.next = after
	return nil
}

// InsertBase64At decodes text and stores it at position pos.
//
// Later calls to AppendBase64 continue after the highest position stored.
// Returns ErrDuplicatePosition if pos is already in use and ErrInvalidInput
// if text is not valid Base64.
func (b *Buffer) InsertBase64At(pos int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hasPosition(pos) {
		b.log().Debug("duplicate position rejected", "position", pos)
		return fmt.Errorf("%w: %d", ErrDuplicatePosition, pos)
	}
	after, ok := sizing.AddInt(pos, 1)
	if !ok {
		return fmt.Errorf("%w: %d", ErrPositionOverflow, pos)
	}
	segs, err := b.decode(text)
	if err != nil {
		return err
	}
	b.store(pos, segs)
	b.next = max(b.next, after)
	return nil
}

// Blob returns the assembled object.
//
// Chunks are concatenated in ascending position order using the configured
// MIME type and line-ending mode. The result is cached: calls with no
// intervening mutation return the same *Object.
func (b *Buffer) Blob() *Object {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cached != nil {
		b.log().Debug("blob cache hit", "size", b.cached.Size())
		return b.cached
	}

	ordered := slices.Clone(b.chunks)
	slices.SortStableFunc(ordered, func(x, y chunk) int {
		return cmp.Compare(x.pos, y.pos)
	})
	var parts [][]byte
	for _, c := range ordered {
		parts = append(parts, c.segs...)
	}

	b.cached = object.New(parts,
		object.WithType(b.mimeType),
		object.WithEndings(b.endings),
	)
	b.log().Debug("blob assembled",
		"chunks", len(ordered),
		"segments", len(parts),
		"size", b.cached.Size())
	return b.cached
}

// ObjectURL registers the assembled object with the configured registry and
// returns its URL. The caller must revoke the URL through that registry
// when it is no longer needed.
func (b *Buffer) ObjectURL() string {
	return b.registry.CreateURL(b.Blob())
}

// Len returns the number of stored sub-segments.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.chunks {
		n += len(c.segs)
	}
	return n
}

// Chunks returns the number of stored chunks, one per successful call.
func (b *Buffer) Chunks() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.chunks)
}

// Positions returns the position tags in use, in ascending order.
func (b *Buffer) Positions() []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]int, 0, len(b.chunks))
	for _, c := range b.chunks {
		out = append(out, c.pos)
	}
	slices.Sort(out)
	return out
}

// DecodedSize returns the total number of decoded bytes stored, before any
// line-ending conversion.
func (b *Buffer) DecodedSize() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	var total int64
	for _, c := range b.chunks {
		// Every chunk is backed by a live allocation, so the sum fits.
		total, _ = sizing.AddInt64(total, c.size)
	}
	return total
}

// Cached reports whether an assembled object is currently cached.
func (b *Buffer) Cached() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cached != nil
}

// Reset discards all chunks and the cached object and restarts positions at 0.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.chunks = nil
	b.next = 0
	b.cached = nil
}

// decode splits text into sub-segments without touching buffer state.
func (b *Buffer) decode(text string) ([][]byte, error) {
	segs, err := decode.Segments(text, b.width)
	if err != nil {
		b.log().Debug("invalid base64 rejected", "length", len(text), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return segs, nil
}

// store records a decoded chunk and invalidates the cache.
func (b *Buffer) store(pos int, segs [][]byte) {
	var size int64
	for _, s := range segs {
		size += int64(len(s))
	}
	b.chunks = append(b.chunks, chunk{pos: pos, segs: segs, size: size})
	b.cached = nil
	b.log().Debug("chunk stored", "position", pos, "segments", len(segs), "size", size)
}

func (b *Buffer) hasPosition(pos int) bool {
	return slices.ContainsFunc(b.chunks, func(c chunk) bool {
		return c.pos == pos
	})
}
