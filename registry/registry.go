package registry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/meigma/blobbify/object"
)

// Scheme is the URL scheme of every reference handed out by a Registry.
const Scheme = "blob:"

// DefaultOrigin is used when no origin is configured.
const DefaultOrigin = "null"

// Default is the process-wide registry.
var Default = New()

// Registry maps reference URLs to objects.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	objects map[string]*object.Object
	origin  string
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithOrigin sets the origin embedded in created URLs.
// An empty origin uses DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(r *Registry) {
		if origin == "" {
			origin = DefaultOrigin
		}
		r.origin = origin
	}
}

// WithLogger sets the logger for registry operations.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		objects: make(map[string]*object.Object),
		origin:  DefaultOrigin,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// CreateURL registers obj and returns a new URL referring to it.
//
// Each call returns a distinct URL, even for the same object.
func (r *Registry) CreateURL(obj *object.Object) string {
	url := Scheme + r.origin + "/" + uuid.NewString()

	r.mu.Lock()
	r.objects[url] = obj
	r.mu.Unlock()

	r.log().Debug("object url created", "url", url, "size", obj.Size(), "type", obj.Type())
	return url
}

// Resolve returns the object registered under url.
func (r *Registry) Resolve(url string) (*object.Object, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	obj, ok := r.objects[url]
	return obj, ok
}

// Get is like Resolve but returns ErrNotFound for unknown URLs.
func (r *Registry) Get(url string) (*object.Object, error) {
	obj, ok := r.Resolve(url)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	return obj, nil
}

// Revoke releases url. Revoking an unknown URL is a no-op.
func (r *Registry) Revoke(url string) {
	r.mu.Lock()
	_, ok := r.objects[url]
	delete(r.objects, url)
	r.mu.Unlock()

	if ok {
		r.log().Debug("object url revoked", "url", url)
	}
}

// Len returns the number of live URLs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}
