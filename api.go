package blobbify

import (
	"github.com/meigma/blobbify/object"
	"github.com/meigma/blobbify/registry"
)

// Re-export types from object for the public API.
type (
	// Object is the immutable assembled binary object.
	Object = object.Object

	// Endings controls line-ending handling during assembly.
	Endings = object.Endings
)

// Re-export line-ending modes.
const (
	EndingsTransparent = object.EndingsTransparent
	EndingsNative      = object.EndingsNative
)

// ParseEndings parses "transparent" or "native".
var ParseEndings = object.ParseEndings

// ObjectRegistry hands out reference URLs for objects.
//
// [registry.Registry] is the standard implementation.
type ObjectRegistry interface {
	CreateURL(obj *Object) string
}

var _ ObjectRegistry = (*registry.Registry)(nil)
