// Package object provides an immutable in-memory binary object.
//
// An [Object] is a byte sequence tagged with a MIME type and the line-ending
// mode it was built with. Objects are constructed once from an ordered list
// of byte parts and never change afterwards, so they may be shared freely
// across goroutines.
//
// Objects can be sliced without copying, hashed with [Object.Digest], and
// exported to a writer or file, optionally zstd-compressed.
package object
