// Package registry maps short-lived reference URLs to in-memory objects.
//
// A [Registry] hands out URLs of the form
//
//	blob:<origin>/<uuid>
//
// for [object.Object] values and resolves them back until they are revoked.
// Entries hold a strong reference to their object, so every URL returned by
// [Registry.CreateURL] must eventually be passed to [Registry.Revoke] or the
// object is never released.
//
// [Default] is a process-wide registry used when no other is configured.
package registry
