package registry

import "errors"

// ErrNotFound is returned by Get when a URL is not registered.
var ErrNotFound = errors.New("registry: url not found")
