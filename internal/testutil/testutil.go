// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"encoding/base64"
	"math/rand" //nolint:gosec // deterministic payloads for tests
	"strconv"
	"sync"

	"github.com/meigma/blobbify/object"
)

// RandomBytes returns n pseudo-random bytes derived from seed.
func RandomBytes(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // see import
	data := make([]byte, n)
	r.Read(data)
	return data
}

// Encode returns the standard padded Base64 encoding of data.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeChunks splits data into pieces of at most size bytes and encodes
// each one separately.
func EncodeChunks(data []byte, size int) []string {
	var out []string
	for off := 0; off < len(data); off += size {
		end := min(off+size, len(data))
		out = append(out, Encode(data[off:end]))
	}
	return out
}

// MockRegistry records the objects it is asked to register.
type MockRegistry struct {
	mu      sync.Mutex
	objects []*object.Object
}

// NewMockRegistry constructs an empty registry.
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{}
}

// CreateURL records obj and returns a URL derived from its position.
func (m *MockRegistry) CreateURL(obj *object.Object) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = append(m.objects, obj)
	return "blob:mock/" + strconv.Itoa(len(m.objects)-1)
}

// Objects returns the registered objects in call order.
func (m *MockRegistry) Objects() []*object.Object {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*object.Object(nil), m.objects...)
}
