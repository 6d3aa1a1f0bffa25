package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/blobbify/object"
)

func TestCreateAndResolve(t *testing.T) {
	t.Parallel()

	r := New()
	obj := object.New([][]byte{[]byte("data")})

	url := r.CreateURL(obj)
	assert.True(t, strings.HasPrefix(url, "blob:null/"), url)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Resolve(url)
	require.True(t, ok)
	assert.Same(t, obj, got)
}

func TestCreateURLIsUnique(t *testing.T) {
	t.Parallel()

	r := New()
	obj := object.New(nil)

	a := r.CreateURL(obj)
	b := r.CreateURL(obj)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())
}

func TestWithOrigin(t *testing.T) {
	t.Parallel()

	r := New(WithOrigin("https://example.com"))
	url := r.CreateURL(object.New(nil))
	assert.True(t, strings.HasPrefix(url, "blob:https://example.com/"), url)

	r = New(WithOrigin(""))
	url = r.CreateURL(object.New(nil))
	assert.True(t, strings.HasPrefix(url, "blob:null/"), url)
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	r := New()
	url := r.CreateURL(object.New(nil))

	r.Revoke(url)
	_, ok := r.Resolve(url)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())

	// Revoking twice, or revoking garbage, is harmless.
	r.Revoke(url)
	r.Revoke("blob:null/not-a-url")
	assert.Equal(t, 0, r.Len())
}

func TestGet(t *testing.T) {
	t.Parallel()

	r := New()
	obj := object.New([][]byte{[]byte("x")})
	url := r.CreateURL(obj)

	got, err := r.Get(url)
	require.NoError(t, err)
	assert.Same(t, obj, got)

	_, err = r.Get("blob:null/missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	r := New()
	obj := object.New([][]byte{[]byte("shared")})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				url := r.CreateURL(obj)
				got, ok := r.Resolve(url)
				assert.True(t, ok)
				assert.Same(t, obj, got)
				r.Revoke(url)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Len())
}
