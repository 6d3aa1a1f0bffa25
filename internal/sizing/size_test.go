package sizing

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooBig = errors.New("too big")

func TestAddInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
		want int
		ok   bool
	}{
		{"small", 2, 3, 5, true},
		{"negative", -4, 1, -3, true},
		{"max plus zero", math.MaxInt, 0, math.MaxInt, true},
		{"max plus one", math.MaxInt, 1, 0, false},
		{"min minus one", math.MinInt, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := AddInt(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddInt64(t *testing.T) {
	t.Parallel()

	got, ok := AddInt64(10, 20)
	assert.True(t, ok)
	assert.Equal(t, int64(30), got)

	_, ok = AddInt64(math.MaxInt64, 1)
	assert.False(t, ok)

	_, ok = AddInt64(-1, 1)
	assert.False(t, ok)
}

func TestToInt(t *testing.T) {
	t.Parallel()

	n, err := ToInt(42, errTooBig)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ToInt(-42, errTooBig)
	require.NoError(t, err)
	assert.Equal(t, -42, n)
}

func TestReadAllWithLimit(t *testing.T) {
	t.Parallel()

	data, err := ReadAllWithLimit(bytes.NewReader([]byte("hello")), 5, errTooBig)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	_, err = ReadAllWithLimit(bytes.NewReader([]byte("hello!")), 5, errTooBig)
	require.ErrorIs(t, err, errTooBig)

	_, err = ReadAllWithLimit(bytes.NewReader(nil), math.MaxUint64, errTooBig)
	require.ErrorIs(t, err, errTooBig)
}
