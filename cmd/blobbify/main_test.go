package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/blobbify"
	"github.com/meigma/blobbify/internal/testutil"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	manifest := strings.Join([]string{
		"# greeting",
		"@2 " + testutil.Encode([]byte("world")),
		"",
		"@0 " + testutil.Encode([]byte("hello")),
		"@1 " + testutil.Encode([]byte(", ")),
		"  " + testutil.Encode([]byte("!")) + "  ",
		"@7",
	}, "\n")

	buf := blobbify.New()
	n, err := loadManifest(buf, strings.NewReader(manifest))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello, world!", buf.Blob().Text())
	assert.Equal(t, []int{0, 1, 2, 3, 7}, buf.Positions())
}

func TestLoadManifestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		wantErr  error
		wantLine string
	}{
		{"bad position", "YQ==\n@x YQ==", errManifest, "line 2"},
		{"bad base64", "YQ==\n\n!!!!", blobbify.ErrInvalidInput, "line 3"},
		{"duplicate", "@1 YQ==\n@1 Yg==", blobbify.ErrDuplicatePosition, "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := loadManifest(blobbify.New(), strings.NewReader(tt.manifest))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantLine)
		})
	}
}

func TestRunToStdout(t *testing.T) {
	t.Parallel()

	data := testutil.RandomBytes(21, 5000)
	manifest := strings.Join(testutil.EncodeChunks(data, 999), "\n")

	var stdout, stderr bytes.Buffer
	cfg := config{endings: "transparent", maxInput: 1 << 20, digest: true}
	require.NoError(t, run(cfg, strings.NewReader(manifest), &stdout, &stderr))

	assert.Equal(t, data, stdout.Bytes())
	assert.Contains(t, stderr.String(), digest.FromBytes(data).String())
}

func TestRunToFileZstd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "chunks.txt")
	out := filepath.Join(dir, "out", "data.zst")
	data := bytes.Repeat([]byte("zstd "), 500)
	require.NoError(t, os.WriteFile(in, []byte(testutil.Encode(data)+"\n"), 0o644))

	cfg := config{input: in, output: out, endings: "transparent", zstd: true, maxInput: 1 << 20}
	require.NoError(t, run(cfg, nil, &bytes.Buffer{}, &bytes.Buffer{}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	got, err := dec.DecodeAll(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestRunRejectsLargeInput(t *testing.T) {
	t.Parallel()

	cfg := config{endings: "transparent", maxInput: 4}
	err := run(cfg, strings.NewReader("YWJjZGVm"), &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, errInputTooLarge)
}

func TestRunRejectsBadEndings(t *testing.T) {
	t.Parallel()

	cfg := config{endings: "dos", maxInput: 1 << 20}
	err := run(cfg, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-o", "out.bin", "-type", "image/png", "-zstd", "-width", "64", "in.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "out.bin", cfg.output)
	assert.Equal(t, "image/png", cfg.mimeType)
	assert.True(t, cfg.zstd)
	assert.Equal(t, 64, cfg.width)
	assert.Equal(t, "in.txt", cfg.input)
	assert.Equal(t, "transparent", cfg.endings)

	_, err = parseFlags([]string{"a", "b"}, &bytes.Buffer{})
	require.Error(t, err)
}
