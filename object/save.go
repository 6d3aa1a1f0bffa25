package object

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// ErrUnknownCompression is returned for an unsupported Compression value.
var ErrUnknownCompression = errors.New("object: unknown compression")

// Compression identifies the encoding applied when exporting an Object.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
)

// String returns the human-readable name of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Encode writes the object's content to w using compression c.
func (o *Object) Encode(w io.Writer, c Compression) error {
	switch c {
	case CompressionNone:
		_, err := o.WriteTo(w)
		return err
	case CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		if _, err := o.WriteTo(enc); err != nil {
			enc.Close()
			return fmt.Errorf("zstd encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

// SaveOption configures Save.
type SaveOption func(*saveConfig)

type saveConfig struct {
	compression Compression
	mode        fs.FileMode
}

// SaveWithCompression sets the compression applied to the written file.
// By default content is written as-is.
func SaveWithCompression(c Compression) SaveOption {
	return func(cfg *saveConfig) {
		cfg.compression = c
	}
}

// SaveWithMode sets the permission bits of the written file (default 0o644).
func SaveWithMode(mode fs.FileMode) SaveOption {
	return func(cfg *saveConfig) {
		cfg.mode = mode
	}
}

// Save writes the object to path.
//
// Uses atomic writes (temp file + rename) to prevent partial writes on failure.
// Parent directories are created as needed.
func (o *Object) Save(path string, opts ...SaveOption) error {
	cfg := saveConfig{mode: 0o644}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.compression != CompressionNone && cfg.compression != CompressionZstd {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, cfg.compression)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := writeFileAtomic(path, cfg.mode, func(w io.Writer) error {
		return o.Encode(w, cfg.compression)
	}); err != nil {
		return fmt.Errorf("write object file: %w", err)
	}
	return nil
}

// writeFileAtomic streams write into a temp file then renames it to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, mode fs.FileMode, write func(io.Writer) error) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".blobbify-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
