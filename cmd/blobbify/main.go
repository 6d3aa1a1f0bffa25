// Command blobbify assembles a manifest of Base64 chunks into a single file.
//
// Usage:
//
//	blobbify [flags] [manifest]
//
// The manifest is read from the named file, or stdin when omitted. Each line
// holds one Base64 chunk; "@<pos> <chunk>" places a chunk at an explicit
// position. The assembled bytes are written to -o, or stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/meigma/blobbify"
	"github.com/meigma/blobbify/internal/sizing"
	"github.com/meigma/blobbify/object"
)

var errInputTooLarge = errors.New("manifest exceeds -max-input")

type config struct {
	input    string
	output   string
	mimeType string
	endings  string
	width    int
	zstd     bool
	digest   bool
	maxInput uint64
	verbose  bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "blobbify: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("blobbify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.output, "o", "", "output path (default: stdout)")
	fs.StringVar(&cfg.mimeType, "type", "", "MIME type of the assembled object")
	fs.StringVar(&cfg.endings, "endings", "transparent", "line endings: transparent or native")
	fs.IntVar(&cfg.width, "width", blobbify.DefaultDecodeChunkWidth, "decode segment width in bytes")
	fs.BoolVar(&cfg.zstd, "zstd", false, "zstd-compress the output")
	fs.BoolVar(&cfg.digest, "digest", false, "print the content digest to stderr")
	fs.Uint64Var(&cfg.maxInput, "max-input", 64<<20, "maximum manifest size in bytes")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "blobbify: at most one manifest path")
		return config{}, errors.New("too many arguments")
	}
	cfg.input = fs.Arg(0)
	return cfg, nil
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	endings, err := object.ParseEndings(cfg.endings)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	manifest, err := sizing.ReadAllWithLimit(in, cfg.maxInput, errInputTooLarge)
	if err != nil {
		return err
	}

	buf := blobbify.New(
		blobbify.WithDecodeChunkWidth(cfg.width),
		blobbify.WithMIMEType(cfg.mimeType),
		blobbify.WithEndings(endings),
		blobbify.WithLogger(logger),
	)
	n, err := loadManifestBytes(buf, manifest)
	if err != nil {
		return err
	}
	obj := buf.Blob()
	logger.Info("assembled", "chunks", n, "size", obj.Size(), "type", obj.Type())

	compression := object.CompressionNone
	if cfg.zstd {
		compression = object.CompressionZstd
	}
	if cfg.output == "" {
		err = obj.Encode(stdout, compression)
	} else {
		err = obj.Save(cfg.output, object.SaveWithCompression(compression))
	}
	if err != nil {
		return err
	}

	if cfg.digest {
		fmt.Fprintln(stderr, obj.Digest())
	}
	return nil
}
