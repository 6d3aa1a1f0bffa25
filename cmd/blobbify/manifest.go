package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meigma/blobbify"
)

var errManifest = errors.New("malformed manifest line")

// loadManifest feeds every chunk line of r into buf.
//
// Blank lines and lines starting with '#' are skipped. A line of the form
// "@<pos> <base64>" inserts at pos; any other line is appended.
func loadManifest(buf *blobbify.Buffer, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	lineNo, chunks := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := applyLine(buf, line); err != nil {
			return chunks, fmt.Errorf("line %d: %w", lineNo, err)
		}
		chunks++
	}
	if err := sc.Err(); err != nil {
		return chunks, fmt.Errorf("read manifest: %w", err)
	}
	return chunks, nil
}

func applyLine(buf *blobbify.Buffer, line string) error {
	if !strings.HasPrefix(line, "@") {
		return buf.AppendBase64(line)
	}
	posText, payload, ok := strings.Cut(line[1:], " ")
	if !ok {
		// A positioned empty chunk is written as "@<pos>".
		posText, payload = line[1:], ""
	}
	pos, err := strconv.Atoi(posText)
	if err != nil {
		return fmt.Errorf("%w: bad position %q", errManifest, posText)
	}
	return buf.InsertBase64At(pos, strings.TrimSpace(payload))
}

// maxLineBytes bounds a single manifest line.
const maxLineBytes = 16 << 20

// loadManifestBytes is loadManifest over an in-memory manifest.
func loadManifestBytes(buf *blobbify.Buffer, data []byte) (int, error) {
	return loadManifest(buf, bytes.NewReader(data))
}
