package openair

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// LoadDocument reads and validates a YAIXM document from disk.
//
// The encoding follows the file name: ".yaml" and ".yml" are YAML, anything
// else JSON. A trailing ".zst" or ".gz" is decompressed transparently, so
// "airspace.json.zst" is a zstd-compressed JSON document.
//
// Example:
//
//	doc, err := openair.LoadDocument("yaixm.yaml")
func LoadDocument(path string) (*yaixm.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer gr.Close()
		r = gr
	}

	doc, err := yaixm.Decode(r, yaixm.EncodingFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument reads and validates an uncompressed document from r.
func DecodeDocument(r io.Reader, enc yaixm.Encoding) (*yaixm.Document, error) {
	return yaixm.Decode(r, enc)
}
