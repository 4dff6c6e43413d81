package yaixm

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoding identifies the serialisation of a YAIXM document.
type Encoding int

const (
	// EncodingJSON is the JSON rendering published alongside each release.
	EncodingJSON Encoding = iota

	// EncodingYAML is the hand-maintained YAML source format.
	EncodingYAML
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "JSON"
	case EncodingYAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// EncodingFromPath guesses the encoding from a file name. Compression
// suffixes (".zst", ".gz") are ignored; anything not ending in .yaml or .yml
// is treated as JSON.
func EncodingFromPath(path string) Encoding {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range []string{".zst", ".gz"} {
		name = strings.TrimSuffix(name, ext)
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// Decode reads a document from r and validates it.
//
// A document that decodes but is missing required fields is rejected with a
// *SchemaError; no defaults are substituted.
func Decode(r io.Reader, enc Encoding) (*Document, error) {
	var doc Document
	switch enc {
	case EncodingJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case EncodingYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document encoding %d", enc)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
