// Package openair converts YAIXM airspace documents to the OpenAir text
// format read by gliding flight instruments.
//
// Load a document with LoadDocument, choose Options (DefaultOptions or
// OptionsFromSettings) and convert it with a Converter:
//
//	doc, err := openair.LoadDocument("airspace.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv := openair.NewConverter()
//	text, err := conv.Convert(doc, openair.DefaultOptions(doc))
package openair

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/beetlebugorg/openair/internal/converter"
	"github.com/beetlebugorg/openair/internal/log"
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// Converter produces OpenAir output from a YAIXM document.
//
// Create one with NewConverter or NewConverterWithOptions. A Converter is
// safe for concurrent use and never modifies the documents it is given.
type Converter interface {
	// Convert returns the OpenAir text for doc. The output is
	// deterministic for a given document and options.
	Convert(doc *yaixm.Document, opts Options) (string, error)

	// Write streams the OpenAir text for doc to w.
	Write(w io.Writer, doc *yaixm.Document, opts Options) error

	// Index returns a spatial index of the volumes that would be output.
	Index(doc *yaixm.Document, opts Options) (*VolumeIndex, error)
}

// ConverterOptions configures a Converter.
type ConverterOptions struct {
	// Logger receives debug output for each pipeline stage. Default: none
	Logger *slog.Logger

	// CacheSize is the number of converted outputs kept in memory, keyed on
	// document contents and options. Zero disables caching.
	CacheSize int

	// CacheTTL expires cached outputs. Zero keeps them until evicted.
	CacheTTL time.Duration
}

// NewConverter creates a converter with no logging or caching.
//
// Example:
//
//	conv := openair.NewConverter()
//	err := conv.Write(os.Stdout, doc, openair.DefaultOptions(doc))
func NewConverter() Converter {
	return NewConverterWithOptions(ConverterOptions{})
}

// NewConverterWithOptions creates a converter with logging and an optional
// result cache.
func NewConverterWithOptions(o ConverterOptions) Converter {
	c := &converterWrapper{lg: log.Wrap(o.Logger)}
	if o.CacheSize > 0 {
		c.cache = NewResultCache(o.CacheSize, o.CacheTTL)
	}
	return c
}

// converterWrapper adapts the internal pipeline to the public types.
type converterWrapper struct {
	lg    *log.Logger
	cache *ResultCache
}

func (c *converterWrapper) Convert(doc *yaixm.Document, opts Options) (string, error) {
	if c.cache == nil {
		return c.convert(doc, opts)
	}
	key, err := CacheKey(doc, opts)
	if err != nil {
		return "", err
	}
	return c.cache.Get(key, func() (string, error) {
		return c.convert(doc, opts)
	})
}

func (c *converterWrapper) convert(doc *yaixm.Document, opts Options) (string, error) {
	text, err := converter.Convert(doc, opts.internal(), c.lg)
	if err != nil {
		c.lg.Warn("conversion failed", slog.String("format", string(opts.Format)), slog.Any("error", err))
		return "", err
	}
	c.lg.Info("converted airspace",
		slog.String("format", string(opts.Format)),
		slog.String("airac", doc.AiracDate()),
		slog.Int("bytes", len(text)))
	return text, nil
}

func (c *converterWrapper) Write(w io.Writer, doc *yaixm.Document, opts Options) error {
	if c.cache != nil {
		text, err := c.Convert(doc, opts)
		if err != nil {
			return err
		}
		bw := bufio.NewWriter(w)
		if _, err := bw.WriteString(text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return bw.Flush()
	}

	directives, err := converter.Generate(doc, opts.internal(), c.lg)
	if err != nil {
		c.lg.Warn("conversion failed", slog.String("format", string(opts.Format)), slog.Any("error", err))
		return err
	}
	if err := converter.Write(w, directives); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *converterWrapper) Index(doc *yaixm.Document, opts Options) (*VolumeIndex, error) {
	vols, err := converter.Airspace(doc, opts.internal(), c.lg)
	if err != nil {
		return nil, err
	}
	return newVolumeIndex(vols, opts), nil
}
