package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/openair/pkg/openair"
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

func safeLoadDocument(path string) (*yaixm.Document, error) {
	doc, err := openair.LoadDocument(path)
	if err != nil {
		// Check if file exists
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("document not found: %s", path)
		}

		// Report the offending record
		var se *openair.SchemaError
		if errors.As(err, &se) {
			log.Printf("Invalid record at %s: %s", se.Path, se.Reason)
		}
		return nil, err
	}

	if len(doc.Airspace) == 0 {
		log.Printf("Warning: %s contains no airspace", path)
	}
	return doc, nil
}

func main() {
	doc, err := safeLoadDocument("airspace.json")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	opts := openair.DefaultOptions(doc)
	opts.LOANames = append(opts.LOANames, "NO SUCH LOA")
	opts.Format = "kml"

	_, err = openair.NewConverter().Convert(doc, opts)

	var ce *openair.ConfigurationError
	var rnf *openair.ReplacementNotFoundError
	var pe *openair.ParseError
	switch {
	case errors.As(err, &ce):
		log.Printf("Bad option %s: %s", ce.Option, ce.Reason)
	case errors.As(err, &rnf):
		log.Printf("LOA %s replaces missing volume %s", rnf.LOA, rnf.ID)
	case errors.As(err, &pe):
		log.Printf("Bad %s %q", pe.Kind, pe.Value)
	case err != nil:
		log.Printf("Conversion failed: %v", err)
	}
}
