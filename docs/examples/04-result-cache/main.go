package main

import (
	"fmt"
	"log"
	"time"

	"github.com/beetlebugorg/openair/pkg/openair"
)

func main() {
	doc, err := openair.LoadDocument("airspace.json.zst")
	if err != nil {
		log.Fatal(err)
	}

	// Keep the 64 most recent outputs for an hour
	conv := openair.NewConverterWithOptions(openair.ConverterOptions{
		CacheSize: 64,
		CacheTTL:  time.Hour,
	})

	opts := openair.DefaultOptions(doc)

	fmt.Println("=== First conversion ===")
	start := time.Now()
	text, err := conv.Convert(doc, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d bytes in %v\n", len(text), time.Since(start))

	fmt.Println("\n=== Cached conversion ===")
	start = time.Now()
	text, err = conv.Convert(doc, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d bytes in %v\n", len(text), time.Since(start))
}
