package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/openair/pkg/openair"
)

func main() {
	// Load document
	doc, err := openair.LoadDocument("airspace.json")
	if err != nil {
		log.Fatal(err)
	}

	// Print release info
	fmt.Printf("AIRAC: %s\n", doc.AiracDate())
	fmt.Printf("Features: %d\n", len(doc.Airspace))
	fmt.Printf("RATs: %d\n", len(doc.RAT))

	// Convert with the standard download options
	conv := openair.NewConverter()
	text, err := conv.Convert(doc, openair.DefaultOptions(doc))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(text)
}
