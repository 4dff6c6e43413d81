package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/openair/pkg/openair"
)

func main() {
	doc, err := openair.LoadDocument("airspace.json")
	if err != nil {
		log.Fatal(err)
	}

	// Index the volumes the default download would contain
	conv := openair.NewConverter()
	idx, err := conv.Index(doc, openair.DefaultOptions(doc))
	if err != nil {
		log.Fatal(err)
	}

	// Define viewport (Peak District)
	viewport := openair.Bounds{
		MinLon: -2.0, MaxLon: -1.5,
		MinLat: 53.0, MaxLat: 53.5,
	}

	// Query R-tree index for visible volumes (O(log n))
	volumes := idx.VolumesInBounds(viewport)

	fmt.Printf("Visible volumes: %d of %d\n", len(volumes), idx.Len())

	for _, v := range volumes {
		fmt.Printf("  %-4s %s (%s - %s)\n", v.Class, v.Name, v.Lower, v.Upper)
	}
}
