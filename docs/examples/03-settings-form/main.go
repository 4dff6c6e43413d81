package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beetlebugorg/openair/pkg/openair"
)

func main() {
	doc, err := openair.LoadDocument("yaixm.yaml")
	if err != nil {
		log.Fatal(err)
	}

	// Choices available on the download form
	fmt.Println("Wave boxes:", doc.WaveBoxes())
	fmt.Println("Optional LOAs:", doc.OptionalLOANames())
	fmt.Println("RATs:", doc.RATNames())

	// A competition task setter's selection
	settings := map[string]string{
		"atz":            "CTR",
		"ils":            "ATZ",
		"noatz":          "G",
		"ul":             "",
		"hirta":          "",
		"glider":         "W",
		"obstacle":       "",
		"home":           "LASHAM",
		"maxlevel":       "FL105",
		"radio":          "",
		"format":         "COMPETITION",
		"wave-CAIRNGORM": "",
	}

	opts, err := openair.OptionsFromSettings(settings, doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(openair.Header(doc, settings, time.Now()))
	if err := openair.NewConverter().Write(os.Stdout, doc, opts); err != nil {
		log.Fatal(err)
	}
}
