// Command openair converts a YAIXM airspace document to OpenAir.
//
//	openair airspace.json -o openair.txt
//	openair yaixm.yaml.zst --settings settings.yaml --format competition
//	openair airspace.json --overlay overlay_105.txt -o openair.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/openair/internal/log"
	"github.com/beetlebugorg/openair/pkg/openair"
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

var (
	input        = kingpin.Arg("input", "YAIXM document (.json, .yaml, optionally .zst or .gz)").Required().String()
	output       = kingpin.Flag("output", "output file, default stdout").Short('o').Default("").String()
	settingsFile = kingpin.Flag("settings", "YAML settings file, in the keys of the download form").Default("").String()
	format       = kingpin.Flag("format", "output format: openair, competition or rat_only").Default("").String()
	home         = kingpin.Flag("home", "home gliding site to omit").Default("").String()
	maxLevel     = kingpin.Flag("maxlevel", "omit volumes with a base at or above this level").Default("").String()
	noHeader     = kingpin.Flag("no-header", "omit the comment header").Default("false").Bool()
	overlay      = kingpin.Flag("overlay", "OpenAir file appended after the airspace, e.g. an FL105 or ATZ/DZ overlay").Default("").String()
	list         = kingpin.Flag("list", "list RATs, optional LOAs, wave boxes and gliding sites and exit").Default("false").Bool()
	logLevel     = kingpin.Flag("log-level", "debug, info, warn or error").Default("info").String()
	logFile      = kingpin.Flag("log-file", "log file, default stderr").Default("").String()
)

func main() {
	kingpin.Parse()

	lg, err := log.New(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(lg); err != nil {
		lg.Error("openair failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(lg *log.Logger) error {
	doc, err := openair.LoadDocument(*input)
	if err != nil {
		return err
	}
	lg.Info("loaded document",
		slog.String("path", *input),
		slog.String("airac", doc.AiracDate()),
		slog.Int("airspace", len(doc.Airspace)),
		slog.Int("rat", len(doc.RAT)),
		slog.Int("loa", len(doc.LOA)))

	if *list {
		return listSelections(os.Stdout, doc)
	}

	opts, err := loadOptions(doc)
	if err != nil {
		return err
	}
	lg.Debugf("format %s, max level %s, %d LOAs, %d RATs", opts.Format, opts.MaxLevel, len(opts.LOANames), len(opts.RATNames))

	var header string
	if !*noHeader {
		header = openair.Header(doc, opts.Settings(), time.Now())
	}
	conv := openair.NewConverterWithOptions(openair.ConverterOptions{Logger: lg.Logger})

	text, err := render(conv, doc, opts, header, *overlay)
	if err != nil {
		return err
	}
	if *output == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	if err := writeOutput(*output, text); err != nil {
		return err
	}
	lg.Infof("wrote %d bytes to %s", len(text), *output)
	return nil
}

// render returns the complete output: header, airspace and overlay. Nothing
// is written until all of it has been produced.
func render(conv openair.Converter, doc *yaixm.Document, opts openair.Options, header, overlayPath string) (string, error) {
	body, err := conv.Convert(doc, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(body)
	if overlayPath != "" {
		data, err := os.ReadFile(overlayPath)
		if err != nil {
			return "", fmt.Errorf("overlay: %w", err)
		}
		b.Write(data)
	}
	return b.String(), nil
}

// writeOutput writes text to path, removing the file if the write fails.
func writeOutput(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f, text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// loadOptions builds options from the settings file, or the defaults, then
// applies command-line overrides.
func loadOptions(doc *yaixm.Document) (openair.Options, error) {
	opts := openair.DefaultOptions(doc)
	if *settingsFile != "" {
		b, err := os.ReadFile(*settingsFile)
		if err != nil {
			return openair.Options{}, err
		}
		var settings map[string]string
		if err := yaml.Unmarshal(b, &settings); err != nil {
			return openair.Options{}, fmt.Errorf("%s: %w", *settingsFile, err)
		}
		if opts, err = openair.OptionsFromSettings(settings, doc); err != nil {
			return openair.Options{}, fmt.Errorf("%s: %w", *settingsFile, err)
		}
	}

	if *format != "" {
		opts.Format = openair.Format(*format)
	}
	if *home != "" {
		opts.Home = *home
	}
	if *maxLevel != "" {
		opts.MaxLevel = *maxLevel
	}
	return opts, opts.Validate()
}

func listSelections(w io.Writer, doc *yaixm.Document) error {
	sections := []struct {
		title string
		names []string
	}{
		{"Temporary restricted areas", doc.RATNames()},
		{"Optional LOAs", doc.OptionalLOANames()},
		{"Wave boxes", doc.WaveBoxes()},
		{"Gliding sites", doc.GlidingSites()},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
			return err
		}
		for _, name := range s.names {
			if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
				return err
			}
		}
	}
	return nil
}
