package openair

import (
	"slices"
	"sort"
	"strings"

	"github.com/beetlebugorg/openair/internal/converter"
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// Format selects the OpenAir dialect produced.
type Format string

const (
	// FormatOpenAir is the full airspace output.
	FormatOpenAir Format = "openair"

	// FormatCompetition adds sequence labels to volume names and marks
	// special-interest danger areas and intense drop zones as prohibited.
	FormatCompetition Format = "competition"

	// FormatRATOnly outputs only the selected temporary restricted areas.
	FormatRATOnly Format = "rat_only"
)

// TypeSymbols sets the OpenAir class each configurable category is drawn
// as. An empty symbol leaves the category out of the output (the ATZ
// symbol is required). An ILS symbol of "ATZ" draws ILS feathers with the
// ATZ symbol.
type TypeSymbols struct {
	ATZ        string // Aerodrome traffic zones, e.g. "CTR" or "D"
	ILS        string // ILS feathers
	NoATZ      string // Training airfields without an ATZ
	Microlight string // Microlight strips
	HIRTA      string // HIRTAs, gas venting stations and laser sites
	Glider     string // Gliding sites
	Obstacle   string // Obstacles; empty omits obstacles entirely
}

// Options configures a conversion.
type Options struct {
	Types TypeSymbols

	// Format selects the output dialect. Default: FormatOpenAir
	Format Format

	// Home is the pilot's home gliding site, which is always omitted.
	Home string

	// MaxLevel drops volumes whose base is at or above this level, given as
	// a flight level ("FL105") or altitude ("5000 ft"). Default: FL195
	MaxLevel string

	// AppendFrequency adds the controlling service frequency to names.
	AppendFrequency bool

	// LOANames selects letters of agreement to apply.
	LOANames []string

	// RATNames selects temporary restricted areas to include.
	RATNames []string

	// WaveNames selects glider wave boxes to include.
	WaveNames []string
}

// DefaultOptions returns the options used for the standard download:
// ATZs as CTR, ILS feathers and training airfields as class G, gliding
// sites as W, microlights, HIRTAs and obstacles omitted, frequencies
// appended and the document's default LOAs applied.
func DefaultOptions(doc *yaixm.Document) Options {
	return Options{
		Types: TypeSymbols{
			ATZ:    "CTR",
			ILS:    "G",
			NoATZ:  "G",
			Glider: "W",
		},
		Format:          FormatOpenAir,
		MaxLevel:        converter.DefaultMaxLevel,
		AppendFrequency: true,
		LOANames:        doc.DefaultLOANames(),
	}
}

// settingsFormats maps the settings form values to formats.
var settingsFormats = map[string]Format{
	"OPENAIR":     FormatOpenAir,
	"RATONLY":     FormatRATOnly,
	"COMPETITION": FormatCompetition,
}

// OptionsFromSettings maps a submitted settings form to options.
//
// Recognised keys are atz, ils, noatz, ul, hirta, glider, obstacle, home,
// maxlevel, radio and format, plus one "rat-<name>", "wave-<name>" or
// "loa-<name>" key per selected item. The document's default LOAs are
// always applied, after the selected ones. A missing key or unknown format is reported as a
// *ConfigurationError.
//
// Example:
//
//	opts, err := openair.OptionsFromSettings(map[string]string{
//	    "atz": "CTR", "ils": "ATZ", "noatz": "G", "ul": "", "hirta": "",
//	    "glider": "W", "obstacle": "", "home": "", "maxlevel": "FL105",
//	    "radio": "yes", "format": "OPENAIR", "wave-CAIRNGORM": "",
//	}, doc)
func OptionsFromSettings(settings map[string]string, doc *yaixm.Document) (Options, error) {
	get := func(key string) (string, error) {
		v, ok := settings[key]
		if !ok {
			return "", &ConfigurationError{Option: key, Reason: "setting is missing"}
		}
		return v, nil
	}

	var opts Options
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"atz", &opts.Types.ATZ},
		{"ils", &opts.Types.ILS},
		{"noatz", &opts.Types.NoATZ},
		{"ul", &opts.Types.Microlight},
		{"hirta", &opts.Types.HIRTA},
		{"glider", &opts.Types.Glider},
		{"obstacle", &opts.Types.Obstacle},
		{"home", &opts.Home},
		{"maxlevel", &opts.MaxLevel},
	} {
		v, err := get(f.key)
		if err != nil {
			return Options{}, err
		}
		*f.dst = v
	}

	radio, err := get("radio")
	if err != nil {
		return Options{}, err
	}
	opts.AppendFrequency = radio != ""

	format, err := get("format")
	if err != nil {
		return Options{}, err
	}
	var ok bool
	if opts.Format, ok = settingsFormats[format]; !ok {
		return Options{}, &ConfigurationError{Option: "format", Value: format, Reason: "unknown output format"}
	}

	for key := range settings {
		switch {
		case strings.HasPrefix(key, "rat-"):
			opts.RATNames = append(opts.RATNames, key[len("rat-"):])
		case strings.HasPrefix(key, "wave-"):
			opts.WaveNames = append(opts.WaveNames, key[len("wave-"):])
		case strings.HasPrefix(key, "loa-"):
			opts.LOANames = append(opts.LOANames, key[len("loa-"):])
		}
	}
	sort.Strings(opts.RATNames)
	sort.Strings(opts.WaveNames)
	sort.Strings(opts.LOANames)
	for _, name := range doc.DefaultLOANames() {
		if !slices.Contains(opts.LOANames, name) {
			opts.LOANames = append(opts.LOANames, name)
		}
	}

	return opts, nil
}

// Settings returns the settings form equivalent to o. It is the inverse of
// OptionsFromSettings.
func (o Options) Settings() map[string]string {
	radio := ""
	if o.AppendFrequency {
		radio = "yes"
	}
	format := "OPENAIR"
	for name, f := range settingsFormats {
		if f == o.Format {
			format = name
		}
	}

	settings := map[string]string{
		"atz":      o.Types.ATZ,
		"ils":      o.Types.ILS,
		"noatz":    o.Types.NoATZ,
		"ul":       o.Types.Microlight,
		"hirta":    o.Types.HIRTA,
		"glider":   o.Types.Glider,
		"obstacle": o.Types.Obstacle,
		"home":     o.Home,
		"maxlevel": o.MaxLevel,
		"radio":    radio,
		"format":   format,
	}
	for _, name := range o.RATNames {
		settings["rat-"+name] = ""
	}
	for _, name := range o.WaveNames {
		settings["wave-"+name] = ""
	}
	for _, name := range o.LOANames {
		settings["loa-"+name] = ""
	}
	return settings
}

// internal converts to the converter's options.
func (o Options) internal() converter.Options {
	format := o.Format
	if format == "" {
		format = FormatOpenAir
	}
	return converter.Options{
		Types: converter.TypeSymbols{
			ATZ:      o.Types.ATZ,
			ILS:      o.Types.ILS,
			NoATZ:    o.Types.NoATZ,
			UL:       o.Types.Microlight,
			HIRTA:    o.Types.HIRTA,
			Glider:   o.Types.Glider,
			Obstacle: o.Types.Obstacle,
		},
		Format:          converter.Format(format),
		Home:            o.Home,
		MaxLevel:        o.MaxLevel,
		AppendFrequency: o.AppendFrequency,
		LOANames:        o.LOANames,
		RATNames:        o.RATNames,
		WaveNames:       o.WaveNames,
	}
}

// Validate reports the first unsupported option value as a
// *ConfigurationError.
func (o Options) Validate() error {
	return o.internal().Validate()
}
