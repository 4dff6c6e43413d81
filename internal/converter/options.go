package converter

import (
	"fmt"
	"slices"
)

// Format selects the OpenAir dialect produced.
type Format string

const (
	// FormatOpenAir is the full airspace output.
	FormatOpenAir Format = "openair"

	// FormatCompetition adds sequence labels to names and marks special
	// interest danger areas and intense drop zones as prohibited.
	FormatCompetition Format = "competition"

	// FormatRATOnly outputs only the selected temporary restricted areas.
	FormatRATOnly Format = "rat_only"
)

// DefaultMaxLevel is the ceiling used when Options.MaxLevel is empty.
const DefaultMaxLevel = "FL195"

// ILSAsATZ is the ILS symbol meaning "draw ILS feathers like ATZs".
const ILSAsATZ = "ATZ"

// symbols are the OpenAir AC classes a category may be drawn as.
var symbols = []string{"A", "B", "C", "D", "E", "F", "G", "CTR", "GP", "P", "Q", "R", "RMZ", "TMZ", "W"}

// TypeSymbols holds the OpenAir class used for each configurable airspace
// category. An empty symbol deselects the category (ATZ cannot be
// deselected).
type TypeSymbols struct {
	ATZ      string
	ILS      string
	NoATZ    string
	UL       string
	HIRTA    string
	Glider   string
	Obstacle string
}

// resolve applies the ILS-as-ATZ alias.
func (t TypeSymbols) resolve() TypeSymbols {
	if t.ILS == ILSAsATZ {
		t.ILS = t.ATZ
	}
	return t
}

// Options controls filtering and labelling of the output.
//
// Selection lists default to empty; a nil list selects nothing.
type Options struct {
	Types           TypeSymbols
	Format          Format
	Home            string // Gliding site exempted from output
	MaxLevel        string // Volumes with a base at or above this are dropped
	AppendFrequency bool
	LOANames        []string
	RATNames        []string
	WaveNames       []string
}

// Validate reports the first unsupported option value as a
// *ConfigurationError.
func (o Options) Validate() error {
	switch o.Format {
	case FormatOpenAir, FormatCompetition, FormatRATOnly:
	default:
		return &ConfigurationError{Option: "format", Value: string(o.Format), Reason: "unknown output format"}
	}

	if o.Types.ATZ == "" {
		return &ConfigurationError{Option: "atz", Value: "", Reason: "ATZ symbol is required"}
	}

	types := o.Types
	for _, c := range []struct {
		option, value string
	}{
		{"atz", types.ATZ},
		{"ils", types.ILS},
		{"noatz", types.NoATZ},
		{"ul", types.UL},
		{"hirta", types.HIRTA},
		{"glider", types.Glider},
		{"obstacle", types.Obstacle},
	} {
		if c.value == "" || (c.option == "ils" && c.value == ILSAsATZ) {
			continue
		}
		if !slices.Contains(symbols, c.value) {
			return &ConfigurationError{Option: c.option, Value: c.value, Reason: "unknown airspace symbol"}
		}
	}

	if _, err := o.maxLevel(); err != nil {
		return err
	}
	return nil
}

// maxLevel returns the normalised ceiling.
func (o Options) maxLevel() (int, error) {
	level := o.MaxLevel
	if level == "" {
		level = DefaultMaxLevel
	}
	n, err := NormLevel(level)
	if err != nil {
		return 0, &ConfigurationError{Option: "maxlevel", Value: o.MaxLevel, Reason: err.Error()}
	}
	if n <= 0 {
		return 0, &ConfigurationError{Option: "maxlevel", Value: o.MaxLevel, Reason: "must be a flight level or altitude"}
	}
	return n, nil
}

func (o Options) String() string {
	return fmt.Sprintf("format=%s types=%+v home=%q maxlevel=%q freq=%v loa=%v rat=%v wave=%v",
		o.Format, o.Types, o.Home, o.MaxLevel, o.AppendFrequency, o.LOANames, o.RATNames, o.WaveNames)
}
