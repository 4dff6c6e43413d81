package openair

import (
	"errors"
	"slices"
	"testing"
)

func testSettings() map[string]string {
	return map[string]string{
		"atz":              "CTR",
		"ils":              "ATZ",
		"noatz":            "G",
		"ul":               "",
		"hirta":            "",
		"glider":           "W",
		"obstacle":         "",
		"home":             "LASHAM",
		"maxlevel":         "FL105",
		"radio":            "yes",
		"format":           "COMPETITION",
		"wave-CAIRNGORM":   "",
		"rat-AIR SHOW":     "",
		"loa-OPTIONAL LOA": "",
	}
}

func TestOptionsFromSettings(t *testing.T) {
	doc := testDocument()

	opts, err := OptionsFromSettings(testSettings(), doc)
	if err != nil {
		t.Fatal(err)
	}

	if opts.Types.ATZ != "CTR" || opts.Types.ILS != "ATZ" || opts.Types.Microlight != "" || opts.Types.Glider != "W" {
		t.Errorf("Unexpected types %+v", opts.Types)
	}
	if opts.Format != FormatCompetition {
		t.Errorf("Expected competition format, got %s", opts.Format)
	}
	if opts.Home != "LASHAM" || opts.MaxLevel != "FL105" || !opts.AppendFrequency {
		t.Errorf("Unexpected options %+v", opts)
	}
	if !slices.Equal(opts.WaveNames, []string{"CAIRNGORM"}) {
		t.Errorf("Expected wave CAIRNGORM, got %v", opts.WaveNames)
	}
	if !slices.Equal(opts.RATNames, []string{"AIR SHOW"}) {
		t.Errorf("Expected RAT AIR SHOW, got %v", opts.RATNames)
	}
	if !slices.Equal(opts.LOANames, []string{"OPTIONAL LOA", "SOLENT LOA"}) {
		t.Errorf("Expected selected then default LOAs, got %v", opts.LOANames)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Expected valid options, got %v", err)
	}
}

func TestOptionsFromSettingsErrors(t *testing.T) {
	missing := testSettings()
	delete(missing, "maxlevel")

	badFormat := testSettings()
	badFormat["format"] = "KML"

	tests := []struct {
		name     string
		settings map[string]string
		option   string
	}{
		{"missing key", missing, "maxlevel"},
		{"unknown format", badFormat, "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OptionsFromSettings(tt.settings, testDocument())
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("Expected ConfigurationError, got %v", err)
			}
			if ce.Option != tt.option {
				t.Errorf("Expected option %s, got %s", tt.option, ce.Option)
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	doc := testDocument()
	opts, err := OptionsFromSettings(testSettings(), doc)
	if err != nil {
		t.Fatal(err)
	}

	again, err := OptionsFromSettings(opts.Settings(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if again.Types != opts.Types || again.Format != opts.Format || again.MaxLevel != opts.MaxLevel ||
		again.AppendFrequency != opts.AppendFrequency || again.Home != opts.Home {
		t.Errorf("Round trip changed options:\n%+v\n%+v", opts, again)
	}
	if !slices.Equal(again.LOANames, opts.LOANames) || !slices.Equal(again.WaveNames, opts.WaveNames) {
		t.Errorf("Round trip changed selections:\n%+v\n%+v", opts, again)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions(testDocument())

	if opts.Types.ATZ != "CTR" || opts.Types.ILS != "G" || opts.Types.NoATZ != "G" || opts.Types.Glider != "W" {
		t.Errorf("Unexpected types %+v", opts.Types)
	}
	if opts.Types.Microlight != "" || opts.Types.HIRTA != "" || opts.Types.Obstacle != "" {
		t.Errorf("Expected microlights, HIRTAs and obstacles to be omitted, got %+v", opts.Types)
	}
	if !slices.Equal(opts.LOANames, []string{"SOLENT LOA"}) {
		t.Errorf("Expected default LOA, got %v", opts.LOANames)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Expected valid options, got %v", err)
	}
}
