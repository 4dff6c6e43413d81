package converter

import "testing"

func TestClassify(t *testing.T) {
	types := TypeSymbols{ATZ: "D", ILS: "ATZ", NoATZ: "G", UL: "F", HIRTA: "Q", Glider: "W", Obstacle: "P"}

	tests := []struct {
		name   string
		v      Volume
		format Format
		want   string
	}{
		{"NOTAM beats type", vol("X", "D", "", "SFC", "NOTAM", "TMZ"), FormatOpenAir, "G"},
		{"TMZ beats RMZ", vol("X", "CTA", "", "SFC", "RMZ", "TMZ"), FormatOpenAir, "TMZ"},
		{"RMZ rule", vol("X", "CTA", "", "SFC", "RMZ"), FormatOpenAir, "RMZ"},
		{"ATZ symbol", vol("X", "ATZ", "", "SFC"), FormatOpenAir, "D"},
		{"danger area", vol("X", "D", "", "SFC", "SI"), FormatOpenAir, "Q"},
		{"competition SI danger area", vol("X", "D", "", "SFC", "SI"), FormatCompetition, "P"},
		{"competition danger area", vol("X", "D", "", "SFC"), FormatCompetition, "Q"},
		{"wave box", vol("X", "D_OTHER", LocalGlider, "SFC"), FormatOpenAir, "W"},
		{"intense DZ", vol("X", "D_OTHER", LocalDZ, "SFC", "INTENSE"), FormatOpenAir, "Q"},
		{"competition intense DZ", vol("X", "D_OTHER", LocalDZ, "SFC", "INTENSE"), FormatCompetition, "P"},
		{"gas venting", vol("X", "D_OTHER", LocalGVS, "SFC"), FormatOpenAir, "Q"},
		{"obstacle", vol("X", "D_OTHER", LocalObstacle, "SFC"), FormatOpenAir, "P"},
		{"local danger", vol("X", "D_OTHER", "", "SFC"), FormatOpenAir, "Q"},
		{"gliding site", vol("X", "OTHER", LocalGlider, "SFC"), FormatOpenAir, "W"},
		{"gliding site under LOA", vol("X", "OTHER", LocalGlider, "SFC", "LOA"), FormatOpenAir, "W"},
		{"ILS as ATZ", vol("X", "OTHER", LocalILS, "SFC"), FormatOpenAir, "D"},
		{"training airfield", vol("X", "OTHER", LocalNoATZ, "SFC"), FormatOpenAir, "G"},
		{"microlight", vol("X", "OTHER", LocalUL, "SFC"), FormatOpenAir, "F"},
		{"MATZ", vol("X", "OTHER", LocalMATZ, "SFC"), FormatOpenAir, "MATZ"},
		{"RAT", vol("X", "OTHER", LocalRAT, "SFC"), FormatOpenAir, "P"},
		{"unknown local type", vol("X", "OTHER", "BIRD", "SFC"), FormatOpenAir, "OTHER"},
		{"prohibited", vol("X", "P", "", "SFC"), FormatOpenAir, "P"},
		{"restricted", vol("X", "R", "", "SFC"), FormatOpenAir, "R"},
		{"TMZ type", vol("X", "TMZ", "", "SFC"), FormatOpenAir, "TMZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.v, types, tt.format); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyFallsBackToClass(t *testing.T) {
	v := vol("LONDON", "CTA", "", "FL45")
	v.Class = "A"
	if got := Classify(&v, TypeSymbols{ATZ: "CTR"}, FormatOpenAir); got != "A" {
		t.Errorf("Expected A, got %s", got)
	}
}

func TestClassifyGlidingSiteSymbol(t *testing.T) {
	v := vol("X", "OTHER", LocalGlider, "SFC")
	if got := Classify(&v, TypeSymbols{ATZ: "CTR", Glider: "G"}, FormatOpenAir); got != "G" {
		t.Errorf("Expected G, got %s", got)
	}
}
