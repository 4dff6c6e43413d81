package converter

import (
	"testing"
)

func vol(name, typ, localType, lower string, rules ...string) Volume {
	n, err := NormLevel(lower)
	if err != nil {
		panic(err)
	}
	return Volume{
		FeatureName: name,
		Type:        typ,
		LocalType:   localType,
		Lower:       lower,
		Upper:       "FL65",
		NormLower:   n,
		Rules:       NewRuleSet(rules),
	}
}

func TestFilterInclude(t *testing.T) {
	all := TypeSymbols{ATZ: "CTR", ILS: "G", NoATZ: "G", UL: "G", HIRTA: "Q", Glider: "W"}

	tests := []struct {
		name  string
		types TypeSymbols
		home  string
		wave  []string
		v     Volume
		want  bool
	}{
		{"plain CTA", all, "", nil, vol("CTA", "CTA", "", "FL45"), true},
		{"training airfield deselected", TypeSymbols{ATZ: "CTR"}, "", nil, vol("FARM", "OTHER", LocalNoATZ, "SFC"), false},
		{"training airfield selected", all, "", nil, vol("FARM", "OTHER", LocalNoATZ, "SFC"), true},
		{"microlight deselected", TypeSymbols{ATZ: "CTR"}, "", nil, vol("STRIP", "OTHER", LocalUL, "SFC"), false},
		{"hirta deselected", TypeSymbols{ATZ: "CTR"}, "", nil, vol("MAST", "D_OTHER", LocalHIRTA, "SFC"), false},
		{"gas venting deselected", TypeSymbols{ATZ: "CTR"}, "", nil, vol("GVS", "D_OTHER", LocalGVS, "SFC"), false},
		{"laser deselected", TypeSymbols{ATZ: "CTR"}, "", nil, vol("BEAM", "D_OTHER", LocalLaser, "SFC"), false},
		{"laser selected", all, "", nil, vol("BEAM", "D_OTHER", LocalLaser, "SFC"), true},
		{"gliding site", all, "", nil, vol("LASHAM", "OTHER", LocalGlider, "SFC"), true},
		{"gliding sites deselected", TypeSymbols{ATZ: "CTR"}, "", nil, vol("LASHAM", "OTHER", LocalGlider, "SFC"), false},
		{"home site", all, "LASHAM", nil, vol("LASHAM", "OTHER", LocalGlider, "SFC"), false},
		{"home site under LOA", all, "LASHAM", nil, vol("LASHAM", "OTHER", LocalGlider, "SFC", "LOA"), true},
		{"other gliding site", all, "LASHAM", nil, vol("BOOKER", "OTHER", LocalGlider, "SFC"), true},
		{"base at ceiling", all, "", nil, vol("HIGH", "CTA", "", "FL195"), false},
		{"base above ceiling", all, "", nil, vol("HIGHER", "CTA", "", "FL245"), false},
		{"wave box not selected", all, "", nil, vol("CAIRNGORM", "D_OTHER", LocalGlider, "FL65"), false},
		{"wave box selected", all, "", []string{"CAIRNGORM"}, vol("CAIRNGORM", "D_OTHER", LocalGlider, "FL65"), true},
		{"wave box under LOA", all, "", nil, vol("CAIRNGORM", "D_OTHER", LocalGlider, "FL65", "LOA"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(Options{Types: tt.types, Format: FormatOpenAir, Home: tt.home, WaveNames: tt.wave})
			if err != nil {
				t.Fatal(err)
			}
			if got := f.Include(&tt.v); got != tt.want {
				t.Errorf("Expected include=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterMaxLevel(t *testing.T) {
	f, err := NewFilter(Options{Types: TypeSymbols{ATZ: "CTR"}, Format: FormatOpenAir, MaxLevel: "3500 ft"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		lower string
		want  bool
	}{
		{"SFC", true},
		{"3000ft", true},
		{"3000 ft", true},
		{"3500 ft", false},
		{"4000ft", false},
		{"FL40", false},
		{"FL30", true},
	}
	for _, tt := range tests {
		v := vol("X", "CTA", "", tt.lower)
		if got := f.Include(&v); got != tt.want {
			t.Errorf("Lower %s: expected include=%v, got %v", tt.lower, tt.want, got)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	vols := []Volume{
		vol("CTA", "CTA", "", "FL45"),
		vol("FARM", "OTHER", LocalNoATZ, "SFC"),
		vol("LASHAM", "OTHER", LocalGlider, "SFC"),
		vol("CAIRNGORM", "D_OTHER", LocalGlider, "FL65"),
		vol("HIGH", "CTA", "", "FL245"),
		vol("D123", "D", "", "SFC", "SI"),
	}

	f, err := NewFilter(Options{Types: TypeSymbols{ATZ: "CTR", Glider: "W"}, Format: FormatOpenAir, Home: "LASHAM"})
	if err != nil {
		t.Fatal(err)
	}

	once := f.Apply(vols)
	twice := f.Apply(once)

	if len(once) != 2 {
		t.Errorf("Expected 2 volumes, got %d", len(once))
	}
	if len(once) != len(twice) {
		t.Fatalf("Filter not idempotent: %d then %d volumes", len(once), len(twice))
	}
	for i := range once {
		if once[i].FeatureName != twice[i].FeatureName {
			t.Errorf("Volume %d: %s then %s", i, once[i].FeatureName, twice[i].FeatureName)
		}
	}
}

func TestNewFilterInvalidMaxLevel(t *testing.T) {
	for _, level := range []string{"FLxx", "SFC", "sky"} {
		if _, err := NewFilter(Options{Types: TypeSymbols{ATZ: "CTR"}, Format: FormatOpenAir, MaxLevel: level}); err == nil {
			t.Errorf("Expected error for max level %q", level)
		}
	}
}
