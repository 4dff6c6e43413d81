package converter

import (
	"errors"
	"testing"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

func loaAirspace(t *testing.T) []Volume {
	t.Helper()

	cta := testFeature("CTA ONE", "CTA", testVolume("FL45", "FL65"), testVolume("FL65", "FL85"))
	cta.Class = "D"
	cta.Geometry[0].ID = "cta-one-a"
	cta.Geometry[1].ID = "cta-one-b"
	other := testFeature("CTA TWO", "CTA")
	other.Geometry[0].ID = "cta-two"

	vols, err := FlattenAirspace([]yaixm.Feature{cta, other})
	if err != nil {
		t.Fatal(err)
	}
	return vols
}

func replacement(lower, upper string, lat string) yaixm.Volume {
	return yaixm.Volume{
		Lower: lower,
		Upper: upper,
		Boundary: []yaixm.Segment{{Line: []string{
			lat + " 0010000W", lat + " 0000000E", "500000N 0000000E",
		}}},
	}
}

func TestMergeLOAsReplaceFanOut(t *testing.T) {
	vols := loaAirspace(t)
	loas := []yaixm.LOA{{
		Name: "CTA ONE LOA",
		Areas: []yaixm.Area{{
			Replace: []yaixm.Replace{{
				ID: "cta-one-a",
				Geometry: []yaixm.Volume{
					replacement("3500 ft", "FL65", "510000N"),
					replacement("FL55", "FL65", "503000N"),
				},
			}},
		}},
	}}

	merged, err := MergeLOAs(vols, loas)
	if err != nil {
		t.Fatal(err)
	}

	// 3 original - 1 replaced + 2 replacement geometries
	if len(merged) != 4 {
		t.Fatalf("Expected 4 volumes, got %d", len(merged))
	}

	r1, r2 := merged[2], merged[3]
	for _, r := range []Volume{r1, r2} {
		if r.FeatureName != "CTA ONE" || r.Class != "D" || r.Seqno != "A" || r.ID != "cta-one-a" {
			t.Errorf("Replacement did not inherit from original: %+v", r)
		}
	}
	if r1.NormLower != 3500 || r2.NormLower != 5500 {
		t.Errorf("Expected normlower 3500, 5500; got %d, %d", r1.NormLower, r2.NormLower)
	}
	p1 := r1.Boundary[0].(Line).Points[0]
	p2 := r2.Boundary[0].(Line).Points[0]
	if p1 == p2 {
		t.Error("Expected replacements to have distinct boundaries")
	}

	// Replacements must not share state with each other
	r1.Rules[RuleNOTAM] = struct{}{}
	if r2.Rules.Has(RuleNOTAM) {
		t.Error("Replacement volumes share their rule set")
	}

	if vols[0].ID != "cta-one-a" || vols[0].Lower != "FL45" || len(vols) != 3 {
		t.Error("MergeLOAs modified its input")
	}
}

func TestMergeLOAsCount(t *testing.T) {
	vols := loaAirspace(t)
	gliding := testFeature("LOA GLIDING", "OTHER")
	gliding.LocalType = "GLIDER"
	gliding.Rules = []string{"LOA"}

	loas := []yaixm.LOA{
		{
			Name: "FIRST",
			Areas: []yaixm.Area{{
				Add: []yaixm.Feature{gliding},
				Replace: []yaixm.Replace{
					{ID: "cta-one-b", Geometry: []yaixm.Volume{replacement("FL75", "FL85", "510000N")}},
				},
			}},
		},
		{
			Name: "SECOND",
			Areas: []yaixm.Area{
				{Add: []yaixm.Feature{testFeature("EXTRA", "CTA", testVolume("SFC", "FL45"), testVolume("FL45", "FL65"))}},
				{Replace: []yaixm.Replace{{ID: "cta-two", Geometry: []yaixm.Volume{
					replacement("SFC", "FL65", "510000N"),
					replacement("SFC", "FL65", "505000N"),
					replacement("SFC", "FL65", "504000N"),
				}}}},
			},
		},
	}

	merged, err := MergeLOAs(vols, loas)
	if err != nil {
		t.Fatal(err)
	}

	// original - replaced + replacement geometries + added
	want := len(vols) - 2 + (1 + 3) + (1 + 2)
	if len(merged) != want {
		t.Errorf("Expected %d volumes, got %d", want, len(merged))
	}
}

func TestMergeLOAsReplaceNotFound(t *testing.T) {
	loas := []yaixm.LOA{{
		Name: "MISSING",
		Areas: []yaixm.Area{{Replace: []yaixm.Replace{
			{ID: "no-such-volume", Geometry: []yaixm.Volume{testVolume("SFC", "FL65")}},
		}}},
	}}

	_, err := MergeLOAs(loaAirspace(t), loas)

	var rnf *ReplacementNotFoundError
	if !errors.As(err, &rnf) {
		t.Fatalf("Expected ReplacementNotFoundError, got %v", err)
	}
	if rnf.ID != "no-such-volume" || rnf.LOA != "MISSING" {
		t.Errorf("Unexpected error fields: %+v", rnf)
	}
}

func TestMergeLOAsReplaceTwice(t *testing.T) {
	replace := yaixm.Replace{ID: "cta-two", Geometry: []yaixm.Volume{testVolume("SFC", "FL65")}}
	loas := []yaixm.LOA{
		{Name: "ONE", Areas: []yaixm.Area{{Replace: []yaixm.Replace{replace}}}},
		{Name: "TWO", Areas: []yaixm.Area{{Replace: []yaixm.Replace{replace}}}},
	}

	// The first replacement's output carries the id, so the second
	// replaces it.
	merged, err := MergeLOAs(loaAirspace(t), loas)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 3 {
		t.Errorf("Expected 3 volumes, got %d", len(merged))
	}
}

func TestMergeLOAsDuplicateID(t *testing.T) {
	vols := loaAirspace(t)
	vols[1].ID = "cta-one-a"

	loas := []yaixm.LOA{{
		Name: "AMBIGUOUS",
		Areas: []yaixm.Area{{Replace: []yaixm.Replace{
			{ID: "cta-one-a", Geometry: []yaixm.Volume{testVolume("SFC", "FL65")}},
		}}},
	}}

	_, err := MergeLOAs(vols, loas)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SchemaError, got %v", err)
	}
}

func TestSelectLOAs(t *testing.T) {
	loas := []yaixm.LOA{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	got := SelectLOAs(loas, []string{"C", "A", "Z"})
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("Expected [A C] in document order, got %v", got)
	}
	if got := SelectLOAs(loas, nil); len(got) != 0 {
		t.Errorf("Expected no LOAs, got %v", got)
	}
}
