package converter

import (
	"fmt"
	"strings"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// maxLetterLabels is the number of volumes that can be labelled A-Z.
const maxLetterLabels = 26

// FlattenAirspace expands features into one Volume per geometry entry,
// in document order.
func FlattenAirspace(features []yaixm.Feature) ([]Volume, error) {
	vols := make([]Volume, 0, len(features))
	for i := range features {
		var err error
		if vols, err = appendFeature(vols, &features[i]); err != nil {
			return nil, err
		}
	}
	return vols, nil
}

// appendFeature flattens a single feature onto vols.
func appendFeature(vols []Volume, f *yaixm.Feature) ([]Volume, error) {
	featureRules := NewRuleSet(f.Rules)

	for n := range f.Geometry {
		v := &f.Geometry[n]
		where := fmt.Sprintf("%s / geometry[%d]", f.Name, n)

		seqno, err := sequenceLabel(f, n)
		if err != nil {
			return nil, err
		}

		boundary, err := convertBoundary(v.Boundary, where)
		if err != nil {
			return nil, err
		}

		normLower, err := NormLevel(v.Lower)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}
		if _, err := NormLevel(v.Upper); err != nil {
			return nil, fmt.Errorf("%s: %w", where, err)
		}

		class := v.Class
		if class == "" {
			class = f.Class
		}

		vols = append(vols, Volume{
			Boundary:    boundary,
			Class:       class,
			FeatureID:   f.ID,
			FeatureName: f.Name,
			ID:          v.ID,
			LocalType:   f.LocalType,
			Lower:       v.Lower,
			Upper:       v.Upper,
			Name:        v.Name,
			NormLower:   normLower,
			Rules:       featureRules.Union(NewRuleSet(v.Rules)),
			Seqno:       seqno,
			Type:        f.Type,
		})
	}
	return vols, nil
}

// sequenceLabel returns the explicit sequence number of volume n if it has
// one, otherwise a letter by position when the feature has several volumes.
func sequenceLabel(f *yaixm.Feature, n int) (string, error) {
	if s := f.Geometry[n].Seqno; s != "" {
		return s.String(), nil
	}
	if len(f.Geometry) <= 1 {
		return "", nil
	}
	if n >= maxLetterLabels {
		return "", &SchemaError{
			Path:   f.Name,
			Field:  "geometry",
			Reason: fmt.Sprintf("%d volumes without seqno, at most %d can be labelled", len(f.Geometry), maxLetterLabels),
		}
	}
	return string(rune('A' + n)), nil
}

// convertBoundary parses the positions of a boundary. Arcs start from the
// previous traced point, so a boundary may not begin with one.
func convertBoundary(segs []yaixm.Segment, where string) ([]Segment, error) {
	boundary := make([]Segment, 0, len(segs))
	havePoint := false

	for i, seg := range segs {
		switch {
		case seg.Line != nil:
			line := Line{Points: make([]Position, 0, len(seg.Line))}
			for _, s := range seg.Line {
				p, err := ParsePosition(s)
				if err != nil {
					return nil, fmt.Errorf("%s / boundary[%d]: %w", where, i, err)
				}
				line.Points = append(line.Points, p)
			}
			havePoint = havePoint || len(line.Points) > 0
			boundary = append(boundary, line)

		case seg.Circle != nil:
			centre, err := ParsePosition(seg.Circle.Centre)
			if err != nil {
				return nil, fmt.Errorf("%s / boundary[%d]: %w", where, i, err)
			}
			radius := strings.Fields(seg.Circle.Radius)
			if len(radius) == 0 {
				return nil, &SchemaError{Path: fmt.Sprintf("%s / boundary[%d]", where, i), Field: "circle.radius", Reason: "required field is missing"}
			}
			boundary = append(boundary, Circle{Centre: centre, Radius: radius[0]})

		case seg.Arc != nil:
			if !havePoint {
				return nil, &SchemaError{Path: fmt.Sprintf("%s / boundary[%d]", where, i), Field: "arc", Reason: "arc has no preceding point to start from"}
			}
			centre, err := ParsePosition(seg.Arc.Centre)
			if err != nil {
				return nil, fmt.Errorf("%s / boundary[%d]: %w", where, i, err)
			}
			to, err := ParsePosition(seg.Arc.To)
			if err != nil {
				return nil, fmt.Errorf("%s / boundary[%d]: %w", where, i, err)
			}
			boundary = append(boundary, Arc{Clockwise: seg.Arc.Dir == "cw", Centre: centre, To: to})

		default:
			return nil, &SchemaError{Path: fmt.Sprintf("%s / boundary[%d]", where, i), Reason: "empty boundary segment"}
		}
	}
	return boundary, nil
}
