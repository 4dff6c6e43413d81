package converter

import (
	"fmt"

	"github.com/brunoga/deep"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// SelectLOAs returns the LOAs whose names appear in names, in document
// order.
func SelectLOAs(loas []yaixm.LOA, names []string) []yaixm.LOA {
	var selected []yaixm.LOA
	for _, loa := range loas {
		if contains(names, loa.Name) {
			selected = append(selected, loa)
		}
	}
	return selected
}

// MergeLOAs overlays LOAs onto flattened airspace.
//
// All add lists are flattened and appended first. Replace instructions are
// then applied in document order: the volume carrying the stable id is
// removed and one copy per replacement geometry is appended, each inheriting
// everything but the boundary and limits from the original.
//
// A replace id that matches no volume fails with *ReplacementNotFoundError;
// one that matches several volumes fails with *SchemaError.
func MergeLOAs(vols []Volume, loas []yaixm.LOA) ([]Volume, error) {
	m := newMerge(vols)
	for _, loa := range loas {
		for _, area := range loa.Areas {
			added, err := FlattenAirspace(area.Add)
			if err != nil {
				return nil, fmt.Errorf("LOA %q: %w", loa.Name, err)
			}
			for _, v := range added {
				m.add(v)
			}
		}
	}

	for _, loa := range loas {
		for _, area := range loa.Areas {
			for i := range area.Replace {
				if err := m.replace(loa.Name, &area.Replace[i]); err != nil {
					return nil, err
				}
			}
		}
	}
	return m.result(), nil
}

// merge holds the working list during replacement. Removed volumes are
// tombstoned rather than spliced out so indices stay valid.
type merge struct {
	vols    []Volume
	removed []bool
	byID    map[string][]int
}

func newMerge(vols []Volume) *merge {
	m := &merge{
		vols:    make([]Volume, 0, len(vols)),
		removed: make([]bool, 0, len(vols)),
		byID:    make(map[string][]int),
	}
	for _, v := range vols {
		m.add(v)
	}
	return m
}

func (m *merge) add(v Volume) {
	if v.ID != "" {
		m.byID[v.ID] = append(m.byID[v.ID], len(m.vols))
	}
	m.vols = append(m.vols, v)
	m.removed = append(m.removed, false)
}

// live returns the indices of volumes with the given id that have not been
// replaced.
func (m *merge) live(id string) []int {
	var idx []int
	for _, i := range m.byID[id] {
		if !m.removed[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m *merge) replace(loaName string, r *yaixm.Replace) error {
	matches := m.live(r.ID)
	switch len(matches) {
	case 0:
		return &ReplacementNotFoundError{LOA: loaName, ID: r.ID}
	case 1:
	default:
		return &SchemaError{
			Path:   fmt.Sprintf("LOA %s / replace %s", loaName, r.ID),
			Field:  "id",
			Reason: fmt.Sprintf("volume id matches %d volumes", len(matches)),
		}
	}

	i := matches[0]
	orig := m.vols[i]
	m.removed[i] = true

	for n := range r.Geometry {
		g := &r.Geometry[n]
		where := fmt.Sprintf("LOA %s / replace %s / geometry[%d]", loaName, r.ID, n)

		boundary, err := convertBoundary(g.Boundary, where)
		if err != nil {
			return err
		}
		normLower, err := NormLevel(g.Lower)
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if _, err := NormLevel(g.Upper); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}

		v, err := deep.Copy(orig)
		if err != nil {
			return fmt.Errorf("%s: copy volume: %w", where, err)
		}
		v.Boundary = boundary
		v.Lower = g.Lower
		v.Upper = g.Upper
		v.NormLower = normLower
		m.add(v)
	}
	return nil
}

// result compacts the working list, preserving order.
func (m *merge) result() []Volume {
	out := make([]Volume, 0, len(m.vols))
	for i, v := range m.vols {
		if !m.removed[i] {
			out = append(out, v)
		}
	}
	return out
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
