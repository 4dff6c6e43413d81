package yaixm

import "sort"

// Feature types and local types referenced by the selection helpers.
const (
	TypeDangerOther = "D_OTHER"
	TypeOther       = "OTHER"
	LocalTypeGlider = "GLIDER"
)

// RATNames returns the names of all temporary restricted areas, in document
// order.
func (d *Document) RATNames() []string {
	names := make([]string, 0, len(d.RAT))
	for _, rat := range d.RAT {
		names = append(names, rat.Name)
	}
	return names
}

// OptionalLOANames returns the LOAs a user may opt in to, i.e. those not
// applied by default.
func (d *Document) OptionalLOANames() []string {
	var names []string
	for _, loa := range d.LOA {
		if !loa.Default {
			names = append(names, loa.Name)
		}
	}
	return names
}

// DefaultLOANames returns the LOAs that are always applied.
func (d *Document) DefaultLOANames() []string {
	var names []string
	for _, loa := range d.LOA {
		if loa.Default {
			names = append(names, loa.Name)
		}
	}
	return names
}

// WaveBoxes returns the sorted names of glider wave boxes.
func (d *Document) WaveBoxes() []string {
	return d.sortedNames(TypeDangerOther, LocalTypeGlider)
}

// GlidingSites returns the sorted names of gliding sites.
func (d *Document) GlidingSites() []string {
	return d.sortedNames(TypeOther, LocalTypeGlider)
}

func (d *Document) sortedNames(typ, localType string) []string {
	var names []string
	for _, f := range d.Airspace {
		if f.Type == typ && f.LocalType == localType {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

// AiracDate returns the release AIRAC date as YYYY-MM-DD.
func (d *Document) AiracDate() string {
	date := d.Release.AiracDate
	if len(date) > 10 {
		date = date[:10]
	}
	return date
}
