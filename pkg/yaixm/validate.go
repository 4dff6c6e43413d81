package yaixm

import (
	"fmt"
	"strings"
)

// SchemaError indicates a record is missing a required field or is
// otherwise structurally unusable.
type SchemaError struct {
	Path   string // Location of the record, e.g. "airspace[3] / geometry[0]"
	Field  string // Offending field, empty when the record as a whole is bad
	Reason string
}

func (e *SchemaError) Error() string {
	loc := e.Path
	if e.Field != "" {
		if loc != "" {
			loc += " / "
		}
		loc += e.Field
	}
	if loc == "" {
		return fmt.Sprintf("schema error: %s", e.Reason)
	}
	return fmt.Sprintf("schema error: %s: %s", loc, e.Reason)
}

// validator tracks where in the document we are so errors can say so.
type validator struct {
	hierarchy []string
	err       *SchemaError
}

func (v *validator) push(format string, args ...any) {
	v.hierarchy = append(v.hierarchy, fmt.Sprintf(format, args...))
}

func (v *validator) pop() {
	v.hierarchy = v.hierarchy[:len(v.hierarchy)-1]
}

// fail records the first error only.
func (v *validator) fail(field, reason string) {
	if v.err != nil {
		return
	}
	v.err = &SchemaError{
		Path:   strings.Join(v.hierarchy, " / "),
		Field:  field,
		Reason: reason,
	}
}

func (v *validator) required(field, value string) {
	if value == "" {
		v.fail(field, "required field is missing")
	}
}

// Validate checks that every record carries the fields the converter
// relies on. It returns the first problem found as a *SchemaError.
func (d *Document) Validate() error {
	v := &validator{}

	for i := range d.Airspace {
		v.push("airspace[%d]", i)
		v.feature(&d.Airspace[i])
		v.pop()
	}
	for i := range d.RAT {
		v.push("rat[%d]", i)
		v.feature(&d.RAT[i])
		v.pop()
	}
	for i, s := range d.Service {
		v.push("service[%d]", i)
		if s.Frequency == 0 {
			v.fail("frequency", "required field is missing")
		}
		if len(s.Controls) == 0 {
			v.fail("controls", "required field is missing")
		}
		v.pop()
	}
	for i, o := range d.Obstacle {
		v.push("obstacle[%d]", i)
		v.required("name", o.Name)
		v.required("position", o.Position)
		v.required("elevation", o.Elevation)
		v.pop()
	}
	for i := range d.LOA {
		v.push("loa[%d]", i)
		v.loa(&d.LOA[i])
		v.pop()
	}

	if v.err != nil {
		return v.err
	}
	return nil
}

func (v *validator) feature(f *Feature) {
	v.required("name", f.Name)
	v.required("type", f.Type)
	if len(f.Geometry) == 0 {
		v.fail("geometry", "feature has no volumes")
	}
	for i := range f.Geometry {
		v.push("geometry[%d]", i)
		v.volume(&f.Geometry[i])
		v.pop()
	}
}

func (v *validator) volume(vol *Volume) {
	v.required("lower", vol.Lower)
	v.required("upper", vol.Upper)
	if len(vol.Boundary) == 0 {
		v.fail("boundary", "volume has no boundary")
	}
	for i := range vol.Boundary {
		v.push("boundary[%d]", i)
		v.segment(&vol.Boundary[i])
		v.pop()
	}
}

func (v *validator) segment(s *Segment) {
	n := 0
	if s.Line != nil {
		n++
		if len(s.Line) == 0 {
			v.fail("line", "line has no points")
		}
	}
	if s.Circle != nil {
		n++
		v.required("circle.centre", s.Circle.Centre)
		v.required("circle.radius", s.Circle.Radius)
	}
	if s.Arc != nil {
		n++
		v.required("arc.dir", s.Arc.Dir)
		v.required("arc.centre", s.Arc.Centre)
		v.required("arc.to", s.Arc.To)
		if s.Arc.Dir != "" && s.Arc.Dir != "cw" && s.Arc.Dir != "ccw" {
			v.fail("arc.dir", fmt.Sprintf("unknown direction %q", s.Arc.Dir))
		}
	}
	if n != 1 {
		v.fail("", fmt.Sprintf("segment must be exactly one of line, circle or arc, has %d", n))
	}
}

func (v *validator) loa(l *LOA) {
	v.required("name", l.Name)
	if len(l.Areas) == 0 {
		v.fail("areas", "LOA has no areas")
	}
	for i := range l.Areas {
		v.push("areas[%d]", i)
		area := &l.Areas[i]
		for j := range area.Add {
			v.push("add[%d]", j)
			v.feature(&area.Add[j])
			v.pop()
		}
		for j := range area.Replace {
			v.push("replace[%d]", j)
			r := &area.Replace[j]
			v.required("id", r.ID)
			if len(r.Geometry) == 0 {
				v.fail("geometry", "replacement has no volumes")
			}
			for k := range r.Geometry {
				v.push("geometry[%d]", k)
				v.volume(&r.Geometry[k])
				v.pop()
			}
			v.pop()
		}
		v.pop()
	}
}
