package converter

import "iter"

// TraceBoundary walks a boundary and yields its drawing directives.
//
// Lines yield one point per vertex, circles a centre and radius, arcs a
// direction, centre and arc from the previously traced point. If the last
// traced point differs from the first a closing point is added, so every
// polygon is closed.
func TraceBoundary(boundary []Segment) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		var first, last Position
		traced := false

		for _, seg := range boundary {
			switch s := seg.(type) {
			case Line:
				for _, p := range s.Points {
					if !traced {
						first, traced = p, true
					}
					if !yield(PointDirective{At: p}) {
						return
					}
					last = p
				}

			case Circle:
				if !yield(CircleDirective{Centre: s.Centre, Radius: s.Radius}) {
					return
				}

			case Arc:
				// Boundaries are checked during flattening to never start
				// with an arc, so last is always a traced point here.
				if !yield(ArcDirective{Clockwise: s.Clockwise, Centre: s.Centre, From: last, To: s.To}) {
					return
				}
				last = s.To
			}
		}

		if traced && !samePoint(first, last) {
			yield(PointDirective{At: first})
		}
	}
}

// samePoint compares positions as they are written out, to the second.
func samePoint(a, b Position) bool {
	return a.String() == b.String()
}
