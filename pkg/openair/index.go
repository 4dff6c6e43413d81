package openair

import (
	"math"
	"sort"
	"strconv"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/openair/internal/converter"
)

// Bounds is a latitude/longitude box in decimal degrees.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Intersects reports whether two boxes overlap. Touching edges count.
func (b Bounds) Intersects(other Bounds) bool {
	return b.MinLat <= other.MaxLat && b.MaxLat >= other.MinLat &&
		b.MinLon <= other.MaxLon && b.MaxLon >= other.MinLon
}

// Volume describes one converted airspace volume as it appears in the
// output.
type Volume struct {
	Class  string // OpenAir AC class
	Name   string // OpenAir AN name
	Lower  string
	Upper  string
	Bounds Bounds
}

// VolumeIndex answers viewport queries over the converted volumes using an
// R-tree.
type VolumeIndex struct {
	volumes []Volume
	rtree   *rtreego.Rtree
}

// nmPerDegree is nautical miles per degree of latitude.
const nmPerDegree = 60.0

// indexedVolume wraps a volume for R-tree storage.
type indexedVolume struct {
	pos    int // Output order
	bounds Bounds
}

// Bounds implements rtreego.Spatial.
func (v *indexedVolume) Bounds() rtreego.Rect {
	point := rtreego.Point{v.bounds.MinLon, v.bounds.MinLat}

	// R-tree rectangles need non-zero extent
	const epsilon = 0.0001
	lonLength := math.Max(v.bounds.MaxLon-v.bounds.MinLon, epsilon)
	latLength := math.Max(v.bounds.MaxLat-v.bounds.MinLat, epsilon)

	rect, _ := rtreego.NewRect(point, []float64{lonLength, latLength})
	return rect
}

func newVolumeIndex(vols []converter.Volume, opts Options) *VolumeIndex {
	internal := opts.internal()
	idx := &VolumeIndex{
		volumes: make([]Volume, 0, len(vols)),
		rtree:   rtreego.NewTree(2, 25, 50),
	}
	for i := range vols {
		v := &vols[i]
		class, name := internal.Label(v)
		vol := Volume{
			Class:  class,
			Name:   name,
			Lower:  converter.FormatLevel(v.Lower),
			Upper:  converter.FormatLevel(v.Upper),
			Bounds: boundaryBounds(v.Boundary),
		}
		idx.volumes = append(idx.volumes, vol)
		idx.rtree.Insert(&indexedVolume{pos: i, bounds: vol.Bounds})
	}
	return idx
}

// Volumes returns every indexed volume in output order.
func (idx *VolumeIndex) Volumes() []Volume {
	return idx.volumes
}

// Len returns the number of indexed volumes.
func (idx *VolumeIndex) Len() int {
	return len(idx.volumes)
}

// VolumesInBounds returns the volumes whose bounding box intersects b, in
// output order.
//
// Example:
//
//	peak := openair.Bounds{MinLat: 53.0, MaxLat: 53.5, MinLon: -2.0, MaxLon: -1.5}
//	for _, v := range idx.VolumesInBounds(peak) {
//	    fmt.Println(v.Class, v.Name)
//	}
func (idx *VolumeIndex) VolumesInBounds(b Bounds) []Volume {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{
		math.Max(b.MaxLon-b.MinLon, 0.0001),
		math.Max(b.MaxLat-b.MinLat, 0.0001),
	}
	query, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(query)
	positions := make([]int, 0, len(spatials))
	for _, s := range spatials {
		positions = append(positions, s.(*indexedVolume).pos)
	}
	sort.Ints(positions)

	result := make([]Volume, 0, len(positions))
	for _, pos := range positions {
		result = append(result, idx.volumes[pos])
	}
	return result
}

// boundaryBounds returns the box enclosing a boundary. Circles and arcs
// contribute the box of their full circle.
func boundaryBounds(boundary []converter.Segment) Bounds {
	b := Bounds{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	extend := func(p converter.Position, radiusDeg float64) {
		lonRadius := radiusDeg
		if radiusDeg > 0 {
			lonRadius = radiusDeg / math.Max(math.Cos(p.Lat*math.Pi/180), 0.01)
		}
		b.MinLat = math.Min(b.MinLat, p.Lat-radiusDeg)
		b.MaxLat = math.Max(b.MaxLat, p.Lat+radiusDeg)
		b.MinLon = math.Min(b.MinLon, p.Lon-lonRadius)
		b.MaxLon = math.Max(b.MaxLon, p.Lon+lonRadius)
	}

	for _, seg := range boundary {
		switch s := seg.(type) {
		case converter.Line:
			for _, p := range s.Points {
				extend(p, 0)
			}
		case converter.Circle:
			nm, err := strconv.ParseFloat(s.Radius, 64)
			if err != nil {
				nm = 0
			}
			extend(s.Centre, nm/nmPerDegree)
		case converter.Arc:
			dLat := s.To.Lat - s.Centre.Lat
			dLon := (s.To.Lon - s.Centre.Lon) * math.Cos(s.Centre.Lat*math.Pi/180)
			extend(s.Centre, math.Hypot(dLat, dLon))
		}
	}

	if math.IsInf(b.MinLat, 1) {
		return Bounds{}
	}
	return b
}
