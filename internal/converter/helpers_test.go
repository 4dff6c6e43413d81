package converter

import (
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// squareBoundary is an open four point polygon around 50-51N 0-1W.
func squareBoundary() []yaixm.Segment {
	return []yaixm.Segment{{Line: []string{
		"510000N 0010000W",
		"510000N 0000000E",
		"500000N 0000000E",
		"500000N 0010000W",
	}}}
}

func testVolume(lower, upper string) yaixm.Volume {
	return yaixm.Volume{Lower: lower, Upper: upper, Boundary: squareBoundary()}
}

func testFeature(name, typ string, geometry ...yaixm.Volume) yaixm.Feature {
	if len(geometry) == 0 {
		geometry = []yaixm.Volume{testVolume("SFC", "FL65")}
	}
	return yaixm.Feature{Name: name, Type: typ, Geometry: geometry}
}

func testOptions() Options {
	return Options{
		Types:           TypeSymbols{ATZ: "CTR", ILS: "G", NoATZ: "G", Glider: "W"},
		Format:          FormatOpenAir,
		MaxLevel:        DefaultMaxLevel,
		AppendFrequency: true,
	}
}
