package openair

import (
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// testDocument has one ATZ, a controlled CTA and a gliding site around
// 50-51N 0-1W, a wave box in Scotland, and one default and one optional LOA.
func testDocument() *yaixm.Document {
	square := []yaixm.Segment{{Line: []string{
		"510000N 0010000W", "510000N 0000000E", "500000N 0000000E", "500000N 0010000W",
	}}}
	scotland := []yaixm.Segment{{Line: []string{
		"570000N 0040000W", "570000N 0030000W", "560000N 0030000W",
	}}}

	return &yaixm.Document{
		Airspace: []yaixm.Feature{
			{
				ID:   "blackbushe-atz",
				Name: "BLACKBUSHE",
				Type: "ATZ",
				Geometry: []yaixm.Volume{{
					Lower:    "SFC",
					Upper:    "2000 ft",
					Boundary: []yaixm.Segment{{Circle: &yaixm.Circle{Centre: "511930N 0005050W", Radius: "2 nm"}}},
				}},
			},
			{
				ID:       "solent-cta",
				Name:     "SOLENT",
				Type:     "CTA",
				Class:    "D",
				Geometry: []yaixm.Volume{{ID: "solent-cta-1", Lower: "2000 ft", Upper: "FL65", Boundary: square}},
			},
			{
				Name:      "LASHAM",
				Type:      "OTHER",
				LocalType: "GLIDER",
				Geometry:  []yaixm.Volume{{Lower: "SFC", Upper: "2000 ft", Boundary: square}},
			},
			{
				Name:      "CAIRNGORM",
				Type:      "D_OTHER",
				LocalType: "GLIDER",
				Geometry:  []yaixm.Volume{{Lower: "FL65", Upper: "FL105", Boundary: scotland}},
			},
		},
		Service: []yaixm.Service{{Frequency: 120.225, Controls: []string{"solent-cta"}}},
		LOA: []yaixm.LOA{
			{
				Name:    "SOLENT LOA",
				Default: true,
				Areas: []yaixm.Area{{Replace: []yaixm.Replace{{
					ID:       "solent-cta-1",
					Geometry: []yaixm.Volume{{Lower: "3500 ft", Upper: "FL65", Boundary: square}},
				}}}},
			},
			{Name: "OPTIONAL LOA", Areas: []yaixm.Area{{}}},
		},
		Release: yaixm.Release{AiracDate: "2024-01-25T00:00:00Z", Note: "Test release", Commit: "abc123"},
	}
}
