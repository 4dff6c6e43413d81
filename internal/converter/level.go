package converter

import (
	"strconv"
	"strings"
)

// Surface is the lower limit of airspace starting at ground level.
const Surface = "SFC"

// NormLevel converts "SFC", "FLnnn" or "nnnn ft" to feet so levels of
// different kinds can be compared. Anything that is neither a flight level
// nor an altitude is treated as the surface.
func NormLevel(level string) (int, error) {
	switch {
	case strings.HasPrefix(level, "FL"):
		fl, err := strconv.Atoi(level[2:])
		if err != nil {
			return 0, &ParseError{Kind: "level", Value: level}
		}
		return fl * 100, nil

	case strings.HasSuffix(level, "ft"):
		ft, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(level, "ft")))
		if err != nil {
			return 0, &ParseError{Kind: "level", Value: level}
		}
		return ft, nil

	default:
		return 0, nil
	}
}

// FormatLevel returns the OpenAir rendering of a level: altitudes lose
// their "ft" suffix and are tagged ALT, SFC and flight levels pass through.
func FormatLevel(level string) string {
	if strings.HasSuffix(level, "ft") {
		return strings.TrimSpace(strings.TrimSuffix(level, "ft")) + "ALT"
	}
	return level
}
