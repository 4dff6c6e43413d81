package converter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ddmmsshRE matches [D]DDMMSS[.s[s[s]]]H. Three digit degrees must start 0
// or 1 so longitudes never exceed 199.
var ddmmsshRE = regexp.MustCompile(`^([0-9]{2}|[01][0-9]{2})([0-5][0-9])([0-5][0-9](?:\.[0-9]{1,3})?)([NESW])$`)

// DMS is an angle in whole degrees, minutes and seconds with a hemisphere
// letter.
type DMS struct {
	Degrees    int
	Minutes    int
	Seconds    int
	Hemisphere byte // 'N', 'S', 'E' or 'W'
}

// LatitudeDMS converts signed decimal degrees of latitude to DMS.
func LatitudeDMS(deg float64) DMS {
	return toDMS(deg, 'N', 'S')
}

// LongitudeDMS converts signed decimal degrees of longitude to DMS.
func LongitudeDMS(deg float64) DMS {
	return toDMS(deg, 'E', 'W')
}

// toDMS rounds to the nearest whole second, carrying into minutes and
// degrees.
func toDMS(deg float64, pos, neg byte) DMS {
	hemi := pos
	if deg < 0 {
		hemi = neg
		deg = -deg
	}

	secs := int(math.RoundToEven(deg * 3600))
	mins, secs := secs/60, secs%60
	degs, mins := mins/60, mins%60

	return DMS{Degrees: degs, Minutes: mins, Seconds: secs, Hemisphere: hemi}
}

// ParseDMS converts a [D]DDMMSS[.fff]H string to signed decimal degrees.
//
// Example:
//
//	lon, err := converter.ParseDMS("0011530.5W") // -1.258472...
func ParseDMS(s string) (float64, error) {
	m := ddmmsshRE.FindStringSubmatch(s)
	if m == nil {
		return 0, &ParseError{Kind: "coordinate", Value: s}
	}

	d, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, &ParseError{Kind: "coordinate", Value: s}
	}

	deg := float64(d) + float64(mins)/60 + sec/3600
	if m[4] == "S" || m[4] == "W" {
		deg = -deg
	}
	return deg, nil
}

// Position is a WGS-84 latitude/longitude in decimal degrees.
type Position struct {
	Lat float64
	Lon float64
}

// ParsePosition parses a "DDMMSSH DDDMMSSH" latitude/longitude pair.
func ParsePosition(s string) (Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, &ParseError{Kind: "position", Value: s}
	}

	lat, err := ParseDMS(fields[0])
	if err != nil {
		return Position{}, err
	}
	lon, err := ParseDMS(fields[1])
	if err != nil {
		return Position{}, err
	}
	return Position{Lat: lat, Lon: lon}, nil
}

// String formats the position as OpenAir "DD:MM:SS N DDD:MM:SS W".
func (p Position) String() string {
	lat := LatitudeDMS(p.Lat)
	lon := LongitudeDMS(p.Lon)
	return fmt.Sprintf("%02d:%02d:%02d %c %03d:%02d:%02d %c",
		lat.Degrees, lat.Minutes, lat.Seconds, lat.Hemisphere,
		lon.Degrees, lon.Minutes, lon.Seconds, lon.Hemisphere)
}
