package converter

// Feature types the classifier and filter dispatch on.
const (
	TypeATZ         = "ATZ"
	TypeDanger      = "D"
	TypeDangerOther = "D_OTHER"
	TypeOther       = "OTHER"
	TypeProhibited  = "P"
	TypeRestricted  = "R"
	TypeTMZ         = "TMZ"
	TypeRMZ         = "RMZ"
)

// Local types refining a feature type.
const (
	LocalDZ       = "DZ"       // Parachute drop zone
	LocalGlider   = "GLIDER"   // Gliding site (OTHER) or wave box (D_OTHER)
	LocalGVS      = "GVS"      // Gas venting station
	LocalHIRTA    = "HIRTA"    // High intensity radio transmission area
	LocalILS      = "ILS"      // ILS feather
	LocalLaser    = "LASER"    // Laser site
	LocalMATZ     = "MATZ"     // Military ATZ
	LocalNoATZ    = "NOATZ"    // Training airfield without ATZ
	LocalObstacle = "OBSTACLE" // Synthetic obstacle volume
	LocalRAT      = "RAT"      // Temporary restricted area
	LocalRMZ      = "RMZ"
	LocalTMZ      = "TMZ"
	LocalUL       = "UL" // Microlight strip
)

// Volume is a flattened airspace volume: the feature-level defaults merged
// with one entry of the feature's geometry list.
type Volume struct {
	Boundary    []Segment
	Class       string
	FeatureID   string
	FeatureName string
	ID          string // Stable identifier used by LOA replacement
	LocalType   string
	Lower       string
	Upper       string
	Name        string // Override name, empty if none
	NormLower   int    // Lower limit in feet
	Rules       RuleSet
	Seqno       string // Sequence label, empty if none
	Type        string
	Frequency   float64 // Zero if no service controls this volume
}

// Segment is one piece of a volume boundary: a Line, Circle or Arc.
type Segment interface {
	isSegment()
}

// Line is an ordered list of boundary vertices.
type Line struct {
	Points []Position
}

// Circle is a circular boundary. Radius is the bare number, in nautical
// miles.
type Circle struct {
	Centre Position
	Radius string
}

// Arc runs from the previously traced point to To about Centre.
type Arc struct {
	Clockwise bool
	Centre    Position
	To        Position
}

func (Line) isSegment()   {}
func (Circle) isSegment() {}
func (Arc) isSegment()    {}
