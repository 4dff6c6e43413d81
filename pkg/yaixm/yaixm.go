// Package yaixm models YAIXM airspace documents.
//
// A YAIXM document is the hierarchical airspace description consumed by the
// OpenAir converter: airspace features (each owning one or more volumes),
// temporary restricted areas (RATs), radio services, obstacles and
// letter-of-agreement (LOA) overlays.
//
// Documents are decoded from JSON or YAML with Decode, checked with
// Validate, and are treated as immutable afterwards. Nothing in this module
// modifies a Document once it has been decoded.
package yaixm

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a complete YAIXM airspace description.
type Document struct {
	Airspace []Feature  `json:"airspace" yaml:"airspace"`
	RAT      []Feature  `json:"rat" yaml:"rat"`
	Service  []Service  `json:"service" yaml:"service"`
	Obstacle []Obstacle `json:"obstacle" yaml:"obstacle"`
	LOA      []LOA      `json:"loa" yaml:"loa"`
	Release  Release    `json:"release" yaml:"release"`
}

// Feature is a named airspace entity owning one or more volumes.
//
// Type is the broad airspace category (e.g. "CTA", "ATZ", "D", "D_OTHER",
// "OTHER"); LocalType optionally narrows it (e.g. "GLIDER", "NOATZ", "UL").
type Feature struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string   `json:"name" yaml:"name"`
	Type      string   `json:"type" yaml:"type"`
	LocalType string   `json:"localtype,omitempty" yaml:"localtype,omitempty"`
	Class     string   `json:"class,omitempty" yaml:"class,omitempty"`
	Rules     []string `json:"rules,omitempty" yaml:"rules,omitempty"`
	Geometry  []Volume `json:"geometry" yaml:"geometry"`
}

// Volume is one horizontal/vertical slice of a feature.
//
// Lower and Upper are "SFC", a flight level ("FL65") or an altitude in feet
// ("3000 ft").
type Volume struct {
	ID       string    `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Class    string    `json:"class,omitempty" yaml:"class,omitempty"`
	Rules    []string  `json:"rules,omitempty" yaml:"rules,omitempty"`
	Seqno    Seqno     `json:"seqno,omitempty" yaml:"seqno,omitempty"`
	Lower    string    `json:"lower" yaml:"lower"`
	Upper    string    `json:"upper" yaml:"upper"`
	Boundary []Segment `json:"boundary" yaml:"boundary"`
}

// Segment is one piece of a volume boundary. Exactly one of Line, Circle
// and Arc is set.
type Segment struct {
	Line   []string `json:"line,omitempty" yaml:"line,omitempty"`
	Circle *Circle  `json:"circle,omitempty" yaml:"circle,omitempty"`
	Arc    *Arc     `json:"arc,omitempty" yaml:"arc,omitempty"`
}

// Circle is a circular boundary. Radius carries a unit suffix, e.g. "2 nm".
type Circle struct {
	Centre string `json:"centre" yaml:"centre"`
	Radius string `json:"radius" yaml:"radius"`
}

// Arc is an arc from the previous boundary point to To, about Centre.
// Dir is "cw" or "ccw".
type Arc struct {
	Dir    string `json:"dir" yaml:"dir"`
	Centre string `json:"centre" yaml:"centre"`
	Radius string `json:"radius,omitempty" yaml:"radius,omitempty"`
	To     string `json:"to" yaml:"to"`
}

// Service is a radio service controlling one or more features.
type Service struct {
	Callsign  string   `json:"callsign,omitempty" yaml:"callsign,omitempty"`
	Type      string   `json:"type,omitempty" yaml:"type,omitempty"`
	Frequency float64  `json:"frequency" yaml:"frequency"`
	Controls  []string `json:"controls" yaml:"controls"`
}

// Obstacle is a point obstacle. Elevation is an altitude in feet.
type Obstacle struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Position  string `json:"position" yaml:"position"`
	Elevation string `json:"elevation" yaml:"elevation"`
}

// LOA is a named letter-of-agreement overlay.
type LOA struct {
	Name    string `json:"name" yaml:"name"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
	Areas   []Area `json:"areas" yaml:"areas"`
}

// Area is one part of an LOA: new features to add and existing volumes to
// replace.
type Area struct {
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Add     []Feature `json:"add,omitempty" yaml:"add,omitempty"`
	Replace []Replace `json:"replace,omitempty" yaml:"replace,omitempty"`
}

// Replace swaps the volume with stable id ID for the volumes in Geometry.
// Only the boundary and limits of each replacement geometry are used.
type Replace struct {
	ID       string   `json:"id" yaml:"id"`
	Geometry []Volume `json:"geometry" yaml:"geometry"`
}

// Release describes the data release a document belongs to.
type Release struct {
	AiracDate string `json:"airac_date,omitempty" yaml:"airac_date,omitempty"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
}

// Seqno is an explicit volume sequence label. Documents carry it either as
// a number or as a string; the empty Seqno means no label.
type Seqno string

// UnmarshalJSON accepts both numeric and string sequence numbers.
func (s *Seqno) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*s = Seqno(n.String())
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("seqno: %w", err)
	}
	*s = Seqno(str)
	return nil
}

// UnmarshalYAML accepts any scalar sequence number.
func (s *Seqno) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("seqno: line %d: expected scalar", node.Line)
	}
	*s = Seqno(node.Value)
	return nil
}

// String returns the label text.
func (s Seqno) String() string { return string(s) }
