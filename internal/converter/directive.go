package converter

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Directive is one OpenAir record. Circles and arcs render as several
// lines; String never includes the final newline.
type Directive interface {
	String() string
}

// Separator precedes each volume.
type Separator struct{}

// Comment is a "*" comment line.
type Comment struct {
	Text string
}

// TypeDirective is the AC record.
type TypeDirective struct {
	Class string
}

// NameDirective is the AN record.
type NameDirective struct {
	Name string
}

// FrequencyDirective is the AF record, in MHz.
type FrequencyDirective struct {
	MHz float64
}

// LimitDirective is the AL (lower) or AH (upper) record.
type LimitDirective struct {
	Upper bool
	Level string
}

// PointDirective is a DP polygon vertex.
type PointDirective struct {
	At Position
}

// CircleDirective is a centre (V X=) followed by a DC radius.
type CircleDirective struct {
	Centre Position
	Radius string
}

// ArcDirective is a direction (V D=), centre (V X=) and DB arc.
type ArcDirective struct {
	Clockwise bool
	Centre    Position
	From      Position
	To        Position
}

func (Separator) String() string { return "*" }

func (d Comment) String() string {
	if d.Text == "" {
		return "*"
	}
	return "* " + d.Text
}

func (d TypeDirective) String() string { return "AC " + d.Class }

func (d NameDirective) String() string { return "AN " + d.Name }

func (d FrequencyDirective) String() string { return fmt.Sprintf("AF %.3f", d.MHz) }

func (d LimitDirective) String() string {
	if d.Upper {
		return "AH " + FormatLevel(d.Level)
	}
	return "AL " + FormatLevel(d.Level)
}

func (d PointDirective) String() string { return "DP " + d.At.String() }

func (d CircleDirective) String() string {
	return "V X=" + d.Centre.String() + "\nDC " + d.Radius
}

func (d ArcDirective) String() string {
	dir := "V D=-"
	if d.Clockwise {
		dir = "V D=+"
	}
	return dir + "\nV X=" + d.Centre.String() + "\nDB " + d.From.String() + ", " + d.To.String()
}

// Write serialises directives to w, one newline-terminated line each.
func Write(w io.Writer, directives iter.Seq[Directive]) error {
	bw := bufio.NewWriter(w)
	for d := range directives {
		if _, err := bw.WriteString(d.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Render serialises directives to a string.
func Render(directives iter.Seq[Directive]) string {
	var b strings.Builder
	for d := range directives {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
