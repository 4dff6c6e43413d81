package converter

import (
	"iter"
	"log/slog"

	"github.com/beetlebugorg/openair/internal/log"
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// Airspace runs the selection pipeline and returns the volumes to output,
// with service frequencies merged in.
//
// Restricted areas are always flattened; in rat_only format the selected
// ones are returned unfiltered. Otherwise the main airspace is flattened,
// selected LOAs merged, selected RATs and (if enabled) obstacles appended,
// and the result filtered.
//
// The document is validated first, so records built in code get the same
// schema checks as decoded ones. It is never modified. Any error aborts the
// whole conversion.
func Airspace(doc *yaixm.Document, opts Options, lg *log.Logger) ([]Volume, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	allRATs, err := FlattenAirspace(doc.RAT)
	if err != nil {
		return nil, err
	}
	var rats []Volume
	for _, v := range allRATs {
		if contains(opts.RATNames, v.FeatureName) {
			rats = append(rats, v)
		}
	}
	if opts.Format == FormatRATOnly {
		lg.Debug("restricted areas only", slog.Int("rats", len(rats)))
		return rats, nil
	}

	vols, err := FlattenAirspace(doc.Airspace)
	if err != nil {
		return nil, err
	}
	lg.Debug("flattened airspace", slog.Int("volumes", len(vols)))

	loas := SelectLOAs(doc.LOA, opts.LOANames)
	if vols, err = MergeLOAs(vols, loas); err != nil {
		return nil, err
	}
	lg.Debug("merged LOAs", slog.Int("loas", len(loas)), slog.Int("volumes", len(vols)))

	vols = append(vols, rats...)

	if opts.Types.Obstacle != "" {
		obstacles, err := ExpandObstacles(doc.Obstacle)
		if err != nil {
			return nil, err
		}
		vols = append(vols, obstacles...)
		lg.Debug("added obstacles", slog.Int("obstacles", len(obstacles)))
	}

	filter, err := NewFilter(opts)
	if err != nil {
		return nil, err
	}
	vols = filter.Apply(vols)
	lg.Debug("filtered airspace", slog.Int("volumes", len(vols)))

	IndexServices(doc.Service).apply(vols)

	return vols, nil
}

// Directives returns the OpenAir records for a list of volumes.
func Directives(vols []Volume, opts Options) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		for i := range vols {
			v := &vols[i]

			class, name := opts.Label(v)
			head := []Directive{
				Separator{},
				TypeDirective{Class: class},
				NameDirective{Name: name},
			}
			if v.Frequency != 0 {
				head = append(head, FrequencyDirective{MHz: v.Frequency})
			}
			head = append(head,
				LimitDirective{Level: v.Lower},
				LimitDirective{Upper: true, Level: v.Upper})

			for _, d := range head {
				if !yield(d) {
					return
				}
			}
			for d := range TraceBoundary(v.Boundary) {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Label returns the OpenAir class and display name of a volume.
func (o Options) Label(v *Volume) (class, name string) {
	class = Classify(v, o.Types.resolve(), o.Format)
	name = Name(v, o.AppendFrequency, o.Format == FormatCompetition)
	return class, name
}

// Generate runs the pipeline and returns the directive stream.
func Generate(doc *yaixm.Document, opts Options, lg *log.Logger) (iter.Seq[Directive], error) {
	vols, err := Airspace(doc, opts, lg)
	if err != nil {
		return nil, err
	}
	return Directives(vols, opts), nil
}

// Convert runs the pipeline and returns the OpenAir text.
func Convert(doc *yaixm.Document, opts Options, lg *log.Logger) (string, error) {
	directives, err := Generate(doc, opts, lg)
	if err != nil {
		return "", err
	}
	return Render(directives), nil
}
