package converter

// Filter decides which volumes are output. It holds no state between
// volumes, so filtering is order independent and idempotent.
type Filter struct {
	types    TypeSymbols
	maxLevel int
	home     string
	wave     []string
}

// NewFilter builds the filter for a set of options.
func NewFilter(o Options) (*Filter, error) {
	maxLevel, err := o.maxLevel()
	if err != nil {
		return nil, err
	}
	return &Filter{
		types:    o.Types.resolve(),
		maxLevel: maxLevel,
		home:     o.Home,
		wave:     o.WaveNames,
	}, nil
}

// Include reports whether v should be output.
func (f *Filter) Include(v *Volume) bool {
	return !f.exclude(v)
}

func (f *Filter) exclude(v *Volume) bool {
	// Training airfields
	if v.LocalType == LocalNoATZ && f.types.NoATZ == "" {
		return true
	}

	// Microlight strips
	if v.LocalType == LocalUL && f.types.UL == "" {
		return true
	}

	// HIRTAs, gas venting stations and laser sites
	if isHIRTA(v.LocalType) && f.types.HIRTA == "" {
		return true
	}

	// Gliding sites, unless under an LOA. The home site is always dropped.
	if v.Type == TypeOther && v.LocalType == LocalGlider && !v.Rules.Has(RuleLOA) &&
		(f.types.Glider == "" || v.FeatureName == f.home) {
		return true
	}

	if v.NormLower >= f.maxLevel {
		return true
	}

	// Wave boxes are excluded unless selected
	if v.Type == TypeDangerOther && v.LocalType == LocalGlider && !v.Rules.Has(RuleLOA) &&
		!contains(f.wave, v.FeatureName) {
		return true
	}

	return false
}

// Apply returns the volumes that pass the filter, in order.
func (f *Filter) Apply(vols []Volume) []Volume {
	out := make([]Volume, 0, len(vols))
	for i := range vols {
		if f.Include(&vols[i]) {
			out = append(out, vols[i])
		}
	}
	return out
}

func isHIRTA(localType string) bool {
	switch localType {
	case LocalHIRTA, LocalGVS, LocalLaser:
		return true
	}
	return false
}
