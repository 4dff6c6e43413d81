package converter

import (
	"fmt"
	"strings"
)

// Name returns the display name (AN record) of a volume.
//
// An override name is used as is. Otherwise the feature name gets a suffix
// for its localtype (or ATZ/RAZ), then the sequence label when requested,
// then a "(SI/NOTAM)" style qualifier list. The frequency goes last in
// either case.
func Name(v *Volume, appendFreq, appendSeqno bool) string {
	var b strings.Builder

	if v.Name != "" {
		b.WriteString(v.Name)
	} else {
		b.WriteString(v.FeatureName)

		switch {
		case v.LocalType != "":
			switch v.LocalType {
			case LocalNoATZ, LocalUL:
				b.WriteString(" A/F")
			case LocalMATZ, LocalDZ, LocalGVS, LocalHIRTA, LocalILS, LocalLaser:
				b.WriteString(" " + v.LocalType)
			}
		case v.Type == TypeATZ:
			b.WriteString(" ATZ")
		case v.Rules.Has(RuleRAZ):
			b.WriteString(" RAZ")
		}

		if appendSeqno && v.Seqno != "" {
			b.WriteString("-" + v.Seqno)
		}

		var qualifiers []string
		for _, q := range []Rule{RuleSI, RuleNOTAM} {
			if v.Rules.Has(q) {
				qualifiers = append(qualifiers, string(q))
			}
		}
		if len(qualifiers) > 0 {
			b.WriteString(" (" + strings.Join(qualifiers, "/") + ")")
		}
	}

	if appendFreq && v.Frequency != 0 {
		fmt.Fprintf(&b, " %.3f", v.Frequency)
	}
	return b.String()
}
