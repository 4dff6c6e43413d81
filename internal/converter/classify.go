package converter

// Classify returns the OpenAir class (AC record) of a volume.
//
// Mandatory zone and NOTAM rules take precedence over the feature type;
// otherwise the type, refined by localtype, selects the class, falling back
// to the volume's airspace class letter.
func Classify(v *Volume, types TypeSymbols, format Format) string {
	switch {
	case v.Rules.Has(RuleNOTAM):
		return "G"
	case v.Rules.Has(RuleTMZ):
		return "TMZ"
	case v.Rules.Has(RuleRMZ):
		return "RMZ"
	}

	types = types.resolve()
	comp := format == FormatCompetition

	switch v.Type {
	case TypeATZ:
		return types.ATZ

	case TypeDanger:
		if comp && v.Rules.Has(RuleSI) {
			return "P"
		}
		return "Q"

	case TypeDangerOther:
		switch {
		case v.LocalType == LocalGlider:
			return "W"
		case comp && v.LocalType == LocalDZ && v.Rules.Has(RuleIntense):
			return "P"
		case isHIRTA(v.LocalType):
			return types.HIRTA
		case v.LocalType == LocalObstacle:
			return types.Obstacle
		default:
			return "Q"
		}

	case TypeOther:
		switch v.LocalType {
		case LocalGlider:
			if v.Rules.Has(RuleLOA) {
				return "W"
			}
			return types.Glider
		case LocalILS:
			return types.ILS
		case LocalNoATZ:
			return types.NoATZ
		case LocalUL:
			return types.UL
		case LocalMATZ, LocalTMZ, LocalRMZ:
			return v.LocalType
		case LocalRAT:
			return "P"
		default:
			return "OTHER"
		}

	case TypeProhibited, TypeRestricted, TypeTMZ, TypeRMZ:
		return v.Type

	default:
		return v.Class
	}
}
