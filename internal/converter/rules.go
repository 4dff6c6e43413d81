package converter

import (
	"sort"
	"strings"
)

// Rule is an airspace rule tag.
type Rule string

// Rule tags the converter acts on. Other tags are carried verbatim.
const (
	RuleIntense Rule = "INTENSE" // Intense parachute activity
	RuleLOA     Rule = "LOA"     // Subject to a letter of agreement
	RuleNOTAM   Rule = "NOTAM"   // Activated by NOTAM
	RuleRAZ     Rule = "RAZ"     // Radio advisory zone
	RuleRMZ     Rule = "RMZ"     // Radio mandatory zone
	RuleSI      Rule = "SI"      // Statutory instrument / special interest
	RuleTMZ     Rule = "TMZ"     // Transponder mandatory zone
)

// RuleSet is a set of rule tags.
type RuleSet map[Rule]struct{}

// NewRuleSet builds a set from one or more lists of tags.
func NewRuleSet(lists ...[]string) RuleSet {
	rs := make(RuleSet)
	for _, l := range lists {
		for _, r := range l {
			rs[Rule(r)] = struct{}{}
		}
	}
	return rs
}

// Has reports whether r is in the set. A nil set contains nothing.
func (rs RuleSet) Has(r Rule) bool {
	_, ok := rs[r]
	return ok
}

// Union returns a new set holding the tags of both sets.
func (rs RuleSet) Union(other RuleSet) RuleSet {
	u := make(RuleSet, len(rs)+len(other))
	for r := range rs {
		u[r] = struct{}{}
	}
	for r := range other {
		u[r] = struct{}{}
	}
	return u
}

// Sorted returns the tags in lexical order.
func (rs RuleSet) Sorted() []Rule {
	rules := make([]Rule, 0, len(rs))
	for r := range rs {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i] < rules[j] })
	return rules
}

func (rs RuleSet) String() string {
	var b strings.Builder
	for i, r := range rs.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(r))
	}
	return b.String()
}
