// Package redundancy detects wasted tokens across combos and surfaces
// missing semantic-cluster opportunities.
package redundancy

import (
	"sort"
	"strings"

	"github.com/phraselift/combogen/pkg/combogen/combo"
)

// patternLen is the shared prefix/suffix length defining a redundant group
const patternLen = 2

// wasteSaturation is the wasted-token count at which the waste component
// of the redundancy score maxes out
const wasteSaturation = 20

// Group is a set of combos sharing a repeated prefix or suffix pattern
type Group struct {
	Pattern      string // the shared token pattern
	Kind         string // "prefix" or "suffix"
	Combos       []string
	WastedTokens int // pattern tokens repeated beyond the first combo
}

// Report summarizes redundancy across a combo set
type Report struct {
	Groups          []Group
	RedundantCombos int // combos belonging to at least one group
	WastedTokens    int
	Score           int // 0–100, higher means more waste
}

// FindRedundant groups combos sharing an identical two-token prefix or
// suffix ("learn spanish fast" and "learn spanish now" share the prefix
// "learn spanish") and scores the overall waste.
func FindRedundant(combos []string) Report {
	prefixGroups := make(map[string][]string)
	suffixGroups := make(map[string][]string)

	for _, c := range combos {
		tokens := combo.Tokens(c)
		if len(tokens) < patternLen {
			continue
		}
		prefix := strings.Join(tokens[:patternLen], " ")
		prefixGroups[prefix] = append(prefixGroups[prefix], c)
		suffix := strings.Join(tokens[len(tokens)-patternLen:], " ")
		suffixGroups[suffix] = append(suffixGroups[suffix], c)
	}

	var report Report
	redundant := make(map[string]struct{})

	collect := func(groups map[string][]string, kind string) {
		patterns := make([]string, 0, len(groups))
		for p := range groups {
			patterns = append(patterns, p)
		}
		sort.Strings(patterns)

		for _, p := range patterns {
			members := groups[p]
			if len(members) < 2 {
				continue
			}
			wasted := (len(members) - 1) * patternLen
			report.Groups = append(report.Groups, Group{
				Pattern:      p,
				Kind:         kind,
				Combos:       members,
				WastedTokens: wasted,
			})
			report.WastedTokens += wasted
			for _, m := range members {
				redundant[m] = struct{}{}
			}
		}
	}
	collect(prefixGroups, "prefix")
	collect(suffixGroups, "suffix")

	report.RedundantCombos = len(redundant)
	report.Score = redundancyScore(len(redundant), len(combos), report.WastedTokens)
	return report
}

// redundancyScore blends the redundant proportion (70 points) with the
// wasted-token volume saturating at wasteSaturation tokens (30 points).
func redundancyScore(redundant, total, wasted int) int {
	if total == 0 {
		return 0
	}
	proportion := float64(redundant) / float64(total)
	waste := float64(wasted) / wasteSaturation
	if waste > 1 {
		waste = 1
	}
	score := int(70*proportion + 30*waste + 0.5)
	if score > 100 {
		score = 100
	}
	return score
}
