package generate

import (
	"sort"

	"github.com/phraselift/combogen/pkg/combogen/classify"
	"github.com/phraselift/combogen/pkg/combogen/combo"
)

// RecommendedLimit caps the missing-combo recommendation list
const RecommendedLimit = 10

// AnalyzedCombo is one generated combo with its placement and
// classification.
type AnalyzedCombo struct {
	Text           string
	Tokens         []string
	Tier           combo.Tier
	Source         combo.Source
	Exists         bool // Source != missing
	Consecutive    bool
	CanStrengthen  bool // consolidating the words into the title would upgrade the tier
	StrategicValue float64
	TailLength     classify.TailLength
	Intent         classify.Intent
	Features       classify.Features
}

// Stats aggregates an analysis run
type Stats struct {
	TotalGenerated  int
	LimitReached    bool
	ExistingCount   int
	MissingCount    int
	CoveragePercent float64        // existing / all, in percent
	TierCounts      map[string]int // tier label → combo count
}

// Analysis is the full outcome of analyzing a metadata triple
type Analysis struct {
	All              []AnalyzedCombo
	Existing         []AnalyzedCombo
	Missing          []AnalyzedCombo
	RecommendedToAdd []AnalyzedCombo // top missing combos by strategic value
	Stats            Stats
}

// AnalyzeAll generates every plausible combo for the metadata triple and
// classifies each one: placement tier, source, intent, tail length,
// semantic features, strengthening potential, and strategic value.
//
// When brandTokens is non-empty, missing combos containing a brand token
// are excluded from the recommendation side of the split. Existing combos
// are never filtered: they reflect the real current state of the
// metadata, branded or not.
func AnalyzeAll(fields FieldTokens, cls *classify.Classifier, brandTokens []string, opts Options) Analysis {
	generated := GenerateAll(fields, opts)
	meta := NewMetadata(fields)
	brand := tokenSet(brandTokens)

	analysis := Analysis{
		Stats: Stats{
			TotalGenerated: generated.TotalGenerated,
			LimitReached:   generated.LimitReached,
			TierCounts:     make(map[string]int),
		},
	}

	for _, text := range generated.Combos {
		tokens := combo.Tokens(text)
		tier := meta.Place(tokens)

		ac := AnalyzedCombo{
			Text:        text,
			Tokens:      tokens,
			Tier:        tier,
			Source:      tier.Source(),
			Exists:      tier != combo.TierMissing,
			Consecutive: tier.Consecutive(),
			TailLength:  classify.ByLength(tokens),
			Intent:      cls.Intent(tokens),
			Features:    cls.Features(tokens),
		}
		ac.CanStrengthen = tier != combo.TierTitleConsecutive && meta.PresentAnywhere(tokens)
		ac.StrategicValue = strategicValue(ac, meta.PresenceRatio(tokens))

		analysis.All = append(analysis.All, ac)
		analysis.Stats.TierCounts[tier.String()]++

		if ac.Exists {
			analysis.Existing = append(analysis.Existing, ac)
			continue
		}
		if len(brand) > 0 && containsAny(tokens, brand) {
			continue // branded suggestions are dropped, not recommended
		}
		analysis.Missing = append(analysis.Missing, ac)
	}

	analysis.Stats.ExistingCount = len(analysis.Existing)
	analysis.Stats.MissingCount = len(analysis.Missing)
	if len(analysis.All) > 0 {
		analysis.Stats.CoveragePercent = 100 * float64(len(analysis.Existing)) / float64(len(analysis.All))
	}

	analysis.RecommendedToAdd = topByStrategicValue(analysis.Missing, RecommendedLimit)
	return analysis
}

// strategicValue is a deterministic heuristic ranking combos for
// recommendation: how much of the combo the metadata already contains,
// a short-tail preference, a consolidation bonus, and a bonus for combos
// that already exist.
func strategicValue(ac AnalyzedCombo, presenceRatio float64) float64 {
	v := 40 * presenceRatio
	switch ac.TailLength {
	case classify.TailShort:
		v += 25
	case classify.TailMid:
		v += 15
	default:
		v += 5
	}
	if ac.CanStrengthen {
		v += 20
	}
	if ac.Exists {
		v += 15
	}
	return v
}

func containsAny(tokens []string, set map[string]struct{}) bool {
	for _, tok := range tokens {
		if _, ok := set[tok]; ok {
			return true
		}
	}
	return false
}

// topByStrategicValue sorts descending by strategic value with a text
// tiebreak so equal-value combos order deterministically.
func topByStrategicValue(combos []AnalyzedCombo, limit int) []AnalyzedCombo {
	sorted := make([]AnalyzedCombo, len(combos))
	copy(sorted, combos)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StrategicValue != sorted[j].StrategicValue {
			return sorted[i].StrategicValue > sorted[j].StrategicValue
		}
		return sorted[i].Text < sorted[j].Text
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
