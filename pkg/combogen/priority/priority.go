// Package priority converts a combo's placement strength plus external
// ranking and popularity signals into a single 0–100 priority score.
package priority

import (
	"math"
	"sort"

	"github.com/phraselift/combogen/pkg/combogen/combo"
	"github.com/phraselift/combogen/pkg/combogen/generate"
)

// DefaultSelectLimit caps the selected slate when no limit is given
const DefaultSelectLimit = 500

// Weights are the five component weights; they must sum to 1.0
type Weights struct {
	Strength    float64
	Popularity  float64
	Opportunity float64
	Trend       float64
	Intent      float64
}

// DefaultWeights returns the production weighting
func DefaultWeights() Weights {
	return Weights{
		Strength:    0.30,
		Popularity:  0.25,
		Opportunity: 0.20,
		Trend:       0.15,
		Intent:      0.10,
	}
}

// Sum returns the total of all component weights
func (w Weights) Sum() float64 {
	return w.Strength + w.Popularity + w.Opportunity + w.Trend + w.Intent
}

// RankingData is the per-combo search ranking signal
type RankingData struct {
	Position       int
	IsRanking      bool
	TotalResults   int    // competing results for the term
	Trend          string // "up", "down", "stable", "new"
	PositionChange int
}

// PopularityData is the per-keyword popularity signal
type PopularityData struct {
	PopularityScore   float64 // 0–100
	IntentScore       float64 // 0–1
	AutocompleteScore float64
	LengthPrior       float64
}

// DataQuality tags how much external signal backed a score
type DataQuality string

const (
	QualityComplete DataQuality = "complete"
	QualityPartial  DataQuality = "partial"
	QualityMissing  DataQuality = "missing"
)

// strengthScores maps each placement tier to its strength component.
// The table descends from 100 for a consecutive title phrase to 20 for a
// three-way split; a missing combo contributes nothing.
var strengthScores = map[combo.Tier]float64{
	combo.TierTitleConsecutive:      100,
	combo.TierTitleScattered:        90,
	combo.TierTitleKeywordsCross:    85,
	combo.TierTitleSubtitleCross:    80,
	combo.TierKeywordsConsecutive:   70,
	combo.TierSubtitleConsecutive:   65,
	combo.TierKeywordsSubtitleCross: 55,
	combo.TierKeywordsScattered:     45,
	combo.TierSubtitleScattered:     35,
	combo.TierThreeWayCross:         20,
	combo.TierMissing:               0,
}

// StrengthScore returns the tier's fixed strength component
func StrengthScore(t combo.Tier) float64 {
	return strengthScores[t]
}

// Breakdown holds the five component sub-scores, the weighted total, and
// the data-quality tag. Component scores are each in [0,100].
type Breakdown struct {
	Strength    float64
	Popularity  float64
	Opportunity float64
	Trend       float64
	Intent      float64
	Total       int // rounded weighted sum, in [0,100]
	Quality     DataQuality
}

// Scorer computes priority scores with a fixed weighting
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes the combo's priority. ranking may be nil; popularity is
// keyed by lowercase keyword and may be empty. Absent signals degrade to
// neutral component scores and are reflected in the quality tag.
func (s *Scorer) Score(ac generate.AnalyzedCombo, ranking *RankingData, popularity map[string]PopularityData) Breakdown {
	b := Breakdown{
		Strength:    StrengthScore(ac.Tier),
		Popularity:  popularityScore(ac.Tokens, popularity),
		Opportunity: opportunityScore(ranking),
		Trend:       trendScore(ranking),
		Intent:      intentScore(ac.Tokens, popularity),
	}

	total := b.Strength*s.weights.Strength +
		b.Popularity*s.weights.Popularity +
		b.Opportunity*s.weights.Opportunity +
		b.Trend*s.weights.Trend +
		b.Intent*s.weights.Intent
	b.Total = clampScore(int(math.Round(total)))

	b.Quality = quality(ranking, ac.Tokens, popularity)
	return b
}

// popularityScore is the mean popularity across constituent tokens with
// available data, or 0 when no token has data.
func popularityScore(tokens []string, popularity map[string]PopularityData) float64 {
	sum, n := 0.0, 0
	for _, tok := range tokens {
		if p, ok := popularity[tok]; ok {
			sum += p.PopularityScore
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// opportunityScore bands the ranking position. Terms the app does not yet
// rank for score 70–80, inversely scaled by competition volume; positions
// 11–20 are the sweet spot.
func opportunityScore(ranking *RankingData) float64 {
	if ranking == nil {
		return 50
	}
	if !ranking.IsRanking || ranking.Position <= 0 {
		return 80 - math.Min(10, float64(ranking.TotalResults)/25)
	}
	switch {
	case ranking.Position <= 5:
		return 5
	case ranking.Position <= 10:
		return 10
	case ranking.Position <= 20:
		return 60
	case ranking.Position <= 50:
		return 50
	case ranking.Position <= 100:
		return 40
	default:
		return 30
	}
}

// trendScore rewards upward movement scaled by magnitude and penalizes
// decline the same way.
func trendScore(ranking *RankingData) float64 {
	if ranking == nil {
		return 50
	}
	magnitude := math.Abs(float64(ranking.PositionChange))
	switch ranking.Trend {
	case "up":
		return math.Min(100, 80+2*magnitude)
	case "down":
		return math.Max(20, 40-2*magnitude)
	case "stable":
		return 50
	case "new":
		return 60
	default:
		return 50
	}
}

// intentScore is the mean of available per-keyword intent scores ×100,
// or a neutral 50 when none are available.
func intentScore(tokens []string, popularity map[string]PopularityData) float64 {
	sum, n := 0.0, 0
	for _, tok := range tokens {
		if p, ok := popularity[tok]; ok {
			sum += p.IntentScore
			n++
		}
	}
	if n == 0 {
		return 50
	}
	return 100 * sum / float64(n)
}

func quality(ranking *RankingData, tokens []string, popularity map[string]PopularityData) DataQuality {
	hasRanking := ranking != nil
	hasPopularity := false
	for _, tok := range tokens {
		if _, ok := popularity[tok]; ok {
			hasPopularity = true
			break
		}
	}
	switch {
	case hasRanking && hasPopularity:
		return QualityComplete
	case hasRanking || hasPopularity:
		return QualityPartial
	default:
		return QualityMissing
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Scored pairs a combo with its priority breakdown
type Scored struct {
	Combo     generate.AnalyzedCombo
	Breakdown Breakdown
}

// Selection is a ranked, limited slate of scored combos
type Selection struct {
	Combos           []Scored
	Truncated        bool
	TotalBeforeLimit int
}

// SelectTop sorts descending by total score and truncates to limit
// (default 500). There is no diversity quota; equal totals break on
// combo text so the slate is deterministic.
func SelectTop(scored []Scored, limit int) Selection {
	if limit <= 0 {
		limit = DefaultSelectLimit
	}

	sorted := make([]Scored, len(scored))
	copy(sorted, scored)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Breakdown.Total != sorted[j].Breakdown.Total {
			return sorted[i].Breakdown.Total > sorted[j].Breakdown.Total
		}
		return sorted[i].Combo.Text < sorted[j].Combo.Text
	})

	sel := Selection{TotalBeforeLimit: len(sorted)}
	if len(sorted) > limit {
		sorted = sorted[:limit]
		sel.Truncated = true
	}
	sel.Combos = sorted
	return sel
}
