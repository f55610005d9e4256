package priority

import (
	"fmt"
	"math"
	"testing"

	"github.com/phraselift/combogen/pkg/combogen/combo"
	"github.com/phraselift/combogen/pkg/combogen/generate"
)

func testCombo(text string, tier combo.Tier) generate.AnalyzedCombo {
	return generate.AnalyzedCombo{
		Text:   text,
		Tokens: combo.Tokens(text),
		Tier:   tier,
		Exists: tier != combo.TierMissing,
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	if diff := math.Abs(DefaultWeights().Sum() - 1.0); diff > 1e-9 {
		t.Errorf("Default weights must sum to 1.0, off by %g", diff)
	}
}

func TestStrengthScoreTable(t *testing.T) {
	// The table descends with tier rank: stronger placement never scores
	// below a weaker one, and missing contributes nothing.
	tiers := []combo.Tier{
		combo.TierTitleConsecutive,
		combo.TierTitleScattered,
		combo.TierTitleKeywordsCross,
		combo.TierTitleSubtitleCross,
		combo.TierKeywordsConsecutive,
		combo.TierSubtitleConsecutive,
		combo.TierKeywordsSubtitleCross,
		combo.TierKeywordsScattered,
		combo.TierSubtitleScattered,
		combo.TierThreeWayCross,
	}
	for i := 1; i < len(tiers); i++ {
		if StrengthScore(tiers[i]) >= StrengthScore(tiers[i-1]) {
			t.Errorf("StrengthScore(%s) should be below StrengthScore(%s)", tiers[i], tiers[i-1])
		}
	}
	if StrengthScore(combo.TierTitleConsecutive) != 100 {
		t.Error("Strongest tier should score 100")
	}
	if StrengthScore(combo.TierThreeWayCross) != 20 {
		t.Error("Weakest non-missing tier should score 20")
	}
	if StrengthScore(combo.TierMissing) != 0 {
		t.Error("Missing tier should score 0")
	}
}

func TestWeightConservation(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	ranking := &RankingData{Position: 15, IsRanking: true, TotalResults: 100, Trend: "up", PositionChange: 4}
	popularity := map[string]PopularityData{
		"learn":   {PopularityScore: 70, IntentScore: 0.6},
		"spanish": {PopularityScore: 80, IntentScore: 0.9},
	}

	for _, tier := range []combo.Tier{combo.TierTitleConsecutive, combo.TierSubtitleConsecutive, combo.TierMissing} {
		b := scorer.Score(testCombo("learn spanish", tier), ranking, popularity)

		want := int(math.Round(b.Strength*0.30 + b.Popularity*0.25 + b.Opportunity*0.20 + b.Trend*0.15 + b.Intent*0.10))
		if b.Total != want {
			t.Errorf("Tier %s: total %d, want %d from components", tier, b.Total, want)
		}
		if b.Total < 0 || b.Total > 100 {
			t.Errorf("Total out of [0,100]: %d", b.Total)
		}
	}
}

func TestPopularityComponent(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	popularity := map[string]PopularityData{
		"learn":   {PopularityScore: 60},
		"spanish": {PopularityScore: 80},
	}

	b := scorer.Score(testCombo("learn spanish", combo.TierTitleConsecutive), nil, popularity)
	if b.Popularity != 70 {
		t.Errorf("Expected mean popularity 70, got %f", b.Popularity)
	}

	// Partial data: only tokens with data count toward the mean
	b = scorer.Score(testCombo("learn zebra", combo.TierTitleConsecutive), nil, popularity)
	if b.Popularity != 60 {
		t.Errorf("Expected popularity 60 from the single covered token, got %f", b.Popularity)
	}

	// No data at all scores zero
	b = scorer.Score(testCombo("zebra giraffe", combo.TierTitleConsecutive), nil, nil)
	if b.Popularity != 0 {
		t.Errorf("Expected popularity 0 without data, got %f", b.Popularity)
	}
}

func TestOpportunityBands(t *testing.T) {
	cases := []struct {
		ranking *RankingData
		want    float64
	}{
		{nil, 50},
		{&RankingData{IsRanking: false, TotalResults: 0}, 80},
		{&RankingData{IsRanking: false, TotalResults: 125}, 75},
		{&RankingData{IsRanking: false, TotalResults: 10000}, 70},
		{&RankingData{IsRanking: true, Position: 3}, 5},
		{&RankingData{IsRanking: true, Position: 8}, 10},
		{&RankingData{IsRanking: true, Position: 15}, 60}, // the sweet spot
		{&RankingData{IsRanking: true, Position: 35}, 50},
		{&RankingData{IsRanking: true, Position: 80}, 40},
		{&RankingData{IsRanking: true, Position: 150}, 30},
	}
	for i, tc := range cases {
		if got := opportunityScore(tc.ranking); got != tc.want {
			t.Errorf("case %d: expected opportunity %f, got %f", i, tc.want, got)
		}
	}
}

func TestTrendRules(t *testing.T) {
	cases := []struct {
		ranking *RankingData
		want    float64
	}{
		{nil, 50},
		{&RankingData{Trend: "up", PositionChange: 5}, 90},
		{&RankingData{Trend: "up", PositionChange: 50}, 100},
		{&RankingData{Trend: "down", PositionChange: -5}, 30},
		{&RankingData{Trend: "down", PositionChange: -50}, 20},
		{&RankingData{Trend: "stable"}, 50},
		{&RankingData{Trend: "new"}, 60},
		{&RankingData{Trend: ""}, 50},
	}
	for i, tc := range cases {
		if got := trendScore(tc.ranking); got != tc.want {
			t.Errorf("case %d: expected trend %f, got %f", i, tc.want, got)
		}
	}
}

func TestIntentComponent(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	popularity := map[string]PopularityData{
		"learn":   {IntentScore: 0.4},
		"spanish": {IntentScore: 0.8},
	}

	b := scorer.Score(testCombo("learn spanish", combo.TierTitleConsecutive), nil, popularity)
	if math.Abs(b.Intent-60) > 1e-9 {
		t.Errorf("Expected intent 60, got %f", b.Intent)
	}

	b = scorer.Score(testCombo("zebra giraffe", combo.TierTitleConsecutive), nil, nil)
	if b.Intent != 50 {
		t.Errorf("Expected neutral intent 50 without data, got %f", b.Intent)
	}
}

func TestDataQuality(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	ranking := &RankingData{IsRanking: true, Position: 12}
	popularity := map[string]PopularityData{"learn": {PopularityScore: 50}}

	if q := scorer.Score(testCombo("learn spanish", combo.TierMissing), ranking, popularity).Quality; q != QualityComplete {
		t.Errorf("Expected complete, got %s", q)
	}
	if q := scorer.Score(testCombo("learn spanish", combo.TierMissing), ranking, nil).Quality; q != QualityPartial {
		t.Errorf("Expected partial with ranking only, got %s", q)
	}
	if q := scorer.Score(testCombo("learn spanish", combo.TierMissing), nil, popularity).Quality; q != QualityPartial {
		t.Errorf("Expected partial with popularity only, got %s", q)
	}
	if q := scorer.Score(testCombo("zebra giraffe", combo.TierMissing), nil, popularity).Quality; q != QualityMissing {
		t.Errorf("Expected missing when no token has data, got %s", q)
	}
}

func TestSelectTop(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	var scored []Scored
	for i := 0; i < 30; i++ {
		tier := combo.TierSubtitleConsecutive
		if i%3 == 0 {
			tier = combo.TierTitleConsecutive
		}
		c := testCombo(fmt.Sprintf("combo number%02d", i), tier)
		scored = append(scored, Scored{Combo: c, Breakdown: scorer.Score(c, nil, nil)})
	}

	sel := SelectTop(scored, 10)

	if len(sel.Combos) != 10 {
		t.Fatalf("Expected 10 selected, got %d", len(sel.Combos))
	}
	if !sel.Truncated || sel.TotalBeforeLimit != 30 {
		t.Errorf("Expected truncation report (30 before limit), got %+v", sel)
	}
	for i := 1; i < len(sel.Combos); i++ {
		if sel.Combos[i].Breakdown.Total > sel.Combos[i-1].Breakdown.Total {
			t.Error("Selection not sorted descending by total")
		}
	}
}

func TestSelectTopNoTruncation(t *testing.T) {
	c := testCombo("learn spanish", combo.TierTitleConsecutive)
	scored := []Scored{{Combo: c, Breakdown: NewScorer(DefaultWeights()).Score(c, nil, nil)}}

	sel := SelectTop(scored, 0) // default limit

	if sel.Truncated || len(sel.Combos) != 1 || sel.TotalBeforeLimit != 1 {
		t.Errorf("Unexpected selection: %+v", sel)
	}
}

func TestSelectTopDeterministicTiebreak(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	a := testCombo("alpha beta", combo.TierTitleConsecutive)
	b := testCombo("beta gamma", combo.TierTitleConsecutive)

	sel := SelectTop([]Scored{
		{Combo: b, Breakdown: scorer.Score(b, nil, nil)},
		{Combo: a, Breakdown: scorer.Score(a, nil, nil)},
	}, 10)

	if sel.Combos[0].Combo.Text != "alpha beta" {
		t.Errorf("Equal totals should break on combo text, got %q first", sel.Combos[0].Combo.Text)
	}
}
