package redundancy

import (
	"testing"

	"github.com/phraselift/combogen/pkg/combogen/classify"
	"github.com/phraselift/combogen/pkg/combogen/combo"
)

func TestFindRedundantPrefixGroup(t *testing.T) {
	report := FindRedundant([]string{
		"learn spanish fast",
		"learn spanish today",
		"french vocabulary",
	})

	if len(report.Groups) != 1 {
		t.Fatalf("Expected one group, got %d: %+v", len(report.Groups), report.Groups)
	}
	g := report.Groups[0]
	if g.Pattern != "learn spanish" || g.Kind != "prefix" {
		t.Errorf("Unexpected group %+v", g)
	}
	if len(g.Combos) != 2 {
		t.Errorf("Expected 2 members, got %d", len(g.Combos))
	}
	if g.WastedTokens != 2 {
		t.Errorf("One extra repetition of a 2-token pattern wastes 2 tokens, got %d", g.WastedTokens)
	}
	if report.RedundantCombos != 2 {
		t.Errorf("Expected 2 redundant combos, got %d", report.RedundantCombos)
	}
	if report.Score <= 0 {
		t.Error("Waste present, score should be positive")
	}
}

func TestFindRedundantSuffixGroup(t *testing.T) {
	report := FindRedundant([]string{
		"learn spanish fast",
		"speak spanish fast",
	})

	var suffix *Group
	for i := range report.Groups {
		if report.Groups[i].Kind == "suffix" {
			suffix = &report.Groups[i]
		}
	}
	if suffix == nil {
		t.Fatal("Expected a suffix group")
	}
	if suffix.Pattern != "spanish fast" {
		t.Errorf("Expected suffix pattern %q, got %q", "spanish fast", suffix.Pattern)
	}
}

func TestFindRedundantCountsComboOnce(t *testing.T) {
	// A combo in both a prefix and a suffix group counts once
	report := FindRedundant([]string{
		"learn spanish fast",
		"learn spanish today",
		"speak spanish fast",
	})

	if report.RedundantCombos != 3 {
		t.Errorf("Expected 3 distinct redundant combos, got %d", report.RedundantCombos)
	}
}

func TestFindRedundantNoGroups(t *testing.T) {
	report := FindRedundant([]string{"learn spanish", "french vocabulary", "daily practice"})

	if len(report.Groups) != 0 || report.Score != 0 || report.WastedTokens != 0 {
		t.Errorf("Disjoint combos should report nothing, got %+v", report)
	}
}

func TestFindRedundantSingleTokenSkipped(t *testing.T) {
	report := FindRedundant([]string{"spanish", "spanish", "spanish"})

	if len(report.Groups) != 0 {
		t.Errorf("Combos shorter than the pattern cannot group, got %+v", report.Groups)
	}
}

func TestFindRedundantEmpty(t *testing.T) {
	report := FindRedundant(nil)
	if report.Score != 0 || report.RedundantCombos != 0 {
		t.Errorf("Empty input should report zero, got %+v", report)
	}
}

func TestRedundancyScoreBounds(t *testing.T) {
	if got := redundancyScore(10, 10, 100); got > 100 {
		t.Errorf("Score must cap at 100, got %d", got)
	}
	if got := redundancyScore(0, 0, 0); got != 0 {
		t.Errorf("No combos should score 0, got %d", got)
	}
	full := redundancyScore(10, 10, 20)
	if full != 100 {
		t.Errorf("All-redundant with saturated waste should score 100, got %d", full)
	}
}

func TestFindRedundantDeterministic(t *testing.T) {
	combos := []string{
		"learn spanish fast",
		"learn spanish today",
		"learn french fast",
		"speak french fast",
	}
	first := FindRedundant(combos)
	for i := 0; i < 5; i++ {
		again := FindRedundant(combos)
		if len(again.Groups) != len(first.Groups) {
			t.Fatal("Group count varies across runs")
		}
		for j := range again.Groups {
			if again.Groups[j].Pattern != first.Groups[j].Pattern || again.Groups[j].Kind != first.Groups[j].Kind {
				t.Fatal("Group order varies across runs")
			}
		}
	}
}

func opportunityClassifier() *classify.Classifier {
	return classify.New(classify.KeywordSets{
		Category:  []string{"language", "vocabulary"},
		Benefit:   []string{"fast", "easy"},
		Verbs:     []string{"learn", "speak"},
		TimeHints: []string{"daily", "minutes"},
	})
}

func TestIdentifyOpportunitiesAllMissing(t *testing.T) {
	cls := opportunityClassifier()
	meta := combo.Tokens("learn language fast daily")

	report := IdentifyOpportunities(meta, nil, cls)

	if len(report.Opportunities) != 3 {
		t.Fatalf("All three clusters have ingredients and no coverage, got %d", len(report.Opportunities))
	}
	if report.EstimatedGain != 15 {
		t.Errorf("Three clusters at 5 points each, got %d", report.EstimatedGain)
	}
	for _, op := range report.Opportunities {
		if op.Example == "" || op.Suggestion == "" {
			t.Errorf("Opportunity missing example or suggestion: %+v", op)
		}
	}
}

func TestIdentifyOpportunitiesCoveredClusterSkipped(t *testing.T) {
	cls := opportunityClassifier()
	meta := combo.Tokens("learn language fast daily")
	existing := [][]string{combo.Tokens("language fast")} // category+benefit covered

	report := IdentifyOpportunities(meta, existing, cls)

	for _, op := range report.Opportunities {
		if op.Cluster == "category+benefit" {
			t.Error("Covered cluster should not be suggested")
		}
	}
	if len(report.Opportunities) != 2 {
		t.Errorf("Expected the two uncovered clusters, got %d", len(report.Opportunities))
	}
}

func TestIdentifyOpportunitiesMissingIngredients(t *testing.T) {
	cls := opportunityClassifier()
	// No time hint in the metadata: time+benefit cannot be suggested
	meta := combo.Tokens("learn language fast")

	report := IdentifyOpportunities(meta, nil, cls)

	for _, op := range report.Opportunities {
		if op.Cluster == "time+benefit" {
			t.Error("Cluster without ingredients should not be suggested")
		}
	}
}

func TestIdentifyOpportunitiesEmptyMetadata(t *testing.T) {
	report := IdentifyOpportunities(nil, nil, opportunityClassifier())
	if len(report.Opportunities) != 0 || report.EstimatedGain != 0 {
		t.Errorf("No metadata tokens, expected empty report, got %+v", report)
	}
}
