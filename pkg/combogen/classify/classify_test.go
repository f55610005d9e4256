package classify

import "testing"

func testClassifier() *Classifier {
	return New(KeywordSets{
		Brand:     []string{"pimsleur"},
		Category:  []string{"spanish", "language", "vocabulary"},
		Benefit:   []string{"fast", "easy"},
		Verbs:     []string{"learn", "speak"},
		TimeHints: []string{"daily", "now"},
		Stopwords: []string{"the", "a", "of", "and"},
	})
}

func TestIntentDecisionOrder(t *testing.T) {
	cls := testClassifier()

	cases := []struct {
		name   string
		tokens []string
		want   Intent
	}{
		{"high filler ratio is noise", []string{"the", "of", "spanish"}, IntentNoise},
		{"no semantic signal is noise", []string{"fast", "daily"}, IntentNoise},
		{"brand wins over verb and category", []string{"pimsleur", "learn", "spanish"}, IntentNavigational},
		{"verb plus category is transactional", []string{"learn", "spanish"}, IntentTransactional},
		{"category without verb is informational", []string{"spanish", "vocabulary"}, IntentInformational},
		{"verb without category falls back to informational", []string{"learn", "fast"}, IntentInformational},
	}

	for _, tc := range cases {
		if got := cls.Intent(tc.tokens); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestFillerRatio(t *testing.T) {
	cls := testClassifier()

	if r := cls.FillerRatio([]string{"the", "spanish"}); r != 0.5 {
		t.Errorf("Expected filler ratio 0.5, got %f", r)
	}
	if r := cls.FillerRatio([]string{"learn", "spanish"}); r != 0 {
		t.Errorf("Expected filler ratio 0, got %f", r)
	}
	if r := cls.FillerRatio(nil); r != 0 {
		t.Errorf("Empty input should have ratio 0, got %f", r)
	}
}

func TestFeatures(t *testing.T) {
	cls := testClassifier()

	f := cls.Features([]string{"pimsleur", "learn", "spanish", "daily"})

	if !f.HasBrand || !f.HasVerb || !f.HasCategory || !f.HasTimeHint {
		t.Errorf("Expected brand/verb/category/time flags set, got %+v", f)
	}
	if f.HasBenefit {
		t.Error("No benefit token present, flag should be false")
	}
}

func TestPredicatesAreCaseInsensitive(t *testing.T) {
	cls := testClassifier()

	if !cls.HasBrand([]string{"Pimsleur"}) {
		t.Error("Brand check should be case-insensitive")
	}
	if !cls.HasCategory([]string{"SPANISH"}) {
		t.Error("Category check should be case-insensitive")
	}
}

func TestMatchesPreserveTokenOrder(t *testing.T) {
	cls := testClassifier()

	got := cls.CategoryMatches([]string{"vocabulary", "fast", "spanish"})
	if len(got) != 2 || got[0] != "vocabulary" || got[1] != "spanish" {
		t.Errorf("Expected [vocabulary spanish], got %v", got)
	}
}

func TestByLength(t *testing.T) {
	cases := []struct {
		n    int
		want TailLength
	}{
		{2, TailShort},
		{3, TailMid},
		{4, TailLong},
		{6, TailLong},
	}
	for _, tc := range cases {
		tokens := make([]string, tc.n)
		for i := range tokens {
			tokens[i] = "w"
		}
		if got := ByLength(tokens); got != tc.want {
			t.Errorf("%d tokens: expected %s, got %s", tc.n, tc.want, got)
		}
	}
}
