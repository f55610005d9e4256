// Package classify assigns intent, tail-length, and semantic feature
// flags to combos using caller-supplied keyword lists. All predicates are
// plain set-membership checks; no fuzzy matching, no stemming.
package classify

import "strings"

// Intent categorizes a combo's likely search purpose
type Intent string

const (
	IntentNavigational  Intent = "Navigational"
	IntentTransactional Intent = "Transactional"
	IntentInformational Intent = "Informational"
	IntentNoise         Intent = "Noise"
)

// TailLength buckets a combo by word count
type TailLength string

const (
	TailShort TailLength = "short-tail" // 2 words
	TailMid   TailLength = "mid-tail"   // 3 words
	TailLong  TailLength = "long-tail"  // 4+ words
)

// noiseFillerRatio is the filler fraction above which a combo is Noise
const noiseFillerRatio = 0.4

// KeywordSets holds the semantic keyword lists a classifier matches
// against. Construct once and inject; there is no package-level registry.
type KeywordSets struct {
	Brand     []string
	Category  []string
	Benefit   []string
	Verbs     []string // call-to-action verbs
	TimeHints []string
	Stopwords []string
}

// Classifier evaluates combos against a fixed set of keyword lists
type Classifier struct {
	brand     map[string]struct{}
	category  map[string]struct{}
	benefit   map[string]struct{}
	verbs     map[string]struct{}
	timeHints map[string]struct{}
	stopwords map[string]struct{}
}

// New creates a classifier from the given keyword sets
func New(sets KeywordSets) *Classifier {
	return &Classifier{
		brand:     toSet(sets.Brand),
		category:  toSet(sets.Category),
		benefit:   toSet(sets.Benefit),
		verbs:     toSet(sets.Verbs),
		timeHints: toSet(sets.TimeHints),
		stopwords: toSet(sets.Stopwords),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// HasBrand reports whether any token is a brand token
func (c *Classifier) HasBrand(tokens []string) bool { return anyIn(tokens, c.brand) }

// HasCategory reports whether any token is a category keyword
func (c *Classifier) HasCategory(tokens []string) bool { return anyIn(tokens, c.category) }

// HasBenefit reports whether any token is a benefit keyword
func (c *Classifier) HasBenefit(tokens []string) bool { return anyIn(tokens, c.benefit) }

// HasVerb reports whether any token is a call-to-action verb
func (c *Classifier) HasVerb(tokens []string) bool { return anyIn(tokens, c.verbs) }

// HasTimeHint reports whether any token is a time-hint keyword
func (c *Classifier) HasTimeHint(tokens []string) bool { return anyIn(tokens, c.timeHints) }

// CategoryMatches returns the category tokens present, in token order
func (c *Classifier) CategoryMatches(tokens []string) []string { return matches(tokens, c.category) }

// BenefitMatches returns the benefit tokens present, in token order
func (c *Classifier) BenefitMatches(tokens []string) []string { return matches(tokens, c.benefit) }

// VerbMatches returns the call-to-action tokens present, in token order
func (c *Classifier) VerbMatches(tokens []string) []string { return matches(tokens, c.verbs) }

// TimeHintMatches returns the time-hint tokens present, in token order
func (c *Classifier) TimeHintMatches(tokens []string) []string { return matches(tokens, c.timeHints) }

func anyIn(tokens []string, set map[string]struct{}) bool {
	for _, tok := range tokens {
		if _, ok := set[strings.ToLower(tok)]; ok {
			return true
		}
	}
	return false
}

func matches(tokens []string, set map[string]struct{}) []string {
	var out []string
	for _, tok := range tokens {
		if _, ok := set[strings.ToLower(tok)]; ok {
			out = append(out, strings.ToLower(tok))
		}
	}
	return out
}

// FillerRatio returns the fraction of tokens that are stopwords, in [0,1]
func (c *Classifier) FillerRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	filler := 0
	for _, tok := range tokens {
		if _, ok := c.stopwords[strings.ToLower(tok)]; ok {
			filler++
		}
	}
	return float64(filler) / float64(len(tokens))
}

// Features holds the boolean semantic flags plus the filler ratio
type Features struct {
	HasBrand    bool
	HasCategory bool
	HasBenefit  bool
	HasVerb     bool
	HasTimeHint bool
	FillerRatio float64
}

// Features computes all semantic flags for a combo's tokens
func (c *Classifier) Features(tokens []string) Features {
	return Features{
		HasBrand:    c.HasBrand(tokens),
		HasCategory: c.HasCategory(tokens),
		HasBenefit:  c.HasBenefit(tokens),
		HasVerb:     c.HasVerb(tokens),
		HasTimeHint: c.HasTimeHint(tokens),
		FillerRatio: c.FillerRatio(tokens),
	}
}

// Intent classifies a combo's search intent. The checks run in a fixed
// priority order; the first match wins.
func (c *Classifier) Intent(tokens []string) Intent {
	f := c.Features(tokens)

	if f.FillerRatio > noiseFillerRatio {
		return IntentNoise
	}
	if !f.HasBrand && !f.HasCategory && !f.HasVerb {
		return IntentNoise
	}
	if f.HasBrand {
		return IntentNavigational
	}
	if f.HasVerb && f.HasCategory {
		return IntentTransactional
	}
	if f.HasCategory {
		return IntentInformational
	}
	// Fallback for combos with some signal but no clean category match.
	// Kept as its own branch: a future rule change may diverge it from
	// the explicit category branch above.
	return IntentInformational
}

// ByLength buckets a combo by token count: 2 words are short-tail, 3 are
// mid-tail, 4 or more are long-tail. Callers must pass at least two
// tokens; the generator never produces shorter combos.
func ByLength(tokens []string) TailLength {
	switch {
	case len(tokens) <= 2:
		return TailShort
	case len(tokens) == 3:
		return TailMid
	default:
		return TailLong
	}
}
