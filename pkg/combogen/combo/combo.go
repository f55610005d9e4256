// Package combo defines the shared combo vocabulary: placement tiers,
// sources, canonical identity, and deduplication.
package combo

import (
	"sort"
	"strings"
)

// Source identifies which metadata field(s) contain a combo's words.
type Source string

const (
	SourceTitle    Source = "title"
	SourceSubtitle Source = "subtitle"
	SourceKeywords Source = "keywords"
	SourceCross    Source = "both" // words split across fields
	SourceMissing  Source = "missing"
)

// Tier is a combo's placement strength. Lower values are stronger; the
// constants are declared strongest first so ordinal comparison matches
// ranking power.
type Tier int

const (
	TierTitleConsecutive Tier = iota
	TierTitleScattered
	TierTitleKeywordsCross
	TierTitleSubtitleCross
	TierKeywordsConsecutive
	TierSubtitleConsecutive
	TierKeywordsSubtitleCross
	TierKeywordsScattered
	TierSubtitleScattered
	TierThreeWayCross
	TierMissing
)

var tierLabels = map[Tier]string{
	TierTitleConsecutive:      "title-consecutive",
	TierTitleScattered:        "title-non-consecutive",
	TierTitleKeywordsCross:    "title-keywords-cross",
	TierTitleSubtitleCross:    "title-subtitle-cross",
	TierKeywordsConsecutive:   "keywords-consecutive",
	TierSubtitleConsecutive:   "subtitle-consecutive",
	TierKeywordsSubtitleCross: "keywords-subtitle-cross",
	TierKeywordsScattered:     "keywords-non-consecutive",
	TierSubtitleScattered:     "subtitle-non-consecutive",
	TierThreeWayCross:         "three-way-cross",
	TierMissing:               "missing",
}

// String returns the human-readable tier label
func (t Tier) String() string {
	if label, ok := tierLabels[t]; ok {
		return label
	}
	return "unknown"
}

// StrongerThan reports whether t outranks other
func (t Tier) StrongerThan(other Tier) bool {
	return t < other
}

// Source maps a tier to the metadata field(s) providing it
func (t Tier) Source() Source {
	switch t {
	case TierTitleConsecutive, TierTitleScattered:
		return SourceTitle
	case TierKeywordsConsecutive, TierKeywordsScattered:
		return SourceKeywords
	case TierSubtitleConsecutive, TierSubtitleScattered:
		return SourceSubtitle
	case TierTitleKeywordsCross, TierTitleSubtitleCross, TierKeywordsSubtitleCross, TierThreeWayCross:
		return SourceCross
	default:
		return SourceMissing
	}
}

// Consecutive reports whether the tier implies the words sit adjacent
// in a single field.
func (t Tier) Consecutive() bool {
	switch t {
	case TierTitleConsecutive, TierKeywordsConsecutive, TierSubtitleConsecutive:
		return true
	}
	return false
}

// Tokens splits a combo's surface text into its lowercase tokens
func Tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// CanonicalForm produces the order- and case-independent identity key for
// a combo: its token multiset, sorted and space-joined. The key is used
// strictly for deduplication and equality, never for display.
func CanonicalForm(text string) string {
	tokens := Tokens(text)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Dedupe collapses combos that share a canonical form, keeping the
// first-seen surface text for each. An explicit canonical-key map is used
// rather than a set of display strings so that differently ordered or
// cased variants collapse to one entity.
func Dedupe(combos []string) []string {
	seen := make(map[string]struct{}, len(combos))
	out := make([]string, 0, len(combos))
	for _, c := range combos {
		key := CanonicalForm(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
