package generate

import "github.com/phraselift/combogen/pkg/combogen/combo"

// Metadata is the placement context a combo is checked against:
// the tokenized title, subtitle, and keywords field plus their
// membership sets.
type Metadata struct {
	titleTokens    []string
	subtitleTokens []string
	keywordTokens  []string
	titleSet       map[string]struct{}
	subtitleSet    map[string]struct{}
	keywordSet     map[string]struct{}

	// concatenated field sequences for cross-placement order checks
	titleKeywords []string
	titleSubtitle []string
	keywordsSub   []string
	allFields     []string
}

// NewMetadata builds a placement context from the tokenized triple
func NewMetadata(fields FieldTokens) *Metadata {
	return &Metadata{
		titleTokens:    fields.Title,
		subtitleTokens: fields.Subtitle,
		keywordTokens:  fields.Keywords,
		titleSet:       tokenSet(fields.Title),
		subtitleSet:    tokenSet(fields.Subtitle),
		keywordSet:     tokenSet(fields.Keywords),
		titleKeywords:  concat(fields.Title, fields.Keywords),
		titleSubtitle:  concat(fields.Title, fields.Subtitle),
		keywordsSub:    concat(fields.Keywords, fields.Subtitle),
		allFields:      concat(fields.Title, fields.Subtitle, fields.Keywords),
	}
}

func concat(fields ...[]string) []string {
	var out []string
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Place assigns the combo's strength tier. The checks run strongest
// first and the first match wins; they are mutually exclusive by
// construction, so every combo lands in exactly one tier.
func (m *Metadata) Place(tokens []string) combo.Tier {
	if len(tokens) == 0 {
		return combo.TierMissing
	}

	switch {
	case consecutiveIn(m.titleTokens, tokens):
		return combo.TierTitleConsecutive
	case inOrder(m.titleTokens, tokens):
		return combo.TierTitleScattered
	case m.crosses(tokens, m.titleKeywords, m.titleSet, m.keywordSet):
		return combo.TierTitleKeywordsCross
	case m.crosses(tokens, m.titleSubtitle, m.titleSet, m.subtitleSet):
		return combo.TierTitleSubtitleCross
	case consecutiveIn(m.keywordTokens, tokens):
		return combo.TierKeywordsConsecutive
	case consecutiveIn(m.subtitleTokens, tokens):
		return combo.TierSubtitleConsecutive
	case m.crosses(tokens, m.keywordsSub, m.keywordSet, m.subtitleSet):
		return combo.TierKeywordsSubtitleCross
	case inOrder(m.keywordTokens, tokens):
		return combo.TierKeywordsScattered
	case inOrder(m.subtitleTokens, tokens):
		return combo.TierSubtitleScattered
	case m.threeWay(tokens):
		return combo.TierThreeWayCross
	default:
		return combo.TierMissing
	}
}

// PresentAnywhere reports whether every token occurs in at least one
// metadata field.
func (m *Metadata) PresentAnywhere(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !m.inAnyField(tok) {
			return false
		}
	}
	return true
}

// PresenceRatio is the fraction of tokens occurring in any field
func (m *Metadata) PresenceRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	present := 0
	for _, tok := range tokens {
		if m.inAnyField(tok) {
			present++
		}
	}
	return float64(present) / float64(len(tokens))
}

func (m *Metadata) inAnyField(tok string) bool {
	if _, ok := m.titleSet[tok]; ok {
		return true
	}
	if _, ok := m.subtitleSet[tok]; ok {
		return true
	}
	_, ok := m.keywordSet[tok]
	return ok
}

// crosses reports a two-field split: the combo's words appear in order
// across the concatenated field pair, at least one token sits in the
// first field, and at least one token is provided only by the second.
// A combo whose words all sit in the first field never counts as a
// cross, even when the second field happens to repeat some of them.
func (m *Metadata) crosses(tokens, concatenated []string, first, second map[string]struct{}) bool {
	inFirst, secondOnly := false, false
	for _, tok := range tokens {
		_, f := first[tok]
		_, s := second[tok]
		if !f && !s {
			return false
		}
		if f {
			inFirst = true
		}
		if s && !f {
			secondOnly = true
		}
	}
	return inFirst && secondOnly && inOrder(concatenated, tokens)
}

// threeWay reports a split across all three fields: the words appear in
// order across title⧺subtitle⧺keywords, with the subtitle and keywords
// field each contributing a token the stronger fields do not supply.
func (m *Metadata) threeWay(tokens []string) bool {
	inTitle, subtitleOnly, keywordsOnly := false, false, false
	for _, tok := range tokens {
		_, t := m.titleSet[tok]
		_, s := m.subtitleSet[tok]
		_, k := m.keywordSet[tok]
		if !t && !s && !k {
			return false
		}
		if t {
			inTitle = true
		}
		if s && !t {
			subtitleOnly = true
		}
		if k && !t && !s {
			keywordsOnly = true
		}
	}
	return inTitle && subtitleOnly && keywordsOnly && inOrder(m.allFields, tokens)
}

// consecutiveIn reports whether the combo appears as an adjacent token
// window of the field, in order.
func consecutiveIn(field, tokens []string) bool {
	if len(tokens) == 0 || len(tokens) > len(field) {
		return false
	}
	for i := 0; i+len(tokens) <= len(field); i++ {
		match := true
		for j := range tokens {
			if field[i+j] != tokens[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// inOrder reports whether the combo's tokens appear in the field as an
// in-order subsequence (adjacency not required).
func inOrder(field, tokens []string) bool {
	if len(tokens) == 0 || len(tokens) > len(field) {
		return false
	}
	next := 0
	for _, ft := range field {
		if ft == tokens[next] {
			next++
			if next == len(tokens) {
				return true
			}
		}
	}
	return false
}
