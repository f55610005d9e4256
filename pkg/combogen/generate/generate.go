// Package generate enumerates candidate keyword combos from app metadata
// fields, bounds the combinatorial blowup, and determines where (if
// anywhere) each combo already lives in the metadata.
package generate

import (
	"sort"
	"strings"

	"github.com/phraselift/combogen/pkg/combogen/combo"
)

// Generation defaults
const (
	DefaultMinLen         = 2
	DefaultMaxLen         = 4
	DefaultPerSourceLimit = 500
	DefaultTotalLimit     = 2500
)

// lowValueWords is the fixed generation-time stopword list: articles,
// conjunctions, and auxiliary verbs that never earn a slot in a combo.
// Deliberately distinct from the analysis stopword set injected into the
// tokenizer and classifier; the two lists are not unified.
var lowValueWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "or": {}, "but": {}, "nor": {}, "so": {}, "yet": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {}, "am": {},
	"do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "shall": {}, "should": {},
	"can": {}, "could": {}, "may": {}, "might": {}, "must": {},
}

// FieldTokens carries the tokenized metadata triple
type FieldTokens struct {
	Title    []string
	Subtitle []string
	Keywords []string
}

// Options bounds and shapes a generation run
type Options struct {
	MinLen         int // minimum combo word count (default 2)
	MaxLen         int // maximum combo word count (default 4)
	PerSourceLimit int // combos generated per source (default 500)
	TotalLimit     int // combos generated across all sources (default 2500)
}

func (o Options) withDefaults() Options {
	if o.MinLen <= 0 {
		o.MinLen = DefaultMinLen
	}
	if o.MaxLen < o.MinLen {
		o.MaxLen = DefaultMaxLen
	}
	if o.PerSourceLimit <= 0 {
		o.PerSourceLimit = DefaultPerSourceLimit
	}
	if o.TotalLimit <= 0 {
		o.TotalLimit = DefaultTotalLimit
	}
	return o
}

// Result is the outcome of a generation run. A reached limit is a
// reported condition, not an error: the combo set is valid but partial.
type Result struct {
	Combos         []string // unique combos, canonical-deduplicated, sorted
	TotalGenerated int      // combinations produced before deduplication
	LimitReached   bool
}

// sourcePool is one generation source: an ordered token pool split into
// per-field segments. Cross-field sources carry one segment per field and
// every emitted combo must draw at least one token from each segment.
type sourcePool struct {
	segments [][]string
}

func (p sourcePool) hasEmptySegment() bool {
	for _, seg := range p.segments {
		if len(seg) == 0 {
			return true
		}
	}
	return false
}

func (p sourcePool) flatten() []string {
	var flat []string
	for _, seg := range p.segments {
		flat = append(flat, seg...)
	}
	return flat
}

// boundaries returns the start offset of each segment in the flat pool
func (p sourcePool) boundaries() []int {
	offsets := make([]int, len(p.segments))
	off := 0
	for i, seg := range p.segments {
		offsets[i] = off
		off += len(seg)
	}
	return offsets
}

// drawsFromEachSegment verifies the combination touches every segment
func (p sourcePool) drawsFromEachSegment(idx []int) bool {
	if len(p.segments) == 1 {
		return true
	}
	offsets := p.boundaries()
	for i := range p.segments {
		lo := offsets[i]
		hi := lo + len(p.segments[i])
		found := false
		for _, pos := range idx {
			if pos >= lo && pos < hi {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GenerateAll enumerates all plausible 2–4 word combos across the
// single-field and cross-field sources, capping work per source and in
// aggregate via early exit, and deduplicating by canonical form.
//
// Output is deterministic for fixed inputs: sources run in a fixed order,
// combinations are walked in index order, and the final set is sorted.
func GenerateAll(fields FieldTokens, opts Options) Result {
	opts = opts.withDefaults()

	title := filterLowValue(fields.Title)
	subtitle := filterLowValue(fields.Subtitle)
	keywords := filterLowValue(fields.Keywords)

	pools := []sourcePool{
		{segments: [][]string{title}},
		{segments: [][]string{subtitle}},
		{segments: [][]string{keywords}},
		{segments: [][]string{title, subtitle}},
		{segments: [][]string{title, keywords}},
		{segments: [][]string{keywords, subtitle}},
		{segments: [][]string{title, subtitle, keywords}},
	}

	var result Result
	total := newBudget(opts.TotalLimit)
	seen := make(map[string]struct{})
	var unique []string

	for _, pool := range pools {
		if pool.hasEmptySegment() {
			continue // a cross source needs every field populated
		}
		flat := pool.flatten()
		if len(flat) < opts.MinLen {
			continue
		}

		perSource := newBudget(opts.PerSourceLimit)
		for k := opts.MinLen; k <= opts.MaxLen; k++ {
			it := newComboIterator(flat, k)
			for {
				idx, ok := it.Next()
				if !ok {
					break
				}
				if !pool.drawsFromEachSegment(idx) {
					continue
				}
				tokens := it.tokensAt(idx)
				if hasDuplicateTokens(tokens) {
					continue
				}

				// Stop producing, not produce-then-truncate: both caps
				// are checked before the combo is materialized further.
				if !perSource.take() || !total.take() {
					result.LimitReached = true
					break
				}
				result.TotalGenerated++

				text := strings.Join(tokens, " ")
				key := combo.CanonicalForm(text)
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					unique = append(unique, text)
				}
			}
			if perSource.exhausted || total.exhausted {
				break
			}
		}
		if total.exhausted {
			break
		}
	}

	sort.Strings(unique)
	result.Combos = unique
	return result
}

// filterLowValue drops low-value words and deduplicates the field's
// tokens in first-seen order, producing the generation pool.
func filterLowValue(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, tok := range tokens {
		if _, low := lowValueWords[tok]; low {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
