package ingest

import (
	"strings"
	"unicode"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized lowercase word tokens.
// Every non-letter, non-digit rune acts as a separator; empty tokens
// are dropped. Stopwords are kept; partitioning them out is the job
// of Analyze, since combo placement needs the full token sequence.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// TokenAnalysis partitions a token sequence into core and filler tokens.
type TokenAnalysis struct {
	CoreTokens   []string // non-stopword tokens, deduplicated, first-seen order
	FillerTokens []string // stopword tokens, deduplicated, first-seen order
	Duplicates   []string // tokens occurring more than once, each listed once
}

// Analyze splits tokens into core vs. filler by stopword membership and
// reports duplicated tokens.
func (t *Tokenizer) Analyze(tokens []string) TokenAnalysis {
	var analysis TokenAnalysis
	counts := make(map[string]int, len(tokens))
	seenCore := make(map[string]struct{})
	seenFiller := make(map[string]struct{})

	for _, tok := range tokens {
		counts[tok]++
		if t.IsStopword(tok) {
			if _, ok := seenFiller[tok]; !ok {
				seenFiller[tok] = struct{}{}
				analysis.FillerTokens = append(analysis.FillerTokens, tok)
			}
		} else {
			if _, ok := seenCore[tok]; !ok {
				seenCore[tok] = struct{}{}
				analysis.CoreTokens = append(analysis.CoreTokens, tok)
			}
		}
	}

	seenDup := make(map[string]struct{})
	for _, tok := range tokens {
		if counts[tok] > 1 {
			if _, ok := seenDup[tok]; !ok {
				seenDup[tok] = struct{}{}
				analysis.Duplicates = append(analysis.Duplicates, tok)
			}
		}
	}

	return analysis
}

// IsStopword checks membership in the tokenizer's stopword set
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[strings.ToLower(word)]
	return ok
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}

// Stopwords returns the current stopword list
func (t *Tokenizer) Stopwords() []string {
	out := make([]string, 0, len(t.stopwords))
	for w := range t.stopwords {
		out = append(out, w)
	}
	return out
}
