package ingest

import "strings"

// GenerateNgrams produces every contiguous token window of length n, for
// each n in [minLen, maxLen], preserving token order. Windows that would
// run past the end of the token list are simply not produced.
func GenerateNgrams(tokens []string, minLen, maxLen int) []string {
	if len(tokens) == 0 || minLen <= 0 || maxLen < minLen {
		return nil
	}

	var ngrams []string
	for n := minLen; n <= maxLen; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			ngrams = append(ngrams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return ngrams
}

// FilterMeaningful retains only n-grams where at least one constituent
// token is not a stopword. Pure-filler n-grams ("the a") are discarded
// outright, never scored.
func (t *Tokenizer) FilterMeaningful(ngrams []string) []string {
	var kept []string
	for _, ng := range ngrams {
		for _, tok := range strings.Fields(ng) {
			if !t.IsStopword(tok) {
				kept = append(kept, ng)
				break
			}
		}
	}
	return kept
}
