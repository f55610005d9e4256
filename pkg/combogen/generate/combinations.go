package generate

// budget is a shared countdown over how many combinations may still be
// produced. Iterators stop pulling once it is spent, so pathological
// inputs are bounded during generation rather than truncated after.
type budget struct {
	remaining int
	exhausted bool // a combination was withheld because remaining hit zero
}

func newBudget(n int) *budget {
	return &budget{remaining: n}
}

// take consumes one unit. It returns false, and marks the budget
// exhausted, once nothing remains.
func (b *budget) take() bool {
	if b.remaining <= 0 {
		b.exhausted = true
		return false
	}
	b.remaining--
	return true
}

// comboIterator walks the k-combinations of a token pool in index order.
// Combinations preserve the pool's relative token order (they are
// combinations of positions, not permutations). Each call to Next either
// yields the next combination or reports exhaustion; a fresh iterator is
// restartable per call site.
type comboIterator struct {
	pool []string
	k    int
	idx  []int
	done bool
}

func newComboIterator(pool []string, k int) *comboIterator {
	it := &comboIterator{pool: pool, k: k}
	if k <= 0 || k > len(pool) {
		it.done = true
	}
	return it
}

// Next returns the next combination's positions, or false when exhausted.
// The returned slice is only valid until the following call.
func (it *comboIterator) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}

	if it.idx == nil {
		it.idx = make([]int, it.k)
		for i := range it.idx {
			it.idx[i] = i
		}
		return it.idx, true
	}

	// Advance the rightmost index that can still move
	i := it.k - 1
	for i >= 0 && it.idx[i] == len(it.pool)-it.k+i {
		i--
	}
	if i < 0 {
		it.done = true
		return nil, false
	}
	it.idx[i]++
	for j := i + 1; j < it.k; j++ {
		it.idx[j] = it.idx[j-1] + 1
	}
	return it.idx, true
}

// tokensAt materializes the tokens for a combination of positions
func (it *comboIterator) tokensAt(idx []int) []string {
	out := make([]string, len(idx))
	for i, p := range idx {
		out[i] = it.pool[p]
	}
	return out
}

// hasDuplicateTokens reports whether any token value repeats. Cross-field
// pools can hold the same word twice (once per field); such combinations
// are skipped.
func hasDuplicateTokens(tokens []string) bool {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			return true
		}
		seen[tok] = struct{}{}
	}
	return false
}
