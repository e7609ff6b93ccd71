package tokenizer

import (
	"errors"
	"sort"
)

// ErrEmptyCorpus reports that training or encoding received no usable text
// after cleaning. It is recoverable: the tokenizer state is unchanged.
var ErrEmptyCorpus = errors.New("tokenizer: no usable text in corpus")

// Train learns merge rules from text until the vocabulary reaches the
// configured target size, no pair meets the minimum frequency, or no
// mergeable pair remains.
//
// Training is deterministic: word entries iterate in first-appearance order
// and ties between equally frequent pairs break lexicographically on the
// pair. Calling Train again continues from the current state; ids already
// assigned are never reused.
func (b *BPE) Train(text string) error {
	cleaned := Clean(text)
	if cleaned == "" {
		return ErrEmptyCorpus
	}

	words := buildCorpus(cleaned, b.cfg.Granularity)
	b.seedAlphabet(words)
	b.cache.Purge()

	for b.vocab.size() < b.cfg.VocabSize {
		counts := pairCounts(words)
		if len(counts) == 0 {
			break
		}
		best, freq := selectPair(counts)
		if freq < b.cfg.MinFrequency {
			break
		}
		mergeCorpus(words, best)
		b.addMerge(best)
	}

	return nil
}

// seedAlphabet inserts the end-of-word marker and every distinct base unit
// of the corpus, in sorted code-point order so id assignment is stable.
func (b *BPE) seedAlphabet(words []*wordEntry) {
	b.vocab.add(b.marker)

	seen := make(map[string]bool)
	for _, w := range words {
		for _, sym := range w.symbols {
			if sym != b.marker {
				seen[sym] = true
			}
		}
	}

	units := make([]string, 0, len(seen))
	for sym := range seen {
		units = append(units, sym)
	}
	sort.Strings(units)

	for _, sym := range units {
		b.vocab.add(sym)
	}
}

// addMerge records a merge rule at the next rank and inserts its merged
// symbol into the vocabulary if new.
func (b *BPE) addMerge(p pair) {
	b.ranks[p] = len(b.merges)
	b.merges = append(b.merges, p)
	b.vocab.add(p.first + p.second)
}

// pairCounts sums the occurrence-weighted counts of every adjacent symbol
// pair across the corpus. Pairs touching the end-of-word marker are
// excluded: merges must not cross word boundaries.
func pairCounts(words []*wordEntry) map[pair]int {
	counts := make(map[pair]int)
	for _, w := range words {
		for i := 0; i < len(w.symbols)-1; i++ {
			if w.symbols[i] == EndOfWord || w.symbols[i+1] == EndOfWord {
				continue
			}
			counts[pair{w.symbols[i], w.symbols[i+1]}] += w.count
		}
	}
	return counts
}

// selectPair picks the pair with the highest count. Ties break
// lexicographically on (first, second), so selection never depends on map
// iteration order.
func selectPair(counts map[pair]int) (pair, int) {
	var best pair
	bestCount := -1
	for p, c := range counts {
		if c > bestCount {
			best, bestCount = p, c
			continue
		}
		if c == bestCount && lessPair(p, best) {
			best = p
		}
	}
	return best, bestCount
}

func lessPair(a, b pair) bool {
	if a.first != b.first {
		return a.first < b.first
	}
	return a.second < b.second
}

// mergeCorpus rewrites every word entry, replacing each non-overlapping
// left-to-right occurrence of p with its concatenation.
func mergeCorpus(words []*wordEntry, p pair) {
	merged := p.first + p.second
	for _, w := range words {
		out := w.symbols[:0]
		i := 0
		for i < len(w.symbols) {
			if i < len(w.symbols)-1 && w.symbols[i] == p.first && w.symbols[i+1] == p.second {
				out = append(out, merged)
				i += 2
			} else {
				out = append(out, w.symbols[i])
				i++
			}
		}
		w.symbols = out
	}
}
