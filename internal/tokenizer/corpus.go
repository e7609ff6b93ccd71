package tokenizer

import "strings"

// wordEntry is one unique word of the training corpus: its current symbol
// sequence (rewritten as merges are applied) and how often the word occurs.
type wordEntry struct {
	symbols []string
	count   int
}

// buildCorpus splits cleaned text into words and collapses identical words
// into frequency-counted entries. Entries keep first-appearance order so
// later iteration is reproducible across runs.
func buildCorpus(cleaned string, g Granularity) []*wordEntry {
	var entries []*wordEntry
	index := make(map[string]int)

	for _, word := range strings.Fields(cleaned) {
		if i, ok := index[word]; ok {
			entries[i].count++
			continue
		}
		index[word] = len(entries)
		entries = append(entries, &wordEntry{
			symbols: splitWord(word, g),
			count:   1,
		})
	}

	return entries
}

// splitWord produces a word's initial symbol sequence: one symbol per base
// unit plus a single trailing end-of-word marker.
func splitWord(word string, g Granularity) []string {
	units := splitUnits(word, g)
	return append(units, EndOfWord)
}

// splitUnits splits a string into base units without the end-of-word marker.
func splitUnits(s string, g Granularity) []string {
	var units []string
	if g == GranularityByte {
		units = make([]string, 0, len(s))
		for i := 0; i < len(s); i++ {
			units = append(units, string(rune(s[i])))
		}
		return units
	}
	for _, r := range s {
		units = append(units, string(r))
	}
	return units
}
