package tokenizer

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// wordCacheSize bounds the per-word encode cache.
const wordCacheSize = 8192

// pair is an adjacent symbol bigram. Merging a pair produces the
// concatenation of its two symbols.
type pair struct {
	first  string
	second string
}

// BPE is a trainable Byte-Pair Encoding tokenizer.
//
// Train mutates the vocabulary and merge table; once training finishes (or
// Load restores saved state) the tokenizer is read-only and Encode/Decode
// are pure functions of the trained state.
type BPE struct {
	cfg    Config
	vocab  *vocab
	merges []pair
	ranks  map[pair]int

	// marker is the end-of-word symbol appended to every word. Empty for
	// imported vocabularies that do not use word boundaries.
	marker string

	bosID  int32
	eosID  int32
	padID  int32
	unkID  int32
	maskID int32

	cache *lru.Cache
}

// New creates an untrained BPE tokenizer. Zero Config fields take the
// package defaults.
func New(cfg Config) *BPE {
	cache, _ := lru.New(wordCacheSize)
	return &BPE{
		cfg:    cfg.withDefaults(),
		vocab:  newVocab(),
		ranks:  make(map[pair]int),
		marker: EndOfWord,
		bosID:  StartOfTextID,
		eosID:  EndOfTextID,
		padID:  PaddingID,
		unkID:  UnknownID,
		maskID: MaskID,
		cache:  cache,
	}
}

// Encode converts text to token ids without boundary tokens.
//
// The text is cleaned and split exactly as during training; each word is
// reduced by replaying learned merges in rank order. Encode never fails:
// content absent from the vocabulary degrades to the unknown-token id.
func (b *BPE) Encode(text string) ([]int32, error) {
	cleaned := Clean(text)
	if cleaned == "" {
		return []int32{}, nil
	}

	var ids []int32
	for _, word := range strings.Fields(cleaned) {
		ids = append(ids, b.encodeWord(word)...)
	}
	return ids, nil
}

// EncodeWithBoundaries encodes text and wraps the result in the
// start-of-text and end-of-text ids. Empty input yields just the two
// boundary ids.
func (b *BPE) EncodeWithBoundaries(text string) ([]int32, error) {
	body, err := b.Encode(text)
	if err != nil {
		return nil, err
	}
	ids := make([]int32, 0, len(body)+2)
	ids = append(ids, b.bosID)
	ids = append(ids, body...)
	ids = append(ids, b.eosID)
	return ids, nil
}

// encodeWord tokenizes one word and maps its symbols to ids, memoizing the
// result. Trained state is frozen during encoding, so cached entries never
// go stale between training runs (Train purges the cache).
func (b *BPE) encodeWord(word string) []int32 {
	if cached, ok := b.cache.Get(word); ok {
		return cached.([]int32)
	}

	var ids []int32
	for _, sym := range b.tokenizeWord(word) {
		ids = append(ids, b.symbolIDs(sym)...)
	}

	b.cache.Add(word, ids)
	return ids
}

// tokenizeWord builds the word's initial symbol sequence and repeatedly
// applies the lowest-ranked merge present in the sequence until none apply.
// The earliest-learned merge always wins over a positionally earlier one.
func (b *BPE) tokenizeWord(word string) []string {
	symbols := splitUnits(word, b.cfg.Granularity)
	if b.marker != "" {
		symbols = append(symbols, b.marker)
	}

	for len(symbols) > 1 {
		bestIdx := -1
		bestRank := len(b.merges)
		for i := 0; i < len(symbols)-1; i++ {
			if rank, ok := b.ranks[pair{symbols[i], symbols[i+1]}]; ok && rank < bestRank {
				bestIdx = i
				bestRank = rank
			}
		}
		if bestIdx < 0 {
			break
		}
		symbols[bestIdx] += symbols[bestIdx+1]
		symbols = append(symbols[:bestIdx+1], symbols[bestIdx+2:]...)
	}

	return symbols
}

// symbolIDs maps a symbol to its id, falling back one base unit at a time
// when the symbol is absent. Each still-absent unit contributes one
// unknown-token id, so an unseen character costs exactly one id.
func (b *BPE) symbolIDs(sym string) []int32 {
	if id, ok := b.vocab.id(sym); ok {
		return []int32{id}
	}

	units := splitUnits(sym, b.cfg.Granularity)
	ids := make([]int32, 0, len(units))
	for _, unit := range units {
		if id, ok := b.vocab.id(unit); ok {
			ids = append(ids, id)
		} else {
			ids = append(ids, b.unkID)
		}
	}
	return ids
}

// Decode converts token ids back to text.
//
// The end-of-text id truncates the output; start-of-text, padding, mask and
// unknown ids are skipped; the end-of-word marker becomes a space. Ids
// mapped to no symbol at all are dropped rather than rendered as a
// placeholder, so reconstructed words are never corrupted by marker text.
// Decode inverts Encode only up to the information Clean discards.
func (b *BPE) Decode(ids []int32) (string, error) {
	var sb strings.Builder

loop:
	for _, id := range ids {
		switch id {
		case b.eosID:
			break loop
		case b.bosID, b.padID, b.maskID, b.unkID:
			continue
		}

		sym, ok := b.vocab.symbol(id)
		if !ok {
			continue
		}
		if b.marker != "" && sym == b.marker {
			sb.WriteString(" ")
			continue
		}
		sb.WriteString(sym)
	}

	text := sb.String()
	if b.cfg.Granularity == GranularityByte {
		text = restoreBytes(text)
	}
	return strings.TrimSpace(text), nil
}

// restoreBytes undoes the byte-as-code-point rendering of byte granularity:
// every rune below 256 collapses back to a single byte.
func restoreBytes(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 256 {
			out = append(out, byte(r))
		} else {
			out = append(out, string(r)...)
		}
	}
	return string(out)
}

// Merges returns the learned merge table in rank order.
func (b *BPE) Merges() [][2]string {
	out := make([][2]string, len(b.merges))
	for i, p := range b.merges {
		out[i] = [2]string{p.first, p.second}
	}
	return out
}

// VocabSize returns the total vocabulary size, special tokens included.
func (b *BPE) VocabSize() int {
	return b.vocab.size()
}

// BosToken returns the start-of-text token id.
func (b *BPE) BosToken() int32 { return b.bosID }

// EosToken returns the end-of-text token id.
func (b *BPE) EosToken() int32 { return b.eosID }

// PadToken returns the padding token id.
func (b *BPE) PadToken() int32 { return b.padID }

// UnkToken returns the unknown token id.
func (b *BPE) UnkToken() int32 { return b.unkID }

// IsSpecialToken checks if an id belongs to a reserved special token.
func (b *BPE) IsSpecialToken(id int32) bool {
	switch id {
	case b.bosID, b.eosID, b.padID, b.unkID, b.maskID:
		return true
	}
	return false
}
