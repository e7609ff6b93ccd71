package tokenizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	vocabFile  = "vocab.json"
	mergesFile = "merges.json"
)

// Save writes the vocabulary and the merge table to two artifacts under the
// configured output directory, creating it if needed.
//
// vocab.json is a symbol-to-id object; merges.json is an ordered list of
// [first, second] pairs whose position is the merge rank. Any failure
// surfaces as an error so callers never mistake a partial save for a
// complete one.
func (b *BPE) Save() error {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	vocabData, err := json.MarshalIndent(b.vocab.ids, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, vocabFile), vocabData, 0o644); err != nil {
		return fmt.Errorf("failed to write vocabulary artifact: %w", err)
	}

	pairs := make([][]string, len(b.merges))
	for i, p := range b.merges {
		pairs[i] = []string{p.first, p.second}
	}
	mergesData, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal merges: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, mergesFile), mergesData, 0o644); err != nil {
		return fmt.Errorf("failed to write merges artifact: %w", err)
	}

	return nil
}

// Load restores a previously saved vocabulary and merge table from the
// configured output directory.
//
// It returns (false, nil) when either artifact is absent and (false, err)
// when one is unreadable or malformed; in both cases the tokenizer keeps
// its pre-load state. On success the merge ranks are rebuilt from list
// order and the next free id is recomputed above the maximum loaded id, so
// resumed training cannot collide with loaded ids.
func (b *BPE) Load() (bool, error) {
	vocabData, err := os.ReadFile(filepath.Join(b.cfg.OutputDir, vocabFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read vocabulary artifact: %w", err)
	}

	mergesData, err := os.ReadFile(filepath.Join(b.cfg.OutputDir, mergesFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read merges artifact: %w", err)
	}

	ids := make(map[string]int32)
	if err := json.Unmarshal(vocabData, &ids); err != nil {
		return false, fmt.Errorf("failed to parse vocabulary artifact: %w", err)
	}

	var pairs [][]string
	if err := json.Unmarshal(mergesData, &pairs); err != nil {
		return false, fmt.Errorf("failed to parse merges artifact: %w", err)
	}

	merges := make([]pair, 0, len(pairs))
	ranks := make(map[pair]int, len(pairs))
	for i, entry := range pairs {
		if len(entry) != 2 {
			return false, fmt.Errorf("malformed merge entry at rank %d", i)
		}
		p := pair{entry[0], entry[1]}
		merges = append(merges, p)
		ranks[p] = i
	}

	loaded := emptyVocab()
	for sym, id := range ids {
		loaded.addFixed(sym, id)
	}

	b.vocab = loaded
	b.merges = merges
	b.ranks = ranks
	b.cache.Purge()

	return true, nil
}
