package tokenizer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// hfTokenizerConfig is the subset of a HuggingFace tokenizer.json this
// importer understands.
type hfTokenizerConfig struct {
	Model struct {
		Vocab  map[string]int32 `json:"vocab"`
		Merges []string         `json:"merges"`
	} `json:"model"`
	AddedTokens []struct {
		ID      int32  `json:"id"`
		Content string `json:"content"`
		Special bool   `json:"special"`
	} `json:"added_tokens"`
}

// LoadFromHuggingFace builds a BPE tokenizer from the model.vocab and
// model.merges sections of a HuggingFace tokenizer.json file.
//
// Imported vocabularies carry their own id assignments and generally have
// no end-of-word marker, so decoded words are concatenated without spaces
// unless the vocabulary's symbols encode boundaries themselves. Special
// token ids are taken from added_tokens where recognizable; unresolved ones
// stay at -1.
func LoadFromHuggingFace(path string) (*BPE, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokenizer.json: %w", err)
	}

	var config hfTokenizerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tokenizer.json: %w", err)
	}
	if len(config.Model.Vocab) == 0 {
		return nil, fmt.Errorf("tokenizer.json has no model.vocab section")
	}

	b := New(Config{VocabSize: len(config.Model.Vocab)})
	b.vocab = emptyVocab()
	b.marker = ""
	b.bosID, b.eosID, b.padID, b.unkID, b.maskID = -1, -1, -1, -1, -1

	for sym, id := range config.Model.Vocab {
		b.vocab.addFixed(sym, id)
	}
	if _, ok := b.vocab.id(EndOfWord); ok {
		// Suffix-marker vocabularies (the </w> convention) do carry word
		// boundaries; keep space reconstruction for them.
		b.marker = EndOfWord
	}

	for _, mergeStr := range config.Model.Merges {
		parts := strings.Fields(mergeStr)
		if len(parts) != 2 {
			continue
		}
		p := pair{parts[0], parts[1]}
		b.ranks[p] = len(b.merges)
		b.merges = append(b.merges, p)
	}

	for _, added := range config.AddedTokens {
		if !added.Special {
			continue
		}
		content := strings.ToLower(added.Content)
		switch {
		case strings.Contains(content, "bos") || content == "<s>":
			b.bosID = added.ID
		case strings.Contains(content, "eos") || content == "</s>" || strings.Contains(content, "endoftext"):
			b.eosID = added.ID
		case strings.Contains(content, "pad"):
			b.padID = added.ID
		case strings.Contains(content, "unk"):
			b.unkID = added.ID
		case strings.Contains(content, "mask"):
			b.maskID = added.ID
		}
	}

	return b, nil
}
