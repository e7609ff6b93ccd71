package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const (
	encodingCL100kBase = "cl100k_base"
	encodingP50kBase   = "p50k_base"
	encodingR50kBase   = "r50k_base"
)

// TikToken adapts the pkoukk/tiktoken-go pretrained OpenAI encodings to the
// Tokenizer interface, so they are interchangeable with locally trained
// vocabularies.
//
// Supported encodings:
//   - cl100k_base: GPT-4, GPT-3.5-turbo
//   - p50k_base, r50k_base: GPT-3 era models
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken creates a TikToken tokenizer for a named encoding, e.g.
// "cl100k_base".
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &TikToken{encoding: encoding, name: encodingName}, nil
}

// NewTikTokenForModel creates a TikToken tokenizer for a model name, e.g.
// "gpt-4".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}
	return &TikToken{encoding: encoding, name: modelName}, nil
}

// Encode converts text to token ids.
func (t *TikToken) Encode(text string) ([]int32, error) {
	tokens := t.encoding.Encode(text, nil, nil)
	ids := make([]int32, len(tokens))
	for i, tok := range tokens {
		ids[i] = int32(tok)
	}
	return ids, nil
}

// Decode converts token ids back to text.
func (t *TikToken) Decode(ids []int32) (string, error) {
	tokens := make([]int, len(ids))
	for i, id := range ids {
		tokens[i] = int(id)
	}
	return t.encoding.Decode(tokens), nil
}

// VocabSize returns the encoding's vocabulary size.
func (t *TikToken) VocabSize() int {
	switch t.name {
	case encodingCL100kBase:
		return 100256
	case encodingP50kBase, encodingR50kBase:
		return 50257
	default:
		return 100000
	}
}

// BosToken returns -1: tiktoken encodings have no BOS token.
func (t *TikToken) BosToken() int32 { return -1 }

// EosToken returns the <|endoftext|> id for the encoding.
func (t *TikToken) EosToken() int32 {
	switch t.name {
	case encodingCL100kBase:
		return 100257
	case encodingP50kBase, encodingR50kBase:
		return 50256
	default:
		return -1
	}
}

// PadToken returns -1: tiktoken encodings define no padding token.
func (t *TikToken) PadToken() int32 { return -1 }

// UnkToken returns -1: byte-level BPE has no unknown token.
func (t *TikToken) UnkToken() int32 { return -1 }

// IsSpecialToken checks if an id is one of the encoding's reserved tokens.
func (t *TikToken) IsSpecialToken(id int32) bool {
	if id == t.EosToken() {
		return true
	}
	// cl100k_base reserves 100256-100276 for ChatML markers.
	return t.name == encodingCL100kBase && id >= 100256 && id <= 100276
}

// Name returns the encoding or model name the tokenizer was created with.
func (t *TikToken) Name() string { return t.name }
