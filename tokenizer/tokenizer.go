// Package tokenizer provides the public API of the subtok BPE tokenizer.
//
// It wraps the internal implementation and exposes training, encoding,
// decoding, persistence, and adapters for pretrained vocabularies.
//
// Example usage:
//
//	import "github.com/subtok-ml/subtok/tokenizer"
//
//	bpe := tokenizer.New(tokenizer.Config{
//	    VocabSize:    10000,
//	    MinFrequency: 2,
//	    OutputDir:    "data/output",
//	})
//	if err := bpe.Train(corpus); err != nil {
//	    log.Fatal(err)
//	}
//	if err := bpe.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, _ := bpe.EncodeWithBoundaries("hi hello")
//	text, _ := bpe.Decode(ids)
package tokenizer

import (
	"github.com/subtok-ml/subtok/internal/tokenizer"
)

// Tokenizer is the core interface for text tokenization.
//
// All tokenizer implementations must implement this interface.
type Tokenizer = tokenizer.Tokenizer

// BPE is a trainable Byte-Pair Encoding tokenizer.
type BPE = tokenizer.BPE

// Config holds construction-time settings for a BPE tokenizer.
type Config = tokenizer.Config

// Granularity selects the base unit words are split into.
type Granularity = tokenizer.Granularity

// Granularity modes.
const (
	GranularityChar = tokenizer.GranularityChar
	GranularityByte = tokenizer.GranularityByte
)

// Special token symbols and their fixed ids.
const (
	EndOfText   = tokenizer.EndOfText
	Padding     = tokenizer.Padding
	StartOfText = tokenizer.StartOfText
	Unknown     = tokenizer.Unknown
	Mask        = tokenizer.Mask
	EndOfWord   = tokenizer.EndOfWord

	EndOfTextID   = tokenizer.EndOfTextID
	PaddingID     = tokenizer.PaddingID
	StartOfTextID = tokenizer.StartOfTextID
	UnknownID     = tokenizer.UnknownID
	MaskID        = tokenizer.MaskID
)

// ErrEmptyCorpus reports that training received no usable text.
var ErrEmptyCorpus = tokenizer.ErrEmptyCorpus

// New creates an untrained BPE tokenizer. Zero Config fields take package
// defaults.
func New(cfg Config) *BPE {
	return tokenizer.New(cfg)
}

// Clean normalizes text the way training and encoding do: URLs and digit
// runs stripped, whitespace collapsed and trimmed.
func Clean(text string) string {
	return tokenizer.Clean(text)
}

// NewTikToken creates a tokenizer for a pretrained OpenAI encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (Tokenizer, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a tokenizer for a specific OpenAI model name.
func NewTikTokenForModel(modelName string) (Tokenizer, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}

// LoadFromHuggingFace builds a BPE tokenizer from a HuggingFace
// tokenizer.json file.
func LoadFromHuggingFace(path string) (*BPE, error) {
	return tokenizer.LoadFromHuggingFace(path)
}
