package tokenizer

// Special token symbols. The surrounding <|...|> form comes from the GPT
// convention; these are reserved and never produced by merging.
const (
	EndOfText   = "<|endoftext|>"
	Padding     = "<|padding|>"
	StartOfText = "<|startoftext|>"
	Unknown     = "<|unk|>"
	Mask        = "<|mask|>"
)

// EndOfWord marks a word boundary inside a symbol sequence. It is appended
// to every word during corpus construction and merges never cross it.
const EndOfWord = "</w>"

// Fixed ids for the special tokens. Learned symbols are always assigned ids
// strictly above MaskID, so the two id spaces cannot collide.
const (
	EndOfTextID   int32 = 100257
	PaddingID     int32 = 100258
	StartOfTextID int32 = 100259
	UnknownID     int32 = 100260
	MaskID        int32 = 100261
)

// Tokenizer is the core interface for text tokenization.
//
// Both trained BPE vocabularies and pretrained adapters (tiktoken,
// HuggingFace) implement this interface.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(ids []int32) (string, error)

	// VocabSize returns the total vocabulary size.
	VocabSize() int

	// BosToken returns the beginning-of-sequence token ID.
	// Returns -1 if not applicable.
	BosToken() int32

	// EosToken returns the end-of-sequence token ID.
	// Returns -1 if not applicable.
	EosToken() int32

	// PadToken returns the padding token ID.
	// Returns -1 if not applicable.
	PadToken() int32

	// UnkToken returns the unknown token ID.
	// Returns -1 if not applicable.
	UnkToken() int32

	// IsSpecialToken checks if a token ID is a special token.
	IsSpecialToken(id int32) bool
}
