package tokenizer

// Granularity selects the base unit words are split into before merging.
type Granularity int

const (
	// GranularityChar splits words into runes. Characters unseen during
	// training encode to the unknown token.
	GranularityChar Granularity = iota

	// GranularityByte splits words into UTF-8 bytes, each rendered as a
	// code point. Any text can be represented from a 256-entry alphabet.
	GranularityByte
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultVocabSize    = 10000
	DefaultMinFrequency = 2
	DefaultOutputDir    = "data/output"
)

// Config holds the construction-time settings for a BPE tokenizer.
type Config struct {
	// VocabSize is the target vocabulary size, inclusive. Training stops
	// once the vocabulary reaches it.
	VocabSize int

	// MinFrequency is the minimum weighted count a pair must reach to be
	// merged, inclusive. Training stops when the best pair falls below it.
	MinFrequency int

	// OutputDir is where Save and Load place the vocab.json and
	// merges.json artifacts.
	OutputDir string

	// Granularity selects character-level or byte-level base units.
	Granularity Granularity
}

func (c Config) withDefaults() Config {
	if c.VocabSize <= 0 {
		c.VocabSize = DefaultVocabSize
	}
	if c.MinFrequency <= 0 {
		c.MinFrequency = DefaultMinFrequency
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	return c
}
