// Package tokenizer implements a trainable subword tokenizer based on
// Byte-Pair Encoding (BPE).
//
// Training learns an ordered list of symbol-merge rules from a corpus:
//  1. Clean the text (strip URLs and digit runs, normalize whitespace)
//  2. Split into words; each word becomes a symbol sequence ending in </w>
//  3. Repeatedly merge the most frequent adjacent symbol pair
//
// Encoding replays the learned merges by rank over new text, always applying
// the earliest-learned merge first, then maps the resulting symbols to
// vocabulary ids. Decoding reverses the mapping.
//
// Example usage:
//
//	bpe := tokenizer.New(tokenizer.Config{VocabSize: 10000})
//	if err := bpe.Train(corpus); err != nil {
//	    log.Fatal(err)
//	}
//	if err := bpe.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, _ := bpe.EncodeWithBoundaries("hi hello")
//	text, _ := bpe.Decode(ids)
//
// Pretrained OpenAI encodings (tiktoken) and HuggingFace tokenizer.json
// vocabularies are available behind the same Tokenizer interface.
package tokenizer
