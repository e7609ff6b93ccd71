// Package main provides the subtok CLI driver: train a BPE tokenizer on a
// text file, save the artifacts, then reload them and run a sample
// encode/decode round trip.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/subtok-ml/subtok/tokenizer"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "data/input/userdata.txt", "path to the training text file")
		outputDir  = flag.String("out", "data/output", "directory for vocab.json and merges.json")
		vocabSize  = flag.Int("vocab-size", 10000, "target vocabulary size")
		minFreq    = flag.Int("min-frequency", 2, "minimum pair frequency to merge")
		byteLevel  = flag.Bool("bytes", false, "use byte-level base units instead of characters")
		sample     = flag.String("sample", "hi hello", "text to encode/decode after training")
	)
	flag.Parse()

	data, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("failed to read corpus: %v", err)
	}

	cfg := tokenizer.Config{
		VocabSize:    *vocabSize,
		MinFrequency: *minFreq,
		OutputDir:    *outputDir,
	}
	if *byteLevel {
		cfg.Granularity = tokenizer.GranularityByte
	}

	bpe := tokenizer.New(cfg)
	if err := bpe.Train(string(data)); err != nil {
		log.Fatalf("training failed: %v", err)
	}
	fmt.Printf("trained: vocab size %d\n", bpe.VocabSize())

	if err := bpe.Save(); err != nil {
		log.Fatalf("save failed: %v", err)
	}
	fmt.Printf("saved artifacts to %s\n", *outputDir)

	// Reload into a fresh instance to exercise the persisted state.
	restored := tokenizer.New(cfg)
	ok, err := restored.Load()
	if err != nil {
		log.Fatalf("load failed: %v", err)
	}
	if !ok {
		log.Fatal("load failed: artifacts missing")
	}

	ids, err := restored.EncodeWithBoundaries(*sample)
	if err != nil {
		log.Fatalf("encode failed: %v", err)
	}
	text, err := restored.Decode(ids)
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	fmt.Printf("encoded: %v\n", ids)
	fmt.Printf("decoded: %q\n", text)
}
