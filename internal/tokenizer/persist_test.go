package tokenizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	trained := New(Config{VocabSize: 1000, MinFrequency: 1, OutputDir: dir})
	require.NoError(t, trained.Train("low lower lowest"))
	require.NoError(t, trained.Save())

	loaded := New(Config{VocabSize: 1000, MinFrequency: 1, OutputDir: dir})
	ok, err := loaded.Load()
	require.NoError(t, err)
	require.True(t, ok)

	// Vocabulary and merge table reproduce exactly, order included.
	assert.Equal(t, trained.vocab.ids, loaded.vocab.ids)
	assert.Equal(t, trained.Merges(), loaded.Merges())
	assert.Equal(t, trained.ranks, loaded.ranks)

	// The loaded tokenizer encodes and decodes identically.
	wantIDs, err := trained.EncodeWithBoundaries("low lowest")
	require.NoError(t, err)
	gotIDs, err := loaded.EncodeWithBoundaries("low lowest")
	require.NoError(t, err)
	assert.Equal(t, wantIDs, gotIDs)

	text, err := loaded.Decode(gotIDs)
	require.NoError(t, err)
	assert.Equal(t, "low lowest", text)
}

func TestSave_CreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "out")

	bpe := New(Config{VocabSize: 1000, MinFrequency: 1, OutputDir: dir})
	require.NoError(t, bpe.Train("aa aa bb"))
	require.NoError(t, bpe.Save())

	for _, name := range []string{vocabFile, mergesFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestLoad_MissingArtifacts(t *testing.T) {
	bpe := New(Config{OutputDir: t.TempDir()})

	ok, err := bpe.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	// Pre-load state untouched.
	assert.Equal(t, 5, bpe.VocabSize())
}

func TestLoad_MissingMergesLeavesStateUntouched(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vocabFile), []byte(`{"a": 1}`), 0o644))

	bpe := New(Config{OutputDir: dir})
	ok, err := bpe.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 5, bpe.VocabSize())
}

func TestLoad_MalformedArtifact(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, vocabFile), []byte("not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, mergesFile), []byte("[]"), 0o644))

	bpe := New(Config{OutputDir: dir})
	ok, err := bpe.Load()
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, 5, bpe.VocabSize())
}

func TestLoad_ResumedTrainingCannotCollide(t *testing.T) {
	dir := t.TempDir()

	trained := New(Config{VocabSize: 1000, MinFrequency: 1, OutputDir: dir})
	require.NoError(t, trained.Train("low lower lowest"))
	require.NoError(t, trained.Save())

	loaded := New(Config{VocabSize: 1000, MinFrequency: 1, OutputDir: dir})
	ok, err := loaded.Load()
	require.NoError(t, err)
	require.True(t, ok)

	var maxID int32
	for _, id := range loaded.vocab.ids {
		if id > maxID {
			maxID = id
		}
	}
	assert.Equal(t, maxID+1, loaded.vocab.add("brand-new-symbol"))
}

func TestSave_UnwritableOutputDir(t *testing.T) {
	// A regular file where the output directory should be makes MkdirAll
	// fail; the caller sees an explicit error.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	bpe := New(Config{VocabSize: 1000, MinFrequency: 1, OutputDir: filepath.Join(blocker, "out")})
	require.NoError(t, bpe.Train("aa aa"))
	assert.Error(t, bpe.Save())
}
