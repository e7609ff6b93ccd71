package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCorpus_CountsAndOrder(t *testing.T) {
	entries := buildCorpus("low low lower low", GranularityChar)
	require.Len(t, entries, 2)

	assert.Equal(t, []string{"l", "o", "w", EndOfWord}, entries[0].symbols)
	assert.Equal(t, 3, entries[0].count)

	assert.Equal(t, []string{"l", "o", "w", "e", "r", EndOfWord}, entries[1].symbols)
	assert.Equal(t, 1, entries[1].count)
}

func TestBuildCorpus_EveryWordEndsWithMarker(t *testing.T) {
	entries := buildCorpus("a bb ccc", GranularityByte)
	for _, e := range entries {
		require.NotEmpty(t, e.symbols)
		assert.Equal(t, EndOfWord, e.symbols[len(e.symbols)-1])
		// Marker appears exactly once.
		n := 0
		for _, s := range e.symbols {
			if s == EndOfWord {
				n++
			}
		}
		assert.Equal(t, 1, n)
	}
}

func TestSplitUnits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		g    Granularity
		want []string
	}{
		{
			name: "char mode ascii",
			in:   "hi",
			g:    GranularityChar,
			want: []string{"h", "i"},
		},
		{
			name: "char mode multibyte rune is one symbol",
			in:   "héllo",
			g:    GranularityChar,
			want: []string{"h", "é", "l", "l", "o"},
		},
		{
			name: "byte mode splits multibyte runes",
			in:   "é",
			g:    GranularityByte,
			want: []string{string(rune(0xC3)), string(rune(0xA9))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitUnits(tt.in, tt.g))
		})
	}
}
