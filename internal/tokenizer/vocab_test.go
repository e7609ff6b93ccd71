package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocab_SeedsSpecialTokens(t *testing.T) {
	v := newVocab()

	for sym, want := range map[string]int32{
		EndOfText:   EndOfTextID,
		Padding:     PaddingID,
		StartOfText: StartOfTextID,
		Unknown:     UnknownID,
		Mask:        MaskID,
	} {
		id, ok := v.id(sym)
		require.True(t, ok, sym)
		assert.Equal(t, want, id)
	}

	// First learned id sits strictly above the special range.
	assert.Equal(t, MaskID+1, v.add("a"))
}

func TestVocab_MonotoneIDs(t *testing.T) {
	v := newVocab()

	a := v.add("a")
	b := v.add("b")
	c := v.add("c")
	assert.Equal(t, a+1, b)
	assert.Equal(t, b+1, c)

	// Re-adding returns the existing id, never a new one.
	assert.Equal(t, a, v.add("a"))
	assert.Equal(t, c+1, v.add("d"))
}

func TestVocab_ReverseConsistency(t *testing.T) {
	v := newVocab()
	for _, sym := range []string{"x", "y", "xy"} {
		id := v.add(sym)
		got, ok := v.symbol(id)
		require.True(t, ok)
		assert.Equal(t, sym, got)
	}
	assert.Equal(t, 8, v.size()) // 5 specials + 3 learned
}

func TestVocab_AddFixedBumpsNextID(t *testing.T) {
	v := emptyVocab()
	v.addFixed("a", 7)
	v.addFixed("b", 3)
	assert.Equal(t, int32(8), v.add("c"))
}
