package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTikToken_RoundTrip(t *testing.T) {
	tok, err := NewTikToken("cl100k_base")
	if err != nil {
		t.Skipf("cl100k_base unavailable (offline?): %v", err)
	}

	text := "Hello, world!"
	ids, err := tok.Encode(text)
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	decoded, err := tok.Decode(ids)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)

	assert.Equal(t, 100256, tok.VocabSize())
	assert.Equal(t, int32(100257), tok.EosToken())
	assert.True(t, tok.IsSpecialToken(tok.EosToken()))
}

func TestTikToken_InvalidEncoding(t *testing.T) {
	tok, err := NewTikToken("no_such_encoding")
	assert.Error(t, err)
	assert.Nil(t, tok)
}
