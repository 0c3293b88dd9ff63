package haiku

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignHaiku(t *testing.T) {
	assert := assert.New(t)

	h := Haiku{Lines: [3]string{
		"coins rise and fall fast",
		"whales swim through the market",
		"hold and never fear",
	}}

	expected := sha256.Sum256([]byte(h.String()))
	assert.Equal(hex.EncodeToString(expected[:]), SignHaiku(h))
	assert.Equal(64, len(SignHaiku(h)))

	// Any change to the text changes the signature.
	h2 := h
	h2.Lines[2] = "crypto dreams at dawn"
	assert.NotEqual(SignHaiku(h), SignHaiku(h2))
}
