package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestFromHexString(t *testing.T) {
	assert := assert.New(t)

	hexStr := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	digest, err := DigestFromHexString(hexStr)
	assert.Nil(err)
	assert.Equal(hexStr, digest.String())
	assert.Equal(Hash([]byte("abc")), digest)

	// Uppercase and surrounding whitespace are normalized.
	digest2, err := DigestFromHexString("  " + strings.ToUpper(hexStr) + " ")
	assert.Nil(err)
	assert.Equal(digest, digest2)
}

func TestDigestFromHexStringRejectsMalformed(t *testing.T) {
	assert := assert.New(t)

	_, err := DigestFromHexString("")
	assert.NotNil(err)

	_, err = DigestFromHexString("abcd")
	assert.NotNil(err)

	// Right length, not hex.
	_, err = DigestFromHexString(strings.Repeat("zz", 32))
	assert.NotNil(err)
}

func TestDigestShort(t *testing.T) {
	assert := assert.New(t)

	digest := Hash([]byte("abc"))
	assert.Equal("ba7816bf", digest.Short())
	assert.Equal(8, len(digest.Short()))
}
