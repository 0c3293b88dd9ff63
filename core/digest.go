package core

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// A Digest is a 256-bit hash output. Its canonical string form is lowercase hex.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 8 hex characters of the digest, used for display.
func (d Digest) Short() string {
	return d.String()[:8]
}

// DigestFromHexString parses a 64-character hex string into a Digest.
func DigestFromHexString(s string) (Digest, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 64 {
		return Digest{}, fmt.Errorf("invalid digest length: %d", len(s))
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid digest encoding: %s", err)
	}
	digest := Digest{}
	copy(digest[:], buf)
	return digest, nil
}
