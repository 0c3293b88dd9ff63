package core

import (
	"crypto/sha256"
	"fmt"

	"github.com/zeebo/blake3"
)

// A HashFunc maps arbitrary bytes to a 256-bit Digest.
type HashFunc func(data []byte) Digest

func Hash(data []byte) Digest {
	return HashSHA2(data)
}

func HashSHA2(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

func HashBLAKE3(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// GetHashFunc resolves a hash function by name. The empty name selects SHA-256.
func GetHashFunc(name string) (HashFunc, error) {
	switch name {
	case "", "sha256":
		return HashSHA2, nil
	case "blake3":
		return HashBLAKE3, nil
	}
	return nil, fmt.Errorf("unknown hash function: %s", name)
}
