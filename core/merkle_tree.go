package core

import (
	"errors"
	"strings"
)

var ErrNoLeaves = errors.New("cannot build a merkle tree from zero leaves")

// A MerkleTree is the full set of layers produced by pairwise hashing a leaf
// sequence. Layers[0] is the leaf layer, the last layer holds the single root.
// A tree is built once and never mutated.
type MerkleTree struct {
	Layers [][]Digest
}

// HashPair combines two digests into their parent by hashing the
// concatenation of their hex encodings, left then right. Order-sensitive.
func HashPair(h HashFunc, left Digest, right Digest) Digest {
	return h([]byte(left.String() + right.String()))
}

// BuildMerkleTree builds the tree with the default hash function.
func BuildMerkleTree(leaves []Digest) (*MerkleTree, error) {
	return BuildMerkleTreeWithHash(leaves, Hash)
}

// BuildMerkleTreeWithHash pairs and hashes adjacent digests layer by layer
// until a single root remains. A layer of odd length has its last digest
// duplicated before pairing, so the duplicate is hashed with itself.
func BuildMerkleTreeWithHash(leaves []Digest, h HashFunc) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}

	base := make([]Digest, len(leaves))
	copy(base, leaves)
	layers := [][]Digest{base}

	for len(layers[len(layers)-1]) > 1 {
		current := layers[len(layers)-1]
		working := make([]Digest, len(current))
		copy(working, current)

		if len(working)%2 == 1 {
			working = append(working, working[len(working)-1])
		}

		next := make([]Digest, 0, len(working)/2)
		for i := 0; i < len(working); i += 2 {
			next = append(next, HashPair(h, working[i], working[i+1]))
		}
		layers = append(layers, next)
	}

	return &MerkleTree{Layers: layers}, nil
}

// Root returns the single digest of the last layer.
func (t *MerkleTree) Root() Digest {
	rootLayer := t.Layers[len(t.Layers)-1]
	return rootLayer[0]
}

// NumLeaves returns the size of the leaf layer.
func (t *MerkleTree) NumLeaves() int {
	return len(t.Layers[0])
}

// ParseItems splits a comma-separated line into trimmed, non-empty tokens.
func ParseItems(line string) []string {
	items := []string{}
	for _, token := range strings.Split(line, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			items = append(items, token)
		}
	}
	return items
}

// LeavesFromItems hashes each item independently to derive the leaf layer,
// preserving input order.
func LeavesFromItems(items []string, h HashFunc) []Digest {
	leaves := make([]Digest, 0, len(items))
	for _, item := range items {
		leaves = append(leaves, h([]byte(item)))
	}
	return leaves
}
