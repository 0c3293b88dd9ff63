package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	assert := assert.New(t)

	leaves := LeavesFromItems([]string{"a", "b", "c"}, Hash)
	tree, err := BuildMerkleTree(leaves)
	assert.Nil(err)

	rendered := RenderTree(tree)
	t.Logf("\n%s", rendered)

	expected := tree.Root().Short() + "\n" +
		"    " + tree.Layers[1][0].Short() + "   " + tree.Layers[1][1].Short() + "\n" +
		"        " + leaves[0].Short() + "   " + leaves[1].Short() + "   " + leaves[2].Short() + "\n"
	assert.Equal(expected, rendered)
}

func TestRenderTreeSingleLeaf(t *testing.T) {
	assert := assert.New(t)

	leaf := Hash([]byte("solo"))
	tree, err := BuildMerkleTree([]Digest{leaf})
	assert.Nil(err)

	assert.Equal(leaf.Short()+"\n", RenderTree(tree))
}

func TestRenderTreeLayerCount(t *testing.T) {
	assert := assert.New(t)

	tree, err := BuildMerkleTree(LeavesFromItems([]string{"a", "b", "c", "d", "e"}, Hash))
	assert.Nil(err)

	lines := strings.Split(strings.TrimRight(RenderTree(tree), "\n"), "\n")
	assert.Equal(len(tree.Layers), len(lines))

	// Root line is unindented, leaf line carries the deepest indent.
	assert.False(strings.HasPrefix(lines[0], " "))
	assert.True(strings.HasPrefix(lines[len(lines)-1], strings.Repeat("    ", len(tree.Layers)-1)))
}
