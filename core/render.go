package core

import (
	"strings"

	"github.com/fatih/color"
)

// RenderTree formats a tree for display, root layer first, leaves last. Each
// digest is truncated to its first 8 hex characters, digests within a layer
// are joined with three spaces, and each layer is indented four spaces per
// level of depth below the root.
func RenderTree(tree *MerkleTree) string {
	return renderTree(tree, func(s string) string { return s })
}

// RenderTreeColor is RenderTree with the root highlighted for terminals.
func RenderTreeColor(tree *MerkleTree) string {
	return renderTree(tree, func(s string) string { return color.HiYellowString("%s", s) })
}

func renderTree(tree *MerkleTree, rootStyle func(string) string) string {
	sb := strings.Builder{}
	numLayers := len(tree.Layers)
	for depth := 0; depth < numLayers; depth++ {
		layer := tree.Layers[numLayers-1-depth]
		shortened := make([]string, 0, len(layer))
		for _, digest := range layer {
			shortened = append(shortened, digest.Short())
		}
		line := strings.Join(shortened, "   ")
		if depth == 0 {
			line = rootStyle(line)
		}
		sb.WriteString(strings.Repeat("    ", depth))
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
