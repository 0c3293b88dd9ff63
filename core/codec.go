package core

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// TreeExport is the display-oriented serialization of a built tree. Layers
// are hex strings, leaves first, matching MerkleTree.Layers.
type TreeExport struct {
	Layers [][]string `json:"layers" cbor:"layers"`
	Root   string     `json:"root" cbor:"root"`
}

func ExportTree(tree *MerkleTree) TreeExport {
	layers := make([][]string, 0, len(tree.Layers))
	for _, layer := range tree.Layers {
		row := make([]string, 0, len(layer))
		for _, digest := range layer {
			row = append(row, digest.String())
		}
		layers = append(layers, row)
	}
	return TreeExport{Layers: layers, Root: tree.Root().String()}
}

func EncodeTreeJSON(tree *MerkleTree) ([]byte, error) {
	return json.MarshalIndent(ExportTree(tree), "", "  ")
}

func EncodeTreeCBOR(tree *MerkleTree) ([]byte, error) {
	return cbor.Marshal(ExportTree(tree))
}
