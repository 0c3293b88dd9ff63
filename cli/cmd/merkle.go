package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hashiku/hashiku-go/core"
)

func RunMerkle(cmdCtx *cli.Context) error {
	data := cmdCtx.String("data")
	hashName := cmdCtx.String("hash")
	outPath := cmdCtx.String("out")
	format := cmdCtx.String("format")

	hash, err := core.GetHashFunc(hashName)
	if err != nil {
		return err
	}

	if data == "" {
		fmt.Println("Merkle Tree Visualizer")
		fmt.Println("Enter comma-separated transaction IDs or strings. Each value will be hashed.")
		fmt.Print("Transactions: ")

		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		data = line
	}

	items := core.ParseItems(data)
	if len(items) == 0 {
		fmt.Println("No data provided. Exiting.")
		return nil
	}

	leaves := core.LeavesFromItems(items, hash)
	tree, err := core.BuildMerkleTreeWithHash(leaves, hash)
	if err != nil {
		return err
	}

	fmt.Println("\nMerkle Tree (root at top, leaves at bottom):")
	fmt.Print(core.RenderTreeColor(tree))
	fmt.Println("\nMerkle Root:", tree.Root())

	if outPath != "" {
		return exportTree(tree, outPath, format)
	}
	return nil
}

func exportTree(tree *core.MerkleTree, outPath string, format string) error {
	var buf []byte
	var err error
	switch format {
	case "json":
		buf, err = core.EncodeTreeJSON(tree)
	case "cbor":
		buf, err = core.EncodeTreeCBOR(tree)
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
	if err != nil {
		return err
	}

	err = os.WriteFile(outPath, buf, 0644)
	if err != nil {
		return err
	}
	fmt.Printf("Exported tree to %s\n", outPath)
	return nil
}
