package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hashiku/hashiku-go/core"
	"github.com/hashiku/hashiku-go/explorer"
)

func RunExplorer(cmdCtx *cli.Context) error {
	port := cmdCtx.Int("port")
	hashName := cmdCtx.String("hash")

	hash, err := core.GetHashFunc(hashName)
	if err != nil {
		return err
	}

	// Handle process signals.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c

		fmt.Println("Shutting down...")

		os.Exit(1)
	}()

	expl := explorer.NewMerkleExplorerServer(port, hash)
	expl.Start()

	return nil
}
