package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hashiku/hashiku-go/cli/cmd"
)

func main() {
	app := &cli.App{
		Name:                 "hashiku",
		Usage:                "crypto haiku and merkle tree toys",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "merkle",
				Usage:  "builds and visualizes a merkle tree from comma-separated values",
				Action: cmd.RunMerkle,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data",
						Usage: "Comma-separated values to hash into leaves (prompts if omitted)",
					},
					&cli.StringFlag{
						Name:  "hash",
						Usage: "The hash function to use (sha256, blake3)",
						Value: "sha256",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "Write the full tree to this file",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (json, cbor)",
						Value: "json",
					},
				},
			},
			{
				Name:   "haiku",
				Usage:  "generates a crypto-themed haiku",
				Action: cmd.RunHaiku,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "advanced",
						Usage: "Use the entropy-aware word sampler instead of the canned phrases",
					},
					&cli.StringFlag{
						Name:  "seed",
						Usage: "Seed for reproducible output",
					},
					&cli.StringFlag{
						Name:  "salt",
						Usage: "Salt to mix into the sampler (advanced mode)",
					},
					&cli.BoolFlag{
						Name:  "again",
						Usage: "Prompt to generate more haikus interactively",
					},
				},
			},
			{
				Name:   "sign",
				Usage:  "generates a haiku and signs it",
				Action: cmd.RunSign,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "seed",
						Usage: "Seed for reproducible output",
					},
					&cli.StringFlag{
						Name:  "key",
						Usage: "Hex-encoded private key for an additional ECDSA signature",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Append the signed haiku to this signature log",
					},
				},
			},
			{
				Name:   "explorer",
				Usage:  "runs the merkle tree explorer web UI",
				Action: cmd.RunExplorer,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "The port to run the explorer on",
						Value: 8080,
					},
					&cli.StringFlag{
						Name:  "hash",
						Usage: "The hash function to use (sha256, blake3)",
						Value: "sha256",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
