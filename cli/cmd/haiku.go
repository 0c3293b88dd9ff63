package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hashiku/hashiku-go/haiku"
)

func RunHaiku(cmdCtx *cli.Context) error {
	advanced := cmdCtx.Bool("advanced")
	seed := cmdCtx.String("seed")
	salt := cmdCtx.String("salt")
	again := cmdCtx.Bool("again")

	if advanced {
		sampler := haiku.NewEntropySampler(seed, salt)
		fmt.Println(sampler.Generate())
		return nil
	}

	fmt.Println("Crypto Haiku Generator")
	fmt.Println("----------------------")

	rng := haiku.NewRand(seed)
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\nYour crypto haiku:")
		fmt.Println()
		fmt.Println(haiku.Generate(rng))

		if !again {
			break
		}
		fmt.Print("\nGenerate another? (y/n): ")
		answer, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Goodbye! Keep your keys safe.")
			break
		}
	}
	return nil
}
