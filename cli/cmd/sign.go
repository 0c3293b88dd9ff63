package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/hashiku/hashiku-go/core"
	"github.com/hashiku/hashiku-go/haiku"
)

func RunSign(cmdCtx *cli.Context) error {
	seed := cmdCtx.String("seed")
	keyHex := cmdCtx.String("key")
	dbPath := cmdCtx.String("db")

	h := haiku.Generate(haiku.NewRand(seed))
	digest := haiku.SignHaiku(h)

	fmt.Println("--- Crypto Haiku ---")
	fmt.Println(h)
	fmt.Printf("Signature (SHA-256): %s\n", digest)

	sh := haiku.SignedHaiku{Haiku: h.String(), Digest: digest}

	if keyHex != "" {
		wallet, err := core.WalletFromPrivateKey(keyHex)
		if err != nil {
			return fmt.Errorf("invalid private key: %s", err)
		}
		sig, err := wallet.Sign([]byte(h.String()))
		if err != nil {
			return err
		}
		sh.Signature = hex.EncodeToString(sig)
		sh.Pubkey = wallet.PubkeyStr()
		fmt.Printf("Signature (ECDSA): %s\n", sh.Signature)
		fmt.Printf("Pubkey: %s\n", sh.Pubkey)
	}

	if dbPath != "" {
		db, err := haiku.OpenDB(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := haiku.LogSignedHaiku(db, sh)
		if err != nil {
			return err
		}
		core.NewLogger("sign").Printf("Logged signed haiku #%d to %s\n", id, dbPath)
	}
	return nil
}
