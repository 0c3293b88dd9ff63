package core

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

type Wallet struct {
	prvkey *ecdsa.PrivateKey
}

func (w *Wallet) Pubkey() *ecdsa.PublicKey {
	return &w.prvkey.PublicKey
}

func (w *Wallet) PubkeyBytes() [65]byte {
	pubkey := w.Pubkey()

	// Uncompressed P-256 point: 1 format byte (0x04) + 32-byte X + 32-byte Y.
	buf := elliptic.Marshal(pubkey.Curve, pubkey.X, pubkey.Y)
	var pubkeyBytes [65]byte
	copy(pubkeyBytes[:], buf)
	return pubkeyBytes
}

func (w *Wallet) PubkeyStr() string {
	pubkey := w.PubkeyBytes()
	return hex.EncodeToString(pubkey[:])
}

func (w *Wallet) PrvkeyStr() string {
	return hex.EncodeToString(w.prvkey.D.Bytes())
}

func (w *Wallet) Address() string {
	pubkeyStr := w.PubkeyStr()
	firstHash := Hash([]byte(pubkeyStr))
	secondHash := Hash(firstHash[:])
	return secondHash.String()
}

func CreateRandomWallet() (*Wallet, error) {
	prvkey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Wallet{prvkey: prvkey}, nil
}

func WalletFromPrivateKey(privateKeyHex string) (*Wallet, error) {
	privateKeyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, err
	}
	prvkey := new(ecdsa.PrivateKey)
	prvkey.D = new(big.Int).SetBytes(privateKeyBytes)
	prvkey.PublicKey.Curve = elliptic.P256()
	prvkey.PublicKey.X, prvkey.PublicKey.Y = prvkey.PublicKey.Curve.ScalarBaseMult(privateKeyBytes)
	return &Wallet{prvkey: prvkey}, nil
}

func padBytes(src []byte, length int) []byte {
	if len(src) >= length {
		return src
	}
	padding := make([]byte, length-len(src))
	return append(padding, src...)
}

// Sign hashes the message and signs the digest, returning a 64-byte r || s
// signature with both halves padded to 32 bytes.
func (w *Wallet) Sign(msg []byte) ([]byte, error) {
	digest := Hash(msg)
	r, s, err := ecdsa.Sign(rand.Reader, w.prvkey, digest[:])
	if err != nil {
		return nil, err
	}
	rBytes := padBytes(r.Bytes(), 32)
	sBytes := padBytes(s.Bytes(), 32)

	signature := append(rBytes, sBytes...)

	return signature, nil
}

func VerifySignature(pubkeyStr string, sig, msg []byte) (bool, error) {
	if len(sig) != 64 {
		return false, fmt.Errorf("invalid signature length: %d", len(sig))
	}
	if len(pubkeyStr) != 130 {
		return false, fmt.Errorf("invalid public key length: %d", len(pubkeyStr))
	}

	pubkeyBytes, err := hex.DecodeString(pubkeyStr)
	if err != nil {
		return false, fmt.Errorf("invalid public key encoding: %s", err)
	}

	x, y := elliptic.Unmarshal(elliptic.P256(), pubkeyBytes)
	if x == nil {
		return false, fmt.Errorf("invalid public key point")
	}
	pubkey := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}

	digest := Hash(msg)
	r := new(big.Int).SetBytes(sig[:len(sig)/2])
	s := new(big.Int).SetBytes(sig[len(sig)/2:])

	return ecdsa.Verify(pubkey, digest[:], r, s), nil
}
