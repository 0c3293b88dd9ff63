package haiku

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"math/rand"
	"os"
	"strings"

	"github.com/hashiku/hashiku-go/core"
)

// Word banks with crypto vibes.
var wordBank = map[string][]string{
	"nouns": {
		"entropy", "cipher", "hash", "nonce", "seed", "salt", "oracle",
		"channel", "curve", "ledger", "packet", "secret", "keystore",
		"torus", "ring", "module", "keyspace", "ciphertext", "plaintext",
		"proof", "merkle", "noncechain", "beacon", "snow", "shadow",
	},
	"verbs": {
		"drifts", "whispers", "flows", "splits", "folds", "binds",
		"jiggles", "blooms", "scatters", "mutates", "settles", "forges",
		"etches", "melts", "glows", "shuffles", "masks", "seeds",
	},
	"adjs": {
		"random", "silent", "finite", "prime", "latent", "fragile",
		"bound", "masked", "noisy", "soft", "sacred", "atomic", "secret",
		"curved", "sparse", "hidden", "secure", "gentle",
	},
	"extras": {
		"under moon", "by lamplight", "in cold air", "at dawn", "near sea",
		"in snow", "by the fire", "beyond walls", "between ticks",
		"on the wire", "over the ridge",
	},
}

var syllableTargets = [3]int{5, 7, 5}

// An EntropySampler draws words with a bias toward short syllable counts,
// seeded from a salt plus an optional external seed for reproducible haiku.
// Created per invocation and discarded after.
type EntropySampler struct {
	rng *rand.Rand
}

func NewEntropySampler(seed string, salt string) *EntropySampler {
	if salt == "" {
		salt = os.Getenv("CRYPTO_HAIKU_SALT")
	}
	if salt == "" {
		buf := make([]byte, 16)
		crand.Read(buf)
		salt = hex.EncodeToString(buf)
	}

	material := []byte(salt)
	if seed != "" {
		material = append(material, []byte(seed)...)
	}
	digest := core.HashSHA2(material)
	source := int64(binary.BigEndian.Uint64(digest[:8]))
	return &EntropySampler{rng: rand.New(rand.NewSource(source))}
}

// Choice picks a word, slightly favoring 1-2 syllable words and
// de-emphasizing longer ones.
func (s *EntropySampler) Choice(items []string) string {
	weights := make([]float64, len(items))
	total := 0.0
	for i, word := range items {
		syl := EstimateSyllables(word)
		weight := 1.6
		if syl > 2 {
			weight = 1.0 / float64(syl)
		}
		if weight < 0.05 {
			weight = 0.05
		}
		weights[i] = weight
		total += weight
	}

	pick := s.rng.Float64() * total
	acc := 0.0
	for i, word := range items {
		acc += weights[i]
		if acc >= pick {
			return word
		}
	}
	return items[len(items)-1]
}

// FitLine builds a line summing to exactly the target syllable count, with
// bounded retries and a soft-word padding fallback.
func (s *EntropySampler) FitLine(target int) string {
	poolNames := []string{"adjs", "nouns", "verbs", "extras"}

	for attempt := 0; attempt < 512; attempt++ {
		words := []string{}
		total := 0
		for total < target && len(words) < 7 {
			pool := wordBank[s.Choice(poolNames)]
			word := s.Choice(pool)
			syl := EstimateSyllables(word)
			if total+syl <= target {
				words = append(words, word)
				total += syl
			} else {
				// Try a shorter word quickly.
				short := []string{}
				for _, cat := range []string{"adjs", "nouns", "verbs"} {
					for _, w := range wordBank[cat] {
						if EstimateSyllables(w) <= target-total {
							short = append(short, w)
						}
					}
				}
				if len(short) == 0 {
					break
				}
				word = s.Choice(short)
				words = append(words, word)
				total += EstimateSyllables(word)
			}
		}
		if total == target && len(words) > 0 {
			line := strings.Join(words, " ")
			if s.rng.Float64() < 0.5 {
				line = strings.ToUpper(line[:1]) + line[1:]
			}
			return line
		}
	}

	// Fallback: pad a noun-verb base with soft one-syllable words.
	base := s.Choice(wordBank["nouns"]) + " " + s.Choice(wordBank["verbs"])
	for EstimateSyllables(base) < target {
		base += " " + s.Choice([]string{"snow", "shadow", "seed"})
	}
	return base
}

// Generate builds a 5-7-5 haiku from the word banks.
func (s *EntropySampler) Generate() Haiku {
	lines := [3]string{}
	for i, target := range syllableTargets {
		lines[i] = s.FitLine(target)
	}
	return Haiku{Lines: lines}
}
