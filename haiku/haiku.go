package haiku

import (
	"encoding/binary"
	"math/rand"
	"strings"
	"time"

	"github.com/hashiku/hashiku-go/core"
)

// Phrase banks for the canned generator. Each bank fits its slot of the
// 5-7-5 rhythm.
var line1Options = []string{
	"coins rise and fall fast",
	"mining rigs hum low",
	"blockchains weave secrets",
	"whispers of the chain",
	"wallets rest in cold",
}

var line2Options = []string{
	"whales swim through the market",
	"in digital seas we trade",
	"gas fees burn like ember",
	"nodes sync across the globe",
	"charts dance in green and red",
}

var line3Options = []string{
	"hold and never fear",
	"crypto dreams at dawn",
	"stars align with coins",
	"hope in every block",
	"fortunes flip a coin",
}

type Haiku struct {
	Lines [3]string
}

func (h Haiku) String() string {
	return strings.Join(h.Lines[:], "\n")
}

// Generate picks one phrase per line from the canned banks. The generator is
// passed explicitly so callers control seeding and lifecycle.
func Generate(rng *rand.Rand) Haiku {
	return Haiku{Lines: [3]string{
		line1Options[rng.Intn(len(line1Options))],
		line2Options[rng.Intn(len(line2Options))],
		line3Options[rng.Intn(len(line3Options))],
	}}
}

// NewRand returns a generator for one invocation. An empty seed gives a
// time-seeded generator; otherwise the seed string is hashed so the same
// seed reproduces the same haiku.
func NewRand(seed string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	digest := core.HashSHA2([]byte(seed))
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(digest[:8]))))
}
