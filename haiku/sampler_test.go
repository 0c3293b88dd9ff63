package haiku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lineSyllables sums the per-word estimates, the same accounting FitLine uses.
func lineSyllables(line string) int {
	total := 0
	for _, word := range strings.Fields(line) {
		total += EstimateSyllables(word)
	}
	return total
}

func TestSamplerReproducible(t *testing.T) {
	assert := assert.New(t)

	h1 := NewEntropySampler("7", "pepper").Generate()
	h2 := NewEntropySampler("7", "pepper").Generate()
	t.Logf("\n%s", h1)

	assert.Equal(h1, h2)
}

func TestSamplerSeedChangesOutput(t *testing.T) {
	assert := assert.New(t)

	h1 := NewEntropySampler("7", "pepper").Generate()
	h2 := NewEntropySampler("8", "pepper").Generate()
	assert.NotEqual(h1, h2)
}

func TestSamplerSaltChangesOutput(t *testing.T) {
	assert := assert.New(t)

	h1 := NewEntropySampler("7", "pepper").Generate()
	h2 := NewEntropySampler("7", "paprika").Generate()
	assert.NotEqual(h1, h2)
}

func TestFitLineTargets(t *testing.T) {
	assert := assert.New(t)

	sampler := NewEntropySampler("fitline", "salt")
	for _, target := range []int{5, 7, 5} {
		line := sampler.FitLine(target)
		t.Logf("%d: %s", target, line)
		assert.NotEmpty(line)
		assert.Equal(target, lineSyllables(line))
	}
}

func TestGenerateFiveSevenFive(t *testing.T) {
	assert := assert.New(t)

	for _, seed := range []string{"a", "b", "c", "d", "e"} {
		h := NewEntropySampler(seed, "salt").Generate()
		assert.Equal(5, lineSyllables(h.Lines[0]), "seed=%s line=%q", seed, h.Lines[0])
		assert.Equal(7, lineSyllables(h.Lines[1]), "seed=%s line=%q", seed, h.Lines[1])
		assert.Equal(5, lineSyllables(h.Lines[2]), "seed=%s line=%q", seed, h.Lines[2])
	}
}

func TestChoiceFavorsShortWords(t *testing.T) {
	assert := assert.New(t)

	sampler := NewEntropySampler("bias", "salt")
	short := 0
	for i := 0; i < 1000; i++ {
		word := sampler.Choice(wordBank["nouns"])
		if EstimateSyllables(word) <= 2 {
			short++
		}
	}
	// 22 of 25 nouns are 1-2 syllables and they carry extra weight besides,
	// so short words should dominate heavily.
	assert.Greater(short, 800)
}
