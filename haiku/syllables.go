package haiku

import "strings"

const vowels = "aeiouy"

// EstimateSyllables counts vowel groups as a rough syllable estimate. A
// trailing silent 'e' is dropped when more than one group was found. Good
// enough for haiku, not for linguistics.
func EstimateSyllables(word string) int {
	w := strings.ToLower(strings.Trim(word, ",.!?:;\"'()[]{}"))
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, ch := range w {
		isVowel := strings.ContainsRune(vowels, ch)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
