package dictionary

import (
	"strings"
	"unicode"
)

// CleanDictionaryToken keeps only the letters of a dictionary token.
func CleanDictionaryToken(token string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, token)
}

// CleanCorpusToken strips non-letters from both edges of a corpus token.
// A token with a non-letter left inside, like "don't" or "e-mail", is
// rejected with an empty result.
func CleanCorpusToken(token string) string {
	notLetter := func(r rune) bool { return !unicode.IsLetter(r) }
	word := strings.TrimFunc(token, notLetter)
	if strings.IndexFunc(word, notLetter) >= 0 {
		return ""
	}
	return word
}
