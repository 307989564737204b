package textutil

import (
	"strings"
	"unicode"
)

// MatchToken normalizes a word for alignment matching: case-folded with
// leading and trailing punctuation stripped. Interior punctuation stays so
// "u.s" and "it's" remain distinct tokens. The result is used for comparison
// only, never for display.
func MatchToken(s string) string {
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return strings.ToLower(s)
}

// LetterCount returns the number of letter and digit runes in s. Minimum
// segment length checks use it so trailing punctuation does not make a
// two-letter fragment look acceptable.
func LetterCount(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			count++
		}
	}
	return count
}
