package captions

import (
	"testing"

	"captionseg/internal/language"
)

func resolveProfile(t *testing.T, code string) language.Profile {
	t.Helper()
	return language.Resolve(code)
}

// contiguousWords builds a word stream where each word occupies `step`
// seconds with no inter-word gap.
func contiguousWords(step float64, texts ...string) []Word {
	words := make([]Word, len(texts))
	for i, text := range texts {
		start := float64(i) * step
		words[i] = Word{Text: text, Start: start, End: start + step}
	}
	return words
}

func runTexts(runs [][]Word, profile language.Profile) []string {
	out := make([]string, len(runs))
	for i, run := range runs {
		out[i] = joinWords(run, profile)
	}
	return out
}

func segmentTexts(segments []Segment) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = s.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
