package captions

import (
	"strings"
	"unicode"

	"captionseg/internal/language"
	"captionseg/internal/textutil"
)

// joinWords renders a run of words as display text. Empty slots are skipped.
// CJK-style scripts join without spaces; consecutive dotted initials ("U."
// then "S.") join directly so abbreviations read naturally.
func joinWords(words []Word, profile language.Profile) string {
	var b strings.Builder
	prev := ""
	for _, w := range words {
		if w.Text == "" {
			continue
		}
		if prev != "" && joinerLen(prev, w.Text, profile) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
		prev = w.Text
	}
	return b.String()
}

// joinerLen returns the byte length of the joiner between two adjacent
// non-empty word texts.
func joinerLen(prev, cur string, profile language.Profile) int {
	if profile.DoubleWidth {
		return 0
	}
	if isDottedInitial(prev) && isDottedInitial(cur) {
		return 0
	}
	return 1
}

func isDottedInitial(s string) bool {
	runes := []rune(s)
	return len(runes) == 2 && unicode.IsUpper(runes[0]) && runes[1] == '.'
}

// runSpan returns the time range covered by a run. Empty slots count: their
// time ranges are still real. The end is the maximum End across the run, not
// the last word's, because a word may outlast its successors.
func runSpan(words []Word) (float64, float64) {
	if len(words) == 0 {
		return 0, 0
	}
	end := words[0].End
	for _, w := range words[1:] {
		if w.End > end {
			end = w.End
		}
	}
	return words[0].Start, end
}

// runWidth returns the display width of the run's rendered text.
func runWidth(words []Word, profile language.Profile) int {
	return textutil.Width(joinWords(words, profile))
}

// cumulativeWidths returns, for each index, the display width of the run
// rendered up to and including that word.
func cumulativeWidths(words []Word, profile language.Profile) []int {
	cum := make([]int, len(words))
	width := 0
	prev := ""
	for i, w := range words {
		if w.Text != "" {
			if prev != "" {
				width += joinerLen(prev, w.Text, profile)
			}
			width += textutil.Width(w.Text)
			prev = w.Text
		}
		cum[i] = width
	}
	return cum
}

// runLetterCount counts letter and digit runes across the run.
func runLetterCount(words []Word) int {
	count := 0
	for _, w := range words {
		count += textutil.LetterCount(w.Text)
	}
	return count
}

// overLimit reports whether a run needs further splitting. Width and maximum
// duration drive splitting; reading speed is reported but not split on,
// because cutting a run cannot change how fast its words were spoken.
func overLimit(words []Word, profile language.Profile, limits Limits) bool {
	if len(words) <= 1 {
		return false
	}
	if runWidth(words, profile) > limits.MaxCharsPerLine {
		return true
	}
	start, end := runSpan(words)
	return end-start > limits.MaxDuration
}

func firstNonEmptyText(words []Word) string {
	for _, w := range words {
		if w.Text != "" {
			return w.Text
		}
	}
	return ""
}

func lastNonEmptyText(words []Word) string {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i].Text != "" {
			return words[i].Text
		}
	}
	return ""
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}
