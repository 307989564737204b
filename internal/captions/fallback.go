package captions

import (
	"math"

	"captionseg/internal/language"
)

// splitBalanced is the guaranteed-terminating last resort: it computes how
// many pieces the width limit requires, then cuts at the word boundary
// nearest each even-width target. Cuts never fall inside a word, and a cut
// directly after an abbreviation is taken only when every boundary in range
// is one. Every piece is strictly smaller than the input unless no cut could
// be placed at all, in which case the run comes back whole.
func splitBalanced(words []Word, profile language.Profile, limits Limits) [][]Word {
	n := len(words)
	if n < 2 {
		return [][]Word{words}
	}

	cum := cumulativeWidths(words, profile)
	total := cum[n-1]
	pieces := (total + limits.MaxCharsPerLine - 1) / limits.MaxCharsPerLine
	if pieces < 2 {
		pieces = 2
	}
	if pieces > n {
		pieces = n
	}

	// Scoring an abbreviation boundary this far off target means it is only
	// ever picked when no clean boundary exists in the window.
	abbrevPenalty := float64(total + 1)

	var cuts []int
	prev := -1
	for k := 1; k < pieces; k++ {
		target := float64(total) * float64(k) / float64(pieces)
		lo := prev + 1
		hi := n - 1 - (pieces - k) // leave at least one word per remaining piece
		best := -1
		bestDiff := math.Inf(1)
		for i := lo; i <= hi; i++ {
			diff := math.Abs(float64(cum[i]) - target)
			if language.IsAbbreviation(words[i].Text) {
				diff += abbrevPenalty
			}
			if diff < bestDiff {
				best = i
				bestDiff = diff
			}
		}
		if best < 0 {
			continue
		}
		if bestDiff >= abbrevPenalty {
			// Only abbreviation boundaries available here; skip the cut
			// rather than break one.
			continue
		}
		cuts = append(cuts, best)
		prev = best
	}

	if len(cuts) == 0 {
		return [][]Word{words}
	}

	out := make([][]Word, 0, len(cuts)+1)
	start := 0
	for _, c := range cuts {
		out = append(out, words[start:c+1])
		start = c + 1
	}
	out = append(out, words[start:])
	return out
}
