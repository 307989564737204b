package captions

import "captionseg/internal/language"

// splitOversized reduces an over-limit run to compliant pieces: scored
// boundary selection first, balanced word-count fallback when no legal
// boundary exists. The driver runs over an explicit work stack instead of
// recursing — depth is bounded by word count, which pathological inputs can
// push to O(n).
func splitOversized(words []Word, profile language.Profile, limits Limits) [][]Word {
	var out [][]Word
	stack := [][]Word{words}
	for len(stack) > 0 {
		chunk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !overLimit(chunk, profile, limits) {
			out = append(out, chunk)
			continue
		}

		candidates := collectBoundaryCandidates(chunk, profile, limits)
		if idx, ok := selectBoundary(chunk, candidates, profile, limits); ok {
			// Right child first so the left pops next and output stays in
			// stream order.
			stack = append(stack, chunk[idx+1:], chunk[:idx+1])
			continue
		}

		pieces := splitBalanced(chunk, profile, limits)
		if len(pieces) <= 1 {
			// Indivisible; emitted as-is and flagged when the segment is
			// built.
			out = append(out, chunk)
			continue
		}
		for i := len(pieces) - 1; i >= 0; i-- {
			stack = append(stack, pieces[i])
		}
	}
	return out
}
