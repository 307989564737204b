package captions

import "captionseg/internal/language"

// mergeIncomplete is the single post-pass that folds incomplete runs into
// their left neighbor. A run merges when its predecessor trails off without
// terminal punctuation and the run opens lowercase, or when either side is at
// or below the minimum length — but only while the combined text still fits
// on one line.
func mergeIncomplete(runs [][]Word, profile language.Profile, limits Limits) [][]Word {
	if len(runs) <= 1 {
		return runs
	}

	out := make([][]Word, 0, len(runs))
	out = append(out, runs[0])
	for _, cur := range runs[1:] {
		prev := out[len(out)-1]
		if shouldMerge(prev, cur, profile, limits) {
			merged := make([]Word, 0, len(prev)+len(cur))
			merged = append(merged, prev...)
			merged = append(merged, cur...)
			out[len(out)-1] = merged
			continue
		}
		out = append(out, cur)
	}
	return out
}

func shouldMerge(prev, cur []Word, profile language.Profile, limits Limits) bool {
	combined := make([]Word, 0, len(prev)+len(cur))
	combined = append(combined, prev...)
	combined = append(combined, cur...)
	if runWidth(combined, profile) > limits.MaxCharsPerLine {
		return false
	}

	// Dangling clause: the previous run never closed its sentence and this
	// one continues it in lowercase.
	prevLast := lastNonEmptyText(prev)
	curFirst := firstNonEmptyText(cur)
	if prevLast != "" && curFirst != "" && !language.IsSentenceFinal(prevLast) && startsLower(curFirst) {
		return true
	}

	// Fragment on either side.
	return runLetterCount(prev) <= limits.MinChars || runLetterCount(cur) <= limits.MinChars
}
