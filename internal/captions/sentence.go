package captions

import "captionseg/internal/language"

// SentenceSplitter is the pluggable sentence-boundary capability. The engine
// checks Supports before calling Split; an unsupported language is silently
// handled by the later layers, never an error.
type SentenceSplitter interface {
	// Split partitions flat text into sentences whose concatenation
	// reproduces the input exactly, whitespace included.
	Split(text string) []string
	// Supports reports whether the splitter understands the language code.
	Supports(lang string) bool
}

// splitBySentences reconstructs the run's flat text, asks the capability for
// sentence boundaries, and maps the character offsets back onto word indices
// by accumulating word lengths. Returns nil whenever the mapping cannot be
// trusted: fewer than two sentences, summed sentence lengths that disagree
// with the reconstructed text, or a boundary landing inside a word. The
// caller then falls through to the scored-boundary and fallback layers.
func splitBySentences(words []Word, profile language.Profile, splitter SentenceSplitter) [][]Word {
	text := joinWords(words, profile)
	if text == "" {
		return nil
	}

	parts := splitter.Split(text)
	if len(parts) < 2 {
		return nil
	}
	sum := 0
	for _, p := range parts {
		sum += len(p)
	}
	if sum != len(text) {
		return nil
	}

	ends, nextJoiner := wordByteOffsets(words, profile)

	var runs [][]Word
	start := 0
	offset := 0
	for _, part := range parts[:len(parts)-1] {
		offset += len(part)
		cut := -1
		for i := start; i < len(words)-1; i++ {
			// A sentence boundary may include the joiner that follows the
			// word; both offsets identify the same cut.
			if ends[i] == offset || ends[i]+nextJoiner[i] == offset {
				cut = i
				break
			}
		}
		if cut < 0 {
			return nil
		}
		runs = append(runs, words[start:cut+1])
		start = cut + 1
	}
	runs = append(runs, words[start:])
	return runs
}

// wordByteOffsets returns, per word index, the byte offset into the joined
// text after that word's contribution, plus the byte length of the joiner
// separating it from the next non-empty word.
func wordByteOffsets(words []Word, profile language.Profile) ([]int, []int) {
	ends := make([]int, len(words))
	nextJoiner := make([]int, len(words))

	offset := 0
	prev := ""
	for i, w := range words {
		if w.Text != "" {
			if prev != "" {
				offset += joinerLen(prev, w.Text, profile)
			}
			offset += len(w.Text)
			prev = w.Text
		}
		ends[i] = offset
	}

	// Joiner lengths look ahead to the next non-empty word; empty slots and
	// the final word separate nothing.
	last := ""
	for i := len(words) - 1; i >= 0; i-- {
		if words[i].Text == "" {
			continue
		}
		if last != "" {
			nextJoiner[i] = joinerLen(words[i].Text, last, profile)
		}
		last = words[i].Text
	}
	return ends, nextJoiner
}
