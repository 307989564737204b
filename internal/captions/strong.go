package captions

import "captionseg/internal/language"

// splitStrong partitions a word stream into sentence-level runs. A run closes
// after any word that ends in a sentence-final mark, unless the abbreviation
// guard recognizes the word ("Dr.", "U.S.", "Jan."). The final run is always
// emitted regardless of trailing punctuation. Length limits are ignored here;
// this layer is purely sentence chunking.
func splitStrong(words []Word) [][]Word {
	var runs [][]Word
	start := 0
	for i, w := range words {
		if !language.IsSentenceFinal(w.Text) {
			continue
		}
		if language.IsAbbreviation(w.Text) {
			continue
		}
		runs = append(runs, words[start:i+1])
		start = i + 1
	}
	if start < len(words) {
		runs = append(runs, words[start:])
	}
	return runs
}
