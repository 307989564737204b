package language

import "strings"

// sentenceFinal holds the marks that close a sentence across supported
// scripts. Ellipsis deliberately counts: ASR output uses it for trailing
// speech, and treating it as a boundary avoids run-on captions.
var sentenceFinal = map[rune]struct{}{
	'.': {}, '!': {}, '?': {}, '…': {},
	'。': {}, '！': {}, '？': {},
	'؟': {}, '।': {},
}

// closers are quote and bracket runes that may trail the sentence-final mark.
const closers = "\"')]}»”’」』】"

// IsSentenceFinal reports whether a word ends a sentence: its last rune,
// after stripping trailing quotes and brackets, is a sentence-final mark.
func IsSentenceFinal(word string) bool {
	word = strings.TrimRight(word, closers)
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	_, ok := sentenceFinal[runes[len(runes)-1]]
	return ok
}
