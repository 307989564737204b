package sentence

import (
	"fmt"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"captionseg/internal/language"
)

// Splitter detects sentence boundaries with a trained Punkt tokenizer. It is
// read-only after construction and safe for concurrent use.
type Splitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
	code      string
}

// NewSplitter loads the bundled English tokenizer data; other languages
// report unsupported and the engine degrades to its punctuation layers.
func NewSplitter() (*Splitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load english tokenizer: %w", err)
	}
	return &Splitter{tokenizer: tok, code: "en"}, nil
}

// Supports reports whether the trained tokenizer covers the language.
func (s *Splitter) Supports(lang string) bool {
	return language.Normalize(lang) == s.code
}

// Split partitions text into sentences. Punkt preserves the input verbatim
// across the returned pieces, which the engine relies on when mapping
// character offsets back to word indices.
func (s *Splitter) Split(text string) []string {
	parts := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.Text)
	}
	return out
}
