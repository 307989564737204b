package captions

import (
	"log/slog"

	"captionseg/internal/language"
	"captionseg/internal/logging"
)

// Options configures a Segmenter. Both fields are optional: without a
// sentence splitter the engine relies on punctuation and fallback layers, and
// without a logger it stays silent.
type Options struct {
	Sentences SentenceSplitter
	Logger    *slog.Logger
}

// Segmenter is the multilingual orchestrator. It is stateless across calls
// and safe for concurrent use.
type Segmenter struct {
	sentences SentenceSplitter
	logger    *slog.Logger
}

// New constructs a Segmenter.
func New(opts Options) *Segmenter {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Segmenter{sentences: opts.Sentences, logger: logger}
}

// Segment re-chunks a word stream into display-ready caption segments.
// Layers run in order: strong punctuation, the sentence-boundary capability
// on over-limit runs when the language is supported, scored boundaries with
// the balanced fallback on anything still over limit, then one merge pass.
// If the strong-punctuation runs already satisfy every limit, the later
// layers are no-ops and the call is idempotent.
func (s *Segmenter) Segment(words []Word, lang string, limits Limits) ([]Segment, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateWords(words); err != nil {
		return nil, err
	}
	profile := language.Resolve(lang)

	runs := splitStrong(words)

	if s.sentences != nil && s.sentences.Supports(lang) {
		refined := make([][]Word, 0, len(runs))
		for _, run := range runs {
			if overLimit(run, profile, limits) {
				if parts := splitBySentences(run, profile, s.sentences); len(parts) > 1 {
					refined = append(refined, parts...)
					continue
				}
			}
			refined = append(refined, run)
		}
		runs = refined
	}

	var pieces [][]Word
	for _, run := range runs {
		if overLimit(run, profile, limits) {
			pieces = append(pieces, splitOversized(run, profile, limits)...)
		} else {
			pieces = append(pieces, run)
		}
	}

	pieces = mergeIncomplete(pieces, profile, limits)

	segments := make([]Segment, 0, len(pieces))
	widthViolations := 0
	cpsViolations := 0
	for _, p := range pieces {
		seg := newSegment(p, profile, limits)
		if seg.WidthViolation {
			widthViolations++
		}
		if seg.CPSViolation {
			cpsViolations++
		}
		segments = append(segments, seg)
	}

	s.logger.Debug("segmented word stream",
		logging.String("language", profile.Code),
		logging.Int("words", len(words)),
		logging.Int("segments", len(segments)),
		logging.Int("width_violations", widthViolations),
		logging.Int("cps_violations", cpsViolations),
	)
	return segments, nil
}

// Resegment aligns corrected text onto the original timeline, then segments
// the reconciled word stream. The returned AlignResult carries the per-slot
// operations and the confidence indicator.
func (s *Segmenter) Resegment(words []Word, correctedText, lang string, limits Limits) ([]Segment, AlignResult, error) {
	aligned, err := Align(words, correctedText)
	if err != nil {
		return nil, AlignResult{}, err
	}
	if aligned.LowConfidence {
		s.logger.Warn("low-confidence alignment",
			logging.String("language", lang),
			logging.Float64("anchor_ratio", aligned.AnchorRatio),
		)
	}
	segments, err := s.Segment(aligned.Words, lang, limits)
	if err != nil {
		return nil, AlignResult{}, err
	}
	return segments, aligned, nil
}
