package transcript

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"captionseg/internal/captions"
	"captionseg/internal/logging"
)

// Options configures one Process call.
type Options struct {
	// CorrectedText is the text-correction collaborator's version of the
	// whole transcript. Empty means no correction was produced; the original
	// wording is segmented as-is.
	CorrectedText string
	// Language overrides the payload's language code when set.
	Language string
	Limits   captions.Limits
	// Segmenter to use; nil constructs a default one without a sentence
	// capability.
	Segmenter *captions.Segmenter
	Logger    *slog.Logger
	// Parallelism bounds the number of segments processed concurrently.
	// Zero or negative means sequential.
	Parallelism int
}

// Stats summarizes one Process call.
type Stats struct {
	SegmentsIn      int
	SegmentsOut     int
	Words           int
	AnchorRatio     float64
	LowConfidence   bool
	WidthViolations int
	CPSViolations   int
}

// Process aligns the corrected text onto the transcript's word timeline and
// re-segments every input segment. Output order always follows input order
// regardless of Parallelism, and word slots are conserved per input segment.
func Process(ctx context.Context, payload Payload, opts Options) (Payload, Stats, error) {
	seg := opts.Segmenter
	if seg == nil {
		seg = captions.New(captions.Options{Logger: opts.Logger})
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	lang := opts.Language
	if lang == "" {
		lang = payload.Language
	}

	inputs, err := collectWords(payload)
	if err != nil {
		return Payload{}, Stats{}, err
	}

	stats := Stats{SegmentsIn: len(inputs)}
	for _, words := range inputs {
		stats.Words += len(words)
	}

	if opts.CorrectedText != "" {
		if err := alignInputs(inputs, opts.CorrectedText, &stats); err != nil {
			return Payload{}, Stats{}, err
		}
	} else {
		stats.AnchorRatio = 1
	}

	results := make([][]captions.Segment, len(inputs))
	group, gctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		group.SetLimit(opts.Parallelism)
	} else {
		group.SetLimit(1)
	}
	for i := range inputs {
		if inputs[i] == nil {
			continue
		}
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			segs, err := seg.Segment(inputs[i], lang, opts.Limits)
			if err != nil {
				return fmt.Errorf("segment %s: %w", payload.Segments[i].ID, err)
			}
			results[i] = segs
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Payload{}, Stats{}, err
	}

	out := Payload{Language: payload.Language}
	for i, segs := range results {
		parent := payload.Segments[i]
		for ordinal, cs := range segs {
			if cs.WidthViolation {
				stats.WidthViolations++
			}
			if cs.CPSViolation {
				stats.CPSViolations++
			}
			out.Segments = append(out.Segments, fromCaptionSegment(cs, parent, ordinal))
		}
	}
	stats.SegmentsOut = len(out.Segments)

	logger.Info("transcript re-segmented",
		logging.Int("segments_in", stats.SegmentsIn),
		logging.Int("segments_out", stats.SegmentsOut),
		logging.Int("words", stats.Words),
		logging.Float64("anchor_ratio", stats.AnchorRatio),
		logging.Bool("low_confidence", stats.LowConfidence),
		logging.Int("width_violations", stats.WidthViolations),
		logging.Int("cps_violations", stats.CPSViolations),
	)
	return out, stats, nil
}

// collectWords converts every payload segment to engine words, rejecting
// segments that claim text but carry no word timing.
func collectWords(payload Payload) ([][]captions.Word, error) {
	out := make([][]captions.Word, len(payload.Segments))
	for i, s := range payload.Segments {
		if len(s.Words) == 0 {
			if strings.TrimSpace(s.Text) != "" {
				return nil, fmt.Errorf("%w: segment %q has text but no words", captions.ErrMalformedInput, s.ID)
			}
			// Fully empty segment carries nothing to re-chunk.
			continue
		}
		words := make([]captions.Word, len(s.Words))
		for j, w := range s.Words {
			words[j] = captions.Word{
				Text:       w.Word,
				Start:      w.Start,
				End:        w.End,
				Confidence: w.Probability,
			}
		}
		if err := captions.ValidateWords(words); err != nil {
			return nil, fmt.Errorf("segment %q: %w", s.ID, err)
		}
		out[i] = words
	}
	return out, nil
}

// alignInputs runs one alignment over the concatenated word stream and
// redistributes the reconciled slots back to their owning segments, so slot
// counts per segment are conserved.
func alignInputs(inputs [][]captions.Word, correctedText string, stats *Stats) error {
	combined := make([]captions.Word, 0, stats.Words)
	for _, words := range inputs {
		combined = append(combined, words...)
	}
	result, err := captions.Align(combined, correctedText)
	if err != nil {
		return err
	}
	stats.AnchorRatio = result.AnchorRatio
	stats.LowConfidence = result.LowConfidence

	offset := 0
	for i, words := range inputs {
		inputs[i] = result.Words[offset : offset+len(words)]
		offset += len(words)
	}
	return nil
}

func fromCaptionSegment(cs captions.Segment, parent Segment, ordinal int) Segment {
	words := make([]Word, len(cs.Words))
	for i, w := range cs.Words {
		words[i] = Word{
			Word:        w.Text,
			Start:       w.Start,
			End:         w.End,
			Probability: w.Confidence,
		}
	}
	return Segment{
		ID:      segmentID(parent.ID, ordinal),
		Start:   cs.Start,
		End:     cs.End,
		Text:    cs.Text,
		Speaker: parent.Speaker,
		Words:   words,
	}
}
