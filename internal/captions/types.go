package captions

import (
	"errors"
	"fmt"

	"captionseg/internal/language"
	"captionseg/internal/textutil"
)

// ErrMalformedInput marks precondition violations in caller-supplied data.
// Nothing downstream retries these; they indicate a bug in the upstream
// pipeline, not a transient fault.
var ErrMalformedInput = errors.New("captions: malformed input")

// Word is one time-stamped token from the ASR stream. Text may legitimately
// be empty after a deletion while the slot keeps its time range.
type Word struct {
	Text       string
	Start      float64
	End        float64
	Confidence float64
}

// Segment groups consecutive words into one display caption. Start, End, and
// Text are always derived from Words, never set independently.
type Segment struct {
	ID      string
	Start   float64
	End     float64
	Text    string
	Words   []Word
	Speaker string

	// CharsPerSecond is the reading speed of the rendered text over the
	// segment's time range.
	CharsPerSecond float64

	// WidthViolation records that the rendered text exceeds the line limit
	// because a single indivisible word is wider than the limit allows.
	WidthViolation bool

	// CPSViolation records that the reading speed exceeds the per-second
	// budget. Splitting cannot lower a run's reading speed, so the violation
	// is reported rather than split on.
	CPSViolation bool
}

// Limits bounds a rendered caption. Always passed explicitly; zero values are
// rejected by Validate rather than silently defaulted.
type Limits struct {
	MaxCharsPerLine   int
	MaxCharsPerSecond float64
	MinDuration       float64
	MaxDuration       float64
	MinChars          int
	PauseThreshold    float64
}

// DefaultLimits returns the standard subtitle display budgets.
func DefaultLimits() Limits {
	return Limits{
		MaxCharsPerLine:   42,
		MaxCharsPerSecond: 18.0,
		MinDuration:       1.0,
		MaxDuration:       7.0,
		MinChars:          3,
		PauseThreshold:    0.3,
	}
}

// Validate ensures the limits are usable.
func (l Limits) Validate() error {
	if l.MaxCharsPerLine <= 0 {
		return fmt.Errorf("limits: max chars per line must be positive, got %d", l.MaxCharsPerLine)
	}
	if l.MaxCharsPerSecond <= 0 {
		return fmt.Errorf("limits: max chars per second must be positive, got %g", l.MaxCharsPerSecond)
	}
	if l.MinDuration < 0 {
		return fmt.Errorf("limits: min duration must not be negative, got %g", l.MinDuration)
	}
	if l.MaxDuration <= l.MinDuration {
		return fmt.Errorf("limits: max duration %g must exceed min duration %g", l.MaxDuration, l.MinDuration)
	}
	if l.MinChars < 0 {
		return fmt.Errorf("limits: min chars must not be negative, got %d", l.MinChars)
	}
	if l.PauseThreshold <= 0 {
		return fmt.Errorf("limits: pause threshold must be positive, got %g", l.PauseThreshold)
	}
	return nil
}

// ValidateWords rejects word streams that violate the engine's preconditions:
// an empty stream, a word ending before it starts, or start times that move
// backwards.
func ValidateWords(words []Word) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: segment has no words", ErrMalformedInput)
	}
	for i, w := range words {
		if w.End < w.Start {
			return fmt.Errorf("%w: word %d ends at %.3f before it starts at %.3f", ErrMalformedInput, i, w.End, w.Start)
		}
		if i > 0 && w.Start < words[i-1].Start {
			return fmt.Errorf("%w: word %d starts at %.3f before word %d at %.3f", ErrMalformedInput, i, w.Start, i-1, words[i-1].Start)
		}
	}
	return nil
}

// newSegment derives a Segment from its words.
func newSegment(words []Word, profile language.Profile, limits Limits) Segment {
	text := joinWords(words, profile)
	start, end := runSpan(words)
	width := textutil.Width(text)
	cps := textutil.CharsPerSecond(width, start, end)
	return Segment{
		Start:          start,
		End:            end,
		Text:           text,
		Words:          words,
		CharsPerSecond: cps,
		WidthViolation: width > limits.MaxCharsPerLine,
		CPSViolation:   cps > limits.MaxCharsPerSecond,
	}
}
