package textutil

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s in character cells. East Asian wide
// runes count double, which is how subtitle renderers budget CJK lines.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// CharsPerSecond returns the reading speed of a run of the given display
// width over [start, end] seconds. A zero or negative duration with visible
// text reads as infinitely fast.
func CharsPerSecond(width int, start, end float64) float64 {
	duration := end - start
	if duration <= 0 {
		if width > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(width) / duration
}
