package transcript

import (
	"fmt"
	"io"
	"strings"
)

// WriteSRT renders the payload's segments as SRT cues. Segments whose text is
// empty (all words deleted by correction) hold their time slots in the
// payload but draw nothing, so they are skipped here.
func WriteSRT(w io.Writer, payload Payload) error {
	index := 0
	for _, s := range payload.Segments {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		index++
		if index > 1 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write srt: %w", err)
			}
		}
		cue := fmt.Sprintf("%d\n%s --> %s\n%s\n", index, formatSRTTimestamp(s.Start), formatSRTTimestamp(s.End), s.Text)
		if _, err := io.WriteString(w, cue); err != nil {
			return fmt.Errorf("write srt: %w", err)
		}
	}
	return nil
}

func formatSRTTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	msTotal := int(seconds*1000 + 0.5)
	hours := msTotal / 3_600_000
	msTotal %= 3_600_000
	minutes := msTotal / 60_000
	msTotal %= 60_000
	secs := msTotal / 1_000
	millis := msTotal % 1_000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
