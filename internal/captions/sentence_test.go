package captions

import "testing"

// stubSplitter returns a fixed partition regardless of input.
type stubSplitter struct {
	parts []string
}

func (s stubSplitter) Split(string) []string { return s.parts }

func (s stubSplitter) Supports(string) bool { return true }

func TestSplitBySentences(t *testing.T) {
	profile := resolveProfile(t, "en")
	words := contiguousWords(0.5, "Hello", "world.", "Next", "one.")

	tests := []struct {
		name  string
		parts []string
		want  [][]string
	}{
		{
			name:  "boundary after trailing space",
			parts: []string{"Hello world. ", "Next one."},
			want:  [][]string{{"Hello", "world."}, {"Next", "one."}},
		},
		{
			name:  "boundary flush with word end",
			parts: []string{"Hello world.", " Next one."},
			want:  [][]string{{"Hello", "world."}, {"Next", "one."}},
		},
		{
			name:  "single sentence falls through",
			parts: []string{"Hello world. Next one."},
			want:  nil,
		},
		{
			name:  "length mismatch falls through",
			parts: []string{"Hello world.", "Next one."},
			want:  nil,
		},
		{
			name:  "mid-word boundary falls through",
			parts: []string{"Hello wor", "ld. Next one."},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := splitBySentences(words, profile, stubSplitter{parts: tt.parts})
			if tt.want == nil {
				if runs != nil {
					t.Fatalf("splitBySentences() = %v, want nil", runs)
				}
				return
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("splitBySentences() produced %d runs, want %d", len(runs), len(tt.want))
			}
			for i, run := range runs {
				got := make([]string, len(run))
				for j, w := range run {
					got[j] = w.Text
				}
				if !equalStrings(got, tt.want[i]) {
					t.Errorf("run %d = %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestWordByteOffsetsSkipsEmptySlots(t *testing.T) {
	profile := resolveProfile(t, "en")
	words := []Word{
		word("Hello", 0, 0.5),
		word("", 0.5, 0.7),
		word("world.", 0.7, 1.2),
	}

	ends, nextJoiner := wordByteOffsets(words, profile)
	// Joined text is "Hello world." — the empty slot contributes nothing and
	// carries its predecessor's offset.
	wantEnds := []int{5, 5, 12}
	for i := range wantEnds {
		if ends[i] != wantEnds[i] {
			t.Errorf("ends[%d] = %d, want %d", i, ends[i], wantEnds[i])
		}
	}
	if nextJoiner[0] != 1 {
		t.Errorf("nextJoiner[0] = %d, want 1", nextJoiner[0])
	}
	if nextJoiner[2] != 0 {
		t.Errorf("nextJoiner[2] = %d, want 0", nextJoiner[2])
	}
}
