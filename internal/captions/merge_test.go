package captions

import "testing"

func TestMergeIncomplete(t *testing.T) {
	profile := resolveProfile(t, "en")

	tests := []struct {
		name   string
		limits Limits
		runs   [][]Word
		want   []string
	}{
		{
			name:   "lowercase continuation merges",
			limits: DefaultLimits(),
			runs: [][]Word{
				contiguousWords(0.5, "I", "went"),
				{word("to", 1.0, 1.2), word("the", 1.2, 1.4), word("store.", 1.4, 2.0)},
			},
			want: []string{"I went to the store."},
		},
		{
			name:   "fragment below minimum merges",
			limits: DefaultLimits(),
			runs: [][]Word{
				contiguousWords(0.5, "Hello", "there."),
				{word("OK", 1.0, 1.5)},
			},
			want: []string{"Hello there. OK"},
		},
		{
			name:   "width gate blocks the merge",
			limits: Limits{MaxCharsPerLine: 10, MaxCharsPerSecond: 18, MinDuration: 1, MaxDuration: 7, MinChars: 3, PauseThreshold: 0.3},
			runs: [][]Word{
				contiguousWords(0.5, "unfinished", "thought"),
				{word("continues", 1.0, 2.0)},
			},
			want: []string{"unfinished thought", "continues"},
		},
		{
			name:   "complete neighbors stay apart",
			limits: DefaultLimits(),
			runs: [][]Word{
				contiguousWords(0.5, "First", "sentence."),
				{word("Second", 1.0, 1.5), word("sentence.", 1.5, 2.0)},
			},
			want: []string{"First sentence.", "Second sentence."},
		},
		{
			name:   "empty run folds away",
			limits: DefaultLimits(),
			runs: [][]Word{
				contiguousWords(0.5, "Visible", "text."),
				{word("", 1.0, 1.5), word("", 1.5, 2.0)},
			},
			want: []string{"Visible text."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mergeIncomplete(tt.runs, profile, tt.limits)
			got := runTexts(merged, profile)
			if !equalStrings(got, tt.want) {
				t.Errorf("mergeIncomplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeIncompleteConservesWords(t *testing.T) {
	profile := resolveProfile(t, "en")
	runs := [][]Word{
		contiguousWords(0.5, "a", "b"),
		contiguousWords(0.5, "c"),
		contiguousWords(0.5, "d", "e", "f"),
	}

	merged := mergeIncomplete(runs, profile, DefaultLimits())
	total := 0
	for _, run := range merged {
		total += len(run)
	}
	if total != 6 {
		t.Errorf("merged runs hold %d words, want 6", total)
	}
}
