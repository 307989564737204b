package captions

import "testing"

func TestSplitBalancedEvenPieces(t *testing.T) {
	profile := resolveProfile(t, "en")
	limits := DefaultLimits()
	limits.MaxCharsPerLine = 10

	words := contiguousWords(0.5, "aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff", "gggg", "hhhh")
	pieces := splitBalanced(words, profile, limits)

	if len(pieces) != 4 {
		t.Fatalf("splitBalanced() produced %d pieces, want 4", len(pieces))
	}
	total := 0
	for i, p := range pieces {
		total += len(p)
		if w := runWidth(p, profile); w > limits.MaxCharsPerLine {
			t.Errorf("piece %d width = %d, exceeds limit %d", i, w, limits.MaxCharsPerLine)
		}
	}
	if total != len(words) {
		t.Errorf("pieces hold %d words, want %d", total, len(words))
	}
}

func TestSplitBalancedPreservesOrder(t *testing.T) {
	profile := resolveProfile(t, "en")
	limits := DefaultLimits()
	limits.MaxCharsPerLine = 8

	words := contiguousWords(0.5, "one", "two", "three", "four", "five", "six")
	pieces := splitBalanced(words, profile, limits)

	var flattened []string
	for _, p := range pieces {
		for _, w := range p {
			flattened = append(flattened, w.Text)
		}
	}
	want := []string{"one", "two", "three", "four", "five", "six"}
	if !equalStrings(flattened, want) {
		t.Errorf("flattened order = %v, want %v", flattened, want)
	}
}

func TestSplitBalancedAvoidsAbbreviationCut(t *testing.T) {
	profile := resolveProfile(t, "en")
	limits := DefaultLimits()
	limits.MaxCharsPerLine = 8

	words := contiguousWords(1.0, "Dr.", "Smith", "arrived")
	pieces := splitBalanced(words, profile, limits)

	for _, p := range pieces[:len(pieces)-1] {
		last := p[len(p)-1].Text
		if last == "Dr." {
			t.Errorf("balanced cut fell directly after abbreviation %q", last)
		}
	}
}

func TestSplitBalancedSingleWordComesBackWhole(t *testing.T) {
	profile := resolveProfile(t, "en")
	limits := DefaultLimits()
	limits.MaxCharsPerLine = 5

	words := []Word{word("indivisible", 0.0, 1.0)}
	pieces := splitBalanced(words, profile, limits)
	if len(pieces) != 1 || len(pieces[0]) != 1 {
		t.Fatalf("splitBalanced() = %d pieces, want the run whole", len(pieces))
	}
}

func TestSplitOversizedTerminatesAndOrders(t *testing.T) {
	profile := resolveProfile(t, "en")
	limits := DefaultLimits()
	limits.MaxCharsPerLine = 10

	words := contiguousWords(0.5, "aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff", "gggg", "hhhh")
	pieces := splitOversized(words, profile, limits)

	if len(pieces) < 2 {
		t.Fatalf("splitOversized() produced %d pieces, want several", len(pieces))
	}
	var flattened []string
	for _, p := range pieces {
		if w := runWidth(p, profile); w > limits.MaxCharsPerLine && len(p) > 1 {
			t.Errorf("multi-word piece width = %d exceeds limit", w)
		}
		for _, wd := range p {
			flattened = append(flattened, wd.Text)
		}
	}
	want := []string{"aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff", "gggg", "hhhh"}
	if !equalStrings(flattened, want) {
		t.Errorf("flattened order = %v, want %v", flattened, want)
	}
}
