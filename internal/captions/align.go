package captions

import (
	"strings"

	"captionseg/internal/textutil"
)

// SlotOp describes what alignment did to one word slot.
type SlotOp uint8

const (
	// SlotUnchanged keeps the original text verbatim.
	SlotUnchanged SlotOp = iota
	// SlotRetexted keeps the anchor match but with corrected spelling,
	// casing, or punctuation.
	SlotRetexted
	// SlotMerged carries inserted corrected text folded into an anchor slot.
	SlotMerged
	// SlotDeleted empties the slot's text while keeping its time range.
	SlotDeleted
)

func (op SlotOp) String() string {
	switch op {
	case SlotUnchanged:
		return "unchanged"
	case SlotRetexted:
		return "retexted"
	case SlotMerged:
		return "merged"
	case SlotDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// lowConfidenceAnchorRatio is the anchor coverage below which an alignment is
// flagged as best-effort.
const lowConfidenceAnchorRatio = 0.3

// AlignResult is the outcome of mapping corrected text onto the original
// timeline. Words has exactly the input's length and order.
type AlignResult struct {
	Words         []Word
	Ops           []SlotOp
	AnchorRatio   float64
	LowConfidence bool
}

// Align maps correctedText back onto the original word slots. Matched tokens
// are anchors and keep their exact original timestamps; corrected tokens with
// no match are folded into the nearest preceding anchor slot rather than
// being given a fabricated time range; original words absent from the
// corrected text end up as empty slots. An empty correctedText deletes
// everything. An alignment with no anchors at all still returns a correctly
// sized result, flagged low-confidence.
func Align(original []Word, correctedText string) (AlignResult, error) {
	if err := ValidateWords(original); err != nil {
		return AlignResult{}, err
	}

	out := make([]Word, len(original))
	ops := make([]SlotOp, len(original))
	for i, w := range original {
		out[i] = Word{Start: w.Start, End: w.End, Confidence: w.Confidence}
		ops[i] = SlotDeleted
	}

	corrected := strings.Fields(correctedText)
	if len(corrected) == 0 {
		return AlignResult{Words: out, Ops: ops, AnchorRatio: 1}, nil
	}

	origKeys := make([]string, len(original))
	for i, w := range original {
		origKeys[i] = textutil.MatchToken(w.Text)
	}
	corrKeys := make([]string, len(corrected))
	for i, t := range corrected {
		corrKeys[i] = textutil.MatchToken(t)
	}

	anchors := lcsPairs(origKeys, corrKeys)
	if len(anchors) == 0 {
		// Nothing matched: keep the timeline intact and park the whole
		// corrected text in the first slot.
		out[0].Text = strings.Join(corrected, " ")
		ops[0] = SlotMerged
		return AlignResult{Words: out, Ops: ops, LowConfidence: true}, nil
	}

	for _, a := range anchors {
		out[a.orig].Text = corrected[a.corr]
		if corrected[a.corr] == original[a.orig].Text {
			ops[a.orig] = SlotUnchanged
		} else {
			ops[a.orig] = SlotRetexted
		}
	}

	// Corrected tokens before the first anchor have no preceding slot to
	// receive them; they fold forward into the first anchor instead.
	first := anchors[0]
	if first.corr > 0 {
		out[first.orig].Text = strings.Join(corrected[:first.corr], " ") + " " + out[first.orig].Text
		ops[first.orig] = SlotMerged
	}

	// Every inserted token between two anchors appends to the preceding
	// anchor's slot.
	for k, a := range anchors {
		nextCorr := len(corrected)
		if k+1 < len(anchors) {
			nextCorr = anchors[k+1].corr
		}
		if a.corr+1 < nextCorr {
			out[a.orig].Text += " " + strings.Join(corrected[a.corr+1:nextCorr], " ")
			ops[a.orig] = SlotMerged
		}
	}

	ratio := float64(len(anchors)) / float64(len(corrected))
	return AlignResult{
		Words:         out,
		Ops:           ops,
		AnchorRatio:   ratio,
		LowConfidence: ratio < lowConfidenceAnchorRatio,
	}, nil
}

type anchorPair struct {
	orig int
	corr int
}

// lcsPairs computes the longest common subsequence of the two normalized
// token sequences and returns the matched index pairs in order. Empty keys
// never match: a deleted slot or a pure-punctuation token is not an anchor.
func lcsPairs(a, b []string) []anchorPair {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] != "" && a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}

	pairs := make([]anchorPair, 0, table[0][0])
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case a[i] != "" && a[i] == b[j]:
			pairs = append(pairs, anchorPair{orig: i, corr: j})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			i++
		default:
			j++
		}
	}
	return pairs
}
