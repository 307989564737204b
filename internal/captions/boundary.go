package captions

import (
	"math"

	"captionseg/internal/language"
	"captionseg/internal/textutil"
)

type boundaryKind uint8

const (
	kindWeakPunct boundaryKind = iota
	kindConjunction
	kindPause
)

// boundaryCandidate is a scored cut point: the cut falls between words[index]
// and words[index+1]. Candidates live only inside one split call.
type boundaryCandidate struct {
	index int
	score float64
	kind  boundaryKind
}

// Candidate base scores and penalty weights. Weak punctuation outranks a cut
// before a conjunction, which outranks a pause; longer pauses score higher up
// to the cap.
const (
	weakPunctScore        = 1.0
	conjunctionScore      = 0.6
	pauseBaseScore        = 0.3
	pauseLengthBonus      = 0.4
	pauseScoreCapSeconds  = 2.0
	sentenceStarterBonus  = 0.1
	midpointPenaltyWeight = 0.5
	imbalancePenaltyScale = 0.25
)

// collectBoundaryCandidates scores every eligible cut point in the run. At
// most one candidate is produced per index, the strongest kind that applies.
// No candidate ever falls directly after an abbreviation.
func collectBoundaryCandidates(words []Word, profile language.Profile, limits Limits) []boundaryCandidate {
	var out []boundaryCandidate
	for i := 0; i < len(words)-1; i++ {
		if language.IsAbbreviation(words[i].Text) {
			continue
		}

		cand, ok := candidateAt(words, i, profile, limits)
		if !ok {
			continue
		}
		if key := textutil.MatchToken(words[i+1].Text); profile.IsSentenceStarter(key) {
			cand.score += sentenceStarterBonus
		}
		out = append(out, cand)
	}
	return out
}

func candidateAt(words []Word, i int, profile language.Profile, limits Limits) (boundaryCandidate, bool) {
	if words[i].Text != "" && profile.HasWeakPunctuationSuffix(words[i].Text) {
		return boundaryCandidate{index: i, score: weakPunctScore, kind: kindWeakPunct}, true
	}

	// A conjunction followed by a non-capitalized word marks a clause seam;
	// the cut goes before the conjunction.
	if i+2 < len(words) {
		next := textutil.MatchToken(words[i+1].Text)
		if next != "" && profile.IsConjunction(next) && startsLower(words[i+2].Text) {
			return boundaryCandidate{index: i, score: conjunctionScore, kind: kindConjunction}, true
		}
	}

	if gap := words[i+1].Start - words[i].End; gap > limits.PauseThreshold {
		capped := math.Min(gap, pauseScoreCapSeconds)
		score := pauseBaseScore + pauseLengthBonus*capped/pauseScoreCapSeconds
		return boundaryCandidate{index: i, score: score, kind: kindPause}, true
	}

	return boundaryCandidate{}, false
}

// selectBoundary picks the legal candidate maximizing score minus a
// distance-from-midpoint penalty and a length-imbalance penalty. Candidates
// whose children would fall below the minimum length or duration are
// rejected. Returns false when no legal candidate exists.
func selectBoundary(words []Word, candidates []boundaryCandidate, profile language.Profile, limits Limits) (int, bool) {
	total := runWidth(words, profile)
	mid := float64(len(words)) / 2

	bestIndex := -1
	bestScore := math.Inf(-1)
	for _, c := range candidates {
		left := words[:c.index+1]
		right := words[c.index+1:]
		if !childLegal(left, limits) || !childLegal(right, limits) {
			continue
		}

		midPenalty := math.Abs(float64(c.index+1)-mid) / float64(len(words)) * midpointPenaltyWeight
		imbalance := 0.0
		if total > 0 {
			lw := runWidth(left, profile)
			rw := runWidth(right, profile)
			imbalance = math.Abs(float64(lw-rw)) / float64(total) * imbalancePenaltyScale
		}

		score := c.score - midPenalty - imbalance
		if score > bestScore {
			bestScore = score
			bestIndex = c.index
		}
	}

	if bestIndex < 0 {
		return 0, false
	}
	return bestIndex, true
}

// childLegal rejects children that would violate the floor limits. Length is
// counted in letters and digits so trailing punctuation cannot rescue a
// two-letter fragment.
func childLegal(child []Word, limits Limits) bool {
	if runLetterCount(child) < limits.MinChars {
		return false
	}
	start, end := runSpan(child)
	return end-start >= limits.MinDuration
}
