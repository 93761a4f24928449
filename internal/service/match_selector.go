package service

import (
	"errors"

	"dancenavi/internal/model"
)

// Pattern classifies overall match quality for downstream presentation
const (
	PatternGood       = "A"
	PatternCompromise = "B"

	patternThreshold = 80
)

// ErrNoCandidates is returned when SelectMatch is given zero pairs; the
// selector never silently returns a degenerate winner.
var ErrNoCandidates = errors.New("no candidate pairs to score")

// Selection is the outcome of scoring every candidate pair
type Selection struct {
	Best    model.ScoredPair
	Worst   model.ScoredPair
	Pattern string
}

// SelectMatch scores all pairs and picks the best among those without the
// large level-gap deduction, falling back to the full set when no pair
// qualifies. The worst pick ranges over the full set. Ties keep first-seen
// input order.
func SelectMatch(mctx model.MatchContext, pairs []model.CandidatePair) (*Selection, error) {
	if len(pairs) == 0 {
		return nil, ErrNoCandidates
	}

	scored := make([]model.ScoredPair, len(pairs))
	for i, pair := range pairs {
		scored[i] = ScorePair(mctx, pair)
	}

	best, ok := pickBest(scored, true)
	if !ok {
		best, _ = pickBest(scored, false)
	}

	worst := scored[0]
	for _, sp := range scored[1:] {
		if sp.Score < worst.Score {
			worst = sp
		}
	}

	pattern := PatternCompromise
	if best.Score >= patternThreshold {
		pattern = PatternGood
	}

	return &Selection{Best: best, Worst: worst, Pattern: pattern}, nil
}

func pickBest(scored []model.ScoredPair, validOnly bool) (model.ScoredPair, bool) {
	var best model.ScoredPair
	found := false
	for _, sp := range scored {
		if validOnly && hasLargeLevelGap(sp) {
			continue
		}
		if !found || sp.Score > best.Score {
			best = sp
			found = true
		}
	}
	return best, found
}

func hasLargeLevelGap(sp model.ScoredPair) bool {
	for _, entry := range sp.Breakdown {
		if entry.Key == deductionKeyLevel && entry.ScoreDiff == levelFarDeduction {
			return true
		}
	}
	return false
}
