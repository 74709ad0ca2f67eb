package search

import (
	"math"

	"github.com/layerwise/cube/internal/cube"
)

// evaluator.go - the Result Evaluator (spec.md §3/§4.H): chooses which
// logged Solution(s) to surface once a run completes, under a selectable
// Policy, with method-specific scorers breaking ties among same-length
// solutions. Grounded on deep_search.h's SetBestPolicy/SetShortPolicy and
// EvaluateShortestResult, generalized to a small Policy enum plus a
// pluggable per-method scorer instead of the header's two hardcoded modes.

// Policy selects how Evaluate narrows a Solution set down.
type Policy int

const (
	// PolicyBest keeps every solution tied for the best method-specific
	// score among those also tied for minimum metric length.
	PolicyBest Policy = iota
	// PolicyShort keeps every solution tied for minimum metric length,
	// regardless of subjective score. Requires the engine's atomic
	// max-depth/min-length bookkeeping to be race-free (spec.md §5).
	PolicyShort
	// PolicyFirst keeps only the first solution logged, in discovery
	// order - useful for an existence check ("can this be solved in N").
	PolicyFirst
	// PolicyRandom keeps one solution chosen uniformly at random from
	// the full log, for scramble/fuzz generation rather than solving.
	PolicyRandom
)

// Scorer assigns a method-specific quality score to an algorithm, higher
// is better. CFOP/Roux/Petrus/ZZ/YruRU scorers all share the formula
// spec.md §4.H gives: 50*max(0,50-length) + subjective_score +
// feature_bonus, differing only in what counts as a feature bonus.
type Scorer func(a cube.Algorithm, metric cube.Metric) int

func baseScore(a cube.Algorithm, metric cube.Metric) int {
	length := int(math.Round(a.Metric(metric)))
	lengthBonus := 50 - length
	if lengthBonus < 0 {
		lengthBonus = 0
	}
	return 50*lengthBonus + a.SubjectiveScore()
}

// countAxis reports how many of a's moves (of any range) are on the given
// axis, used by the method scorers below to reward the finger-trick
// patterns each method favours.
func countAxis(a cube.Algorithm, axis cube.Axis) int {
	n := 0
	for _, m := range a.Moves {
		if m.Axis() == axis {
			n++
		}
	}
	return n
}

// ScoreCFOP rewards heavy use of R/U (the two faces CFOP's algorithm set
// is built around).
func ScoreCFOP(a cube.Algorithm, metric cube.Metric) int {
	return baseScore(a, metric) + 2*countAxis(a, cube.AxisX) + countAxis(a, cube.AxisY)
}

// ScoreRoux rewards M-slice and R/U moves, Roux's defining toolkit.
func ScoreRoux(a cube.Algorithm, metric cube.Metric) int {
	bonus := 0
	for _, m := range a.Moves {
		if m.Range() == cube.RangeInternal {
			bonus += 3
		}
	}
	return baseScore(a, metric) + bonus
}

// ScorePetrus rewards solutions that keep turns off the Down face, since
// Petrus blockbuilding never needs to revisit it once the 2x2x2 is built.
func ScorePetrus(a cube.Algorithm, metric cube.Metric) int {
	bonus := 0
	for _, m := range a.Moves {
		if m.Range() != cube.RangeTurn && m.Axis() == cube.AxisY && m.Face != cube.Down {
			bonus++
		}
	}
	return baseScore(a, metric) + bonus
}

// ScoreZZ penalises any remaining F/B quarter turn (ZZ's edge-orientation
// invariant should make these rare to nonexistent past EOLine).
func ScoreZZ(a cube.Algorithm, metric cube.Metric) int {
	penalty := 0
	for _, m := range a.Moves {
		if m.Axis() == cube.AxisZ && m.Range() != cube.RangeDouble {
			penalty++
		}
	}
	return baseScore(a, metric) - 4*penalty
}

// ScoreYruRU rewards solutions dominated by R/U moves executed one
// handed, YruRU's namesake constraint.
func ScoreYruRU(a cube.Algorithm, metric cube.Metric) int {
	oneHanded := 0
	for _, m := range a.Moves {
		if m.Face == cube.Right || m.Face == cube.Up {
			oneHanded++
		}
	}
	return baseScore(a, metric) + oneHanded
}

// Evaluate selects the subset of solutions Policy prescribes. metric picks
// the length function PolicyBest/PolicyShort minimise; scorer breaks ties
// for PolicyBest (pass nil to fall back to baseScore).
func Evaluate(solutions []cube.Algorithm, policy Policy, metric cube.Metric, scorer Scorer, pick func(int) int) []cube.Algorithm {
	if len(solutions) == 0 {
		return nil
	}
	if scorer == nil {
		scorer = baseScore
	}

	switch policy {
	case PolicyFirst:
		return solutions[:1]
	case PolicyRandom:
		if pick == nil {
			return solutions[:1]
		}
		i := pick(len(solutions))
		return solutions[i : i+1]
	case PolicyShort:
		minLen := math.Inf(1)
		for _, s := range solutions {
			if l := s.Metric(metric); l < minLen {
				minLen = l
			}
		}
		var out []cube.Algorithm
		for _, s := range solutions {
			if s.Metric(metric) == minLen {
				out = append(out, s)
			}
		}
		return out
	default: // PolicyBest
		minLen := math.Inf(1)
		for _, s := range solutions {
			if l := s.Metric(metric); l < minLen {
				minLen = l
			}
		}
		bestScore := -1 << 62
		var tied []cube.Algorithm
		for _, s := range solutions {
			if s.Metric(metric) != minLen {
				continue
			}
			sc := scorer(s, metric)
			if sc > bestScore {
				bestScore = sc
				tied = tied[:0]
			}
			if sc == bestScore {
				tied = append(tied, s)
			}
		}
		return tied
	}
}
