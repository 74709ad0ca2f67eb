package search

import (
	"testing"

	"github.com/layerwise/cube/internal/cube"
)

func TestPredicateSatisfiesSolvedState(t *testing.T) {
	goal := NewPredicateBuilder().RequireSolved(cube.WholeCube).Build()
	if !goal.Satisfies(cube.NewState()) {
		t.Error("a solved WholeCube predicate should be satisfied by the solved state")
	}
}

func TestPredicateRejectsScrambledState(t *testing.T) {
	goal := NewPredicateBuilder().RequireSolved(cube.WholeCube).Build()

	s := cube.NewState()
	s.ApplyAlgorithm(cube.NewAlgorithm(mustParse("R", "U")...))

	if goal.Satisfies(s) {
		t.Error("WholeCube predicate should reject a state with an R U scramble applied")
	}
}

func TestPredicateMandatoryIgnoresUnmaskedSlots(t *testing.T) {
	goal := NewPredicateBuilder().RequireSolved(cube.Cross(cube.Down)).Build()

	s := cube.NewState()
	// U only touches the Up layer, never the Down cross.
	s.ApplyAlgorithm(cube.NewAlgorithm(mustParse("U")...))

	if !goal.Satisfies(s) {
		t.Error("Cross(Down) predicate should still be satisfied after a U move, which never touches it")
	}
}

func TestPredicateRequireOneOfAcceptsEitherAlternative(t *testing.T) {
	goal := NewPredicateBuilder().RequireOneOf(cube.F2LFrontRight, cube.F2LFrontLeft).Build()

	solved := cube.NewState()
	if !goal.Satisfies(solved) {
		t.Fatal("solved state should satisfy any RequireOneOf alternative")
	}

	// R2 only touches the Right-layer slots F2LFrontRight names; the
	// unrelated Left-layer F2LFrontLeft stays solved, so the predicate
	// should still accept via its other alternative.
	s := cube.NewState()
	s.ApplyAlgorithm(cube.NewAlgorithm(mustParse("R2")...))
	if !goal.Satisfies(s) {
		t.Error("R2 should leave F2LFrontLeft solved, satisfying RequireOneOf")
	}
}

func TestPredicateRequireOriented(t *testing.T) {
	goal := NewPredicateBuilder().RequireOriented(cube.LastLayerEdges).Build()

	if !goal.Satisfies(cube.NewState()) {
		t.Fatal("solved state should satisfy an oriented-only predicate")
	}

	alg := cube.NewAlgorithm(mustParse("F", "R", "U", "R'", "U'", "F'")...)
	s := cube.NewState()
	s.ApplyAlgorithm(alg)
	s.ApplyAlgorithm(alg.Invert())
	if !goal.Satisfies(s) {
		t.Error("applying an algorithm then its inverse should return last layer edges to oriented")
	}
}
