// Package search implements the deep, parallel move-sequence search engine
// spec.md §4.G describes: given a Search Grammar (a small tree of move
// choices per depth level) and a Goal Predicate over piece groups, explore
// every branch the grammar allows, in parallel, logging every branch that
// satisfies the predicate.
//
// Grounded on original_source/deep_search.h (the "GR Cube" DeepSearch
// class this package's Engine reimplements in Go) and on the teacher's
// internal/cli/find.go, which is the teacher's own placeholder breadth
// first search - the component this package replaces end to end.
package search

import "github.com/layerwise/cube/internal/cube"

func mustParse(notations ...string) []cube.Move {
	moves := make([]cube.Move, len(notations))
	for i, n := range notations {
		m, err := cube.ParseMove(n)
		if err != nil {
			panic(err)
		}
		moves[i] = m
	}
	return moves
}

// AllFaceMoves is the 18-move outer-layer generating set (U,D,F,B,R,L and
// their primes/doubles) every method ultimately reduces to.
var AllFaceMoves = mustParse(
	"U", "U'", "U2", "D", "D'", "D2",
	"F", "F'", "F2", "B", "B'", "B2",
	"R", "R'", "R2", "L", "L'", "L2",
)

// AllSliceMoves adds M, E, S to the outer-layer set.
var AllSliceMoves = mustParse("M", "M'", "M2", "E", "E'", "E2", "S", "S'", "S2")

// AllMoves is the full 27-move alphabet (outer layers + slices), the
// default move set for an unconstrained search.
var AllMoves = append(append([]cube.Move{}, AllFaceMoves...), AllSliceMoves...)

// CrossMoves restricts the search to the moves that can touch the Down
// layer's edges without disturbing anything already solved above it - the
// generating set a cross search (and LBL's first step) uses.
var CrossMoves = mustParse("D", "D'", "D2", "F", "F'", "F2", "B", "B'", "B2", "R", "R'", "R2", "L", "L'", "L2")

// F2LMoves is CFOP's F2L generating set: everything except D (the cross
// layer, already solved by the time F2L starts).
var F2LMoves = mustParse(
	"U", "U'", "U2",
	"F", "F'", "F2", "B", "B'", "B2",
	"R", "R'", "R2", "L", "L'", "L2",
)

// LastLayerMoves is the generating set for OLL/PLL search: U plus the two
// side faces most algorithms are written against.
var LastLayerMoves = mustParse("U", "U'", "U2", "R", "R'", "R2", "F", "F'", "F2")

// RouxMoves is Roux's M/U-heavy generating set for the second-block and
// last-six-edges phases.
var RouxMoves = mustParse("M", "M'", "M2", "U", "U'", "U2", "R", "R'", "R2")

// ZZMoves excludes F and B quarter turns (only F2/B2 survive), matching
// ZZ's defining constraint that edge orientation, once achieved, must
// never be broken again.
var ZZMoves = mustParse(
	"U", "U'", "U2", "D", "D'", "D2",
	"F2", "B2",
	"R", "R'", "R2", "L", "L'", "L2",
)

// RotationMoves is the whole-cube turn alphabet, used by grammar Levels
// that need to explore re-orientations rather than face turns.
var RotationMoves = mustParse("x", "x'", "x2", "y", "y'", "y2", "z", "z'", "z2")

// YruRUMoves is YruRU's one-handed generating set: only the two faces a
// single right hand can turn without a regrip.
var YruRUMoves = mustParse("R", "R'", "R2", "U", "U'", "U2")
