package method

import (
	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// Roux builds two 1x2x3 side blocks with full-alphabet moves, then
// resolves corners (CMLL) and the last six edges (LSE) with the
// M-slice-heavy generating set search.RouxMoves is named for.
type Roux struct{}

func (Roux) Name() string { return "Roux" }

func (Roux) Stages() []Stage {
	return []Stage{
		{
			Name:  "first-block",
			Moves: search.AllFaceMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.RouxLeftBlock).Build(),
		},
		{
			Name:  "second-block",
			Moves: search.AllFaceMoves,
			Goal: search.NewPredicateBuilder().
				RequireSolved(cube.RouxLeftBlock).
				RequireSolved(cube.RouxRightBlock).
				Build(),
		},
		{
			Name:  "cmll",
			Moves: search.LastLayerMoves,
			Goal: search.NewPredicateBuilder().
				RequireSolved(cube.RouxLeftBlock).
				RequireSolved(cube.RouxRightBlock).
				RequireSolved(cube.LastLayerCorners).
				Build(),
		},
		{
			Name:  "lse",
			Moves: search.RouxMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.WholeCube).Build(),
		},
	}
}

func (Roux) Scorer() search.Scorer { return search.ScoreRoux }
