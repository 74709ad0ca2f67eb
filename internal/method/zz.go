package method

import (
	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// ZZ starts with EOLine (every edge oriented, the two Down-middle edges
// also solved), then never needs an F/B quarter turn again -
// search.ZZMoves enforces exactly that constraint for every later stage.
type ZZ struct{}

func (ZZ) Name() string { return "ZZ" }

func (ZZ) Stages() []Stage {
	return []Stage{
		{
			Name:  "eoline",
			Moves: search.AllFaceMoves,
			Goal: search.NewPredicateBuilder().
				RequireOriented(cube.AllEdges).
				RequireSolved(cube.EOLineEdges).
				Build(),
		},
		f2lStage(search.ZZMoves),
		{
			Name:  "ocll",
			Moves: search.ZZMoves,
			Goal: search.NewPredicateBuilder().
				RequireSolved(cube.FirstTwoLayers).
				RequireOriented(cube.LastLayerCorners).
				Build(),
		},
		pllStage(search.ZZMoves),
	}
}

func (ZZ) Scorer() search.Scorer { return search.ScoreZZ }
