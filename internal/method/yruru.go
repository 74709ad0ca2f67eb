package method

import (
	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// YruRU builds a 2x2x2 first block with the full alphabet (a regrip is
// allowed here), then solves everything else one-handed under
// search.YruRUMoves - R and U only - the constraint the method is named
// for.
type YruRU struct{}

func (YruRU) Name() string { return "YruRU" }

func (YruRU) Stages() []Stage {
	return []Stage{
		{
			Name:  "first-block",
			Moves: search.AllFaceMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.YruRUFirstBlock).Build(),
		},
		{
			Name:  "finish",
			Moves: search.YruRUMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.WholeCube).Build(),
		},
	}
}

func (YruRU) Scorer() search.Scorer { return search.ScoreYruRU }
