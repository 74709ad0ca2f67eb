package method

import (
	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// Petrus builds a 2x2x2 seed block, expands it to 2x2x3, orients the
// remaining edges without touching Down (the move set the F2L stage
// reuses already excludes it), then finishes the last layer in one pass -
// Petrus never splits OLL from PLL the way CFOP does.
type Petrus struct{}

func (Petrus) Name() string { return "Petrus" }

func (Petrus) Stages() []Stage {
	return []Stage{
		{
			Name:  "block-2x2x2",
			Moves: search.AllFaceMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.PetrusBlock222).Build(),
		},
		{
			Name:  "block-2x2x3",
			Moves: search.AllFaceMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.PetrusBlock223).Build(),
		},
		f2lStage(search.F2LMoves),
		lastLayerStage(search.LastLayerMoves),
	}
}

func (Petrus) Scorer() search.Scorer { return search.ScorePetrus }
