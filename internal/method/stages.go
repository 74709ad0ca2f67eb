package method

import (
	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// The helpers below build the handful of Stage shapes every layer-by-layer
// method shares (cross, F2L, last-layer orientation, last-layer
// permutation); each Method implementation in this package only chooses
// which move set feeds a given stage, matching spec.md §2's "every method
// is a thin orchestration that configures this engine."

func crossStage(moves []cube.Move) Stage {
	return Stage{
		Name:  "cross",
		Moves: moves,
		Goal:  search.NewPredicateBuilder().RequireSolved(cube.Cross(cube.Down)).Build(),
	}
}

func f2lStage(moves []cube.Move) Stage {
	return Stage{
		Name:  "f2l",
		Moves: moves,
		Goal:  search.NewPredicateBuilder().RequireSolved(cube.FirstTwoLayers).Build(),
	}
}

// ollStage solves last-layer orientation while re-asserting F2L, since the
// move set (U plus side faces) can temporarily disturb it.
func ollStage(moves []cube.Move) Stage {
	return Stage{
		Name:  "oll",
		Moves: moves,
		Goal: search.NewPredicateBuilder().
			RequireSolved(cube.FirstTwoLayers).
			RequireOriented(cube.LastLayerEdges).
			RequireOriented(cube.LastLayerCorners).
			Build(),
	}
}

func pllStage(moves []cube.Move) Stage {
	return Stage{
		Name:  "pll",
		Moves: moves,
		Goal:  search.NewPredicateBuilder().RequireSolved(cube.WholeCube).Build(),
	}
}

// lastLayerStage solves orientation and permutation in a single pass, the
// way methods that don't separate OLL from PLL (Petrus) finish.
func lastLayerStage(moves []cube.Move) Stage {
	return Stage{
		Name:  "last-layer",
		Moves: moves,
		Goal:  search.NewPredicateBuilder().RequireSolved(cube.WholeCube).Build(),
	}
}
