package method

import (
	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// LBL is the beginner's layer-by-layer method: cross, first-layer
// corners, middle-layer edges, then OLL/PLL, all searched with the full
// move alphabet since a beginner method makes no finger-trick or
// one-handedness promises worth scoring for.
type LBL struct{}

func (LBL) Name() string { return "LBL" }

func (LBL) Stages() []Stage {
	return []Stage{
		crossStage(search.AllFaceMoves),
		{
			Name:  "first-layer-corners",
			Moves: search.AllFaceMoves,
			Goal:  search.NewPredicateBuilder().RequireSolved(cube.Layer(cube.Down)).Build(),
		},
		f2lStage(search.AllFaceMoves),
		ollStage(search.AllFaceMoves),
		pllStage(search.AllFaceMoves),
	}
}

// Scorer returns nil: LBL has no finger-trick preference, so Evaluate
// falls back to its plain length-based baseScore.
func (LBL) Scorer() search.Scorer { return nil }
