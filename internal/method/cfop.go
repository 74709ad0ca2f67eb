package method

import "github.com/layerwise/cube/internal/search"

// CFOP is Cross, F2L, OLL, PLL - the four-stage method the engine's
// default move sets (search.CrossMoves, search.F2LMoves,
// search.LastLayerMoves) were named after.
type CFOP struct{}

func (CFOP) Name() string { return "CFOP" }

func (CFOP) Stages() []Stage {
	return []Stage{
		crossStage(search.CrossMoves),
		f2lStage(search.F2LMoves),
		ollStage(search.LastLayerMoves),
		pllStage(search.LastLayerMoves),
	}
}

func (CFOP) Scorer() search.Scorer { return search.ScoreCFOP }
