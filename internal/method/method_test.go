package method

import (
	"testing"

	"github.com/layerwise/cube/internal/cube"
)

func TestByNameKnownMethods(t *testing.T) {
	for _, name := range Names() {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) returned error: %v", name, err)
		}
	}
}

func TestByNameUnknownMethod(t *testing.T) {
	if _, err := ByName("not-a-method"); err == nil {
		t.Error("ByName with an unknown name should return an error")
	}
}

// TestSolveAlreadySolvedCube drives every registered method against an
// already-solved cube: every stage's goal is trivially reachable (the
// state already satisfies it, and the move sets always include a pair
// that returns to it within MaxStageDepth), so this exercises the full
// stage-chaining and iterative-deepening machinery without depending on
// a specific scramble's solution existing.
func TestSolveAlreadySolvedCube(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			m, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) error = %v", name, err)
			}

			result, err := Solve(m, cube.NewState(), -1)
			if err != nil {
				t.Fatalf("Solve(%s) error = %v", name, err)
			}

			replay := cube.NewState()
			replay.ApplyAlgorithm(result.Solution)
			if !replay.IsSolved(cube.WholeCube) {
				t.Errorf("Solve(%s) produced %s, which does not resolve to a solved cube", name, result.Solution.String())
			}
			if len(result.Stages) == 0 {
				t.Errorf("Solve(%s) reported no stage breakdown", name)
			}
		})
	}
}

func TestStageUnsolvedErrorMessage(t *testing.T) {
	err := &StageUnsolvedError{Method: "CFOP", Stage: "cross", Depth: MaxStageDepth}
	if err.Error() == "" {
		t.Error("StageUnsolvedError.Error() should not be empty")
	}
}

func TestSolveScrambleWrapsNewState(t *testing.T) {
	m, err := ByName("cfop")
	if err != nil {
		t.Fatalf("ByName error = %v", err)
	}
	result, err := SolveScramble(m, cube.Algorithm{}, -1)
	if err != nil {
		t.Fatalf("SolveScramble error = %v", err)
	}
	replay := cube.NewState()
	replay.ApplyAlgorithm(result.Solution)
	if !replay.IsSolved(cube.WholeCube) {
		t.Error("SolveScramble on an empty scramble should still resolve to a solved cube")
	}
}
