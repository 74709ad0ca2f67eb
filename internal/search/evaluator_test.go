package search

import (
	"testing"

	"github.com/layerwise/cube/internal/cube"
)

func algs(notations ...string) []cube.Algorithm {
	out := make([]cube.Algorithm, len(notations))
	for i, n := range notations {
		out[i] = cube.NewAlgorithm(mustParse(splitNotation(n)...)...)
	}
	return out
}

// splitNotation is a tiny test helper splitting "R U R'" into tokens,
// since mustParse wants one notation per argument.
func splitNotation(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func TestEvaluatePolicyShortPicksMinimumLength(t *testing.T) {
	solutions := algs("R U R' U'", "R U", "F R U R' U' F'")
	out := Evaluate(solutions, PolicyShort, cube.MetricRaw, nil, nil)

	if len(out) != 1 {
		t.Fatalf("PolicyShort returned %d solutions, want 1", len(out))
	}
	if out[0].Len() != 2 {
		t.Errorf("PolicyShort picked a %d-move solution, want the 2-move one", out[0].Len())
	}
}

func TestEvaluatePolicyFirstPicksDiscoveryOrder(t *testing.T) {
	solutions := algs("F R U R' U' F'", "R U")
	out := Evaluate(solutions, PolicyFirst, cube.MetricRaw, nil, nil)

	if len(out) != 1 || out[0].Len() != 6 {
		t.Fatalf("PolicyFirst = %v, want the first (6-move) solution", out)
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	if out := Evaluate(nil, PolicyBest, cube.MetricRaw, nil, nil); out != nil {
		t.Errorf("Evaluate(nil, ...) = %v, want nil", out)
	}
}

func TestEvaluatePolicyBestBreaksTiesByScorer(t *testing.T) {
	// Both solutions tie at 2 moves under MetricRaw; the CFOP scorer
	// should prefer the one with more R/U (AxisX/AxisY) moves.
	solutions := algs("R U", "F B")
	out := Evaluate(solutions, PolicyBest, cube.MetricRaw, ScoreCFOP, nil)

	if len(out) != 1 {
		t.Fatalf("PolicyBest with ScoreCFOP returned %d solutions, want 1 unique winner", len(out))
	}
	if out[0].Len() != 2 || out[0].Moves[0].Face != cube.Right {
		t.Errorf("PolicyBest/ScoreCFOP picked %s, want the R U solution", out[0].String())
	}
}
