package search

import (
	"testing"

	"github.com/layerwise/cube/internal/cube"
)

func TestEngineRunEmptyGrammarError(t *testing.T) {
	e := NewEngine(cube.Algorithm{}, NewGrammar(), Predicate{})
	if err := e.Run(); err != ErrEmptyGrammar {
		t.Errorf("Run() with empty grammar = %v, want ErrEmptyGrammar", err)
	}
}

func TestEngineFindsSexyMoveInverse(t *testing.T) {
	scramble := cube.NewAlgorithm(mustParse("R", "U", "R'", "U'")...)
	goal := NewPredicateBuilder().RequireSolved(cube.WholeCube).Build()

	g := NewGrammar()
	g.AddSingleLevel(AllFaceMoves)
	g.AddSingleLevel(AllFaceMoves)
	g.AddSingleLevel(AllFaceMoves)
	g.AddSingleLevel(AllFaceMoves)

	e := NewEngine(scramble, g, goal)
	e.ThreadCount = -1 // deterministic synchronous run
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	solutions := e.Solutions()
	if len(solutions) == 0 {
		t.Fatal("expected at least one 4-move solution undoing R U R' U', found none")
	}
	for _, sol := range solutions {
		replay := cube.NewState()
		replay.ApplyAlgorithm(scramble)
		replay.ApplyAlgorithm(sol)
		if !replay.IsSolved(cube.WholeCube) {
			t.Errorf("logged solution %s does not actually solve the scrambled state", sol.String())
		}
	}
}

func TestEngineMinDepthRejectsShortSolutions(t *testing.T) {
	// The zero-value Predicate has an empty mandatory mask, so it is
	// trivially satisfied by every state - isolating MinDepth as the
	// only thing that can reject a branch here.
	var goal Predicate
	g := NewGrammar()
	g.AddSingleLevel(mustParse("U", "U'", "U2"))

	e := NewEngine(cube.Algorithm{}, g, goal)
	e.ThreadCount = -1
	e.MinDepth = 2
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if solutions := e.Solutions(); len(solutions) != 0 {
		t.Errorf("MinDepth=2 should reject every 1-move branch, got %d solutions", len(solutions))
	}
	if e.MaxDepthReached() != 1 {
		t.Errorf("MaxDepthReached() = %d, want 1 (rejected branches still count toward it)", e.MaxDepthReached())
	}
}

func TestEngineStartStateOverridesScramble(t *testing.T) {
	goal := NewPredicateBuilder().RequireSolved(cube.WholeCube).Build()
	// A single sequence level applying zero extra moves, so onLeaf sees
	// the search's notion of "start" unchanged: if StartState correctly
	// overrides Scramble, that start is solved and the goal is met.
	g := NewGrammar()
	g.AddSequenceLevel(cube.Algorithm{})

	start := cube.NewState() // solved
	e := NewEngine(cube.NewAlgorithm(mustParse("U")...), g, goal)
	e.StartState = &start
	e.ThreadCount = -1
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if solutions := e.Solutions(); len(solutions) != 1 {
		t.Fatalf("len(Solutions()) = %d, want 1 (StartState should override the ignored Scramble)", len(solutions))
	}
}

func TestEngineSkipStopsSynchronousRun(t *testing.T) {
	goal := NewPredicateBuilder().RequireSolved(cube.WholeCube).Build()
	g := NewGrammar()
	g.AddSingleLevel(AllFaceMoves)
	g.AddSingleLevel(AllFaceMoves)

	e := NewEngine(cube.Algorithm{}, g, goal)
	e.ThreadCount = -1
	e.Skip()
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if e.MaxDepthReached() != 0 {
		t.Errorf("a pre-skipped Run should explore nothing, MaxDepthReached() = %d", e.MaxDepthReached())
	}
}
