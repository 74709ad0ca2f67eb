// Package method implements the Method Orchestrator layer spec.md §2
// commits every human solving method to: a thin configuration of
// internal/search's Engine rather than a bespoke search strategy. Each
// Method supplies a move set and goal predicate per stage; Solve drives
// every stage to completion with iterative deepening (repeated bounded
// Engine.Run calls at increasing grammar depth), the same way
// original_source/deep_search.h's callers chain several bounded DeepSearch
// calls - one per solving phase - rather than run one unbounded search.
//
// Grounded on the teacher's internal/cube/solver.go Solver interface
// (Solve(*Cube) (*SolverResult, error), Name() string), generalized to
// operate on the piece-indexed cube.State/cube.Algorithm the search engine
// uses instead of the teacher's sticker-array Cube and hardcoded move
// literals.
package method

import (
	"fmt"

	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
)

// MaxStageDepth bounds how many iterative-deepening rounds (grammar
// levels) Solve will try for a single stage before giving up.
const MaxStageDepth = 7

// Stage is one phase of a method: the move set iterative deepening
// rebuilds its grammar from, and the goal the engine must satisfy before
// the stage is considered complete.
type Stage struct {
	Name  string
	Moves []cube.Move
	Goal  search.Predicate
}

// Method configures the search engine for every stage of a solve, plus the
// scorer used to choose among solutions tied for shortest at each stage.
type Method interface {
	Name() string
	Stages() []Stage
	Scorer() search.Scorer
}

// StageResult records what depth a stage solved at and the moves it took.
type StageResult struct {
	Name     string
	Solution cube.Algorithm
	Depth    int
}

// Result is the full outcome of a method-driven solve: the concatenated,
// cancellation-reduced solution plus a per-stage breakdown.
type Result struct {
	Method   string
	Solution cube.Algorithm
	Stages   []StageResult
}

// StageUnsolvedError reports that a stage had no solution within
// MaxStageDepth moves under its configured move set.
type StageUnsolvedError struct {
	Method string
	Stage  string
	Depth  int
}

func (e *StageUnsolvedError) Error() string {
	return fmt.Sprintf("method %s: stage %q unsolved within depth %d", e.Method, e.Stage, e.Depth)
}

// Solve drives every stage of m, in order, starting from start (the
// scrambled state to solve). Each stage's search starts from the
// cumulative result of every prior stage, so a later stage's goal
// predicate must also re-assert anything an earlier stage already solved
// (method Stages implementations in this package do exactly that) or the
// engine is free to disturb it while chasing the new goal.
func Solve(m Method, start cube.State, threadCount int) (*Result, error) {
	result := &Result{Method: m.Name()}
	progress := start.Clone()

	for _, stage := range m.Stages() {
		stageAlg, depth, err := solveStage(m.Name(), stage, progress, threadCount, m.Scorer())
		if err != nil {
			return nil, err
		}
		progress.ApplyAlgorithm(stageAlg)
		result.Solution = result.Solution.Concat(stageAlg)
		result.Stages = append(result.Stages, StageResult{Name: stage.Name, Solution: stageAlg, Depth: depth})
	}

	result.Solution = result.Solution.Cancellations()
	return result, nil
}

// SolveScramble is a convenience wrapper for the common case of solving a
// scramble applied from the solved state.
func SolveScramble(m Method, scramble cube.Algorithm, threadCount int) (*Result, error) {
	start := cube.NewState()
	start.ApplyAlgorithm(scramble)
	return Solve(m, start, threadCount)
}

// Progress reports one completed stage during a SolveWithProgress call, for
// callers rendering a live view (internal/cli's --interactive solve).
type Progress struct {
	Stage      StageResult
	StageIndex int
	StageCount int
}

// SolveWithProgress behaves like Solve but additionally sends a Progress
// value on updates after every completed stage. updates is never closed by
// this function; the caller owns it and should read until Solve returns.
func SolveWithProgress(m Method, start cube.State, threadCount int, updates chan<- Progress) (*Result, error) {
	result := &Result{Method: m.Name()}
	progress := start.Clone()
	stages := m.Stages()

	for i, stage := range stages {
		stageAlg, depth, err := solveStage(m.Name(), stage, progress, threadCount, m.Scorer())
		if err != nil {
			return nil, err
		}
		progress.ApplyAlgorithm(stageAlg)
		result.Solution = result.Solution.Concat(stageAlg)
		sr := StageResult{Name: stage.Name, Solution: stageAlg, Depth: depth}
		result.Stages = append(result.Stages, sr)
		if updates != nil {
			updates <- Progress{Stage: sr, StageIndex: i, StageCount: len(stages)}
		}
	}

	result.Solution = result.Solution.Cancellations()
	return result, nil
}

func solveStage(methodName string, stage Stage, start cube.State, threadCount int, scorer search.Scorer) (cube.Algorithm, int, error) {
	for depth := 1; depth <= MaxStageDepth; depth++ {
		grammar := search.NewGrammar()
		for i := 0; i < depth; i++ {
			grammar.AddSingleLevel(stage.Moves)
		}

		startCopy := start.Clone()
		engine := search.NewEngine(cube.Algorithm{}, grammar, stage.Goal)
		engine.StartState = &startCopy
		engine.ThreadCount = threadCount
		if err := engine.Run(); err != nil {
			return cube.Algorithm{}, 0, err
		}

		solutions := engine.Solutions()
		if len(solutions) == 0 {
			continue
		}
		best := search.Evaluate(solutions, search.PolicyBest, cube.MetricHTM, scorer, nil)
		return best[0], depth, nil
	}
	return cube.Algorithm{}, 0, &StageUnsolvedError{Method: methodName, Stage: stage.Name, Depth: MaxStageDepth}
}
