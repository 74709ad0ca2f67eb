package search

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/layerwise/cube/internal/cube"
)

// engine.go - the Search Engine (spec.md §3/§4.G): walks a Search Grammar
// depth first from a scrambled cube.State, logging every branch that
// satisfies a Predicate, distributed across a fixed worker pool with no
// work stealing and no mid-branch suspension (spec.md §5 Concurrency
// Model). Grounded directly on original_source/deep_search.h's DeepSearch
// class (root enumeration via "typically Double/Triple" level-1 expansion,
// RunThread/RunSearch worker dispatch, the mutex-guarded solution log, the
// atomic max-depth counter, MinDepth, and the cooperative-cancellation
// "skip" flag CheckSkipSearch exposes), replacing the teacher's
// internal/cli/find.go placeholder breadthFirstSearch end to end.

// rootJob is one fully-expanded level-1 branch, ready to be handed to a
// worker for independent depth-first exploration of the remaining levels.
type rootJob struct {
	state cube.State
	alg   cube.Algorithm
}

// Engine owns one search run: a scramble, a grammar and a goal predicate.
// Not safe to Run concurrently with itself; safe to read Solutions/MaxDepth
// from another goroutine only after Run has returned.
type Engine struct {
	Scramble cube.Algorithm
	Grammar  *Grammar
	Goal     Predicate

	// StartState, if set, is used as the search's starting position
	// instead of applying Scramble to a solved cube - for callers (like
	// internal/method) that already hold a cube.State reached some other
	// way (e.g. parsed from a CFEN) and have no Algorithm for it.
	StartState *cube.State

	// ThreadCount: 0 means every core (runtime.NumCPU()), a positive n
	// means min(n, runtime.NumCPU()), a negative value means run fully
	// synchronously on the calling goroutine (useful for deterministic
	// debugging - spec.md §5).
	ThreadCount int

	// MinDepth rejects any satisfying branch shorter than this many
	// moves before it ever reaches the solution log.
	MinDepth int

	// Logger receives Run's structured entries (a Debug entry at start and
	// at finish, a Warn or Error entry on failure), all tagged with RunID.
	// Defaults to logrus's standard logger if nil.
	Logger *logrus.Logger

	// RunID identifies this Engine's most recent Run in log output,
	// letting a caller chaining several searches (the Orchestrator API)
	// correlate log lines across steps. Assigned fresh by every Run.
	RunID uuid.UUID

	mu        sync.Mutex
	solutions []cube.Algorithm
	maxDepth  int32
	skip      int32
}

// NewEngine returns an Engine ready to Run once its Grammar/Goal are set.
func NewEngine(scramble cube.Algorithm, grammar *Grammar, goal Predicate) *Engine {
	return &Engine{Scramble: scramble, Grammar: grammar, Goal: goal}
}

func (e *Engine) logger() *logrus.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logrus.StandardLogger()
}

// Skip cooperatively cancels an in-flight Run: every worker, and the
// recursive walk itself, checks this flag before doing further work.
func (e *Engine) Skip() {
	atomic.StoreInt32(&e.skip, 1)
}

func (e *Engine) skipped() bool {
	return atomic.LoadInt32(&e.skip) != 0
}

// Solutions returns every branch logged so far. Safe to call after Run
// returns (and, per spec.md §5, also safe to call concurrently with a
// still-running search as a progress probe, since it only takes the same
// mutex the logger uses).
func (e *Engine) Solutions() []cube.Algorithm {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]cube.Algorithm, len(e.solutions))
	copy(out, e.solutions)
	return out
}

// MaxDepthReached reports the deepest branch explored so far, regardless
// of whether it satisfied the goal.
func (e *Engine) MaxDepthReached() int {
	return int(atomic.LoadInt32(&e.maxDepth))
}

func (e *Engine) bumpMaxDepth(depth int) {
	for {
		cur := atomic.LoadInt32(&e.maxDepth)
		if int32(depth) <= cur {
			return
		}
		if atomic.CompareAndSwapInt32(&e.maxDepth, cur, int32(depth)) {
			return
		}
	}
}

func (e *Engine) resolveThreadCount() int {
	if e.ThreadCount < 0 {
		return -1
	}
	cores := runtime.NumCPU()
	if e.ThreadCount == 0 || e.ThreadCount > cores {
		return cores
	}
	return e.ThreadCount
}

// canonicalOK applies the canonical-ordering prune: if the last move of
// prefix and the first move of the candidate branch act on opposite
// (commuting) axes, only the Less-ordered relative arrangement is kept -
// the other is reachable via an equivalent already-explored branch with
// the two moves swapped (spec.md §4.G).
func (e *Engine) canonicalOK(prefix, branch cube.Algorithm) bool {
	if len(prefix.Moves) == 0 || len(branch.Moves) == 0 {
		return true
	}
	last := prefix.Moves[len(prefix.Moves)-1]
	first := branch.Moves[0]
	if cube.OppositeAxis(last, first) && !last.Less(first) {
		return false
	}
	return true
}

// onLeaf is called once per fully-expanded grammar path (every level of
// e.Grammar consumed). It tests the goal predicate and, if satisfied and
// at least MinDepth moves long, appends to the solution log.
func (e *Engine) onLeaf(state cube.State, alg cube.Algorithm) {
	e.bumpMaxDepth(alg.Len())
	if alg.Len() < e.MinDepth {
		return
	}
	if !e.Goal.Satisfies(state) {
		return
	}
	e.mu.Lock()
	e.solutions = append(e.solutions, alg)
	e.mu.Unlock()
}

// runConjugate applies setup, explores inner (if any) to completion, then
// undoes setup before invoking cont with the resulting state/algorithm.
func (e *Engine) runConjugate(setup cube.Algorithm, inner *Grammar, state cube.State, alg cube.Algorithm, cont func(cube.State, cube.Algorithm)) {
	setupState := state.Clone()
	setupState.ApplyAlgorithm(setup)
	setupAlg := alg.Concat(setup)
	teardown := setup.Invert()

	finish := func(s cube.State, a cube.Algorithm) {
		final := s.Clone()
		final.ApplyAlgorithm(teardown)
		cont(final, a.Concat(teardown))
	}

	if inner == nil || len(inner.Levels) == 0 {
		finish(setupState, setupAlg)
		return
	}
	e.walk(inner, 0, setupState, setupAlg, finish)
}

// walk recursively expands grammar g from level, invoking onLeaf once
// every level has been consumed for a given branch.
func (e *Engine) walk(g *Grammar, level int, state cube.State, alg cube.Algorithm, onLeaf func(cube.State, cube.Algorithm)) {
	if e.skipped() {
		return
	}
	if level >= len(g.Levels) {
		onLeaf(state, alg)
		return
	}
	for _, unit := range g.Levels[level].Units {
		switch unit.Type {
		case UnitConjugate:
			e.runConjugate(unit.Sequence, unit.Inner, state, alg, func(s2 cube.State, a2 cube.Algorithm) {
				e.walk(g, level+1, s2, a2, onLeaf)
			})
		case UnitConjugateSingle:
			for _, m := range unit.Moves {
				setup := cube.NewAlgorithm(m)
				e.runConjugate(setup, unit.Inner, state, alg, func(s2 cube.State, a2 cube.Algorithm) {
					e.walk(g, level+1, s2, a2, onLeaf)
				})
			}
		default:
			for _, branch := range unit.branches() {
				if !e.canonicalOK(alg, branch) {
					continue
				}
				ns := state.Clone()
				ns.ApplyAlgorithm(branch)
				e.walk(g, level+1, ns, alg.Concat(branch), onLeaf)
			}
		}
	}
}

// expandRootLevel exhaustively expands grammar level 0 into independent
// root jobs, the unit of work handed out to the worker pool. deep_search.h
// notes the root level is typically Double or Triple so there is enough
// fan-out to keep every core busy even on a shallow search.
func (e *Engine) expandRootLevel(start cube.State) []rootJob {
	var roots []rootJob
	collect := func(s cube.State, a cube.Algorithm) {
		roots = append(roots, rootJob{state: s, alg: a})
	}
	if len(e.Grammar.Levels) == 0 {
		return nil
	}
	for _, unit := range e.Grammar.Levels[0].Units {
		switch unit.Type {
		case UnitConjugate:
			e.runConjugate(unit.Sequence, unit.Inner, start, cube.Algorithm{}, collect)
		case UnitConjugateSingle:
			for _, m := range unit.Moves {
				setup := cube.NewAlgorithm(m)
				e.runConjugate(setup, unit.Inner, start, cube.Algorithm{}, collect)
			}
		default:
			for _, branch := range unit.branches() {
				ns := start.Clone()
				ns.ApplyAlgorithm(branch)
				roots = append(roots, rootJob{state: ns, alg: branch})
			}
		}
	}
	return roots
}

// Run executes the search to completion (or until Skip is called),
// distributing root jobs across a fixed worker pool with static
// round-robin assignment: no work stealing, no suspension points within a
// branch, matching spec.md §5's concurrency model exactly.
func (e *Engine) Run() error {
	e.RunID = uuid.New()
	log := e.logger().WithField("run_id", e.RunID)

	if e.Grammar == nil || len(e.Grammar.Levels) == 0 {
		log.WithError(ErrEmptyGrammar).Warn("search.Engine.Run: empty grammar")
		return ErrEmptyGrammar
	}

	start := cube.NewState()
	if e.StartState != nil {
		start = e.StartState.Clone()
	} else {
		start.ApplyAlgorithm(e.Scramble)
	}

	roots := e.expandRootLevel(start)
	threads := e.resolveThreadCount()
	runStart := time.Now()
	log.WithFields(logrus.Fields{"roots": len(roots), "threads": threads, "levels": len(e.Grammar.Levels)}).Debug("search.Engine.Run: starting")

	runRoot := func(job rootJob) {
		e.walk(e.Grammar, 1, job.state, job.alg, e.onLeaf)
	}

	if threads < 0 {
		for _, job := range roots {
			if e.skipped() {
				break
			}
			runRoot(job)
		}
		log.WithFields(logrus.Fields{"duration": time.Since(runStart), "solutions": len(e.solutions), "max_depth": e.MaxDepthReached()}).Debug("search.Engine.Run: finished")
		return nil
	}

	var wg sync.WaitGroup
	var failMu sync.Mutex
	var causes []error

	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failMu.Lock()
					causes = append(causes, errPanic(r))
					failMu.Unlock()
				}
			}()
			for j := worker; j < len(roots); j += threads {
				if e.skipped() {
					return
				}
				runRoot(roots[j])
			}
		}(i)
	}
	wg.Wait()

	if len(causes) > 0 {
		log.WithFields(logrus.Fields{"failed_workers": len(causes)}).Error("search.Engine.Run: worker pool reported failures")
		return &ThreadSpawnError{Requested: threads, Failed: len(causes), Causes: causes}
	}
	log.WithFields(logrus.Fields{"duration": time.Since(runStart), "solutions": len(e.solutions), "max_depth": e.MaxDepthReached()}).Debug("search.Engine.Run: finished")
	return nil
}
