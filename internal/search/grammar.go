package search

import "github.com/layerwise/cube/internal/cube"

// grammar.go - the Search Grammar value object (spec.md §3/§9): a small
// tree of per-depth move choices the engine's DFS walks. Grounded on
// original_source/deep_search.h's SequenceTypes enum (SINGLE, DOUBLE,
// TRIPLE, SEQUENCE, CONJUGATE_SINGLE, CONJUGATE) and SearchUnit/SearchLevel
// structs, with one deliberate re-architecture spec.md §9 calls out: the
// C++ header gives every SearchUnit a process-global static id counter
// (UnitsAmount); here the id counter is scoped to the owning Grammar, so
// two Grammars built concurrently (e.g. by two Method orchestrators
// running in separate goroutines) never race over shared global state or
// produce ids whose meaning depends on build order.

// UnitType mirrors deep_search.h's SequenceTypes.
type UnitType int

const (
	// UnitSingle branches over Moves, one move per branch.
	UnitSingle UnitType = iota
	// UnitDouble branches over ordered pairs of moves drawn from Moves
	// (consecutive moves on different layers), treated as one grammar
	// step for canonical-ordering and depth-reporting purposes.
	UnitDouble
	// UnitTriple is UnitDouble extended to ordered triples.
	UnitTriple
	// UnitSequence applies one fixed Algorithm verbatim; no branching.
	UnitSequence
	// UnitConjugateSingle tries each move in Moves as a setup, recurses
	// into Inner with that setup applied, then undoes it (applies its
	// inverse) before returning - exploring states "as seen through" a
	// conjugation without permanently spending search depth on the setup.
	UnitConjugateSingle
	// UnitConjugate is UnitConjugateSingle with one fixed Algorithm as
	// the setup (Sequence) instead of a per-branch move choice.
	UnitConjugate
)

func (t UnitType) String() string {
	switch t {
	case UnitSingle:
		return "Single"
	case UnitDouble:
		return "Double"
	case UnitTriple:
		return "Triple"
	case UnitSequence:
		return "Sequence"
	case UnitConjugateSingle:
		return "ConjugateSingle"
	case UnitConjugate:
		return "Conjugate"
	default:
		return "Unknown"
	}
}

// Unit is one grammar-scoped node within a Level (spec.md §3 "Search
// Grammar"). ID is unique within the owning Grammar only.
type Unit struct {
	ID       int
	Type     UnitType
	Moves    []cube.Move   // candidate moves: Single, Double, Triple, ConjugateSingle
	Sequence cube.Algorithm // fixed moves: Sequence, Conjugate (conjugate's setup)
	Inner    *Grammar       // nested levels explored inside Conjugate/ConjugateSingle
}

// branches returns the concrete move sequences this unit can contribute at
// a non-conjugate level, one per candidate branch.
func (u Unit) branches() []cube.Algorithm {
	switch u.Type {
	case UnitSingle:
		out := make([]cube.Algorithm, len(u.Moves))
		for i, m := range u.Moves {
			out[i] = cube.NewAlgorithm(m)
		}
		return out
	case UnitDouble:
		var out []cube.Algorithm
		for _, a := range u.Moves {
			for _, b := range u.Moves {
				if cube.SameLayer(a, b) {
					continue
				}
				out = append(out, cube.NewAlgorithm(a, b))
			}
		}
		return out
	case UnitTriple:
		var out []cube.Algorithm
		for _, a := range u.Moves {
			for _, b := range u.Moves {
				if cube.SameLayer(a, b) {
					continue
				}
				for _, c := range u.Moves {
					if cube.SameLayer(b, c) {
						continue
					}
					out = append(out, cube.NewAlgorithm(a, b, c))
				}
			}
		}
		return out
	case UnitSequence:
		return []cube.Algorithm{u.Sequence}
	default:
		return nil
	}
}

// Level is one depth of the grammar: the engine tries every Unit at this
// level before descending to the next.
type Level struct {
	Units []Unit
}

// Grammar is an ordered list of Levels plus its own unit-id counter.
type Grammar struct {
	Levels []Level
	nextID int
}

// NewGrammar returns an empty grammar ready for levels to be appended.
func NewGrammar() *Grammar {
	return &Grammar{}
}

func (g *Grammar) allocID() int {
	g.nextID++
	return g.nextID
}

// AddSingleLevel appends a level that branches over moves one at a time.
func (g *Grammar) AddSingleLevel(moves []cube.Move) *Grammar {
	g.Levels = append(g.Levels, Level{Units: []Unit{{ID: g.allocID(), Type: UnitSingle, Moves: moves}}})
	return g
}

// AddDoubleLevel appends a level that branches over ordered move pairs.
func (g *Grammar) AddDoubleLevel(moves []cube.Move) *Grammar {
	g.Levels = append(g.Levels, Level{Units: []Unit{{ID: g.allocID(), Type: UnitDouble, Moves: moves}}})
	return g
}

// AddTripleLevel appends a level that branches over ordered move triples.
func (g *Grammar) AddTripleLevel(moves []cube.Move) *Grammar {
	g.Levels = append(g.Levels, Level{Units: []Unit{{ID: g.allocID(), Type: UnitTriple, Moves: moves}}})
	return g
}

// AddSequenceLevel appends a level that applies one fixed algorithm.
func (g *Grammar) AddSequenceLevel(alg cube.Algorithm) *Grammar {
	g.Levels = append(g.Levels, Level{Units: []Unit{{ID: g.allocID(), Type: UnitSequence, Sequence: alg}}})
	return g
}

// AddConjugateLevel appends a level that applies setup, explores inner,
// then undoes setup.
func (g *Grammar) AddConjugateLevel(setup cube.Algorithm, inner *Grammar) *Grammar {
	g.Levels = append(g.Levels, Level{Units: []Unit{{ID: g.allocID(), Type: UnitConjugate, Sequence: setup, Inner: inner}}})
	return g
}

// AddConjugateSingleLevel appends a level that tries each of moves as a
// setup, explores inner under it, then undoes it.
func (g *Grammar) AddConjugateSingleLevel(moves []cube.Move, inner *Grammar) *Grammar {
	g.Levels = append(g.Levels, Level{Units: []Unit{{ID: g.allocID(), Type: UnitConjugateSingle, Moves: moves, Inner: inner}}})
	return g
}

// Depth reports the number of levels, used by callers deciding MinDepth.
func (g *Grammar) Depth() int {
	return len(g.Levels)
}
