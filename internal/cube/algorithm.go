package cube

import "strings"

// algorithm.go - the Algorithm value object (spec.md §3/§4.D): an ordered,
// finite, value-typed sequence of Moves supporting shrink-on-append,
// global cancellation, turn-transform (conjugation), inversion,
// concatenation, metric computation and regrip.
//
// Grounded on the teacher's optimizer.go (OptimizeMoves/combineSameFaceMoves,
// which become the engine behind PushShrink/Cancellations) generalized from
// a free function over []Move to methods on a proper value type, matching
// original_source/deep_search.h's Algorithm-centric API surface.

// Algorithm is an ordered, finite sequence of moves. It is a value type:
// copying an Algorithm copies its move slice header only when the caller
// clones deliberately (see Clone); the search engine clones explicitly per
// branch rather than relying on accidental aliasing.
type Algorithm struct {
	Moves []Move
}

// NewAlgorithm builds an Algorithm from a move slice, copying it so the
// caller's backing array can't alias engine-internal state.
func NewAlgorithm(moves ...Move) Algorithm {
	a := Algorithm{Moves: make([]Move, len(moves))}
	copy(a.Moves, moves)
	return a
}

// Clone returns an independent copy.
func (a Algorithm) Clone() Algorithm {
	return NewAlgorithm(a.Moves...)
}

// Len reports the move count (not a metric - see Metric).
func (a Algorithm) Len() int {
	return len(a.Moves)
}

// Push appends m without attempting any cancellation.
func (a Algorithm) Push(m Move) Algorithm {
	out := make([]Move, len(a.Moves)+1)
	copy(out, a.Moves)
	out[len(a.Moves)] = m
	return Algorithm{Moves: out}
}

// PushShrink appends m, combining it with the trailing move when they
// share a layer (SameLayer) and collapsing to nothing when they cancel
// (e.g. R then R' -> identity, R then R -> R2). It reports whether the
// append collapsed or merged into the previous move rather than growing
// the sequence by one, mirroring spec.md §4.D.
func (a Algorithm) PushShrink(m Move) (Algorithm, bool) {
	if m.Range() == RangeTurn {
		return a.Push(m), false
	}
	if len(a.Moves) == 0 {
		return a.Push(m), false
	}
	last := a.Moves[len(a.Moves)-1]
	if last.Range() == RangeTurn || !SameLayer(last, m) {
		return a.Push(m), false
	}

	total := (quarterTurns(last) + quarterTurns(m)) % 4
	out := make([]Move, len(a.Moves)-1)
	copy(out, a.Moves[:len(a.Moves)-1])
	if total == 0 {
		return Algorithm{Moves: out}, true
	}
	out = append(out, quarterTurnsToMoveLike(last, total))
	return Algorithm{Moves: out}, true
}

func quarterTurns(m Move) int {
	if m.Double {
		return 2
	}
	if m.Clockwise {
		return 1
	}
	return 3
}

func quarterTurnsToMoveLike(like Move, turns int) Move {
	out := like
	switch turns {
	case 1:
		out.Clockwise, out.Double = true, false
	case 2:
		out.Clockwise, out.Double = true, true
	case 3:
		out.Clockwise, out.Double = false, false
	}
	return out
}

// Concat appends every move of other verbatim.
func (a Algorithm) Concat(other Algorithm) Algorithm {
	out := make([]Move, 0, len(a.Moves)+len(other.Moves))
	out = append(out, a.Moves...)
	out = append(out, other.Moves...)
	return Algorithm{Moves: out}
}

// ConcatShrink appends other one move at a time through PushShrink, so
// cancellations at the join point collapse.
func (a Algorithm) ConcatShrink(other Algorithm) Algorithm {
	result := a
	for _, m := range other.Moves {
		result, _ = result.PushShrink(m)
	}
	return result
}

// Invert returns the algorithm that undoes a, in reverse order with every
// move inverted. Invert(Invert(a)) == a structurally only after
// Cancellations() normalises representation (spec.md §4.D).
func (a Algorithm) Invert() Algorithm {
	out := make([]Move, len(a.Moves))
	for i, m := range a.Moves {
		out[len(a.Moves)-1-i] = Inverse(m)
	}
	return Algorithm{Moves: out}
}

// Transform conjugates a by a whole-cube rotation: the algorithm that has
// the same visible effect on a cube already turned by `rotation`. Applying
// `rotation` then `a.Transform(rotation)` then `Inverse(rotation)` has the
// same visible effect as `a` alone.
func (a Algorithm) Transform(rotation Move) Algorithm {
	out := make([]Move, len(a.Moves))
	for i, m := range a.Moves {
		out[i] = transformMove(m, rotation)
	}
	return Algorithm{Moves: out}
}

// transformMove rotates a single move's face/slice frame by one of the six
// whole-cube rotations. Rotation moves themselves and slice moves pass
// through unchanged under same-axis rotations; the face relabeling table
// below is the standard y/x/z conjugation cycle used throughout cubing
// notation tools.
func transformMove(m Move, rotation Move) Move {
	if m.Rotation != NoRotation || m.Slice != NoSlice {
		// Whole-cube rotations and slice moves are axis-relative and
		// already commute with further rotations about the same axes in
		// the restricted set of turns the grammar uses them with.
		return m
	}
	cycle := faceCycle(rotation)
	if cycle == nil {
		return m
	}
	out := m
	out.Face = cycle[m.Face]
	return out
}

// faceCycle returns the face permutation induced by a single quarter (or
// half) turn whole-cube rotation.
func faceCycle(rotation Move) map[Face]Face {
	turns := quarterTurns(rotation) % 4
	if turns == 0 {
		return nil
	}
	var base map[Face]Face
	switch rotation.Rotation {
	case X_Rotation: // around R/L axis: U->F->D->B->U
		base = map[Face]Face{Up: Front, Front: Down, Down: Back, Back: Up, Right: Right, Left: Left}
	case Y_Rotation: // around U/D axis: F->L->B->R->F
		base = map[Face]Face{Front: Left, Left: Back, Back: Right, Right: Front, Up: Up, Down: Down}
	case Z_Rotation: // around F/B axis: U->R->D->L->U
		base = map[Face]Face{Up: Right, Right: Down, Down: Left, Left: Up, Front: Front, Back: Back}
	default:
		return nil
	}
	cycle := base
	for i := 1; i < turns; i++ {
		next := make(map[Face]Face, 6)
		for f, g := range cycle {
			next[f] = base[g]
		}
		cycle = next
	}
	return cycle
}

// Cancellations performs a global pass that repeatedly re-applies
// PushShrink until no further adjacent pair merges or cancels, minimising
// redundancies across what may originally have been several concatenated
// segments. It is idempotent: Cancellations(Cancellations(a)) ==
// Cancellations(a).
func (a Algorithm) Cancellations() Algorithm {
	result := Algorithm{}
	for _, m := range a.Moves {
		result, _ = result.PushShrink(m)
	}
	return result
}

// Regrip migrates any leading whole-cube rotations out of the body into a
// separate inspection prefix, without changing the visible solve; trailing
// rotations stay at the end of the body. It returns the inspection
// rotations and the regripped body separately; callers that want a single
// Algorithm can Concat them back (inspection is purely informational -
// applying inspection then body to a cube yields the same final state as
// applying the original a).
func (a Algorithm) Regrip() (inspection Algorithm, body Algorithm) {
	moves := a.Moves
	var lead []Move
	for len(moves) > 0 && moves[0].Range() == RangeTurn {
		lead = append(lead, moves[0])
		moves = moves[1:]
	}

	inspection = NewAlgorithm(lead...)
	body = NewAlgorithm(moves...)
	return inspection, body
}

// Metric sums MetricWeight over every move under the selected metric.
func (a Algorithm) Metric(metric Metric) float64 {
	total := 0.0
	for _, m := range a.Moves {
		total += MetricWeight(m, metric)
	}
	return total
}

// String serialises the algorithm using standard cuber notation,
// space-separated (spec.md §6).
func (a Algorithm) String() string {
	parts := make([]string, len(a.Moves))
	for i, m := range a.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ParseAlgorithm parses a full algorithm string, including parenthesised
// `( ... )<k>` repetition groups (k in 1..9), into a flat Algorithm.
func ParseAlgorithm(text string) (Algorithm, error) {
	moves, err := ParseScrambleWithGroups(text)
	if err != nil {
		return Algorithm{}, err
	}
	return NewAlgorithm(moves...), nil
}
