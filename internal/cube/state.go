package cube

// state.go - the piece-indexed Cube State (spec.md §3/§4.B): 8 corners and
// 12 edges, each a (permutation slot, orientation) pair, packed into two
// 64-bit signatures for O(1) is_solved/is_oriented/is_positioned checks,
// plus a tracked Spin.
//
// Grounded directly on original_source/cube_definitions.h's piece
// numbering (edges FR,FL,BL,BR,UF,UL,UB,UR,DF,DL,DB,DR; corners
// UFR,UFL,UBL,UBR,DFR,DFL,DBL,DBR; 24 Spn values) and on the teacher's
// sticker-level piece_mapping.go (Get3x3EdgeMappings/Get3x3CornerMappings)
// for the State<->Cube bridge in state_convert.go. The teacher's own
// Cube (internal/cube/cube.go) stays the sticker-array representation used
// for CFEN/display; State is the new, search-engine-facing model spec.md
// §4.B requires ("implementation-free, but must make apply and mask tests
// trivially parallelisable").

// Edge slot indices, matching cube_definitions.h's Edg numbering.
const (
	EdgeFR = iota
	EdgeFL
	EdgeBL
	EdgeBR
	EdgeUF
	EdgeUL
	EdgeUB
	EdgeUR
	EdgeDF
	EdgeDL
	EdgeDB
	EdgeDR
	numEdges
)

// Corner slot indices, matching cube_definitions.h's Cnr numbering.
const (
	CornerUFR = iota
	CornerUFL
	CornerUBL
	CornerUBR
	CornerDFR
	CornerDFL
	CornerDBL
	CornerDBR
	numCorners
)

// Spin is the whole-cube orientation: which original face currently sits
// in the physical Up slot and which sits in the physical Front slot. 24
// valid combinations exist (spec.md glossary "Spin").
type Spin struct {
	Up    Face
	Front Face
}

// DefaultSpin is the solved-cube orientation (Up shows Up's color, Front
// shows Front's color).
var DefaultSpin = Spin{Up: Up, Front: Front}

// State is the piece-indexed cube representation the search engine
// operates on. Value semantics: copying a State (State{} = other) is a
// full, independent clone, well under the 64-byte budget spec.md §4.B
// asks for (4 arrays of at most 12 bytes plus a 16-byte Spin).
type State struct {
	EdgePerm   [numEdges]uint8
	EdgeOri    [numEdges]uint8 // 0 or 1
	CornerPerm [numCorners]uint8
	CornerOri  [numCorners]uint8 // 0, 1 or 2
	Spin       Spin
}

// NewState returns a solved State.
func NewState() State {
	s := State{Spin: DefaultSpin}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = uint8(i)
	}
	for i := range s.CornerPerm {
		s.CornerPerm[i] = uint8(i)
	}
	return s
}

// Clone returns an independent copy. The search engine clones once per
// recursion frame rather than undoing moves (spec.md §9 design note).
func (s State) Clone() State {
	return s
}

// generator describes how a single CW quarter turn of one of the twelve
// move kinds (U,D,F,B,R,L,M,E,S,x,y,z) permutes slots and updates
// orientation. Several parallel 4-cycles are needed for whole-cube
// rotations (they move three independent rings of pieces at once).
type generator struct {
	edgeCycles   [][4]int // each a p0->p1->p2->p3->p0 content flow
	edgeFlip     bool     // true for F, B, M, S (the only moves that flip edge orientation)
	cornerCycles [][4]int
	cornerTwist  bool // true for R, L, F, B (the only moves that twist corners)
}

// cornerTwistDelta is the fixed +1/+2 (mod 3) alternating twist pattern
// applied around a corner-twisting generator's cycle; any full 4-cycle
// contributes 1+2+1+2=6 to the total orientation sum, preserving the
// corner-orientation-sum-mod-3 invariant regardless of which pieces are
// actually present at those slots (spec.md §3 invariant).
var cornerTwistDelta = [4]int{1, 2, 1, 2}

var generators = map[MoveType]generator{
	MoveU: {edgeCycles: [][4]int{{EdgeUB, EdgeUR, EdgeUF, EdgeUL}}, cornerCycles: [][4]int{{CornerUBR, CornerUFR, CornerUFL, CornerUBL}}},
	MoveD: {edgeCycles: [][4]int{{EdgeDF, EdgeDR, EdgeDB, EdgeDL}}, cornerCycles: [][4]int{{CornerDFR, CornerDBR, CornerDBL, CornerDFL}}},
	MoveR: {edgeCycles: [][4]int{{EdgeFR, EdgeUR, EdgeBR, EdgeDR}}, cornerCycles: [][4]int{{CornerUFR, CornerUBR, CornerDBR, CornerDFR}}, cornerTwist: true},
	MoveL: {edgeCycles: [][4]int{{EdgeFL, EdgeDL, EdgeBL, EdgeUL}}, cornerCycles: [][4]int{{CornerUBL, CornerUFL, CornerDFL, CornerDBL}}, cornerTwist: true},
	MoveF: {edgeCycles: [][4]int{{EdgeUF, EdgeFR, EdgeDF, EdgeFL}}, edgeFlip: true, cornerCycles: [][4]int{{CornerUFL, CornerUFR, CornerDFR, CornerDFL}}, cornerTwist: true},
	MoveB: {edgeCycles: [][4]int{{EdgeUB, EdgeBL, EdgeDB, EdgeBR}}, edgeFlip: true, cornerCycles: [][4]int{{CornerUBR, CornerUBL, CornerDBL, CornerDBR}}, cornerTwist: true},
	MoveM: {edgeCycles: [][4]int{{EdgeUF, EdgeDF, EdgeDB, EdgeUB}}, edgeFlip: true},
	MoveE: {edgeCycles: [][4]int{{EdgeFR, EdgeBR, EdgeBL, EdgeFL}}},
	MoveS: {edgeCycles: [][4]int{{EdgeUL, EdgeUR, EdgeDR, EdgeDL}}, edgeFlip: true},
	MoveX: {
		edgeCycles:   [][4]int{{EdgeFR, EdgeUR, EdgeBR, EdgeDR}, {EdgeFL, EdgeDL, EdgeBL, EdgeUL}, {EdgeUF, EdgeDF, EdgeDB, EdgeUB}},
		cornerCycles: [][4]int{{CornerUFR, CornerDFR, CornerDBR, CornerUBR}, {CornerUFL, CornerUBL, CornerDBL, CornerDFL}},
	},
	MoveY: {
		edgeCycles:   [][4]int{{EdgeUB, EdgeUR, EdgeUF, EdgeUL}, {EdgeDB, EdgeDR, EdgeDF, EdgeDL}, {EdgeFR, EdgeBR, EdgeBL, EdgeFL}},
		cornerCycles: [][4]int{{CornerUBR, CornerUFR, CornerUFL, CornerUBL}, {CornerDBR, CornerDFR, CornerDFL, CornerDBL}},
	},
	MoveZ: {
		edgeCycles:   [][4]int{{EdgeUF, EdgeFR, EdgeDF, EdgeFL}, {EdgeUB, EdgeBL, EdgeDB, EdgeBR}, {EdgeUL, EdgeUR, EdgeDR, EdgeDL}},
		cornerCycles: [][4]int{{CornerUFR, CornerUFL, CornerDFL, CornerDFR}, {CornerUBR, CornerDBR, CornerDBL, CornerUBL}},
	},
}

// rotationFaceCycle mirrors faceCycle in algorithm.go (used for Transform)
// but keyed directly off a rotation's MoveType, so State.Apply can update
// Spin with the same slot-migration logic used for conjugation.
var rotationFaceCycle = map[MoveType]map[Face]Face{
	MoveX: {Up: Front, Front: Down, Down: Back, Back: Up, Right: Right, Left: Left},
	MoveY: {Front: Left, Left: Back, Back: Right, Right: Front, Up: Up, Down: Down},
	MoveZ: {Up: Right, Right: Down, Down: Left, Left: Up, Front: Front, Back: Back},
}

func applyEdgeCycle(perm, ori *[numEdges]uint8, pos [4]int, flip bool) {
	p0, p1, p2, p3 := perm[pos[0]], perm[pos[1]], perm[pos[2]], perm[pos[3]]
	o0, o1, o2, o3 := ori[pos[0]], ori[pos[1]], ori[pos[2]], ori[pos[3]]
	perm[pos[0]], perm[pos[1]], perm[pos[2]], perm[pos[3]] = p3, p0, p1, p2
	delta := uint8(0)
	if flip {
		delta = 1
	}
	ori[pos[0]] = (o3 + delta) % 2
	ori[pos[1]] = (o0 + delta) % 2
	ori[pos[2]] = (o1 + delta) % 2
	ori[pos[3]] = (o2 + delta) % 2
}

func applyCornerCycle(perm, ori *[numCorners]uint8, pos [4]int, twist bool) {
	p0, p1, p2, p3 := perm[pos[0]], perm[pos[1]], perm[pos[2]], perm[pos[3]]
	o0, o1, o2, o3 := ori[pos[0]], ori[pos[1]], ori[pos[2]], ori[pos[3]]
	perm[pos[0]], perm[pos[1]], perm[pos[2]], perm[pos[3]] = p3, p0, p1, p2
	d0, d1, d2, d3 := 0, 0, 0, 0
	if twist {
		d0, d1, d2, d3 = cornerTwistDelta[0], cornerTwistDelta[1], cornerTwistDelta[2], cornerTwistDelta[3]
	}
	ori[pos[0]] = uint8((int(o3) + d0) % 3)
	ori[pos[1]] = uint8((int(o0) + d1) % 3)
	ori[pos[2]] = uint8((int(o1) + d2) % 3)
	ori[pos[3]] = uint8((int(o2) + d3) % 3)
}

// Apply mutates the state by a single quarter, half or rotation Move.
// O(1): every move touches at most three fixed-size 4-cycles.
func (s *State) Apply(m Move) {
	moveType, quarterTurns := moveToMoveType(m)
	gen, ok := generators[moveType]
	if !ok {
		return
	}
	for turn := 0; turn < quarterTurns; turn++ {
		for _, pos := range gen.edgeCycles {
			applyEdgeCycle(&s.EdgePerm, &s.EdgeOri, pos, gen.edgeFlip)
		}
		for _, pos := range gen.cornerCycles {
			applyCornerCycle(&s.CornerPerm, &s.CornerOri, pos, gen.cornerTwist)
		}
		if cycle, ok := rotationFaceCycle[moveType]; ok {
			s.Spin.Up = cycle[s.Spin.Up]
			s.Spin.Front = cycle[s.Spin.Front]
		}
	}
}

// ApplyAlgorithm applies every move of a in order.
func (s *State) ApplyAlgorithm(a Algorithm) {
	for _, m := range a.Moves {
		s.Apply(m)
	}
}
