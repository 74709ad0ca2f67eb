package cube

// piecegroups.go - the concrete catalog of named piece groups spec.md §4.C
// asks for: cross faces, F2L slots, first-two-layers, last-layer, plus the
// method-specific structures (Roux blocks, Petrus blocks, ZZ's EOLine
// edges, YruRU's first block) that internal/method's orchestrators build
// goal predicates out of. Slot numbering is the one state.go fixes
// (cube_definitions.h's Edg/Cnr numbering); the face-by-face groupings
// below are grounded in the teacher's piece_mapping.go, which names
// exactly these same edges/corners per face.

// Edges touching each face (two faces share an edge; this lists both).
var faceEdges = map[Face][]int{
	Up:    {EdgeUF, EdgeUL, EdgeUB, EdgeUR},
	Down:  {EdgeDF, EdgeDL, EdgeDB, EdgeDR},
	Front: {EdgeUF, EdgeDF, EdgeFR, EdgeFL},
	Back:  {EdgeUB, EdgeDB, EdgeBR, EdgeBL},
	Right: {EdgeUR, EdgeDR, EdgeFR, EdgeBR},
	Left:  {EdgeUL, EdgeDL, EdgeFL, EdgeBL},
}

// Corners touching each face.
var faceCorners = map[Face][]int{
	Up:    {CornerUFR, CornerUFL, CornerUBL, CornerUBR},
	Down:  {CornerDFR, CornerDFL, CornerDBL, CornerDBR},
	Front: {CornerUFR, CornerUFL, CornerDFL, CornerDFR},
	Back:  {CornerUBR, CornerUBL, CornerDBL, CornerDBR},
	Right: {CornerUFR, CornerUBR, CornerDFR, CornerDBR},
	Left:  {CornerUFL, CornerUBL, CornerDFL, CornerDBL},
}

// Cross returns the 4 edges touching face (e.g. Cross(Down) is the
// "white cross" edge set when Down carries the cross color).
func Cross(face Face) Group {
	return NewGroup("Cross-"+face.String(), faceEdges[face], nil)
}

// Layer returns every edge and corner touching face - one full layer.
func Layer(face Face) Group {
	return NewGroup("Layer-"+face.String(), faceEdges[face], faceCorners[face])
}

// F2L slot groups: one edge/corner pair per CFOP "slot", named by the two
// side faces the slot sits between.
var (
	F2LFrontRight = NewGroup("F2L-FR", []int{EdgeFR}, []int{CornerDFR})
	F2LFrontLeft  = NewGroup("F2L-FL", []int{EdgeFL}, []int{CornerDFL})
	F2LBackRight  = NewGroup("F2L-BR", []int{EdgeBR}, []int{CornerDBR})
	F2LBackLeft   = NewGroup("F2L-BL", []int{EdgeBL}, []int{CornerDBL})
)

// F2LSlots lists all four slots, in the order most CFOP solvers fill them.
var F2LSlots = []Group{F2LFrontRight, F2LFrontLeft, F2LBackLeft, F2LBackRight}

// FirstTwoLayers is the Down layer plus all four F2L slots: every piece
// except the four last-layer edges and four last-layer corners.
var FirstTwoLayers = Layer(Down).Union(F2LFrontRight).Union(F2LFrontLeft).Union(F2LBackRight).Union(F2LBackLeft)

// LastLayerEdges and LastLayerCorners split the last layer the way
// OLL/PLL do: edge orientation/permutation is solved independently of
// corner orientation/permutation.
var (
	LastLayerEdges   = NewGroup("LL-Edges", faceEdges[Up], nil)
	LastLayerCorners = NewGroup("LL-Corners", nil, faceCorners[Up])
	LastLayer        = LastLayerEdges.Union(LastLayerCorners)
)

// WholeCube names every piece slot - used as the mandatory_mask of an
// "is this cube solved" goal predicate.
var WholeCube = Layer(Up).Union(Layer(Down)).Union(NewGroup("Equator", []int{EdgeFR, EdgeFL, EdgeBR, EdgeBL}, nil))

// Roux's two 1x2x3 side blocks: the left block is built first, the right
// block second, leaving only the M slice and last layer to resolve.
var (
	RouxLeftBlock  = NewGroup("Roux-Left", []int{EdgeFL, EdgeBL, EdgeDL}, []int{CornerDFL, CornerDBL})
	RouxRightBlock = NewGroup("Roux-Right", []int{EdgeFR, EdgeBR, EdgeDR}, []int{CornerDFR, CornerDBR})
)

// Petrus' 2x2x2 seed block (back-left-down) and its 2x2x3 extension.
var (
	PetrusBlock222 = NewGroup("Petrus-222", []int{EdgeBL, EdgeDL}, []int{CornerDBL})
	PetrusBlock223 = PetrusBlock222.Union(NewGroup("Petrus-223-ext", []int{EdgeBR, EdgeDR}, []int{CornerDBR}))
)

// YruRU's first block mirrors Petrus' 2x2x2 seed but on the front-right,
// matching that method's right-handed block-building start.
var YruRUFirstBlock = NewGroup("YruRU-First", []int{EdgeFR, EdgeDR}, []int{CornerDFR})

// AllEdges and AllCorners name every piece of their kind, used by ZZ's
// EOLine (which only cares about edge orientation, not permutation) and
// by any predicate that needs "every edge" or "every corner" as a unit.
var (
	AllEdges   = NewGroup("AllEdges", []int{EdgeFR, EdgeFL, EdgeBL, EdgeBR, EdgeUF, EdgeUL, EdgeUB, EdgeUR, EdgeDF, EdgeDL, EdgeDB, EdgeDR}, nil)
	AllCorners = NewGroup("AllCorners", nil, []int{CornerUFR, CornerUFL, CornerUBL, CornerUBR, CornerDFR, CornerDFL, CornerDBL, CornerDBR})
)

// EOLineEdges is ZZ's EOLine target set: the DF and DB edges, which must
// be both oriented and positioned once the rest of the edges are merely
// oriented (checked separately via AllEdges.IsOriented).
var EOLineEdges = NewGroup("EOLine", []int{EdgeDF, EdgeDB}, nil)

// namedGroups backs GroupByName, letting a caller (cube identify --group)
// report IsSolved/IsOriented/IsPositioned against any group in this file
// by its display name instead of a Go identifier.
var namedGroups = map[string]Group{
	"cross-up":      Cross(Up),
	"cross-down":    Cross(Down),
	"f2l":           FirstTwoLayers,
	"last-layer":    LastLayer,
	"ll-edges":      LastLayerEdges,
	"ll-corners":    LastLayerCorners,
	"whole-cube":    WholeCube,
	"roux-left":     RouxLeftBlock,
	"roux-right":    RouxRightBlock,
	"petrus-222":    PetrusBlock222,
	"petrus-223":    PetrusBlock223,
	"yruru-first":   YruRUFirstBlock,
	"eoline":        EOLineEdges,
	"all-edges":     AllEdges,
	"all-corners":   AllCorners,
}

// GroupByName looks up one of this file's named groups by its display
// name (case-sensitive, matching the keys above), for CLI/tooling callers
// that take a group name as a string flag.
func GroupByName(name string) (Group, bool) {
	g, ok := namedGroups[name]
	return g, ok
}

// GroupNames lists every name GroupByName accepts, sorted for stable
// help-text output.
func GroupNames() []string {
	names := make([]string, 0, len(namedGroups))
	for name := range namedGroups {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}
