package cube

// state_convert.go - the bridge between the teacher's sticker-array Cube
// (display, CFEN, legacy pattern matching) and the new piece-indexed
// State the search engine operates on. Grounded entirely in the teacher's
// piece_mapping.go: Get3x3EdgeMappings/Get3x3CornerMappings give the exact
// sticker coordinates of each edge/corner, in an order this file maps onto
// state.go's Edge*/Corner* slot numbering once, at init.

// edgeSlotOrder is Get3x3EdgeMappings()'s iteration order (UB,UL,UR,UF,
// FL,FR,BR,BL,DF,DL,DR,DB), translated to the Edge* slot constants.
var edgeSlotOrder = [12]int{EdgeUB, EdgeUL, EdgeUR, EdgeUF, EdgeFL, EdgeFR, EdgeBR, EdgeBL, EdgeDF, EdgeDL, EdgeDR, EdgeDB}

// cornerSlotOrder is Get3x3CornerMappings()'s iteration order (UBL,UBR,
// UFL,UFR,DFL,DFR,DBL,DBR), translated to the Corner* slot constants.
var cornerSlotOrder = [8]int{CornerUBL, CornerUBR, CornerUFL, CornerUFR, CornerDFL, CornerDFR, CornerDBL, CornerDBR}

// StateFromCube reads the current piece permutation/orientation and spin
// off a solved-reference 3x3 sticker Cube. Only 3x3 is supported, matching
// the sticker-mapping tables this depends on.
func StateFromCube(c *Cube) State {
	solved := NewCube(3)
	edgeMaps := Get3x3EdgeMappings()
	cornerMaps := Get3x3CornerMappings()

	homeEdgeColors := make([][2]Color, 12)
	curEdgeColors := make([][2]Color, 12)
	for i, m := range edgeMaps {
		hc := solved.getEdgeColorsProper(m)
		cc := c.getEdgeColorsProper(m)
		homeEdgeColors[i] = [2]Color{hc[0], hc[1]}
		curEdgeColors[i] = [2]Color{cc[0], cc[1]}
	}
	homeCornerColors := make([][3]Color, 8)
	curCornerColors := make([][3]Color, 8)
	for i, m := range cornerMaps {
		hc := solved.getCornerColorsProper(m)
		cc := c.getCornerColorsProper(m)
		homeCornerColors[i] = [3]Color{hc[0], hc[1], hc[2]}
		curCornerColors[i] = [3]Color{cc[0], cc[1], cc[2]}
	}

	var s State
	for i := 0; i < 12; i++ {
		home := colorSet2(curEdgeColors[i])
		for j := 0; j < 12; j++ {
			if colorSet2(homeEdgeColors[j]) != home {
				continue
			}
			slot := edgeSlotOrder[i]
			s.EdgePerm[slot] = uint8(edgeSlotOrder[j])
			if curEdgeColors[i][0] == homeEdgeColors[j][0] {
				s.EdgeOri[slot] = 0
			} else {
				s.EdgeOri[slot] = 1
			}
			break
		}
	}
	for i := 0; i < 8; i++ {
		home := colorSet3(curCornerColors[i])
		for j := 0; j < 8; j++ {
			if colorSet3(homeCornerColors[j]) != home {
				continue
			}
			slot := cornerSlotOrder[i]
			s.CornerPerm[slot] = uint8(cornerSlotOrder[j])
			s.CornerOri[slot] = cornerTwist(curCornerColors[i], homeCornerColors[j])
			break
		}
	}
	s.Spin = spinFromCenters(c)
	return s
}

// colorSet2/colorSet3 compare two color triples/pairs as unordered sets so
// a piece can be located by identity regardless of its current twist.
type colorPair [2]Color
type colorTriple [3]Color

func colorSet2(c [2]Color) colorPair {
	if c[0] > c[1] {
		return colorPair{c[1], c[0]}
	}
	return colorPair{c[0], c[1]}
}

func colorSet3(c [3]Color) colorTriple {
	a, b, d := c[0], c[1], c[2]
	if a > b {
		a, b = b, a
	}
	if b > d {
		b, d = d, b
	}
	if a > b {
		a, b = b, a
	}
	return colorTriple{a, b, d}
}

// cornerTwist counts how many clockwise steps the corner at cur has been
// rotated relative to its home orientation home, both given in
// (Face1,Face2,Face3) order from the same CornerMap.
func cornerTwist(cur, home [3]Color) uint8 {
	for twist := uint8(0); twist < 3; twist++ {
		if cur[0] == home[twist%3] && cur[1] == home[(twist+1)%3] && cur[2] == home[(twist+2)%3] {
			return twist
		}
	}
	return 0
}

// spinFromCenters derives the tracked Spin by reading which original face
// color currently sits at the Up and Front centers.
func spinFromCenters(c *Cube) Spin {
	solved := NewCube(3)
	mid := c.Size / 2
	colorToFace := map[Color]Face{}
	for f := Front; f <= Down; f++ {
		colorToFace[solved.Faces[f][mid][mid]] = f
	}
	return Spin{Up: colorToFace[c.Faces[Up][mid][mid]], Front: colorToFace[c.Faces[Front][mid][mid]]}
}

// CubeToSticker renders a State back into a solved-reference 3x3 sticker
// Cube, the inverse of StateFromCube, used by CFEN export and display.
func CubeToSticker(s State) *Cube {
	solved := NewCube(3)
	out := NewCube(3)
	edgeMaps := Get3x3EdgeMappings()
	cornerMaps := Get3x3CornerMappings()

	homeEdgeColors := make([][2]Color, 12)
	for i, m := range edgeMaps {
		hc := solved.getEdgeColorsProper(m)
		homeEdgeColors[i] = [2]Color{hc[0], hc[1]}
	}
	homeCornerColors := make([][3]Color, 8)
	for i, m := range cornerMaps {
		hc := solved.getCornerColorsProper(m)
		homeCornerColors[i] = [3]Color{hc[0], hc[1], hc[2]}
	}

	slotToTeacherEdge := map[int]int{}
	for i, slot := range edgeSlotOrder {
		slotToTeacherEdge[slot] = i
	}
	slotToTeacherCorner := map[int]int{}
	for i, slot := range cornerSlotOrder {
		slotToTeacherCorner[slot] = i
	}

	for i, m := range edgeMaps {
		slot := edgeSlotOrder[i]
		homeSlot := int(s.EdgePerm[slot])
		homeTeacher := slotToTeacherEdge[homeSlot]
		colors := homeEdgeColors[homeTeacher]
		if s.EdgeOri[slot] == 1 {
			colors[0], colors[1] = colors[1], colors[0]
		}
		out.Faces[m.Face1][m.Row1][m.Col1] = colors[0]
		out.Faces[m.Face2][m.Row2][m.Col2] = colors[1]
	}
	for i, m := range cornerMaps {
		slot := cornerSlotOrder[i]
		homeSlot := int(s.CornerPerm[slot])
		homeTeacher := slotToTeacherCorner[homeSlot]
		colors := homeCornerColors[homeTeacher]
		twist := s.CornerOri[slot]
		rotated := [3]Color{colors[twist%3], colors[(twist+1)%3], colors[(twist+2)%3]}
		out.Faces[m.Face1][m.Row1][m.Col1] = rotated[0]
		out.Faces[m.Face2][m.Row2][m.Col2] = rotated[1]
		out.Faces[m.Face3][m.Row3][m.Col3] = rotated[2]
	}

	assignment := resolveSpinFaces(s.Spin)
	for slotFace, origFace := range assignment {
		out.Faces[slotFace][c_mid(out)][c_mid(out)] = solved.Faces[origFace][c_mid(out)][c_mid(out)]
	}
	return out
}

func c_mid(c *Cube) int { return c.Size / 2 }

// resolveSpinFaces expands a (Up,Front) Spin into the full six-face
// assignment (which original face currently sits at each physical slot),
// by BFS over the same whole-cube rotation generators state.go uses to
// update Spin, starting from the identity assignment.
var spinFaceAssignment map[Spin]map[Face]Face

func init() {
	spinFaceAssignment = map[Spin]map[Face]Face{}
	identity := map[Face]Face{Up: Up, Down: Down, Front: Front, Back: Back, Right: Right, Left: Left}
	start := Spin{Up: Up, Front: Front}
	spinFaceAssignment[start] = identity

	queue := []Spin{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curAssign := spinFaceAssignment[cur]
		for _, mt := range []MoveType{MoveX, MoveY, MoveZ} {
			cycle := rotationFaceCycle[mt]
			next := Spin{Up: cycle[cur.Up], Front: cycle[cur.Front]}
			if _, seen := spinFaceAssignment[next]; seen {
				continue
			}
			nextAssign := make(map[Face]Face, 6)
			for slot, orig := range curAssign {
				nextAssign[cycle[slot]] = orig
			}
			spinFaceAssignment[next] = nextAssign
			queue = append(queue, next)
		}
	}
}

func resolveSpinFaces(s Spin) map[Face]Face {
	if a, ok := spinFaceAssignment[s]; ok {
		return a
	}
	return map[Face]Face{Up: Up, Down: Down, Front: Front, Back: Back, Right: Right, Left: Left}
}
