package cube

import "testing"

func TestStateFromCubeSolvedCube(t *testing.T) {
	c := NewCube(3)
	s := StateFromCube(c)
	if !s.IsSolved(WholeCube) {
		t.Error("StateFromCube(solved 3x3) should report solved on WholeCube")
	}
}

func TestCubeToStickerSolvedState(t *testing.T) {
	var s State
	for i := range s.EdgePerm {
		s.EdgePerm[i] = uint8(i)
	}
	for i := range s.CornerPerm {
		s.CornerPerm[i] = uint8(i)
	}
	s.Spin = Spin{Up: Up, Front: Front}

	out := CubeToSticker(s)
	solved := NewCube(3)
	for f := Front; f <= Down; f++ {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if out.Faces[f][r][col] != solved.Faces[f][r][col] {
					t.Fatalf("CubeToSticker(solved State) differs from NewCube(3) at face %v [%d][%d]", f, r, col)
				}
			}
		}
	}
}

func TestStateFromCubeRoundTripsThroughMoves(t *testing.T) {
	c := NewCube(3)
	alg := NewAlgorithm(Move{Face: Right, Clockwise: true}, Move{Face: Up, Clockwise: true}, Move{Face: Front, Clockwise: true, Double: true})
	c.ApplyMoves(alg.Moves)

	s := StateFromCube(c)
	back := CubeToSticker(s)

	for f := Front; f <= Down; f++ {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if back.Faces[f][r][col] != c.Faces[f][r][col] {
					t.Fatalf("round trip through StateFromCube/CubeToSticker changed face %v [%d][%d]", f, r, col)
				}
			}
		}
	}
}
