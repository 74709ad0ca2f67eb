package cube

import "testing"

func TestPiecegroupsCoverEveryPieceOnce(t *testing.T) {
	total := WholeCube
	if len(total.EdgeSlots) != numEdges {
		t.Errorf("WholeCube names %d edge slots, want %d", len(total.EdgeSlots), numEdges)
	}
	if len(total.CornerSlots) != numCorners {
		t.Errorf("WholeCube names %d corner slots, want %d", len(total.CornerSlots), numCorners)
	}
}

func TestFirstTwoLayersExcludesLastLayer(t *testing.T) {
	f2l := FirstTwoLayers
	for _, slot := range LastLayerEdges.EdgeSlots {
		for _, f2lSlot := range f2l.EdgeSlots {
			if slot == f2lSlot {
				t.Errorf("FirstTwoLayers should not name last-layer edge slot %d", slot)
			}
		}
	}
	for _, slot := range LastLayerCorners.CornerSlots {
		for _, f2lSlot := range f2l.CornerSlots {
			if slot == f2lSlot {
				t.Errorf("FirstTwoLayers should not name last-layer corner slot %d", slot)
			}
		}
	}
}

func TestCrossDownDisturbedByDMove(t *testing.T) {
	s := NewState()
	s.ApplyAlgorithm(NewAlgorithm(Move{Face: Down, Clockwise: true}))
	if s.IsSolved(Cross(Down)) {
		t.Error("a D move should disturb Cross(Down)")
	}
}

func TestLayerUnaffectedByOppositeMove(t *testing.T) {
	s := NewState()
	s.ApplyAlgorithm(NewAlgorithm(Move{Face: Up, Clockwise: true}))
	if !s.IsSolved(Layer(Down)) {
		t.Error("a U move should never disturb Layer(Down)")
	}
}

func TestRouxBlocksDisjointFromEachOther(t *testing.T) {
	for _, l := range RouxLeftBlock.EdgeSlots {
		for _, r := range RouxRightBlock.EdgeSlots {
			if l == r {
				t.Errorf("RouxLeftBlock and RouxRightBlock should not share edge slot %d", l)
			}
		}
	}
}

func TestGroupUnionCombinesSlots(t *testing.T) {
	u := PetrusBlock222.Union(NewGroup("ext", []int{EdgeBR, EdgeDR}, []int{CornerDBR}))
	if len(u.EdgeSlots) != len(PetrusBlock222.EdgeSlots)+2 {
		t.Errorf("Union edge slot count = %d, want %d", len(u.EdgeSlots), len(PetrusBlock222.EdgeSlots)+2)
	}
}
