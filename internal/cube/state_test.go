package cube

import "testing"

func TestNewStateIsSolved(t *testing.T) {
	s := NewState()
	if !s.IsSolved(WholeCube) {
		t.Error("NewState() should report solved on WholeCube")
	}
	if !s.IsOriented(AllEdges) || !s.IsOriented(AllCorners) {
		t.Error("NewState() should be fully oriented")
	}
}

func TestApplyAlgorithmMovesAreReversible(t *testing.T) {
	alg := NewAlgorithm(Move{Face: Right, Clockwise: true}, Move{Face: Up, Clockwise: true})
	s := NewState()
	s.ApplyAlgorithm(alg)
	if s.IsSolved(WholeCube) {
		t.Fatal("R U should disturb a solved cube")
	}
	s.ApplyAlgorithm(alg.Invert())
	if !s.IsSolved(WholeCube) {
		t.Error("applying an algorithm then its inverse should return to solved")
	}
}

func TestApplyAlgorithmDoubleMoveIsSelfInverse(t *testing.T) {
	s := NewState()
	alg := NewAlgorithm(Move{Face: Front, Clockwise: true, Double: true})
	s.ApplyAlgorithm(alg)
	s.ApplyAlgorithm(alg)
	if !s.IsSolved(WholeCube) {
		t.Error("F2 applied twice should return to solved")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState()
	clone := s.Clone()
	clone.ApplyAlgorithm(NewAlgorithm(Move{Face: Right, Clockwise: true}))

	if !s.IsSolved(WholeCube) {
		t.Error("mutating a clone should not affect the original State")
	}
	if clone.IsSolved(WholeCube) {
		t.Error("the clone should reflect its own mutation")
	}
}
