package cube

// group.go - the Piece-Group predicate machinery (spec.md §3/§4.C): packed
// 64-bit signatures per state and per group, compared with a single AND+CMP
// so goal checks inside the search engine's hot loop stay O(1) regardless
// of how many pieces a group names.
//
// Grounded on original_source/deep_search.h's MasksPair{MaskE, MaskC S64}
// (the exact (edge-mask, corner-mask) pair the C++ search header threads
// through AddToMandatoryPieces/AddToOptionalPieces), adapted here to a
// named Go type plus the slot catalog in piecegroups.go.

// slotBits is how many bits of the packed signature each slot occupies:
// enough for a permutation index (4 bits covers 0..11) plus an
// orientation value (1 bit for edges, 2 for corners), rounded up to a
// fixed 5 bits/slot so both signatures share one packing scheme.
const slotBits = 5

const fullSlotMask uint64 = (1 << slotBits) - 1

// MaskPair is a (edge-mask, corner-mask) pair selecting which slots of a
// State participate in a predicate, mirroring deep_search.h's MasksPair.
type MaskPair struct {
	MaskE uint64
	MaskC uint64
}

// Group is a named, constant subset of piece slots - by face, layer or a
// method-specific structure such as an F2L pair or a Roux block.
type Group struct {
	Name        string
	EdgeSlots   []int
	CornerSlots []int
	Masks       MaskPair
}

// NewGroup builds a Group from explicit slot lists, precomputing its mask
// pair once so repeated IsSolved checks never re-derive it.
func NewGroup(name string, edgeSlots, cornerSlots []int) Group {
	g := Group{Name: name, EdgeSlots: edgeSlots, CornerSlots: cornerSlots}
	for _, s := range edgeSlots {
		g.Masks.MaskE |= fullSlotMask << uint(s*slotBits)
	}
	for _, s := range cornerSlots {
		g.Masks.MaskC |= fullSlotMask << uint(s*slotBits)
	}
	return g
}

// Union returns a new Group naming the combined slots of g and other
// (duplicates collapse harmlessly since masks OR together).
func (g Group) Union(other Group) Group {
	edges := append(append([]int{}, g.EdgeSlots...), other.EdgeSlots...)
	corners := append(append([]int{}, g.CornerSlots...), other.CornerSlots...)
	return NewGroup(g.Name+"+"+other.Name, edges, corners)
}

func (s State) edgeSignature() uint64 {
	var sig uint64
	for i, perm := range s.EdgePerm {
		sig |= uint64(perm) << uint(i*slotBits)
		sig |= uint64(s.EdgeOri[i]) << uint(i*slotBits+4)
	}
	return sig
}

func (s State) cornerSignature() uint64 {
	var sig uint64
	for i, perm := range s.CornerPerm {
		sig |= uint64(perm) << uint(i*slotBits)
		sig |= uint64(s.CornerOri[i]) << uint(i*slotBits+3)
	}
	return sig
}

var solvedEdgeSignature, solvedCornerSignature uint64

func init() {
	solved := NewState()
	solvedEdgeSignature = solved.edgeSignature()
	solvedCornerSignature = solved.cornerSignature()
}

// EdgeSignatureMasked and CornerSignatureMasked expose the packed
// signature under an arbitrary mask, for callers (such as a Goal
// Predicate) that build masks from more than one Group.
func (s State) EdgeSignatureMasked(mask uint64) uint64 {
	return s.edgeSignature() & mask
}

func (s State) CornerSignatureMasked(mask uint64) uint64 {
	return s.cornerSignature() & mask
}

// OrientedMasked reports whether every edge/corner slot selected by the
// given orientation masks holds a correctly oriented piece. The masks are
// expected to be full per-slot masks (as produced by Group.Masks); only
// the orientation bit of each selected slot is actually consulted.
func (s State) OrientedMasked(edgeMask, cornerMask uint64) bool {
	for i := 0; i < numEdges; i++ {
		slotMask := fullSlotMask << uint(i*slotBits)
		if edgeMask&slotMask == 0 {
			continue
		}
		if s.EdgeOri[i] != 0 {
			return false
		}
	}
	for i := 0; i < numCorners; i++ {
		slotMask := fullSlotMask << uint(i*slotBits)
		if cornerMask&slotMask == 0 {
			continue
		}
		if s.CornerOri[i] != 0 {
			return false
		}
	}
	return true
}

// IsSolved reports whether every slot named by g currently holds its home
// piece, correctly oriented - a single masked signature comparison.
func (s State) IsSolved(g Group) bool {
	return s.edgeSignature()&g.Masks.MaskE == solvedEdgeSignature&g.Masks.MaskE &&
		s.cornerSignature()&g.Masks.MaskC == solvedCornerSignature&g.Masks.MaskC
}

// IsOriented reports whether every slot named by g holds a correctly
// oriented piece, ignoring which piece it is (spec.md §4.C: "test whether
// a set of pieces is correctly oriented regardless of permutation").
func (s State) IsOriented(g Group) bool {
	for _, slot := range g.EdgeSlots {
		if s.EdgeOri[slot] != 0 {
			return false
		}
	}
	for _, slot := range g.CornerSlots {
		if s.CornerOri[slot] != 0 {
			return false
		}
	}
	return true
}

// IsPositioned reports whether every slot named by g holds its home
// piece, ignoring orientation.
func (s State) IsPositioned(g Group) bool {
	for _, slot := range g.EdgeSlots {
		if s.EdgePerm[slot] != uint8(slot) {
			return false
		}
	}
	for _, slot := range g.CornerSlots {
		if s.CornerPerm[slot] != uint8(slot) {
			return false
		}
	}
	return true
}
