package search

import "github.com/layerwise/cube/internal/cube"

// predicate.go - the Goal Predicate (spec.md §3/§4.F): a mandatory mask, a
// disjunctive set of optional masks (at least one must also be satisfied),
// and a mandatory-orientation mask. Grounded on deep_search.h's
// AddToMandatoryPieces/AddToOptionalPieces/AddToMandatoryOrientations,
// generalized from that file's Pcp/Pgr-overloaded C++ API into a small Go
// builder over cube.Group.

// Predicate is a fully-built goal test, immutable once constructed.
type Predicate struct {
	mandatory     cube.MaskPair
	optional      []cube.MaskPair
	mandatoryOriE uint64
	mandatoryOriC uint64
}

// Satisfies reports whether s meets the predicate: every mandatory slot
// solved, every mandatory-orientation slot oriented, and (if any optional
// groups were registered) at least one of them also solved.
func (p Predicate) Satisfies(s cube.State) bool {
	solved := cube.NewState()
	if s.EdgeSignatureMasked(p.mandatory.MaskE) != solved.EdgeSignatureMasked(p.mandatory.MaskE) {
		return false
	}
	if s.CornerSignatureMasked(p.mandatory.MaskC) != solved.CornerSignatureMasked(p.mandatory.MaskC) {
		return false
	}
	if !s.OrientedMasked(p.mandatoryOriE, p.mandatoryOriC) {
		return false
	}
	if len(p.optional) == 0 {
		return true
	}
	for _, pair := range p.optional {
		if s.EdgeSignatureMasked(pair.MaskE) == solved.EdgeSignatureMasked(pair.MaskE) &&
			s.CornerSignatureMasked(pair.MaskC) == solved.CornerSignatureMasked(pair.MaskC) {
			return true
		}
	}
	return false
}

// PredicateBuilder accumulates mandatory/optional/oriented groups before
// Build fixes them into an immutable Predicate.
type PredicateBuilder struct {
	mandatoryEdges, mandatoryCorners                 []int
	optional                                         []cube.Group
	mandatoryOrientedEdges, mandatoryOrientedCorners []int
}

// NewPredicateBuilder returns an empty builder.
func NewPredicateBuilder() *PredicateBuilder {
	return &PredicateBuilder{}
}

// RequireSolved adds g's slots to the mandatory mask: every branch that
// doesn't solve every piece in g is rejected outright.
func (b *PredicateBuilder) RequireSolved(g cube.Group) *PredicateBuilder {
	b.mandatoryEdges = append(b.mandatoryEdges, g.EdgeSlots...)
	b.mandatoryCorners = append(b.mandatoryCorners, g.CornerSlots...)
	return b
}

// RequireOneOf adds a disjunctive set of alternative groups: a branch is
// accepted if it solves ANY of the given groups (in addition to meeting
// every mandatory requirement). Each call replaces the previous optional
// set, matching deep_search.h's single-alternative-set-per-search usage.
func (b *PredicateBuilder) RequireOneOf(groups ...cube.Group) *PredicateBuilder {
	b.optional = groups
	return b
}

// RequireOriented adds g's slots to the mandatory-orientation mask,
// independent of whether those slots are also required to be positioned.
func (b *PredicateBuilder) RequireOriented(g cube.Group) *PredicateBuilder {
	b.mandatoryOrientedEdges = append(b.mandatoryOrientedEdges, g.EdgeSlots...)
	b.mandatoryOrientedCorners = append(b.mandatoryOrientedCorners, g.CornerSlots...)
	return b
}

// Build fixes the accumulated requirements into an immutable Predicate.
func (b *PredicateBuilder) Build() Predicate {
	mandatory := cube.NewGroup("mandatory", b.mandatoryEdges, b.mandatoryCorners)
	p := Predicate{mandatory: mandatory.Masks}
	for _, g := range b.optional {
		p.optional = append(p.optional, g.Masks)
	}
	oriented := cube.NewGroup("mandatory-oriented", b.mandatoryOrientedEdges, b.mandatoryOrientedCorners)
	p.mandatoryOriE = oriented.Masks.MaskE
	p.mandatoryOriC = oriented.Masks.MaskC
	return p
}
