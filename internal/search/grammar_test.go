package search

import (
	"testing"

	"github.com/layerwise/cube/internal/cube"
)

func TestGrammarAddSingleLevel(t *testing.T) {
	g := NewGrammar()
	g.AddSingleLevel(mustParse("U", "U'", "U2"))

	if g.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", g.Depth())
	}
	unit := g.Levels[0].Units[0]
	branches := unit.branches()
	if len(branches) != 3 {
		t.Fatalf("single-level branches = %d, want 3", len(branches))
	}
}

func TestGrammarAddDoubleLevelExcludesSameLayer(t *testing.T) {
	g := NewGrammar()
	g.AddDoubleLevel(mustParse("U", "U'", "D"))
	branches := g.Levels[0].Units[0].branches()

	for _, b := range branches {
		if len(b.Moves) != 2 {
			t.Fatalf("double-level branch has %d moves, want 2", len(b.Moves))
		}
		if cube.SameLayer(b.Moves[0], b.Moves[1]) {
			t.Errorf("branch %s pairs two moves on the same layer", b.String())
		}
	}
}

func TestUnitTypeString(t *testing.T) {
	cases := map[UnitType]string{
		UnitSingle:          "Single",
		UnitDouble:          "Double",
		UnitTriple:          "Triple",
		UnitSequence:        "Sequence",
		UnitConjugateSingle: "ConjugateSingle",
		UnitConjugate:       "Conjugate",
	}
	for unitType, want := range cases {
		if got := unitType.String(); got != want {
			t.Errorf("UnitType(%d).String() = %q, want %q", unitType, got, want)
		}
	}
}

func TestGrammarIDsScopedPerGrammar(t *testing.T) {
	g1 := NewGrammar()
	g1.AddSingleLevel(mustParse("U"))
	g2 := NewGrammar()
	g2.AddSingleLevel(mustParse("U"))

	if g1.Levels[0].Units[0].ID != g2.Levels[0].Units[0].ID {
		t.Errorf("two independently built single-level grammars should allocate the same first id, got %d and %d",
			g1.Levels[0].Units[0].ID, g2.Levels[0].Units[0].ID)
	}
}
