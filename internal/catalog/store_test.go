package catalog

import (
	"testing"

	"github.com/layerwise/cube/internal/cube"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLiteStore(:memory:) error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSQLiteStoreSeedsFromAlgorithmDatabase(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.byGroup("LastLayerOrientation")
	if err != nil {
		t.Fatalf("byGroup error = %v", err)
	}
	if len(entries) == 0 {
		t.Error("expected at least one seeded OLL entry under LastLayerOrientation")
	}
}

func TestRecogniseSolvedCubeReturnsNothing(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.Recognise(cube.NewState())
	if err != nil {
		t.Fatalf("Recognise error = %v", err)
	}
	if entries != nil {
		t.Errorf("Recognise(solved) = %v, want nil", entries)
	}
}

func TestOrientLastLayerReturnsErrNoMatchWhenEmpty(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLiteStore error = %v", err)
	}
	defer s.Close()

	if _, err := s.db.Exec(`DELETE FROM catalog_entries`); err != nil {
		t.Fatalf("clearing seeded rows: %v", err)
	}
	if _, err := s.OrientLastLayer(cube.NewState()); err != ErrNoMatch {
		t.Errorf("OrientLastLayer on an empty store = %v, want ErrNoMatch", err)
	}
}
