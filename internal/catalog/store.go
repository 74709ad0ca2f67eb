// store.go backs the catalog with a SQLite database (modernc.org/sqlite,
// pure Go, no cgo) instead of the teacher's bare in-memory slice, and
// realizes the three opaque last-layer interfaces spec.md §6 calls for:
// Recognise, OrientLastLayer, SolveLastLayer. Grounded on the teacher's
// tools/import-algorithms and tools/verify-database, which already shape
// CatalogEntry rows for bulk loading - this gives that data a real home.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/layerwise/cube/internal/cube"
)

// Store is the last-layer catalog surface the search/method packages
// depend on, kept as an interface so a caller can substitute an in-memory
// or file-backed implementation without touching internal/catalog's
// callers (spec.md §6).
type Store interface {
	// Recognise returns every catalog entry whose Group is consistent
	// with the last-layer state the cube is currently in (OLL candidates
	// once F2L is solved but the last layer isn't oriented, PLL
	// candidates once it's oriented but not solved).
	Recognise(state cube.State) ([]CatalogEntry, error)
	// OrientLastLayer returns one catalog algorithm that orients the
	// last layer from the given state, or ErrNoMatch if none apply.
	OrientLastLayer(state cube.State) (CatalogEntry, error)
	// SolveLastLayer returns one catalog algorithm that permutes an
	// already-oriented last layer into place, or ErrNoMatch if none
	// apply.
	SolveLastLayer(state cube.State) (CatalogEntry, error)
}

// ErrNoMatch is returned by OrientLastLayer/SolveLastLayer when the
// catalog holds no entry for the requested stage.
var ErrNoMatch = fmt.Errorf("catalog: no matching entry")

// SQLiteStore is a Store backed by a modernc.org/sqlite database, seeded
// on first open from AlgorithmDatabase.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if necessary) a SQLite database at
// path, creates its schema if absent, and seeds it from AlgorithmDatabase
// the first time the table is empty. path may be ":memory:" for a
// throwaway store, used by tests and short-lived CLI invocations.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open sqlite store: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS catalog_entries (
	name        TEXT NOT NULL,
	case_id     TEXT NOT NULL,
	category    TEXT NOT NULL,
	group_name  TEXT NOT NULL DEFAULT '',
	moves       TEXT NOT NULL,
	move_count  INTEGER NOT NULL,
	pattern     TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	recognition TEXT NOT NULL DEFAULT '',
	probability REAL NOT NULL DEFAULT 0,
	inverse     TEXT NOT NULL DEFAULT '',
	mirror      TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (case_id)
);`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("catalog: migrate: %w", err)
	}
	return nil
}

// entryGroup classifies a built-in CatalogEntry by its Category, the
// Group a SolveLastLayer/OrientLastLayer caller would ask for.
func entryGroup(category string) string {
	switch strings.ToUpper(category) {
	case "OLL":
		return "LastLayerOrientation"
	case "PLL":
		return "LastLayer"
	default:
		return ""
	}
}

func (s *SQLiteStore) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM catalog_entries`).Scan(&count); err != nil {
		return fmt.Errorf("catalog: count rows: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, e := range AlgorithmDatabase {
		if err := s.insert(e, entryGroup(e.Category)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) insert(e CatalogEntry, group string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO catalog_entries
			(name, case_id, category, group_name, moves, move_count, pattern, description, recognition, probability, inverse, mirror)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.CaseID, e.Category, group, e.Moves, e.MoveCount, e.Pattern, e.Description, e.Recognition, e.Probability, e.Inverse, e.Mirror,
	)
	if err != nil {
		return fmt.Errorf("catalog: insert %s: %w", e.CaseID, err)
	}
	return nil
}

func (s *SQLiteStore) scanEntries(rows *sql.Rows) ([]CatalogEntry, error) {
	defer rows.Close()
	var out []CatalogEntry
	for rows.Next() {
		var e CatalogEntry
		var group string
		if err := rows.Scan(&e.Name, &e.CaseID, &e.Category, &group, &e.Moves, &e.MoveCount, &e.Pattern, &e.Description, &e.Recognition, &e.Probability, &e.Inverse, &e.Mirror); err != nil {
			return nil, fmt.Errorf("catalog: scan row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) byGroup(group string) ([]CatalogEntry, error) {
	rows, err := s.db.Query(`SELECT name, case_id, category, group_name, moves, move_count, pattern, description, recognition, probability, inverse, mirror
		FROM catalog_entries WHERE group_name = ? ORDER BY case_id`, group)
	if err != nil {
		return nil, fmt.Errorf("catalog: query group %s: %w", group, err)
	}
	return s.scanEntries(rows)
}

// Recognise reports which stage the last layer is in - oriented but not
// permuted calls for a PLL, unoriented calls for an OLL - and returns the
// matching candidates.
func (s *SQLiteStore) Recognise(state cube.State) ([]CatalogEntry, error) {
	if !state.IsSolved(cube.FirstTwoLayers) {
		return nil, nil
	}
	if state.IsSolved(cube.WholeCube) {
		return nil, nil
	}
	if !state.IsOriented(cube.LastLayerEdges) || !state.IsOriented(cube.LastLayerCorners) {
		return s.byGroup("LastLayerOrientation")
	}
	return s.byGroup("LastLayer")
}

func (s *SQLiteStore) OrientLastLayer(state cube.State) (CatalogEntry, error) {
	entries, err := s.byGroup("LastLayerOrientation")
	if err != nil {
		return CatalogEntry{}, err
	}
	if len(entries) == 0 {
		return CatalogEntry{}, ErrNoMatch
	}
	return entries[0], nil
}

func (s *SQLiteStore) SolveLastLayer(state cube.State) (CatalogEntry, error) {
	entries, err := s.byGroup("LastLayer")
	if err != nil {
		return CatalogEntry{}, err
	}
	if len(entries) == 0 {
		return CatalogEntry{}, ErrNoMatch
	}
	return entries[0], nil
}
