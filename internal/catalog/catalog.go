// Package catalog is the Algorithm Catalog (spec.md §3/§4.I): a lookup
// table of named, case-identified algorithms (OLL/PLL/F2L/triggers) keyed
// by name, case ID, category or exact move sequence, plus fuzzy search.
//
// Grounded on the teacher's internal/cube/algorithms.go, moved out of
// package cube and renamed Algorithm -> CatalogEntry: the teacher's file
// named its catalog row type Algorithm, which collides with the new
// cube.Algorithm value object (spec.md §4.D, the parsed move-sequence type
// the search engine and CLI operate on). The two types serve entirely
// different concerns - one is a database row, the other a push/invert/
// transform-capable algebraic value - so they get separate packages
// rather than one sharing a name.
package catalog

import (
	"sort"
	"strings"

	"github.com/layerwise/cube/internal/cube"
)

// CatalogEntry is a named cube algorithm with pattern-based verification
// metadata, one row of the catalog database.
type CatalogEntry struct {
	// Core Identity
	Name     string // e.g., "Sune"
	CaseID   string // e.g., "OLL-27" (standardized format)
	Category string // OLL, PLL, F2L, Trigger, etc.

	// Algorithm Definition
	Moves     string // e.g., "R U R' U R U2 R'"
	MoveCount int    // Auto-calculated from Moves

	// Pattern Representation
	Pattern string // Masked CFEN showing only affected stickers

	// Human-Friendly Info
	Description string // What this algorithm does
	Recognition string // How to recognize when to use it

	// Optional Metadata
	Probability float64  // Chance of occurring in solve
	Variants    []string // Alternative move sequences
	Inverse     string   // Inverse algorithm (if meaningful)

	// Relationships
	Mirror  string   // ID of mirror algorithm (e.g., "OLL-26" for Sune)
	Related []string // IDs of related algorithms
}

// UpdateMoveCount recalculates MoveCount from Moves.
func (a *CatalogEntry) UpdateMoveCount() error {
	moves, err := cube.ParseScramble(a.Moves)
	if err != nil {
		return err
	}
	a.MoveCount = len(moves)
	return nil
}

// CalculateMoveCount returns the number of moves in the entry's Moves
// string, or 0 if it fails to parse.
func (a *CatalogEntry) CalculateMoveCount() int {
	if a.Moves == "" {
		return 0
	}
	moves, err := cube.ParseScramble(a.Moves)
	if err != nil {
		return 0
	}
	return len(moves)
}

// ImportedAlgorithms holds entries imported from CSV dumps via
// tools/import-algorithms; empty until that tool's generated file is
// added to the build.
var ImportedAlgorithms []CatalogEntry

// AlgorithmDatabase contains the built-in, hand-curated algorithm set.
var AlgorithmDatabase = []CatalogEntry{
	{
		Name:        "Sune",
		CaseID:      "OLL-27",
		Category:    "OLL",
		Moves:       "R U R' U R U2 R'",
		MoveCount:   7,
		Pattern:     "YB|BY5RYG/YO2R6/YBOB6/W9/YG2O6/BR2G6",
		Description: "Orient corners when one is correctly oriented",
		Recognition: "One corner oriented, headlights on left",
		Probability: 4.63,
		Inverse:     "R U2 R' U' R U' R'",
		Mirror:      "OLL-26",
		Related:     []string{"OLL-26", "OLL-21"},
	},
	{
		Name:        "Anti-Sune",
		CaseID:      "OLL-26",
		Category:    "OLL",
		Moves:       "R U2 R' U' R U' R'",
		MoveCount:   7,
		Pattern:     "YB|RYBY5O/G2YR6/GBYB6/W9/BR2O6/O2YG6",
		Description: "Mirror of Sune algorithm",
		Recognition: "One corner oriented, headlights on right",
		Probability: 4.63,
		Inverse:     "R U R' U R U2 R'",
		Mirror:      "OLL-27",
		Related:     []string{"OLL-27", "OLL-21"},
	},
	{
		Name:        "Cross OLL",
		CaseID:      "OLL-CROSS",
		Category:    "OLL",
		Moves:       "F R U R' U' F'",
		MoveCount:   6,
		Pattern:     "YB|Y2OY2BYGO/Y3R6/RYB7/W9/GOBO6/GR2G6",
		Description: "Form yellow cross on top face",
		Recognition: "Need yellow cross (dot, line, or L-shape)",
	},
	{
		Name:        "T-Perm",
		CaseID:      "PLL-T",
		Category:    "PLL",
		Moves:       "R U R' F' R U R' U' R' F R2 U' R'",
		MoveCount:   13,
		Pattern:     "YB|Y9/RG2R6/GB8/W9/BR2O6/O3G6",
		Description: "Swaps two adjacent corners and two edges",
		Recognition: "Headlights with opposite edge swap",
		Probability: 4.17,
		Related:     []string{"PLL-J", "PLL-R"},
	},
	{
		Name:        "Sexy Move",
		CaseID:      "TRIG-1",
		Category:    "Trigger",
		Moves:       "R U R' U'",
		MoveCount:   4,
		Pattern:     "YB|Y2OY2BY2B/R2YGR2YR2/B2WB2YB3/W2RW6/GO8/GR2G6",
		Description: "Most common trigger in cubing",
		Recognition: "F2L pair building/breaking trigger",
		Related:     []string{"TRIG-2", "TRIG-3"},
	},
}

// GetAllAlgorithms returns every entry (built-in database plus any
// imported set).
func GetAllAlgorithms() []CatalogEntry {
	var all []CatalogEntry
	all = append(all, AlgorithmDatabase...)
	all = append(all, ImportedAlgorithms...)
	return all
}

type scoredEntry struct {
	entry CatalogEntry
	score int
}

// LookupAlgorithm searches the catalog by name, case ID, description or
// recognition text, returning matches ranked by a simple scoring scheme
// (exact name match scores highest, prefix and substring matches lower).
func LookupAlgorithm(query string) []CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var scored []scoredEntry
	for _, alg := range GetAllAlgorithms() {
		score := 0
		lowerName := strings.ToLower(alg.Name)
		lowerCaseID := strings.ToLower(alg.CaseID)
		lowerDescription := strings.ToLower(alg.Description)
		lowerRecognition := strings.ToLower(alg.Recognition)

		switch {
		case lowerName == query:
			score += 100
		case strings.HasPrefix(lowerName, query):
			score += 80
		case strings.Contains(lowerName, query):
			score += 60
		}

		switch {
		case lowerCaseID == query:
			score += 90
		case strings.Contains(lowerCaseID, query):
			score += 50
		}

		if strings.Contains(lowerDescription, query) {
			score += 30
		}
		if strings.Contains(lowerRecognition, query) {
			score += 25
		}
		if strings.Contains(strings.ToLower(alg.Category), query) {
			score += 40
		}

		if score > 0 {
			scored = append(scored, scoredEntry{alg, score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score == scored[j].score {
			return scored[i].entry.Name < scored[j].entry.Name
		}
		return scored[i].score > scored[j].score
	})

	results := make([]CatalogEntry, len(scored))
	for i, s := range scored {
		results[i] = s.entry
	}
	return results
}

// fuzzyMatchScore scores a query against text in [0,1]: exact match 1.0,
// substring match 0.8, else character-overlap ratio.
func fuzzyMatchScore(query, text string) float64 {
	if query == "" || text == "" {
		return 0.0
	}
	if query == text {
		return 1.0
	}
	if strings.Contains(text, query) {
		return 0.8
	}

	queryChars := make(map[rune]int)
	for _, char := range query {
		queryChars[char]++
	}
	textChars := make(map[rune]int)
	for _, char := range text {
		textChars[char]++
	}

	overlap := 0
	for char, count := range queryChars {
		if textCount, ok := textChars[char]; ok {
			if textCount >= count {
				overlap += count
			} else {
				overlap += textCount
			}
		}
	}
	return float64(overlap) / float64(len(query))
}

// FuzzyLookupAlgorithm performs weighted fuzzy matching across name, case
// ID and description, for queries that don't exactly prefix-match.
func FuzzyLookupAlgorithm(query string) []CatalogEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type fuzzyScored struct {
		entry CatalogEntry
		score float64
	}
	var scored []fuzzyScored

	for _, alg := range GetAllAlgorithms() {
		nameScore := fuzzyMatchScore(query, strings.ToLower(alg.Name))
		caseIDScore := fuzzyMatchScore(query, strings.ToLower(alg.CaseID))
		descScore := fuzzyMatchScore(query, strings.ToLower(alg.Description))
		score := nameScore*3.0 + caseIDScore*2.5 + descScore*1.0
		if score > 1.5 {
			scored = append(scored, fuzzyScored{alg, score})
		}
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	results := make([]CatalogEntry, len(scored))
	for i, s := range scored {
		results[i] = s.entry
	}
	return results
}

// LookupByMoves finds entries whose Moves string exactly matches moves.
func LookupByMoves(moves string) []CatalogEntry {
	moves = strings.TrimSpace(moves)
	var results []CatalogEntry
	for _, alg := range GetAllAlgorithms() {
		if alg.Moves == moves {
			results = append(results, alg)
		}
	}
	return results
}

// GetByCategory returns every entry in the given category (case-insensitive).
func GetByCategory(category string) []CatalogEntry {
	category = strings.ToUpper(strings.TrimSpace(category))
	var results []CatalogEntry
	for _, alg := range GetAllAlgorithms() {
		if strings.ToUpper(alg.Category) == category {
			results = append(results, alg)
		}
	}
	return results
}
