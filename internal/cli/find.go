package cli

import (
	"fmt"
	"strings"

	"github.com/layerwise/cube/internal/cube"
	"github.com/layerwise/cube/internal/search"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find sequences that create specific patterns or states",
	Long: `Find move sequences that achieve specific cube states or patterns,
using internal/search's Engine (iterative deepening over the full
18-move face alphabet) instead of a one-off breadth first search.

Examples:
  cube find pattern solved --max-moves 4     # Find ways to solve in 4 moves
  cube find pattern cross --max-moves 8      # Find cross-solving sequences
  cube find sequence "R U" --max-moves 5     # Find ways to solve R U scramble`,
}

var findPatternCmd = &cobra.Command{
	Use:   "pattern [pattern-name]",
	Short: "Find sequences that create a specific pattern",
	Long: `Find move sequences that create a specific named pattern.

Available patterns:
  - solved: Return cube to solved state
  - cross: Create a cross on the Up face
  - checkerboard: Create checkerboard pattern

Examples:
  cube find pattern solved --max-moves 6
  cube find pattern cross --max-moves 8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		maxMoves, _ := cmd.Flags().GetInt("max-moves")
		fromState, _ := cmd.Flags().GetString("from")
		showSteps, _ := cmd.Flags().GetBool("steps")

		return runPatternSearch(pattern, maxMoves, fromState, showSteps)
	},
}

var findSequenceCmd = &cobra.Command{
	Use:   "sequence [scramble]",
	Short: "Find sequences that solve a specific scramble",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]
		maxMoves, _ := cmd.Flags().GetInt("max-moves")
		showSteps, _ := cmd.Flags().GetBool("steps")

		return runSequenceSearch(scramble, maxMoves, showSteps)
	},
}

// maxFindResults caps how many satisfying sequences are printed, matching
// the teacher's breadthFirstSearch cap so `find` output stays readable.
const maxFindResults = 10

// patternGoal resolves a named pattern to the Goal Predicate the engine
// should search for.
func patternGoal(pattern string) (search.Predicate, error) {
	switch strings.ToLower(pattern) {
	case "solved":
		return search.NewPredicateBuilder().RequireSolved(cube.WholeCube).Build(), nil
	case "cross":
		return search.NewPredicateBuilder().RequireSolved(cube.Cross(cube.Up)).Build(), nil
	case "checkerboard":
		return search.Predicate{}, fmt.Errorf("checkerboard pattern detection not implemented")
	default:
		return search.Predicate{}, fmt.Errorf("unknown pattern '%s'. Available: solved, cross, checkerboard", pattern)
	}
}

// iterativeDeepeningSearch runs the engine at every depth from 1 to
// maxMoves (original_source/deep_search.h's callers chain several bounded
// searches rather than one unbounded one), accumulating every satisfying
// algorithm up to maxFindResults, shortest first.
func iterativeDeepeningSearch(start cube.State, goal search.Predicate, maxMoves int) []cube.Algorithm {
	var results []cube.Algorithm
	for depth := 1; depth <= maxMoves && len(results) < maxFindResults; depth++ {
		grammar := search.NewGrammar()
		for i := 0; i < depth; i++ {
			grammar.AddSingleLevel(search.AllFaceMoves)
		}
		engine := search.NewEngine(cube.Algorithm{}, grammar, goal)
		startCopy := start.Clone()
		engine.StartState = &startCopy
		if err := engine.Run(); err != nil {
			continue
		}
		for _, sol := range engine.Solutions() {
			results = append(results, sol)
			if len(results) >= maxFindResults {
				break
			}
		}
	}
	return results
}

func printFindResults(results []cube.Algorithm, showSteps bool, start cube.State) {
	fmt.Printf("\nFound %d sequence(s):\n", len(results))
	for i, alg := range results {
		fmt.Printf("%d. %s (%d moves)\n", i+1, alg.String(), alg.Len())
		if showSteps {
			fmt.Printf("   Steps:\n")
			s := start.Clone()
			for j, move := range alg.Moves {
				s.ApplyAlgorithm(cube.NewAlgorithm(move))
				fmt.Printf("   %d. %s\n", j+1, move.String())
			}
		}
	}
}

func runPatternSearch(pattern string, maxMoves int, fromState string, showSteps bool) error {
	fmt.Printf("Searching for sequences to create '%s' pattern (max %d moves)...\n", pattern, maxMoves)

	goal, err := patternGoal(pattern)
	if err != nil {
		return err
	}

	startCube := cube.NewCube(3)
	if fromState != "" {
		moves, err := cube.ParseScramble(fromState)
		if err != nil {
			return fmt.Errorf("error parsing from-state '%s': %v", fromState, err)
		}
		startCube.ApplyMoves(moves)
		fmt.Printf("Starting from state: %s\n", fromState)
	}
	start := cube.StateFromCube(startCube)

	if goal.Satisfies(start) {
		fmt.Println("\nAlready at target; 0-move sequence satisfies the pattern.")
		return nil
	}

	results := iterativeDeepeningSearch(start, goal, maxMoves)
	if len(results) == 0 {
		fmt.Printf("No sequences found within %d moves.\n", maxMoves)
		return nil
	}

	printFindResults(results, showSteps, start)
	return nil
}

func runSequenceSearch(scramble string, maxMoves int, showSteps bool) error {
	fmt.Printf("Searching for solutions to '%s' (max %d moves)...\n", scramble, maxMoves)

	scrambleMoves, err := cube.ParseScramble(scramble)
	if err != nil {
		return fmt.Errorf("error parsing scramble: %v", err)
	}

	startCube := cube.NewCube(3)
	startCube.ApplyMoves(scrambleMoves)
	start := cube.StateFromCube(startCube)

	goal := search.NewPredicateBuilder().RequireSolved(cube.WholeCube).Build()
	if goal.Satisfies(start) {
		fmt.Println("\nAlready solved; 0-move sequence suffices.")
		return nil
	}

	results := iterativeDeepeningSearch(start, goal, maxMoves)
	if len(results) == 0 {
		fmt.Printf("No solutions found within %d moves.\n", maxMoves)
		return nil
	}

	printFindResults(results, showSteps, start)
	return nil
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.AddCommand(findPatternCmd)
	findCmd.AddCommand(findSequenceCmd)

	// Flags for both subcommands
	findPatternCmd.Flags().IntP("max-moves", "m", 6, "Maximum number of moves to search")
	findPatternCmd.Flags().StringP("from", "f", "", "Starting cube state (default: solved)")
	findPatternCmd.Flags().BoolP("steps", "s", false, "Show intermediate steps")

	findSequenceCmd.Flags().IntP("max-moves", "m", 8, "Maximum number of moves to search")
	findSequenceCmd.Flags().BoolP("steps", "s", false, "Show intermediate steps")
}
