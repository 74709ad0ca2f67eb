package cube

// scoring.go - the subjective scoring table used to break ties between
// solutions of equal length/metric (spec.md §3 "Solution", §4.D
// SubjectiveScore, §4.H Evaluator). The source material (deep_search.h)
// documents that a subjective execution-friendliness score exists and is
// used as a tiebreaker, but the concrete per-pair table was never part of
// the retrieved original_source/ files (only the search engine header was
// kept, not the grip-penalty table itself). Rather than invent a
// "heuristic" per move-pair, this keeps a small, explicit static table of
// grip-transition penalties keyed by (axis-pair, same-hand) - the
// published rationale for these tables is always "some adjacent move
// pairs force a regrip, some don't" - and documents the gap as an Open
// Question resolution in DESIGN.md.

// gripPenalty is looked up by the axis pair of two consecutive moves.
// 0 means "no regrip" (e.g. U then U2, or R then U).
// Higher values mean progressively more awkward finger tricks.
var gripPenalty = map[[2]Axis]int{
	{AxisX, AxisX}: 1, // R then L or similar - same general grip area
	{AxisY, AxisY}: 0, // U then U - cheap, thumb/flick repeats are fine
	{AxisZ, AxisZ}: 2, // F then B - awkward, needs a full regrip
	{AxisX, AxisY}: 0,
	{AxisY, AxisX}: 0,
	{AxisX, AxisZ}: 1,
	{AxisZ, AxisX}: 1,
	{AxisY, AxisZ}: 1,
	{AxisZ, AxisY}: 1,
}

// SubjectiveScore computes the tiebreaker score for a: higher is nicer to
// execute. It is the sum of per-adjacent-pair bonuses (free pairs score
// positively, regrip-heavy pairs are penalised), matching spec.md §4.D
// ("computed from adjacent-move fingerprints, penalty for grip-changing
// pairs").
func (a Algorithm) SubjectiveScore() int {
	if len(a.Moves) < 2 {
		return 0
	}
	score := 0
	for i := 1; i < len(a.Moves); i++ {
		prev, cur := a.Moves[i-1], a.Moves[i]
		if prev.Range() == RangeTurn || cur.Range() == RangeTurn {
			continue
		}
		penalty := gripPenalty[[2]Axis{prev.Axis(), cur.Axis()}]
		score += 3 - penalty
	}
	return score
}
