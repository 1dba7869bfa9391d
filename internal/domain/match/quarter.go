package match

// MinQuarters is the number of quarters synthesized even when no goal names a
// later one.
const MinQuarters = 4

// SynthesizeQuarterScores builds a per-quarter breakdown for a match that has
// none stored. Our side is the ledger count per quarter; the opponent's final
// score is spread one goal per quarter, front-loaded only when the remaining
// goals outnumber the quarters after the current one, and the last quarter
// takes whatever is left. The result is cosmetic and may disagree with the
// final score.
func SynthesizeQuarterScores(score string, goals []Goal) []QuarterScore {
	final := ParseScore(score)

	perQuarter := make(map[int]int)
	quarters := MinQuarters
	for _, g := range goals {
		perQuarter[g.Quarter]++
		if g.Quarter > quarters {
			quarters = g.Quarter
		}
	}

	out := make([]QuarterScore, 0, quarters)
	remaining := final.Theirs
	for q := 1; q <= quarters; q++ {
		opponent := 0
		if remaining > 0 {
			if remaining > quarters-q {
				opponent = 1
			}
			if q == quarters {
				opponent = remaining
			}
			remaining -= opponent
		}

		out = append(out, QuarterScore{
			Quarter:       q,
			OurScore:      perQuarter[q],
			OpponentScore: opponent,
		})
	}

	return out
}
