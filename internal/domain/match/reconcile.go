package match

import "sort"

const (
	goalPoints   = 2
	assistPoints = 1
)

// Tally is the per-player goal and assist count of one match's ledger.
type Tally struct {
	Goals   map[int64]int
	Assists map[int64]int
}

func NewTally(goals []Goal) Tally {
	t := Tally{
		Goals:   make(map[int64]int),
		Assists: make(map[int64]int),
	}
	for _, g := range goals {
		if g.PlayerID > 0 {
			t.Goals[g.PlayerID]++
		}
		if g.AssistPlayerID != nil && *g.AssistPlayerID > 0 {
			t.Assists[*g.AssistPlayerID]++
		}
	}
	return t
}

// Score is the Player-of-the-Match score: two points per goal, one per assist.
func (t Tally) Score(playerID int64) int {
	return t.Goals[playerID]*goalPoints + t.Assists[playerID]*assistPoints
}

// PlayerIDs lists every player in the tally in ascending order.
func (t Tally) PlayerIDs() []int64 {
	seen := make(map[int64]struct{}, len(t.Goals)+len(t.Assists))
	out := make([]int64, 0, len(t.Goals)+len(t.Assists))
	for id := range t.Goals {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for id := range t.Assists {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PlayerOfTheMatch returns the highest scoring player. Ties go to the lowest
// player id. An empty ledger has no player of the match.
func (t Tally) PlayerOfTheMatch() (int64, bool) {
	var (
		best      int64
		bestScore int
		found     bool
	)
	for _, id := range t.PlayerIDs() {
		score := t.Score(id)
		if score <= 0 {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, found = id, score, true
		}
	}
	return best, found
}
