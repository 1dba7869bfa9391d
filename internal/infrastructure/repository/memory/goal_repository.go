package memory

import (
	"context"
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-stats/internal/domain/match"
)

type GoalRepository struct {
	h   handle
	now func() time.Time
}

func (r *GoalRepository) Insert(_ context.Context, g match.Goal) (match.Goal, error) {
	err := r.h.write(func(st *state) error {
		if _, ok := st.matches[g.MatchID]; !ok {
			return crerr.Newf("match %d not found", g.MatchID)
		}
		if g.Quarter < 1 {
			return crerr.Newf("goal quarter must be > 0, got %d", g.Quarter)
		}
		now := r.now()
		g.ID = st.nextID()
		g.AssistPlayerID = copyID(g.AssistPlayerID)
		g.CreatedAt = now
		g.UpdatedAt = now
		st.goals[g.ID] = g
		return nil
	})
	return g, err
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]match.Goal, error) {
	out := make([]match.Goal, 0)
	err := r.h.read(func(st *state) error {
		for _, g := range st.goals {
			if g.MatchID == matchID {
				g.AssistPlayerID = copyID(g.AssistPlayerID)
				out = append(out, g)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *GoalRepository) DeleteByMatch(_ context.Context, matchID int64) error {
	return r.h.write(func(st *state) error {
		for id, g := range st.goals {
			if g.MatchID == matchID {
				delete(st.goals, id)
			}
		}
		return nil
	})
}
