package memory

import (
	"context"
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-stats/internal/domain/player"
)

type PlayerRepository struct {
	h   handle
	now func() time.Time
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	err := r.h.write(func(st *state) error {
		if _, ok := st.teams[p.TeamID]; !ok {
			return crerr.Newf("team %d does not exist", p.TeamID)
		}
		now := r.now()
		p.ID = st.nextID()
		p.CreatedAt = now
		p.UpdatedAt = now
		st.players[p.ID] = p
		return nil
	})
	return p, err
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	var (
		out   player.Player
		found bool
	)
	err := r.h.read(func(st *state) error {
		out, found = st.players[playerID]
		return nil
	})
	return out, found, err
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	out := make([]player.Player, 0, len(playerIDs))
	err := r.h.read(func(st *state) error {
		seen := make(map[int64]struct{}, len(playerIDs))
		for _, id := range playerIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if p, ok := st.players[id]; ok {
				out = append(out, p)
			}
		}
		return nil
	})
	sortPlayers(out)
	return out, err
}

// LockByIDs behaves like GetByIDs. Transactions already hold the store's
// writer lock.
func (r *PlayerRepository) LockByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	return r.GetByIDs(ctx, playerIDs)
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	out := make([]player.Player, 0)
	err := r.h.read(func(st *state) error {
		for _, p := range st.players {
			if p.TeamID == teamID {
				out = append(out, p)
			}
		}
		return nil
	})
	sortPlayers(out)
	return out, err
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, error) {
	err := r.h.write(func(st *state) error {
		current, ok := st.players[p.ID]
		if !ok {
			return crerr.Newf("player %d not found", p.ID)
		}
		current.Name = p.Name
		current.Number = p.Number
		current.Position = p.Position
		current.UpdatedAt = r.now()
		st.players[p.ID] = current
		p = current
		return nil
	})
	return p, err
}

func (r *PlayerRepository) UpdateCounters(_ context.Context, p player.Player) error {
	if p.GoalCount < 0 || p.AssistCount < 0 || p.MOMCount < 0 {
		return crerr.Newf("player %d counters must be >= 0", p.ID)
	}
	return r.h.write(func(st *state) error {
		current, ok := st.players[p.ID]
		if !ok {
			return crerr.Newf("player %d not found", p.ID)
		}
		current.GoalCount = p.GoalCount
		current.AssistCount = p.AssistCount
		current.MOMCount = p.MOMCount
		current.UpdatedAt = r.now()
		st.players[p.ID] = current
		return nil
	})
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	return r.h.write(func(st *state) error {
		deletePlayer(st, playerID)
		return nil
	})
}

func (r *PlayerRepository) DeleteByTeam(_ context.Context, teamID int64) error {
	return r.h.write(func(st *state) error {
		for id, p := range st.players {
			if p.TeamID == teamID {
				deletePlayer(st, id)
			}
		}
		return nil
	})
}

// deletePlayer applies the foreign key actions of the relational schema:
// roster rows go, goal and match references are nulled.
func deletePlayer(st *state, playerID int64) {
	delete(st.players, playerID)

	for matchID, ids := range st.roster {
		st.roster[matchID] = removeID(ids, playerID)
	}
	for id, m := range st.matches {
		if m.MOMPlayerID != nil && *m.MOMPlayerID == playerID {
			m.MOMPlayerID = nil
			st.matches[id] = m
		}
	}
	for id, g := range st.goals {
		changed := false
		if g.PlayerID == playerID {
			g.PlayerID = 0
			changed = true
		}
		if g.AssistPlayerID != nil && *g.AssistPlayerID == playerID {
			g.AssistPlayerID = nil
			changed = true
		}
		if changed {
			st.goals[id] = g
		}
	}
}

func removeID(ids []int64, target int64) []int64 {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func sortPlayers(items []player.Player) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
