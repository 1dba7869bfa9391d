package memory

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

type TeamRepository struct {
	h   handle
	now func() time.Time
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	err := r.h.write(func(st *state) error {
		if nameTaken(st, t.Name, 0) {
			return crerr.Wrapf(usecase.ErrConflict, "team name %q", t.Name)
		}
		now := r.now()
		t.ID = st.nextID()
		t.CreatedAt = now
		t.UpdatedAt = now
		st.teams[t.ID] = t
		return nil
	})
	return t, err
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	var (
		out   team.Team
		found bool
	)
	err := r.h.read(func(st *state) error {
		out, found = st.teams[teamID]
		return nil
	})
	return out, found, err
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	var (
		out   team.Team
		found bool
	)
	err := r.h.read(func(st *state) error {
		for _, t := range st.teams {
			if t.Name == name {
				out, found = t, true
				return nil
			}
		}
		return nil
	})
	return out, found, err
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) (team.Team, error) {
	err := r.h.write(func(st *state) error {
		current, ok := st.teams[t.ID]
		if !ok {
			return crerr.Newf("team %d not found", t.ID)
		}
		if nameTaken(st, t.Name, t.ID) {
			return crerr.Wrapf(usecase.ErrConflict, "team name %q", t.Name)
		}
		t.CreatedAt = current.CreatedAt
		t.UpdatedAt = r.now()
		st.teams[t.ID] = t
		return nil
	})
	return t, err
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	return r.h.write(func(st *state) error {
		for _, p := range st.players {
			if p.TeamID == teamID {
				return crerr.Newf("team %d still has players", teamID)
			}
		}
		delete(st.teams, teamID)
		return nil
	})
}

func nameTaken(st *state, name string, exceptID int64) bool {
	for id, t := range st.teams {
		if id != exceptID && t.Name == name {
			return true
		}
	}
	return false
}
