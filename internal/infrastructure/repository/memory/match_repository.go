package memory

import (
	"context"
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-stats/internal/domain/match"
)

type MatchRepository struct {
	h   handle
	now func() time.Time
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	err := r.h.write(func(st *state) error {
		if _, ok := st.teams[m.TeamID]; !ok {
			return crerr.Newf("team %d does not exist", m.TeamID)
		}
		now := r.now()
		m.ID = st.nextID()
		m.MOMPlayerID = nil
		m.PlayerIDs = nil
		m.CreatedAt = now
		m.UpdatedAt = now
		st.matches[m.ID] = m
		return nil
	})
	return m, err
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	var (
		out   match.Match
		found bool
	)
	err := r.h.read(func(st *state) error {
		out, found = st.matches[matchID]
		if found {
			out = withRoster(st, out)
		}
		return nil
	})
	return out, found, err
}

// LockByID is GetByID: memory transactions already run one at a time.
func (r *MatchRepository) LockByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	return r.GetByID(ctx, matchID)
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID int64) ([]match.Match, error) {
	out := make([]match.Match, 0)
	err := r.h.read(func(st *state) error {
		for _, m := range st.matches {
			if m.TeamID == teamID {
				out = append(out, withRoster(st, m))
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, err
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (match.Match, error) {
	err := r.h.write(func(st *state) error {
		current, ok := st.matches[m.ID]
		if !ok {
			return crerr.Newf("match %d not found", m.ID)
		}
		current.Date = m.Date
		current.Opponent = m.Opponent
		current.Score = m.Score
		current.UpdatedAt = r.now()
		st.matches[m.ID] = current
		m = withRoster(st, current)
		return nil
	})
	return m, err
}

func (r *MatchRepository) SetPlayerOfTheMatch(_ context.Context, matchID int64, playerID *int64) error {
	return r.h.write(func(st *state) error {
		current, ok := st.matches[matchID]
		if !ok {
			return crerr.Newf("match %d not found", matchID)
		}
		current.MOMPlayerID = copyID(playerID)
		current.UpdatedAt = r.now()
		st.matches[matchID] = current
		return nil
	})
}

func (r *MatchRepository) ReplaceRoster(_ context.Context, matchID int64, playerIDs []int64) error {
	return r.h.write(func(st *state) error {
		if _, ok := st.matches[matchID]; !ok {
			return crerr.Newf("match %d not found", matchID)
		}
		for _, id := range playerIDs {
			if _, ok := st.players[id]; !ok {
				return crerr.Newf("player %d does not exist", id)
			}
		}
		ids := append([]int64(nil), playerIDs...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		st.roster[matchID] = ids
		return nil
	})
}

func (r *MatchRepository) ListRosterByTeam(_ context.Context, teamID int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64)
	err := r.h.read(func(st *state) error {
		for id, m := range st.matches {
			if m.TeamID != teamID {
				continue
			}
			if ids := st.roster[id]; len(ids) > 0 {
				out[id] = append([]int64(nil), ids...)
			}
		}
		return nil
	})
	return out, err
}

// Delete removes the match together with its roster, goals and quarter
// scores.
func (r *MatchRepository) Delete(_ context.Context, matchID int64) error {
	return r.h.write(func(st *state) error {
		delete(st.matches, matchID)
		delete(st.roster, matchID)
		delete(st.quarters, matchID)
		for id, g := range st.goals {
			if g.MatchID == matchID {
				delete(st.goals, id)
			}
		}
		return nil
	})
}

func (r *MatchRepository) ListQuarterScores(_ context.Context, matchID int64) ([]match.QuarterScore, error) {
	var out []match.QuarterScore
	err := r.h.read(func(st *state) error {
		out = append([]match.QuarterScore{}, st.quarters[matchID]...)
		return nil
	})
	return out, err
}

// InsertQuarterScores skips quarters that already have a row.
func (r *MatchRepository) InsertQuarterScores(_ context.Context, matchID int64, scores []match.QuarterScore) ([]match.QuarterScore, error) {
	var out []match.QuarterScore
	err := r.h.write(func(st *state) error {
		if _, ok := st.matches[matchID]; !ok {
			return crerr.Newf("match %d not found", matchID)
		}
		rows := st.quarters[matchID]
		for _, q := range scores {
			if hasQuarter(rows, q.Quarter) {
				continue
			}
			rows = append(rows, newQuarterRow(st, matchID, q, r.now()))
		}
		sortQuarters(rows)
		st.quarters[matchID] = rows
		out = append([]match.QuarterScore{}, rows...)
		return nil
	})
	return out, err
}

func (r *MatchRepository) ReplaceQuarterScores(_ context.Context, matchID int64, scores []match.QuarterScore) ([]match.QuarterScore, error) {
	var out []match.QuarterScore
	err := r.h.write(func(st *state) error {
		if _, ok := st.matches[matchID]; !ok {
			return crerr.Newf("match %d not found", matchID)
		}
		rows := make([]match.QuarterScore, 0, len(scores))
		for _, q := range scores {
			rows = append(rows, newQuarterRow(st, matchID, q, r.now()))
		}
		sortQuarters(rows)
		st.quarters[matchID] = rows
		out = append([]match.QuarterScore{}, rows...)
		return nil
	})
	return out, err
}

func withRoster(st *state, m match.Match) match.Match {
	m.PlayerIDs = append([]int64{}, st.roster[m.ID]...)
	m.MOMPlayerID = copyID(m.MOMPlayerID)
	return m
}

func newQuarterRow(st *state, matchID int64, q match.QuarterScore, now time.Time) match.QuarterScore {
	q.ID = st.nextID()
	q.MatchID = matchID
	q.CreatedAt = now
	q.UpdatedAt = now
	return q
}

func hasQuarter(rows []match.QuarterScore, quarter int) bool {
	for _, q := range rows {
		if q.Quarter == quarter {
			return true
		}
	}
	return false
}

func sortQuarters(rows []match.QuarterScore) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Quarter < rows[j].Quarter })
}
