package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db dbtx
}

func NewMatchRepository(db dbtx) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchInsertModel{
		TeamID:   m.TeamID,
		Date:     m.Date,
		Opponent: m.Opponent,
		Score:    m.Score,
	}, "RETURNING "+strings.Join(matchColumns, ", "))
	if err != nil {
		return match.Match{}, translate(err, "build insert match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, translate(err, "insert match")
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	return r.getByID(ctx, matchID, false)
}

// LockByID takes the match row lock so lifecycle writes on one match run one
// at a time.
func (r *MatchRepository) LockByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	return r.getByID(ctx, matchID, true)
}

func (r *MatchRepository) getByID(ctx context.Context, matchID int64, lock bool) (match.Match, bool, error) {
	builder := qb.Select(matchColumns...).From("matches").Where(qb.Eq("id", matchID)).Limit(1)
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return match.Match{}, false, translate(err, "build select match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, translate(err, "select match")
	}

	out := row.toDomain()
	roster, err := r.listRoster(ctx, qb.Eq("match_id", matchID))
	if err != nil {
		return match.Match{}, false, err
	}
	out.PlayerIDs = append(out.PlayerIDs, roster[matchID]...)
	return out, true, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, translate(err, "build select matches by team query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translate(err, "select matches by team")
	}

	roster, err := r.ListRosterByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		m := row.toDomain()
		m.PlayerIDs = append(m.PlayerIDs, roster[m.ID]...)
		out = append(out, m)
	}
	return out, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.Update("matches").
		Set("date", m.Date).
		Set("opponent", m.Opponent).
		Set("score", m.Score).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", m.ID)).
		Suffix("RETURNING " + strings.Join(matchColumns, ", ")).
		ToSQL()
	if err != nil {
		return match.Match{}, translate(err, "build update match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, translate(err, "update match")
	}
	out := row.toDomain()
	out.PlayerIDs = append(out.PlayerIDs, m.PlayerIDs...)
	return out, nil
}

func (r *MatchRepository) SetPlayerOfTheMatch(ctx context.Context, matchID int64, playerID *int64) error {
	query, args, err := qb.Update("matches").
		Set("mom_player_id", nullableID(playerID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return translate(err, "build update match mom query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(err, "update match mom")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return translate(err, "rows affected update match mom")
	}
	if affected == 0 {
		return crerr.Newf("update match mom: match %d not found", matchID)
	}
	return nil
}

func (r *MatchRepository) ReplaceRoster(ctx context.Context, matchID int64, playerIDs []int64) error {
	query, args, err := qb.DeleteFrom("match_player").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return translate(err, "build delete roster query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "delete roster")
	}
	if len(playerIDs) == 0 {
		return nil
	}

	insert := qb.InsertInto("match_player").Columns("match_id", "player_id")
	for _, id := range playerIDs {
		insert = insert.Values(matchID, id)
	}
	query, args, err = insert.Suffix("ON CONFLICT (match_id, player_id) DO NOTHING").ToSQL()
	if err != nil {
		return translate(err, "build insert roster query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "insert roster")
	}
	return nil
}

func (r *MatchRepository) ListRosterByTeam(ctx context.Context, teamID int64) (map[int64][]int64, error) {
	return r.listRoster(ctx, qb.Expr("match_id IN (SELECT id FROM matches WHERE team_id = ?)", teamID))
}

func (r *MatchRepository) listRoster(ctx context.Context, cond qb.Condition) (map[int64][]int64, error) {
	query, args, err := qb.Select("match_id", "player_id").From("match_player").
		Where(cond).
		OrderBy("match_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, translate(err, "build select roster query")
	}

	var rows []rosterRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translate(err, "select roster")
	}

	out := make(map[int64][]int64)
	for _, row := range rows {
		out[row.MatchID] = append(out[row.MatchID], row.PlayerID)
	}
	return out, nil
}

// Delete relies on ON DELETE CASCADE for roster, goals and quarter scores.
func (r *MatchRepository) Delete(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return translate(err, "build delete match query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "delete match")
	}
	return nil
}

func (r *MatchRepository) ListQuarterScores(ctx context.Context, matchID int64) ([]match.QuarterScore, error) {
	query, args, err := qb.Select(quarterScoreColumns...).From("quarter_scores").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("quarter").
		ToSQL()
	if err != nil {
		return nil, translate(err, "build select quarter scores query")
	}

	var rows []quarterScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translate(err, "select quarter scores")
	}

	out := make([]match.QuarterScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// InsertQuarterScores leaves existing quarters untouched, so two readers
// synthesizing the same match cannot fail on the unique key.
func (r *MatchRepository) InsertQuarterScores(ctx context.Context, matchID int64, scores []match.QuarterScore) ([]match.QuarterScore, error) {
	if err := r.insertQuarterScores(ctx, matchID, scores, "ON CONFLICT (match_id, quarter) DO NOTHING"); err != nil {
		return nil, err
	}
	return r.ListQuarterScores(ctx, matchID)
}

func (r *MatchRepository) ReplaceQuarterScores(ctx context.Context, matchID int64, scores []match.QuarterScore) ([]match.QuarterScore, error) {
	query, args, err := qb.DeleteFrom("quarter_scores").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return nil, translate(err, "build delete quarter scores query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, translate(err, "delete quarter scores")
	}
	if err := r.insertQuarterScores(ctx, matchID, scores, ""); err != nil {
		return nil, err
	}
	return r.ListQuarterScores(ctx, matchID)
}

func (r *MatchRepository) insertQuarterScores(ctx context.Context, matchID int64, scores []match.QuarterScore, suffix string) error {
	if len(scores) == 0 {
		return nil
	}

	insert := qb.InsertInto("quarter_scores").Columns("match_id", "quarter", "our_score", "opponent_score")
	for _, q := range scores {
		insert = insert.Values(matchID, q.Quarter, q.OurScore, q.OpponentScore)
	}
	query, args, err := insert.Suffix(suffix).ToSQL()
	if err != nil {
		return translate(err, "build insert quarter scores query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "insert quarter scores")
	}
	return nil
}
