package postgres

import (
	"context"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db dbtx
}

func NewPlayerRepository(db dbtx) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		TeamID:      p.TeamID,
		Name:        p.Name,
		Number:      p.Number,
		Position:    nullableString(p.Position),
		GoalCount:   p.GoalCount,
		AssistCount: p.AssistCount,
		MOMCount:    p.MOMCount,
	}, "RETURNING "+strings.Join(playerColumns, ", "))
	if err != nil {
		return player.Player{}, translate(err, "build insert player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, translate(err, "insert player")
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").Where(qb.Eq("id", playerID)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, translate(err, "build select player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, translate(err, "select player")
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	return r.selectByIDs(ctx, playerIDs, false)
}

// LockByIDs takes row locks in id order so concurrent reconciles touching
// overlapping players cannot deadlock.
func (r *PlayerRepository) LockByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	return r.selectByIDs(ctx, playerIDs, true)
}

func (r *PlayerRepository) selectByIDs(ctx context.Context, playerIDs []int64, lock bool) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	builder := qb.Select(playerColumns...).From("players").Where(qb.InIDs("id", playerIDs)).OrderBy("id")
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, translate(err, "build select players by ids query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translate(err, "select players by ids")
	}
	return playersToDomain(rows), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	query, args, err := qb.Select(playerColumns...).From("players").Where(qb.Eq("team_id", teamID)).OrderBy("id").ToSQL()
	if err != nil {
		return nil, translate(err, "build select players by team query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translate(err, "select players by team")
	}
	return playersToDomain(rows), nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("number", p.Number).
		Set("position", nullableString(p.Position)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		Suffix("RETURNING " + strings.Join(playerColumns, ", ")).
		ToSQL()
	if err != nil {
		return player.Player{}, translate(err, "build update player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, translate(err, "update player")
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) UpdateCounters(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("goal_count", p.GoalCount).
		Set("assist_count", p.AssistCount).
		Set("mom_count", p.MOMCount).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return translate(err, "build update player counters query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "update player counters")
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	return r.exec(ctx, "delete player", qb.DeleteFrom("players").Where(qb.Eq("id", playerID)))
}

func (r *PlayerRepository) DeleteByTeam(ctx context.Context, teamID int64) error {
	return r.exec(ctx, "delete players by team", qb.DeleteFrom("players").Where(qb.Eq("team_id", teamID)))
}

func (r *PlayerRepository) exec(ctx context.Context, op string, b *qb.DeleteBuilder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return translate(err, "build "+op+" query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, op)
	}
	return nil
}
