package postgres

import (
	"context"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type GoalRepository struct {
	db dbtx
}

func NewGoalRepository(db dbtx) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Insert(ctx context.Context, g match.Goal) (match.Goal, error) {
	query, args, err := qb.InsertModel("goals", goalInsertModel{
		MatchID:        g.MatchID,
		PlayerID:       nullableID(&g.PlayerID),
		AssistPlayerID: nullableID(g.AssistPlayerID),
		Quarter:        g.Quarter,
		ScorerName:     nullableString(g.ScorerName),
		AssistName:     nullableString(g.AssistName),
	}, "RETURNING "+strings.Join(goalColumns, ", "))
	if err != nil {
		return match.Goal{}, translate(err, "build insert goal query")
	}

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Goal{}, translate(err, "insert goal")
	}
	return row.toDomain(), nil
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]match.Goal, error) {
	query, args, err := qb.Select(goalColumns...).From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, translate(err, "build select goals query")
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translate(err, "select goals")
	}

	out := make([]match.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GoalRepository) DeleteByMatch(ctx context.Context, matchID int64) error {
	query, args, err := qb.DeleteFrom("goals").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return translate(err, "build delete goals query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "delete goals")
	}
	return nil
}
