package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/player"
)

type playerTableModel struct {
	ID          int64          `db:"id"`
	TeamID      int64          `db:"team_id"`
	Name        string         `db:"name"`
	Number      int            `db:"number"`
	Position    sql.NullString `db:"position"`
	GoalCount   int            `db:"goal_count"`
	AssistCount int            `db:"assist_count"`
	MOMCount    int            `db:"mom_count"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type playerInsertModel struct {
	TeamID      int64          `db:"team_id"`
	Name        string         `db:"name"`
	Number      int            `db:"number"`
	Position    sql.NullString `db:"position"`
	GoalCount   int            `db:"goal_count"`
	AssistCount int            `db:"assist_count"`
	MOMCount    int            `db:"mom_count"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		TeamID:      m.TeamID,
		Name:        m.Name,
		Number:      m.Number,
		Position:    m.Position.String,
		GoalCount:   m.GoalCount,
		AssistCount: m.AssistCount,
		MOMCount:    m.MOMCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

var playerColumns = []string{
	"id", "team_id", "name", "number", "position", "goal_count", "assist_count", "mom_count", "created_at", "updated_at",
}

func playersToDomain(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
