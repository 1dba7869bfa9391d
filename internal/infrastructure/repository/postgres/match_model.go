package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/match"
)

type matchTableModel struct {
	ID          int64         `db:"id"`
	TeamID      int64         `db:"team_id"`
	Date        time.Time     `db:"date"`
	Opponent    string        `db:"opponent"`
	Score       string        `db:"score"`
	MOMPlayerID sql.NullInt64 `db:"mom_player_id"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	TeamID   int64     `db:"team_id"`
	Date     time.Time `db:"date"`
	Opponent string    `db:"opponent"`
	Score    string    `db:"score"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:          m.ID,
		TeamID:      m.TeamID,
		Date:        m.Date,
		Opponent:    m.Opponent,
		Score:       m.Score,
		MOMPlayerID: idFromNull(m.MOMPlayerID),
		PlayerIDs:   []int64{},
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

var matchColumns = []string{
	"id", "team_id", "date", "opponent", "score", "mom_player_id", "created_at", "updated_at",
}

type rosterRowModel struct {
	MatchID  int64 `db:"match_id"`
	PlayerID int64 `db:"player_id"`
}

type goalTableModel struct {
	ID             int64          `db:"id"`
	MatchID        int64          `db:"match_id"`
	PlayerID       sql.NullInt64  `db:"player_id"`
	AssistPlayerID sql.NullInt64  `db:"assist_player_id"`
	Quarter        int            `db:"quarter"`
	ScorerName     sql.NullString `db:"scorer_name"`
	AssistName     sql.NullString `db:"assist_name"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type goalInsertModel struct {
	MatchID        int64          `db:"match_id"`
	PlayerID       sql.NullInt64  `db:"player_id"`
	AssistPlayerID sql.NullInt64  `db:"assist_player_id"`
	Quarter        int            `db:"quarter"`
	ScorerName     sql.NullString `db:"scorer_name"`
	AssistName     sql.NullString `db:"assist_name"`
}

// toDomain maps a scorer nulled by a player delete to PlayerID 0.
func (m goalTableModel) toDomain() match.Goal {
	return match.Goal{
		ID:             m.ID,
		MatchID:        m.MatchID,
		PlayerID:       m.PlayerID.Int64,
		AssistPlayerID: idFromNull(m.AssistPlayerID),
		Quarter:        m.Quarter,
		ScorerName:     m.ScorerName.String,
		AssistName:     m.AssistName.String,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

var goalColumns = []string{
	"id", "match_id", "player_id", "assist_player_id", "quarter", "scorer_name", "assist_name", "created_at", "updated_at",
}

type quarterScoreTableModel struct {
	ID            int64     `db:"id"`
	MatchID       int64     `db:"match_id"`
	Quarter       int       `db:"quarter"`
	OurScore      int       `db:"our_score"`
	OpponentScore int       `db:"opponent_score"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m quarterScoreTableModel) toDomain() match.QuarterScore {
	return match.QuarterScore{
		ID:            m.ID,
		MatchID:       m.MatchID,
		Quarter:       m.Quarter,
		OurScore:      m.OurScore,
		OpponentScore: m.OpponentScore,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

var quarterScoreColumns = []string{
	"id", "match_id", "quarter", "our_score", "opponent_score", "created_at", "updated_at",
}
