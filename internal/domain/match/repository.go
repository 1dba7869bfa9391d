package match

import "context"

// Repository persists matches, their roster and quarter scores.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	// LockByID reads a match and holds it until the transaction ends.
	LockByID(ctx context.Context, matchID int64) (Match, bool, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Match, error)
	Update(ctx context.Context, m Match) (Match, error)
	SetPlayerOfTheMatch(ctx context.Context, matchID int64, playerID *int64) error
	ReplaceRoster(ctx context.Context, matchID int64, playerIDs []int64) error
	// ListRosterByTeam maps match id to roster player ids for every match of a team.
	ListRosterByTeam(ctx context.Context, teamID int64) (map[int64][]int64, error)
	Delete(ctx context.Context, matchID int64) error

	ListQuarterScores(ctx context.Context, matchID int64) ([]QuarterScore, error)
	InsertQuarterScores(ctx context.Context, matchID int64, scores []QuarterScore) ([]QuarterScore, error)
	ReplaceQuarterScores(ctx context.Context, matchID int64, scores []QuarterScore) ([]QuarterScore, error)
}

// GoalRepository is the goal ledger store. Goals are append-only per match.
type GoalRepository interface {
	Insert(ctx context.Context, g Goal) (Goal, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
	DeleteByMatch(ctx context.Context, matchID int64) error
}
