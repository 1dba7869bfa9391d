package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Player) (Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
	// LockByIDs returns the rows locked for update, ordered by id.
	LockByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	Update(ctx context.Context, p Player) (Player, error)
	UpdateCounters(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID int64) error
	DeleteByTeam(ctx context.Context, teamID int64) error
}
