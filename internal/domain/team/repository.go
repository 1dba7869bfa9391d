package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	Update(ctx context.Context, t Team) (Team, error)
	Delete(ctx context.Context, teamID int64) error
}
