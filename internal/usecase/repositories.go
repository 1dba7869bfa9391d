package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/team"
)

// Repositories is a set of repositories bound to one database handle: either
// the shared pool or a single transaction.
type Repositories struct {
	Teams   team.Repository
	Players player.Repository
	Matches match.Repository
	Goals   match.GoalRepository
}

// UnitOfWork hands out repositories. WithinTx commits when fn returns nil and
// rolls back otherwise, including when ctx is cancelled mid-way.
type UnitOfWork interface {
	Repos() Repositories
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

func authorizeTeam(callerTeamID, ownerTeamID int64, action string) error {
	if callerTeamID <= 0 {
		return fmt.Errorf("%w: caller team is required", ErrUnauthorized)
	}
	if callerTeamID != ownerTeamID {
		return fmt.Errorf("%w: not authorized to %s of team %d (your team id: %d)", ErrForbidden, action, ownerTeamID, callerTeamID)
	}
	return nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// requireTeamPlayers checks that every id names a player of teamID and
// returns the players keyed by id.
func requireTeamPlayers(ctx context.Context, repos Repositories, teamID int64, playerIDs []int64) (map[int64]player.Player, error) {
	out := make(map[int64]player.Player, len(playerIDs))
	if len(playerIDs) == 0 {
		return out, nil
	}

	players, err := repos.Players.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players: %w", err)
	}
	for _, p := range players {
		out[p.ID] = p
	}

	for _, id := range playerIDs {
		p, ok := out[id]
		if !ok {
			return nil, fmt.Errorf("%w: player %d not found", ErrInvalidInput, id)
		}
		if p.TeamID != teamID {
			return nil, fmt.Errorf("%w: player %d belongs to team %d, not team %d", ErrInvalidInput, id, p.TeamID, teamID)
		}
	}
	return out, nil
}
