package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

type CreatePlayerInput struct {
	CallerTeamID int64
	TeamID       int64
	Name         string
	Number       int
	Position     string
}

type UpdatePlayerInput struct {
	CallerTeamID int64
	PlayerID     int64
	Patch        player.Patch
}

type UpdatePlayerStatsInput struct {
	CallerTeamID int64
	PlayerID     int64
	Stats        player.StatsPatch
}

type PlayerService struct {
	uow         UnitOfWork
	invalidator StatsInvalidator
	logger      *logging.Logger
}

func NewPlayerService(uow UnitOfWork, invalidator StatsInvalidator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}

	return &PlayerService{
		uow:         uow,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if err := authorizeTeam(input.CallerTeamID, input.TeamID, "create players"); err != nil {
		return player.Player{}, err
	}

	p := player.Player{
		TeamID:   input.TeamID,
		Name:     strings.TrimSpace(input.Name),
		Number:   input.Number,
		Position: strings.TrimSpace(input.Position),
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	repos := s.uow.Repos()
	_, exists, err := repos.Teams.GetByID(ctx, input.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team=%d", ErrNotFound, input.TeamID)
	}

	created, err := repos.Players.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.invalidator.InvalidateTeam(created.TeamID)
	return created, nil
}

func (s *PlayerService) Get(ctx context.Context, callerTeamID, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	return s.loadOwnedPlayer(ctx, s.uow.Repos(), callerTeamID, playerID, "view players")
}

func (s *PlayerService) ListByTeam(ctx context.Context, callerTeamID, teamID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view players"); err != nil {
		return nil, err
	}

	players, err := s.uow.Repos().Players.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	patch := input.Patch
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Position != nil {
		position := strings.TrimSpace(*patch.Position)
		patch.Position = &position
	}

	var updated player.Player
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		current, err := s.loadOwnedPlayer(ctx, repos, input.CallerTeamID, input.PlayerID, "update players")
		if err != nil {
			return err
		}

		next := patch.Apply(current)
		if err := next.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		updated, err = repos.Players.Update(ctx, next)
		if err != nil {
			return fmt.Errorf("update player: %w", err)
		}
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	s.invalidator.InvalidateTeam(updated.TeamID)
	return updated, nil
}

// UpdateStats overrides derived counters by hand. The ledger is not touched,
// so later match deletes reverse from the ledger and may clamp.
func (s *PlayerService) UpdateStats(ctx context.Context, input UpdatePlayerStatsInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdateStats")
	defer span.End()

	if input.Stats.Empty() {
		return player.Player{}, fmt.Errorf("%w: at least one of goal_count, assist_count, mom_count is required", ErrInvalidInput)
	}

	var updated player.Player
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := s.loadOwnedPlayer(ctx, repos, input.CallerTeamID, input.PlayerID, "update player stats"); err != nil {
			return err
		}

		locked, err := repos.Players.LockByIDs(ctx, []int64{input.PlayerID})
		if err != nil {
			return fmt.Errorf("lock player: %w", err)
		}
		if len(locked) == 0 {
			return fmt.Errorf("%w: player=%d", ErrNotFound, input.PlayerID)
		}

		next := input.Stats.Apply(locked[0])
		if err := next.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := repos.Players.UpdateCounters(ctx, next); err != nil {
			return fmt.Errorf("update counters: %w", err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	s.invalidator.InvalidateTeam(updated.TeamID)
	s.logger.InfoContext(ctx, "player stats overridden",
		"player_id", updated.ID,
		"goal_count", updated.GoalCount,
		"assist_count", updated.AssistCount,
		"mom_count", updated.MOMCount,
	)
	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, callerTeamID, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	var teamID int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		p, err := s.loadOwnedPlayer(ctx, repos, callerTeamID, playerID, "delete players")
		if err != nil {
			return err
		}
		teamID = p.TeamID

		if err := repos.Players.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("delete player: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.InvalidateTeam(teamID)
	return nil
}

func (s *PlayerService) loadOwnedPlayer(ctx context.Context, repos Repositories, callerTeamID, playerID int64, action string) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := repos.Players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	if err := authorizeTeam(callerTeamID, p.TeamID, action); err != nil {
		return player.Player{}, err
	}
	return p, nil
}
