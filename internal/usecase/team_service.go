package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

const minPasswordLength = 4

// PasswordHasher hashes team passwords. Compare returns an error when the
// password does not match.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints access tokens for an authenticated team.
type TokenIssuer interface {
	Issue(ctx context.Context, teamID int64) (AccessToken, error)
}

type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

type CreateTeamInput struct {
	Name        string
	Description string
	Type        string
	Password    string
}

type LoginInput struct {
	Name     string
	Password string
}

type UpdateTeamInput struct {
	CallerTeamID int64
	TeamID       int64
	Name         *string
	Description  *string
	Type         *string
	Password     *string
}

type TeamService struct {
	uow         UnitOfWork
	hasher      PasswordHasher
	tokens      TokenIssuer
	invalidator StatsInvalidator
	logger      *logging.Logger
}

func NewTeamService(
	uow UnitOfWork,
	hasher PasswordHasher,
	tokens TokenIssuer,
	invalidator StatsInvalidator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}

	return &TeamService{
		uow:         uow,
		hasher:      hasher,
		tokens:      tokens,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return team.Team{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	repos := s.uow.Repos()
	if _, exists, err := repos.Teams.GetByName(ctx, name); err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	} else if exists {
		return team.Team{}, fmt.Errorf("%w: team name %q is already registered", ErrConflict, name)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return team.Team{}, fmt.Errorf("hash password: %w", err)
	}

	t := team.Team{
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Type:         strings.TrimSpace(input.Type),
		PasswordHash: hash,
	}
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := repos.Teams.Create(ctx, t)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.ID)
	return created, nil
}

// Login checks a team's credentials and issues an access token. Unknown
// names and wrong passwords fail the same way.
func (s *TeamService) Login(ctx context.Context, input LoginInput) (AccessToken, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Login")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" || input.Password == "" {
		return AccessToken{}, fmt.Errorf("%w: name and password are required", ErrInvalidInput)
	}

	t, exists, err := s.uow.Repos().Teams.GetByName(ctx, name)
	if err != nil {
		return AccessToken{}, fmt.Errorf("get team by name: %w", err)
	}
	if !exists {
		return AccessToken{}, fmt.Errorf("%w: incorrect team name or password", ErrUnauthorized)
	}
	if err := s.hasher.Compare(t.PasswordHash, input.Password); err != nil {
		s.logger.DebugContext(ctx, "team login rejected", "team_id", t.ID)
		return AccessToken{}, fmt.Errorf("%w: incorrect team name or password", ErrUnauthorized)
	}

	token, err := s.tokens.Issue(ctx, t.ID)
	if err != nil {
		return AccessToken{}, fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.uow.Repos().Teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return t, nil
}

func (s *TeamService) Update(ctx context.Context, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if err := authorizeTeam(input.CallerTeamID, input.TeamID, "update"); err != nil {
		return team.Team{}, err
	}

	patch := team.Patch{
		Description: input.Description,
		Type:        input.Type,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
		}
		patch.Name = &name
	}
	if input.Password != nil {
		if len(*input.Password) < minPasswordLength {
			return team.Team{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
		}
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return team.Team{}, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}
	if patch.Empty() {
		return team.Team{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var updated team.Team
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		current, exists, err := repos.Teams.GetByID(ctx, input.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%d", ErrNotFound, input.TeamID)
		}

		if patch.Name != nil && *patch.Name != current.Name {
			other, taken, err := repos.Teams.GetByName(ctx, *patch.Name)
			if err != nil {
				return fmt.Errorf("get team by name: %w", err)
			}
			if taken && other.ID != current.ID {
				return fmt.Errorf("%w: team name %q is already registered", ErrConflict, *patch.Name)
			}
		}

		updated, err = repos.Teams.Update(ctx, patch.Apply(current))
		if err != nil {
			return fmt.Errorf("update team: %w", err)
		}
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	return updated, nil
}

// Delete removes a team with all of its matches and players.
func (s *TeamService) Delete(ctx context.Context, callerTeamID, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "delete"); err != nil {
		return err
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		_, exists, err := repos.Teams.GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
		}

		matches, err := repos.Matches.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		for _, m := range matches {
			if err := repos.Goals.DeleteByMatch(ctx, m.ID); err != nil {
				return fmt.Errorf("delete goals match=%d: %w", m.ID, err)
			}
			if err := repos.Matches.Delete(ctx, m.ID); err != nil {
				return fmt.Errorf("delete match=%d: %w", m.ID, err)
			}
		}
		if err := repos.Players.DeleteByTeam(ctx, teamID); err != nil {
			return fmt.Errorf("delete players: %w", err)
		}
		if err := repos.Teams.Delete(ctx, teamID); err != nil {
			return fmt.Errorf("delete team: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.InvalidateTeam(teamID)
	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)
	return nil
}
