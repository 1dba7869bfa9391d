package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// StatsInvalidator drops anything derived from a team's matches or players.
type StatsInvalidator interface {
	InvalidateTeam(teamID int64)
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateTeam(int64) {}

type CreateMatchInput struct {
	CallerTeamID  int64
	TeamID        int64
	Date          time.Time
	Opponent      string
	Score         string
	PlayerIDs     []int64
	QuarterScores []match.QuarterScore
	Goals         []match.GoalInput
}

type AddGoalInput struct {
	CallerTeamID int64
	MatchID      int64
	Goal         match.GoalInput
}

type UpdateMatchInput struct {
	CallerTeamID int64
	MatchID      int64
	Patch        match.Patch
}

// MatchDetail is a match with its ledger, roster players and quarter scores.
type MatchDetail struct {
	Match         match.Match
	Goals         []match.Goal
	Players       []player.Player
	QuarterScores []match.QuarterScore
}

// MatchService owns the match lifecycle. Every mutation runs in one
// transaction together with its ledger and counter updates.
type MatchService struct {
	uow         UnitOfWork
	ledger      *GoalLedger
	reconciler  *StatsReconciler
	synthesizer *QuarterSynthesizer
	invalidator StatsInvalidator
	logger      *logging.Logger
}

func NewMatchService(
	uow UnitOfWork,
	reconciler *StatsReconciler,
	synthesizer *QuarterSynthesizer,
	invalidator StatsInvalidator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if reconciler == nil {
		reconciler = NewStatsReconciler(nil, logger)
	}
	if synthesizer == nil {
		synthesizer = NewQuarterSynthesizer(logger)
	}
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}

	return &MatchService{
		uow:         uow,
		ledger:      NewGoalLedger(),
		reconciler:  reconciler,
		synthesizer: synthesizer,
		invalidator: invalidator,
		logger:      logger,
	}
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if err := authorizeTeam(input.CallerTeamID, input.TeamID, "create matches"); err != nil {
		return match.Match{}, err
	}

	m := match.Match{
		TeamID:    input.TeamID,
		Date:      input.Date,
		Opponent:  strings.TrimSpace(input.Opponent),
		Score:     strings.TrimSpace(input.Score),
		PlayerIDs: dedupeIDs(input.PlayerIDs),
	}
	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateQuarterScores(input.QuarterScores); err != nil {
		return match.Match{}, err
	}
	for _, g := range input.Goals {
		if err := g.Validate(); err != nil {
			return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	var created match.Match
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		_, exists, err := repos.Teams.GetByID(ctx, input.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%d", ErrNotFound, input.TeamID)
		}
		if _, err := requireTeamPlayers(ctx, repos, input.TeamID, m.PlayerIDs); err != nil {
			return err
		}
		for _, g := range input.Goals {
			if _, _, err := s.ledger.Check(ctx, repos, input.TeamID, g); err != nil {
				return err
			}
		}

		created, err = repos.Matches.Create(ctx, m)
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		if len(m.PlayerIDs) > 0 {
			if err := repos.Matches.ReplaceRoster(ctx, created.ID, m.PlayerIDs); err != nil {
				return fmt.Errorf("insert roster: %w", err)
			}
		}
		created.PlayerIDs = m.PlayerIDs
		if len(input.QuarterScores) > 0 {
			if _, err := repos.Matches.InsertQuarterScores(ctx, created.ID, input.QuarterScores); err != nil {
				return fmt.Errorf("insert quarter scores: %w", err)
			}
		}

		for _, in := range input.Goals {
			goal, err := s.ledger.Record(ctx, repos, created, in)
			if err != nil {
				return err
			}
			created, err = s.reconciler.Reconcile(ctx, repos, created, goal)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.invalidator.InvalidateTeam(created.TeamID)
	s.logger.InfoContext(ctx, "match created",
		"match_id", created.ID,
		"team_id", created.TeamID,
		"goals", len(input.Goals),
	)
	return created, nil
}

func (s *MatchService) AddGoal(ctx context.Context, input AddGoalInput) (match.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddGoal", matchIDKey.Int64(input.MatchID))
	defer span.End()

	if err := input.Goal.Validate(); err != nil {
		return match.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		goal   match.Goal
		teamID int64
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		m, err := s.loadOwnedMatch(ctx, repos, input.CallerTeamID, input.MatchID, "add goals to matches", true)
		if err != nil {
			return err
		}
		teamID = m.TeamID

		goal, err = s.ledger.Record(ctx, repos, m, input.Goal)
		if err != nil {
			return err
		}
		_, err = s.reconciler.Reconcile(ctx, repos, m, goal)
		return err
	})
	if err != nil {
		return match.Goal{}, err
	}

	s.invalidator.InvalidateTeam(teamID)
	return goal, nil
}

// Detail assembles the full view of a match. Quarter scores missing from
// storage are synthesized and saved in the same transaction.
func (s *MatchService) Detail(ctx context.Context, callerTeamID, matchID int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Detail", matchIDKey.Int64(matchID))
	defer span.End()

	var detail MatchDetail
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		m, err := s.loadOwnedMatch(ctx, repos, callerTeamID, matchID, "view matches", false)
		if err != nil {
			return err
		}

		goals, err := s.ledger.List(ctx, repos, m.ID)
		if err != nil {
			return err
		}
		visible := make([]match.Goal, 0, len(goals))
		for _, g := range goals {
			if g.PlayerID == 0 {
				continue
			}
			visible = append(visible, g)
		}

		scores, err := s.synthesizer.Ensure(ctx, repos, m, visible)
		if err != nil {
			return err
		}

		players := []player.Player{}
		if len(m.PlayerIDs) > 0 {
			players, err = repos.Players.GetByIDs(ctx, m.PlayerIDs)
			if err != nil {
				return fmt.Errorf("get roster players: %w", err)
			}
		}

		detail = MatchDetail{
			Match:         m,
			Goals:         visible,
			Players:       players,
			QuarterScores: scores,
		}
		return nil
	})
	if err != nil {
		return MatchDetail{}, err
	}

	return detail, nil
}

// Update edits match fields, roster and stored quarter scores. Goals,
// counters and the Player of the Match are left alone.
func (s *MatchService) Update(ctx context.Context, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update", matchIDKey.Int64(input.MatchID))
	defer span.End()

	patch := input.Patch
	if patch.Opponent != nil {
		opponent := strings.TrimSpace(*patch.Opponent)
		if opponent == "" {
			return match.Match{}, fmt.Errorf("%w: match opponent is required", ErrInvalidInput)
		}
		patch.Opponent = &opponent
	}
	if patch.Score != nil {
		score := strings.TrimSpace(*patch.Score)
		patch.Score = &score
	}
	if patch.ReplaceRoster {
		patch.PlayerIDs = dedupeIDs(patch.PlayerIDs)
	}
	if patch.ReplaceScores {
		if err := validateQuarterScores(patch.QuarterScores); err != nil {
			return match.Match{}, err
		}
	}

	var updated match.Match
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		current, err := s.loadOwnedMatch(ctx, repos, input.CallerTeamID, input.MatchID, "update matches", true)
		if err != nil {
			return err
		}
		if patch.ReplaceRoster {
			if _, err := requireTeamPlayers(ctx, repos, current.TeamID, patch.PlayerIDs); err != nil {
				return err
			}
		}

		next := patch.Apply(current)
		if err := next.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		updated, err = repos.Matches.Update(ctx, next)
		if err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		if patch.ReplaceRoster {
			if err := repos.Matches.ReplaceRoster(ctx, updated.ID, next.PlayerIDs); err != nil {
				return fmt.Errorf("replace roster: %w", err)
			}
		}
		updated.PlayerIDs = next.PlayerIDs
		if patch.ReplaceScores {
			if _, err := repos.Matches.ReplaceQuarterScores(ctx, updated.ID, patch.QuarterScores); err != nil {
				return fmt.Errorf("replace quarter scores: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.invalidator.InvalidateTeam(updated.TeamID)
	return updated, nil
}

// Delete reverses the match's statistical effects and removes it together
// with its ledger, roster and quarter scores.
func (s *MatchService) Delete(ctx context.Context, callerTeamID, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete", matchIDKey.Int64(matchID))
	defer span.End()

	var teamID int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		m, err := s.loadOwnedMatch(ctx, repos, callerTeamID, matchID, "delete matches", true)
		if err != nil {
			return err
		}
		teamID = m.TeamID

		if err := s.reconciler.Reverse(ctx, repos, m); err != nil {
			return err
		}
		if err := s.ledger.RemoveAll(ctx, repos, m.ID); err != nil {
			return err
		}
		if err := repos.Matches.Delete(ctx, m.ID); err != nil {
			return fmt.Errorf("delete match: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidator.InvalidateTeam(teamID)
	s.logger.InfoContext(ctx, "match deleted", "match_id", matchID, "team_id", teamID)
	return nil
}

func (s *MatchService) ListByTeam(ctx context.Context, callerTeamID, teamID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTeam")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view matches", false); err != nil {
		return nil, err
	}

	matches, err := s.uow.Repos().Matches.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// loadOwnedMatch reads a match the caller's team owns. Writers pass lock so
// concurrent lifecycle operations on one match serialize on its row.
func (s *MatchService) loadOwnedMatch(ctx context.Context, repos Repositories, callerTeamID, matchID int64, action string, lock bool) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	get := repos.Matches.GetByID
	if lock {
		get = repos.Matches.LockByID
	}
	m, exists, err := get(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	if err := authorizeTeam(callerTeamID, m.TeamID, action); err != nil {
		return match.Match{}, err
	}
	return m, nil
}

func validateQuarterScores(scores []match.QuarterScore) error {
	seen := make(map[int]struct{}, len(scores))
	for _, q := range scores {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, ok := seen[q.Quarter]; ok {
			return fmt.Errorf("%w: quarter %d given more than once", ErrInvalidInput, q.Quarter)
		}
		seen[q.Quarter] = struct{}{}
	}
	return nil
}
