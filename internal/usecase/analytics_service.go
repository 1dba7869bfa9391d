package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/analytics"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/platform/cache"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const dashboardWorkers = 4

// AnalyticsService derives team performance views from matches, rosters and
// player counters. Source rows are cached per team until a mutation of that
// team calls InvalidateTeam.
type AnalyticsService struct {
	uow    UnitOfWork
	cache  *cache.Store
	logger *logging.Logger
}

func NewAnalyticsService(uow UnitOfWork, store *cache.Store, logger *logging.Logger) *AnalyticsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AnalyticsService{
		uow:    uow,
		cache:  store,
		logger: logger,
	}
}

func (s *AnalyticsService) Overview(ctx context.Context, callerTeamID, teamID int64) (analytics.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Overview")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view analytics"); err != nil {
		return analytics.Overview{}, err
	}
	return s.overview(ctx, teamID)
}

func (s *AnalyticsService) GoalsWinCorrelation(ctx context.Context, callerTeamID, teamID int64) (analytics.GoalsWinCorrelation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.GoalsWinCorrelation")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view analytics"); err != nil {
		return analytics.GoalsWinCorrelation{}, err
	}
	return s.goalsWinCorrelation(ctx, teamID)
}

func (s *AnalyticsService) ConcededLossCorrelation(ctx context.Context, callerTeamID, teamID int64) (analytics.ConcededLossCorrelation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ConcededLossCorrelation")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view analytics"); err != nil {
		return analytics.ConcededLossCorrelation{}, err
	}
	return s.concededLossCorrelation(ctx, teamID)
}

func (s *AnalyticsService) PlayerContributions(ctx context.Context, callerTeamID, teamID int64) (analytics.PlayerContributions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PlayerContributions")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view analytics"); err != nil {
		return analytics.PlayerContributions{}, err
	}
	return s.playerContributions(ctx, teamID)
}

// Dashboard computes every view concurrently. Concurrent loads of the same
// source rows collapse into one query through the cache.
func (s *AnalyticsService) Dashboard(ctx context.Context, callerTeamID, teamID int64) (analytics.Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Dashboard")
	defer span.End()

	if err := authorizeTeam(callerTeamID, teamID, "view analytics"); err != nil {
		return analytics.Dashboard{}, err
	}

	var out analytics.Dashboard
	p := pool.New().
		WithMaxGoroutines(dashboardWorkers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	p.Go(func(ctx context.Context) error {
		v, err := s.overview(ctx, teamID)
		out.Overview = v
		return err
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.goalsWinCorrelation(ctx, teamID)
		out.GoalsWinCorrelation = v
		return err
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.concededLossCorrelation(ctx, teamID)
		out.ConcededLossCorrelation = v
		return err
	})
	p.Go(func(ctx context.Context) error {
		v, err := s.playerContributions(ctx, teamID)
		out.PlayerContributions = v
		return err
	})

	if err := p.Wait(); err != nil {
		return analytics.Dashboard{}, err
	}
	return out, nil
}

// InvalidateTeam drops every cached source row of a team.
func (s *AnalyticsService) InvalidateTeam(teamID int64) {
	if s.cache == nil {
		return
	}
	s.cache.DeletePrefix(context.Background(), teamCachePrefix(teamID))
}

func (s *AnalyticsService) overview(ctx context.Context, teamID int64) (analytics.Overview, error) {
	matches, err := s.matches(ctx, teamID)
	if err != nil {
		return analytics.Overview{}, err
	}
	return analytics.ComputeOverview(matches), nil
}

func (s *AnalyticsService) goalsWinCorrelation(ctx context.Context, teamID int64) (analytics.GoalsWinCorrelation, error) {
	matches, err := s.matches(ctx, teamID)
	if err != nil {
		return analytics.GoalsWinCorrelation{}, err
	}
	return analytics.ComputeGoalsWinCorrelation(matches), nil
}

func (s *AnalyticsService) concededLossCorrelation(ctx context.Context, teamID int64) (analytics.ConcededLossCorrelation, error) {
	matches, err := s.matches(ctx, teamID)
	if err != nil {
		return analytics.ConcededLossCorrelation{}, err
	}
	return analytics.ComputeConcededLossCorrelation(matches), nil
}

func (s *AnalyticsService) playerContributions(ctx context.Context, teamID int64) (analytics.PlayerContributions, error) {
	matches, err := s.matches(ctx, teamID)
	if err != nil {
		return analytics.PlayerContributions{}, err
	}
	players, err := s.players(ctx, teamID)
	if err != nil {
		return analytics.PlayerContributions{}, err
	}
	roster, err := s.roster(ctx, teamID)
	if err != nil {
		return analytics.PlayerContributions{}, err
	}
	return analytics.ComputePlayerContributions(players, matches, roster), nil
}

func (s *AnalyticsService) matches(ctx context.Context, teamID int64) ([]match.Match, error) {
	v, err := s.load(ctx, teamCachePrefix(teamID)+"matches", func(ctx context.Context) (any, error) {
		items, err := s.uow.Repos().Matches.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]match.Match), nil
}

func (s *AnalyticsService) players(ctx context.Context, teamID int64) ([]player.Player, error) {
	v, err := s.load(ctx, teamCachePrefix(teamID)+"players", func(ctx context.Context) (any, error) {
		items, err := s.uow.Repos().Players.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]player.Player), nil
}

func (s *AnalyticsService) roster(ctx context.Context, teamID int64) (map[int64][]int64, error) {
	v, err := s.load(ctx, teamCachePrefix(teamID)+"roster", func(ctx context.Context) (any, error) {
		items, err := s.uow.Repos().Matches.ListRosterByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list roster: %w", err)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[int64][]int64), nil
}

func (s *AnalyticsService) load(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}

func teamCachePrefix(teamID int64) string {
	return fmt.Sprintf("analytics:team:%d:", teamID)
}
