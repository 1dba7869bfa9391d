package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/club-stats/internal/domain/analytics"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/platform/cache"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/usecase"
	"go.opentelemetry.io/otel/metric/noop"
)

type analyticsFixture struct {
	matchFixture
	analytics *usecase.AnalyticsService
}

func newAnalyticsFixture(t *testing.T) analyticsFixture {
	t.Helper()

	f := newMatchFixture(t)
	logger := logging.NewNop()
	service := usecase.NewAnalyticsService(f.store, cache.NewStore(time.Minute), logger)
	f.service = usecase.NewMatchService(
		f.store,
		usecase.NewStatsReconciler(noop.NewMeterProvider().Meter("test"), logger),
		nil,
		service,
		logger,
	)
	return analyticsFixture{matchFixture: f, analytics: service}
}

func (f analyticsFixture) createMatch(t *testing.T, opponent, score string, goals []match.GoalInput) match.Match {
	t.Helper()

	ids := make([]int64, 0, len(f.squad))
	for _, p := range f.squad {
		ids = append(ids, p.ID)
	}
	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     opponent,
		Score:        score,
		PlayerIDs:    ids,
		Goals:        goals,
	})
	if err != nil {
		t.Fatalf("create match vs %s: %v", opponent, err)
	}
	return created
}

func TestAnalyticsService_DashboardMatchesIndividualViews(t *testing.T) {
	f := newAnalyticsFixture(t)
	striker, winger := f.squad[3], f.squad[4]

	f.createMatch(t, "Riverside", "3:1", []match.GoalInput{
		{PlayerID: striker.ID, Quarter: 1},
		{PlayerID: striker.ID, AssistPlayerID: int64Ptr(winger.ID), Quarter: 2},
		{PlayerID: winger.ID, Quarter: 4},
	})
	f.createMatch(t, "Harbour Town", "0:2", nil)
	f.createMatch(t, "Old Boys", "1:1", []match.GoalInput{{PlayerID: winger.ID, Quarter: 3}})

	overview, err := f.analytics.Overview(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalMatches != 3 || overview.Wins != 1 || overview.Draws != 1 || overview.Losses != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}

	goalsWin, err := f.analytics.GoalsWinCorrelation(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("goals win correlation: %v", err)
	}
	concededLoss, err := f.analytics.ConcededLossCorrelation(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("conceded loss correlation: %v", err)
	}
	contributions, err := f.analytics.PlayerContributions(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("player contributions: %v", err)
	}

	dashboard, err := f.analytics.Dashboard(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	want := analytics.Dashboard{
		Overview:                overview,
		GoalsWinCorrelation:     goalsWin,
		ConcededLossCorrelation: concededLoss,
		PlayerContributions:     contributions,
	}
	if diff := cmp.Diff(want, dashboard); diff != "" {
		t.Fatalf("dashboard differs from individual views (-want +got):\n%s", diff)
	}
}

func TestAnalyticsService_MatchMutationInvalidatesCache(t *testing.T) {
	f := newAnalyticsFixture(t)

	created := f.createMatch(t, "Riverside", "2:0", nil)
	first, err := f.analytics.Overview(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if first.TotalMatches != 1 {
		t.Fatalf("unexpected total matches: %d", first.TotalMatches)
	}

	f.createMatch(t, "Harbour Town", "0:1", nil)
	second, err := f.analytics.Overview(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if second.TotalMatches != 2 || second.Losses != 1 {
		t.Fatalf("stale overview after create: %+v", second)
	}

	if err := f.service.Delete(t.Context(), f.team.ID, created.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}
	third, err := f.analytics.Overview(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if third.TotalMatches != 1 || third.Wins != 0 {
		t.Fatalf("stale overview after delete: %+v", third)
	}
}

func TestAnalyticsService_RejectsOtherTeams(t *testing.T) {
	f := newAnalyticsFixture(t)

	if _, err := f.analytics.Dashboard(t.Context(), f.team.ID+100, f.team.ID); !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.analytics.Overview(t.Context(), 0, f.team.ID); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
