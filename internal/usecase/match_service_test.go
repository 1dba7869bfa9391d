package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"github.com/riskibarqy/club-stats/internal/usecase"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type matchFixture struct {
	store   *memory.Store
	service *usecase.MatchService
	players *usecase.PlayerService
	team    team.Team
	squad   []player.Player
	reader  *sdkmetric.ManualReader
}

func newMatchFixture(t *testing.T) matchFixture {
	t.Helper()

	store := memory.NewStore()
	tm, squad, err := memory.SeedDemo(t.Context(), store, "hash")
	if err != nil {
		t.Fatalf("seed demo: %v", err)
	}

	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")
	logger := logging.NewNop()

	return matchFixture{
		store:   store,
		service: usecase.NewMatchService(store, usecase.NewStatsReconciler(meter, logger), nil, nil, logger),
		players: usecase.NewPlayerService(store, nil, logger),
		team:    tm,
		squad:   squad,
		reader:  reader,
	}
}

func (f matchFixture) player(t *testing.T, id int64) player.Player {
	t.Helper()

	p, ok, err := f.store.Repos().Players.GetByID(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("get player %d: ok=%v err=%v", id, ok, err)
	}
	return p
}

func (f matchFixture) clampCount(t *testing.T) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := f.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "stats.counter.clamped" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected metric data type %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func int64Ptr(v int64) *int64 {
	return &v
}

var matchDate = time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)

func TestMatchService_CreateThenDeleteRestoresCounters(t *testing.T) {
	f := newMatchFixture(t)
	a, b := f.squad[0], f.squad[1]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Riverside",
		Score:        "2:1",
		PlayerIDs:    []int64{a.ID, b.ID},
		Goals: []match.GoalInput{
			{PlayerID: a.ID, Quarter: 1},
			{PlayerID: a.ID, AssistPlayerID: int64Ptr(b.ID), Quarter: 2},
		},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.MOMPlayerID == nil || *created.MOMPlayerID != a.ID {
		t.Fatalf("unexpected player of the match: %v", created.MOMPlayerID)
	}
	if diff := cmp.Diff([]int64{a.ID, b.ID}, created.PlayerIDs); diff != "" {
		t.Fatalf("unexpected roster (-want +got):\n%s", diff)
	}

	gotA, gotB := f.player(t, a.ID), f.player(t, b.ID)
	if gotA.GoalCount != 2 || gotA.MOMCount != 1 || gotA.AssistCount != 0 {
		t.Fatalf("unexpected scorer counters: %+v", gotA)
	}
	if gotB.AssistCount != 1 || gotB.GoalCount != 0 || gotB.MOMCount != 0 {
		t.Fatalf("unexpected assist counters: %+v", gotB)
	}

	if err := f.service.Delete(t.Context(), f.team.ID, created.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}

	gotA, gotB = f.player(t, a.ID), f.player(t, b.ID)
	if gotA.GoalCount != 0 || gotA.MOMCount != 0 {
		t.Fatalf("scorer counters not restored: %+v", gotA)
	}
	if gotB.AssistCount != 0 {
		t.Fatalf("assist counters not restored: %+v", gotB)
	}
	if _, err := f.service.Detail(t.Context(), f.team.ID, created.ID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	goals, err := f.store.Repos().Goals.ListByMatch(t.Context(), created.ID)
	if err != nil || len(goals) != 0 {
		t.Fatalf("expected ledger removed, got %d goals err=%v", len(goals), err)
	}
	if got := f.clampCount(t); got != 0 {
		t.Fatalf("unexpected clamps: %d", got)
	}
}

func TestMatchService_DeleteAfterManualOverrideClamps(t *testing.T) {
	f := newMatchFixture(t)
	a := f.squad[0]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Riverside",
		Score:        "2:0",
		PlayerIDs:    []int64{a.ID},
		Goals: []match.GoalInput{
			{PlayerID: a.ID, Quarter: 1},
			{PlayerID: a.ID, Quarter: 3},
		},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	zero := 0
	if _, err := f.players.UpdateStats(t.Context(), usecase.UpdatePlayerStatsInput{
		CallerTeamID: f.team.ID,
		PlayerID:     a.ID,
		Stats:        player.StatsPatch{GoalCount: &zero, MOMCount: &zero},
	}); err != nil {
		t.Fatalf("override stats: %v", err)
	}

	if err := f.service.Delete(t.Context(), f.team.ID, created.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}

	got := f.player(t, a.ID)
	if got.GoalCount != 0 || got.MOMCount != 0 {
		t.Fatalf("expected counters clamped at zero, got %+v", got)
	}
	if clamps := f.clampCount(t); clamps != 2 {
		t.Fatalf("expected 2 clamps (goal_count, mom_count), got %d", clamps)
	}
}

func TestMatchService_RepeatedAddGoalKeepsOneManOfTheMatch(t *testing.T) {
	f := newMatchFixture(t)
	a, b, c := f.squad[0], f.squad[1], f.squad[2]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Hillside",
		Score:        "6:2",
		PlayerIDs:    []int64{a.ID, b.ID, c.ID},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	goals := []match.GoalInput{
		{PlayerID: a.ID, Quarter: 1},
		{PlayerID: b.ID, AssistPlayerID: int64Ptr(c.ID), Quarter: 1},
		{PlayerID: b.ID, Quarter: 2},
		{PlayerID: c.ID, AssistPlayerID: int64Ptr(a.ID), Quarter: 3},
		{PlayerID: c.ID, Quarter: 4},
		{PlayerID: a.ID, AssistPlayerID: int64Ptr(b.ID), Quarter: 4},
	}
	for i, g := range goals {
		if _, err := f.service.AddGoal(t.Context(), usecase.AddGoalInput{CallerTeamID: f.team.ID, MatchID: created.ID, Goal: g}); err != nil {
			t.Fatalf("add goal %d: %v", i, err)
		}

		totalMOM := 0
		for _, p := range f.squad {
			totalMOM += f.player(t, p.ID).MOMCount
		}
		if totalMOM != 1 {
			t.Fatalf("after goal %d: expected exactly one mom increment, got %d", i, totalMOM)
		}
	}

	// a: 2 goals + 1 assist = 5, b: 2 goals + 1 assist = 5, c: 2 goals + 1 assist = 5.
	// The tie goes to the lowest id.
	stored, _, err := f.store.Repos().Matches.GetByID(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if stored.MOMPlayerID == nil || *stored.MOMPlayerID != a.ID {
		t.Fatalf("expected lowest id to win the tie, got %v", stored.MOMPlayerID)
	}
	if got := f.player(t, a.ID); got.GoalCount != 2 || got.AssistCount != 1 || got.MOMCount != 1 {
		t.Fatalf("unexpected counters for a: %+v", got)
	}
}

func TestMatchService_AddGoalHandsOverManOfTheMatch(t *testing.T) {
	f := newMatchFixture(t)
	a, b := f.squad[0], f.squad[1]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "2:2",
		PlayerIDs:    []int64{a.ID, b.ID},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	if _, err := f.service.AddGoal(t.Context(), usecase.AddGoalInput{
		CallerTeamID: f.team.ID,
		MatchID:      created.ID,
		Goal:         match.GoalInput{PlayerID: a.ID, AssistPlayerID: int64Ptr(b.ID), Quarter: 1},
	}); err != nil {
		t.Fatalf("add first goal: %v", err)
	}
	if got := f.player(t, a.ID).MOMCount; got != 1 {
		t.Fatalf("expected a to hold mom after first goal, got %d", got)
	}

	if _, err := f.service.AddGoal(t.Context(), usecase.AddGoalInput{
		CallerTeamID: f.team.ID,
		MatchID:      created.ID,
		Goal:         match.GoalInput{PlayerID: b.ID, Quarter: 2},
	}); err != nil {
		t.Fatalf("add second goal: %v", err)
	}

	gotA, gotB := f.player(t, a.ID), f.player(t, b.ID)
	if gotA.MOMCount != 0 {
		t.Fatalf("previous holder not decremented: %+v", gotA)
	}
	if gotB.MOMCount != 1 || gotB.GoalCount != 1 || gotB.AssistCount != 1 {
		t.Fatalf("unexpected counters for new holder: %+v", gotB)
	}
}

func TestMatchService_AddGoalRejectsSelfAssist(t *testing.T) {
	f := newMatchFixture(t)
	a := f.squad[0]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "1:0",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	_, err = f.service.AddGoal(t.Context(), usecase.AddGoalInput{
		CallerTeamID: f.team.ID,
		MatchID:      created.ID,
		Goal:         match.GoalInput{PlayerID: a.ID, AssistPlayerID: int64Ptr(a.ID), Quarter: 1},
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	goals, err := f.store.Repos().Goals.ListByMatch(t.Context(), created.ID)
	if err != nil || len(goals) != 0 {
		t.Fatalf("expected empty ledger, got %d goals err=%v", len(goals), err)
	}
	if got := f.player(t, a.ID); got.GoalCount != 0 || got.AssistCount != 0 || got.MOMCount != 0 {
		t.Fatalf("expected untouched counters, got %+v", got)
	}
}

func TestMatchService_AddGoalErrors(t *testing.T) {
	f := newMatchFixture(t)
	other, err := f.store.Repos().Teams.Create(t.Context(), team.Team{Name: "Other FC", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create other team: %v", err)
	}
	outsider, err := f.store.Repos().Players.Create(t.Context(), player.Player{TeamID: other.ID, Name: "Outsider"})
	if err != nil {
		t.Fatalf("create outsider: %v", err)
	}

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "1:0",
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	tests := []struct {
		name    string
		input   usecase.AddGoalInput
		wantErr error
	}{
		{
			name:    "unknown match",
			input:   usecase.AddGoalInput{CallerTeamID: f.team.ID, MatchID: created.ID + 1000, Goal: match.GoalInput{PlayerID: f.squad[0].ID, Quarter: 1}},
			wantErr: usecase.ErrNotFound,
		},
		{
			name:    "foreign caller",
			input:   usecase.AddGoalInput{CallerTeamID: other.ID, MatchID: created.ID, Goal: match.GoalInput{PlayerID: f.squad[0].ID, Quarter: 1}},
			wantErr: usecase.ErrForbidden,
		},
		{
			name:    "scorer from another team",
			input:   usecase.AddGoalInput{CallerTeamID: f.team.ID, MatchID: created.ID, Goal: match.GoalInput{PlayerID: outsider.ID, Quarter: 1}},
			wantErr: usecase.ErrInvalidInput,
		},
		{
			name:    "assist from another team",
			input:   usecase.AddGoalInput{CallerTeamID: f.team.ID, MatchID: created.ID, Goal: match.GoalInput{PlayerID: f.squad[0].ID, AssistPlayerID: int64Ptr(outsider.ID), Quarter: 1}},
			wantErr: usecase.ErrInvalidInput,
		},
		{
			name:    "quarter zero",
			input:   usecase.AddGoalInput{CallerTeamID: f.team.ID, MatchID: created.ID, Goal: match.GoalInput{PlayerID: f.squad[0].ID, Quarter: 0}},
			wantErr: usecase.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.AddGoal(t.Context(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestMatchService_CreateIsAtomic(t *testing.T) {
	f := newMatchFixture(t)
	other, err := f.store.Repos().Teams.Create(t.Context(), team.Team{Name: "Other FC", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create other team: %v", err)
	}
	outsider, err := f.store.Repos().Players.Create(t.Context(), player.Player{TeamID: other.ID, Name: "Outsider"})
	if err != nil {
		t.Fatalf("create outsider: %v", err)
	}

	_, err = f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "1:0",
		PlayerIDs:    []int64{f.squad[0].ID},
		Goals: []match.GoalInput{
			{PlayerID: f.squad[0].ID, Quarter: 1},
			{PlayerID: outsider.ID, Quarter: 2},
		},
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	matches, err := f.service.ListByTeam(t.Context(), f.team.ID, f.team.ID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no match persisted, got %d", len(matches))
	}
	if got := f.player(t, f.squad[0].ID); got.GoalCount != 0 {
		t.Fatalf("expected no counter change, got %+v", got)
	}

	_, err = f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: other.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "1:0",
	})
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for team mismatch, got %v", err)
	}
}

func TestMatchService_CancelledContextPersistsNothing(t *testing.T) {
	f := newMatchFixture(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := f.service.Create(ctx, usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "1:0",
		Goals:        []match.GoalInput{{PlayerID: f.squad[0].ID, Quarter: 1}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	matches, err := f.store.Repos().Matches.ListByTeam(t.Context(), f.team.ID)
	if err != nil || len(matches) != 0 {
		t.Fatalf("expected no matches, got %d err=%v", len(matches), err)
	}
}

func TestMatchService_DetailSynthesizesOnceFromLedger(t *testing.T) {
	f := newMatchFixture(t)

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "5:0",
		PlayerIDs:    []int64{f.squad[0].ID, f.squad[3].ID},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	first, err := f.service.Detail(t.Context(), f.team.ID, created.ID)
	if err != nil {
		t.Fatalf("first detail: %v", err)
	}
	if len(first.QuarterScores) != 4 {
		t.Fatalf("expected 4 quarters, got %d", len(first.QuarterScores))
	}
	ours, theirs := 0, 0
	for _, q := range first.QuarterScores {
		ours += q.OurScore
		theirs += q.OpponentScore
	}
	if ours != 0 || theirs != 0 {
		t.Fatalf("expected quarter totals 0:0 without goals, got %d:%d", ours, theirs)
	}
	if len(first.Players) != 2 || len(first.Goals) != 0 {
		t.Fatalf("unexpected detail shape: players=%d goals=%d", len(first.Players), len(first.Goals))
	}

	second, err := f.service.Detail(t.Context(), f.team.ID, created.ID)
	if err != nil {
		t.Fatalf("second detail: %v", err)
	}
	if diff := cmp.Diff(first.QuarterScores, second.QuarterScores); diff != "" {
		t.Fatalf("quarter scores changed between reads (-first +second):\n%s", diff)
	}
}

func TestMatchService_UpdateLeavesLedgerAndQuartersAlone(t *testing.T) {
	f := newMatchFixture(t)
	a, b := f.squad[0], f.squad[1]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "1:3",
		PlayerIDs:    []int64{a.ID},
		Goals:        []match.GoalInput{{PlayerID: a.ID, Quarter: 2}},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	before, err := f.service.Detail(t.Context(), f.team.ID, created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}

	score := "4:0"
	updated, err := f.service.Update(t.Context(), usecase.UpdateMatchInput{
		CallerTeamID: f.team.ID,
		MatchID:      created.ID,
		Patch: match.Patch{
			Score:         &score,
			PlayerIDs:     []int64{a.ID, b.ID},
			ReplaceRoster: true,
		},
	})
	if err != nil {
		t.Fatalf("update match: %v", err)
	}
	if updated.Score != "4:0" || len(updated.PlayerIDs) != 2 {
		t.Fatalf("unexpected updated match: %+v", updated)
	}
	if updated.MOMPlayerID == nil || *updated.MOMPlayerID != a.ID {
		t.Fatalf("update must keep the player of the match, got %v", updated.MOMPlayerID)
	}

	after, err := f.service.Detail(t.Context(), f.team.ID, created.ID)
	if err != nil {
		t.Fatalf("detail after update: %v", err)
	}
	if diff := cmp.Diff(before.QuarterScores, after.QuarterScores); diff != "" {
		t.Fatalf("quarter scores were re-synthesized (-before +after):\n%s", diff)
	}
	if got := f.player(t, a.ID); got.GoalCount != 1 || got.MOMCount != 1 {
		t.Fatalf("update touched counters: %+v", got)
	}

	replaced, err := f.service.Update(t.Context(), usecase.UpdateMatchInput{
		CallerTeamID: f.team.ID,
		MatchID:      created.ID,
		Patch: match.Patch{
			QuarterScores: []match.QuarterScore{{Quarter: 1, OurScore: 4, OpponentScore: 0}},
			ReplaceScores: true,
		},
	})
	if err != nil {
		t.Fatalf("replace quarter scores: %v", err)
	}
	if len(replaced.PlayerIDs) != 2 {
		t.Fatalf("roster lost on unrelated update: %v", replaced.PlayerIDs)
	}
	final, err := f.service.Detail(t.Context(), f.team.ID, created.ID)
	if err != nil {
		t.Fatalf("detail after replace: %v", err)
	}
	want := []match.QuarterScore{{MatchID: created.ID, Quarter: 1, OurScore: 4, OpponentScore: 0}}
	if diff := cmp.Diff(want, final.QuarterScores, cmpopts.IgnoreFields(match.QuarterScore{}, "ID", "CreatedAt", "UpdatedAt")); diff != "" {
		t.Fatalf("unexpected quarter scores (-want +got):\n%s", diff)
	}

	_, err = f.service.Update(t.Context(), usecase.UpdateMatchInput{
		CallerTeamID: f.team.ID,
		MatchID:      created.ID,
		Patch:        match.Patch{PlayerIDs: []int64{a.ID, 99999}, ReplaceRoster: true},
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown roster player, got %v", err)
	}
}

func TestMatchService_DetailHidesGoalsOfDeletedScorers(t *testing.T) {
	f := newMatchFixture(t)
	a, b := f.squad[0], f.squad[1]

	created, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Lakeside",
		Score:        "2:0",
		PlayerIDs:    []int64{a.ID, b.ID},
		Goals: []match.GoalInput{
			{PlayerID: a.ID, Quarter: 1},
			{PlayerID: b.ID, AssistPlayerID: int64Ptr(a.ID), Quarter: 2},
		},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	if err := f.players.Delete(t.Context(), f.team.ID, a.ID); err != nil {
		t.Fatalf("delete player: %v", err)
	}

	detail, err := f.service.Detail(t.Context(), f.team.ID, created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(detail.Goals) != 1 || detail.Goals[0].PlayerID != b.ID {
		t.Fatalf("unexpected goals: %+v", detail.Goals)
	}
	if detail.Goals[0].AssistPlayerID != nil || detail.Goals[0].AssistName != a.Name {
		t.Fatalf("expected nulled assist with kept name snapshot, got %+v", detail.Goals[0])
	}
	if detail.Match.MOMPlayerID != nil {
		t.Fatalf("expected player of the match cleared, got %v", *detail.Match.MOMPlayerID)
	}
	if len(detail.Players) != 1 {
		t.Fatalf("expected deleted player dropped from roster, got %d", len(detail.Players))
	}

	ours := make([]int, 0, len(detail.QuarterScores))
	for _, qs := range detail.QuarterScores {
		ours = append(ours, qs.OurScore)
	}
	if diff := cmp.Diff([]int{0, 1, 0, 0}, ours); diff != "" {
		t.Fatalf("synthesized our scores should skip goals of deleted scorers (-want +got):\n%s", diff)
	}
}

func TestMatchService_DeleteAfterHolderRemovedKeepsOtherMOMs(t *testing.T) {
	f := newMatchFixture(t)
	a, b := f.squad[0], f.squad[1]

	first, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate,
		Opponent:     "Hillcrest",
		Score:        "1:0",
		PlayerIDs:    []int64{b.ID},
		Goals:        []match.GoalInput{{PlayerID: b.ID, Quarter: 1}},
	})
	if err != nil {
		t.Fatalf("create first match: %v", err)
	}
	if first.MOMPlayerID == nil || *first.MOMPlayerID != b.ID {
		t.Fatalf("expected %d to hold the first match, got %v", b.ID, first.MOMPlayerID)
	}
	momBefore := f.player(t, b.ID).MOMCount

	second, err := f.service.Create(t.Context(), usecase.CreateMatchInput{
		CallerTeamID: f.team.ID,
		TeamID:       f.team.ID,
		Date:         matchDate.Add(7 * 24 * time.Hour),
		Opponent:     "Westfield",
		Score:        "3:1",
		PlayerIDs:    []int64{a.ID, b.ID},
		Goals: []match.GoalInput{
			{PlayerID: a.ID, Quarter: 1},
			{PlayerID: a.ID, Quarter: 2},
			{PlayerID: b.ID, Quarter: 4},
		},
	})
	if err != nil {
		t.Fatalf("create second match: %v", err)
	}
	if second.MOMPlayerID == nil || *second.MOMPlayerID != a.ID {
		t.Fatalf("expected %d to hold the second match, got %v", a.ID, second.MOMPlayerID)
	}
	if got := f.player(t, b.ID).MOMCount; got != momBefore {
		t.Fatalf("second match changed mom_count of %d: got %d want %d", b.ID, got, momBefore)
	}

	if err := f.players.Delete(t.Context(), f.team.ID, a.ID); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if err := f.service.Delete(t.Context(), f.team.ID, second.ID); err != nil {
		t.Fatalf("delete second match: %v", err)
	}

	got := f.player(t, b.ID)
	if got.MOMCount != momBefore {
		t.Fatalf("mom_count after delete: got %d want %d", got.MOMCount, momBefore)
	}
	if clamps := f.clampCount(t); clamps != 0 {
		t.Fatalf("expected no clamps, got %d", clamps)
	}
}
