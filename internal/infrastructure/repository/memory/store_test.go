package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

var fixedNow = time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) (*Store, team.Team, []player.Player) {
	t.Helper()

	store := NewStore()
	store.SetClock(func() time.Time { return fixedNow })
	tm, squad, err := SeedDemo(t.Context(), store, "hash")
	if err != nil {
		t.Fatalf("seed demo: %v", err)
	}
	return store, tm, squad
}

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	store, tm, squad := newSeededStore(t)
	errBoom := errors.New("boom")

	err := store.WithinTx(t.Context(), func(ctx context.Context, repos usecase.Repositories) error {
		if _, err := repos.Players.Create(ctx, player.Player{TeamID: tm.ID, Name: "Temp"}); err != nil {
			return err
		}
		p := squad[0]
		p.GoalCount = 9
		if err := repos.Players.UpdateCounters(ctx, p); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}

	players, err := store.Repos().Players.ListByTeam(t.Context(), tm.ID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != len(squad) {
		t.Fatalf("rolled back insert still visible: got=%d want=%d", len(players), len(squad))
	}
	if players[0].GoalCount != 0 {
		t.Fatalf("rolled back counter still visible: %+v", players[0])
	}
}

func TestStore_WithinTx_CancelledBeforeCommit(t *testing.T) {
	store, tm, _ := newSeededStore(t)
	ctx, cancel := context.WithCancel(t.Context())

	err := store.WithinTx(ctx, func(ctx context.Context, repos usecase.Repositories) error {
		if _, err := repos.Players.Create(ctx, player.Player{TeamID: tm.ID, Name: "Late"}); err != nil {
			return err
		}
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	players, err := store.Repos().Players.ListByTeam(t.Context(), tm.ID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	for _, p := range players {
		if p.Name == "Late" {
			t.Fatalf("cancelled transaction committed player %+v", p)
		}
	}
}

func TestStore_DeletePlayerNullsReferences(t *testing.T) {
	store, tm, squad := newSeededStore(t)
	a, b := squad[0], squad[1]
	repos := store.Repos()
	ctx := t.Context()

	m, err := repos.Matches.Create(ctx, match.Match{TeamID: tm.ID, Date: fixedNow, Opponent: "Riverside", Score: "1:0"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if err := repos.Matches.ReplaceRoster(ctx, m.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("replace roster: %v", err)
	}
	if err := repos.Matches.SetPlayerOfTheMatch(ctx, m.ID, &a.ID); err != nil {
		t.Fatalf("set player of the match: %v", err)
	}
	assist := b.ID
	if _, err := repos.Goals.Insert(ctx, match.Goal{MatchID: m.ID, PlayerID: a.ID, AssistPlayerID: &assist, Quarter: 1, ScorerName: a.Name, AssistName: b.Name}); err != nil {
		t.Fatalf("insert goal: %v", err)
	}

	if err := repos.Players.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete scorer: %v", err)
	}

	got, ok, err := repos.Matches.GetByID(ctx, m.ID)
	if err != nil || !ok {
		t.Fatalf("get match: ok=%v err=%v", ok, err)
	}
	if got.MOMPlayerID != nil {
		t.Fatalf("player of the match not cleared: %v", *got.MOMPlayerID)
	}
	if diff := cmp.Diff([]int64{b.ID}, got.PlayerIDs); diff != "" {
		t.Fatalf("unexpected roster (-want +got):\n%s", diff)
	}

	goals, err := repos.Goals.ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 1 || goals[0].PlayerID != 0 || goals[0].ScorerName != a.Name {
		t.Fatalf("unexpected goal after scorer delete: %+v", goals)
	}

	if err := repos.Players.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete assist: %v", err)
	}
	goals, err = repos.Goals.ListByMatch(ctx, m.ID)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if goals[0].AssistPlayerID != nil || goals[0].AssistName != b.Name {
		t.Fatalf("unexpected goal after assist delete: %+v", goals[0])
	}
}

func TestStore_TeamNameIsUnique(t *testing.T) {
	store, _, _ := newSeededStore(t)

	_, err := store.Repos().Teams.Create(t.Context(), team.Team{Name: DemoTeamName, PasswordHash: "hash"})
	if !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestStore_InsertQuarterScoresKeepsExistingRows(t *testing.T) {
	store, tm, _ := newSeededStore(t)
	repos := store.Repos()
	ctx := t.Context()

	m, err := repos.Matches.Create(ctx, match.Match{TeamID: tm.ID, Date: fixedNow, Opponent: "Riverside", Score: "2:1"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := repos.Matches.InsertQuarterScores(ctx, m.ID, []match.QuarterScore{{Quarter: 2, OurScore: 1}}); err != nil {
		t.Fatalf("insert first quarter scores: %v", err)
	}

	rows, err := repos.Matches.InsertQuarterScores(ctx, m.ID, []match.QuarterScore{
		{Quarter: 1, OurScore: 1},
		{Quarter: 2, OurScore: 5},
	})
	if err != nil {
		t.Fatalf("insert second quarter scores: %v", err)
	}

	got := make(map[int]int, len(rows))
	for _, r := range rows {
		got[r.Quarter] = r.OurScore
	}
	if diff := cmp.Diff(map[int]int{1: 1, 2: 1}, got); diff != "" {
		t.Fatalf("unexpected quarter scores (-want +got):\n%s", diff)
	}
}

func TestStore_ListByTeamOrdersNewestFirst(t *testing.T) {
	store, tm, _ := newSeededStore(t)
	repos := store.Repos()
	ctx := t.Context()

	older, err := repos.Matches.Create(ctx, match.Match{TeamID: tm.ID, Date: fixedNow.AddDate(0, 0, -7), Opponent: "A", Score: "0:0"})
	if err != nil {
		t.Fatalf("create older match: %v", err)
	}
	newer, err := repos.Matches.Create(ctx, match.Match{TeamID: tm.ID, Date: fixedNow, Opponent: "B", Score: "0:0"})
	if err != nil {
		t.Fatalf("create newer match: %v", err)
	}

	list, err := repos.Matches.ListByTeam(ctx, tm.ID)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	ids := []int64{list[0].ID, list[1].ID}
	if diff := cmp.Diff([]int64{newer.ID, older.ID}, ids); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}
