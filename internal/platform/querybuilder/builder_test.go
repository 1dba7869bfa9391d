package querybuilder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectBuilderForUpdate(t *testing.T) {
	query, args, err := Select("id", "goal_count").
		From("players").
		Where(InIDs("id", []int64{3, 7})).
		OrderBy("id").
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, goal_count FROM players WHERE id IN ($1, $2) ORDER BY id FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if diff := cmp.Diff([]any{int64(3), int64(7)}, args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestSelectBuilderEmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("*").From("players").Where(Eq("team_id", int64(1)), InIDs("id", nil)).Limit(5).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM players WHERE team_id = $1 AND 1=0 LIMIT 5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderMultiRow(t *testing.T) {
	query, args, err := InsertInto("match_player").
		Columns("match_id", "player_id").
		Values(int64(10), int64(1)).
		Values(int64(10), int64(2)).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO match_player (match_id, player_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRejectsShortRow(t *testing.T) {
	_, _, err := InsertInto("goals").Columns("match_id", "quarter").Values(int64(1)).ToSQL()
	if err == nil {
		t.Fatalf("expected error for row with missing values")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("goal_count", 2).
		SetExpr("updated_at", "NOW()").
		SetExpr("mom_count", "GREATEST(mom_count - ?, 0)", 1).
		Where(Eq("id", int64(9))).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET goal_count = $1, updated_at = NOW(), mom_count = GREATEST(mom_count - $2, 0) WHERE id = $3 RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if diff := cmp.Diff([]any{2, 1, int64(9)}, args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("goals").Where(Eq("match_id", int64(4))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM goals WHERE match_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("goals").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		TeamID int64  `db:"team_id"`
		Name   string `db:"name"`
		Skip   string `db:"-"`
		hidden string
	}

	query, args, err := InsertModel("players", row{TeamID: 1, Name: "Son", Skip: "x", hidden: "y"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO players (team_id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if diff := cmp.Diff([]any{int64(1), "Son"}, args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestInsertModelOmitEmpty(t *testing.T) {
	type row struct {
		MatchID  int64  `db:"match_id"`
		Quarter  int    `db:"quarter"`
		Position string `db:"position,omitempty"`
	}

	query, args, err := InsertModel("goals", &row{MatchID: 4, Quarter: 2}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if want := "INSERT INTO goals (match_id, quarter) VALUES ($1, $2)"; query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if diff := cmp.Diff([]any{int64(4), 2}, args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestInsertModelRejectsBadInput(t *testing.T) {
	var nilRow *struct {
		ID int64 `db:"id"`
	}
	tests := []struct {
		name  string
		model any
	}{
		{name: "nil pointer", model: nilRow},
		{name: "not a struct", model: 42},
		{name: "no columns", model: struct{ Name string }{Name: "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := InsertModel("players", tc.model, ""); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
