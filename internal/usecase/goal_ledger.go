package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
)

// GoalLedger records and lists the goals of a match. It never touches player
// counters; that is the reconciler's job.
type GoalLedger struct{}

func NewGoalLedger() *GoalLedger {
	return &GoalLedger{}
}

// Check validates a goal against the owning team without writing anything.
func (l *GoalLedger) Check(ctx context.Context, repos Repositories, teamID int64, in match.GoalInput) (player.Player, *player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalLedger.Check")
	defer span.End()

	if err := in.Validate(); err != nil {
		return player.Player{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	scorer, exists, err := repos.Players.GetByID(ctx, in.PlayerID)
	if err != nil {
		return player.Player{}, nil, fmt.Errorf("get scorer: %w", err)
	}
	if !exists {
		return player.Player{}, nil, fmt.Errorf("%w: player %d not found", ErrInvalidInput, in.PlayerID)
	}
	if scorer.TeamID != teamID {
		return player.Player{}, nil, fmt.Errorf("%w: player %d belongs to team %d, not team %d", ErrInvalidInput, scorer.ID, scorer.TeamID, teamID)
	}

	if in.AssistPlayerID == nil {
		return scorer, nil, nil
	}

	assist, exists, err := repos.Players.GetByID(ctx, *in.AssistPlayerID)
	if err != nil {
		return player.Player{}, nil, fmt.Errorf("get assist player: %w", err)
	}
	if !exists {
		return player.Player{}, nil, fmt.Errorf("%w: assist player %d not found", ErrInvalidInput, *in.AssistPlayerID)
	}
	if assist.TeamID != teamID {
		return player.Player{}, nil, fmt.Errorf("%w: assist player %d belongs to team %d, not team %d", ErrInvalidInput, assist.ID, assist.TeamID, teamID)
	}

	return scorer, &assist, nil
}

// Record validates and appends a goal to the match ledger, snapshotting the
// scorer and assist names.
func (l *GoalLedger) Record(ctx context.Context, repos Repositories, m match.Match, in match.GoalInput) (match.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalLedger.Record")
	defer span.End()

	scorer, assist, err := l.Check(ctx, repos, m.TeamID, in)
	if err != nil {
		return match.Goal{}, err
	}

	goal := match.Goal{
		MatchID:    m.ID,
		PlayerID:   scorer.ID,
		Quarter:    in.Quarter,
		ScorerName: scorer.Name,
	}
	if assist != nil {
		assistID := assist.ID
		goal.AssistPlayerID = &assistID
		goal.AssistName = assist.Name
	}

	recorded, err := repos.Goals.Insert(ctx, goal)
	if err != nil {
		return match.Goal{}, fmt.Errorf("insert goal: %w", err)
	}
	return recorded, nil
}

// List returns the ledger of a match in insertion order.
func (l *GoalLedger) List(ctx context.Context, repos Repositories, matchID int64) ([]match.Goal, error) {
	goals, err := repos.Goals.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (l *GoalLedger) RemoveAll(ctx context.Context, repos Repositories, matchID int64) error {
	if err := repos.Goals.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete goals: %w", err)
	}
	return nil
}
