package match

import (
	"fmt"
	"strings"
	"time"
)

// Match is a single fixture played by a team. Score is the final score in
// "ours:theirs" form and is never validated against the goal ledger.
type Match struct {
	ID          int64
	TeamID      int64
	Date        time.Time
	Opponent    string
	Score       string
	MOMPlayerID *int64
	PlayerIDs   []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m Match) Validate() error {
	if m.TeamID <= 0 {
		return fmt.Errorf("match team id is required")
	}
	if strings.TrimSpace(m.Opponent) == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}

// Goal is one ledger entry. ScorerName and AssistName are captured when the
// goal is recorded and do not follow later player renames.
type Goal struct {
	ID             int64
	MatchID        int64
	PlayerID       int64
	AssistPlayerID *int64
	Quarter        int
	ScorerName     string
	AssistName     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GoalInput is the validated request shape for recording a goal.
type GoalInput struct {
	PlayerID       int64
	AssistPlayerID *int64
	Quarter        int
}

func (in GoalInput) Validate() error {
	if in.PlayerID <= 0 {
		return fmt.Errorf("goal scorer id is required")
	}
	if in.Quarter < 1 {
		return fmt.Errorf("goal quarter must be >= 1, got %d", in.Quarter)
	}
	if in.AssistPlayerID != nil {
		if *in.AssistPlayerID <= 0 {
			return fmt.Errorf("goal assist player id must be > 0")
		}
		if *in.AssistPlayerID == in.PlayerID {
			return fmt.Errorf("assist player %d cannot be the scorer", in.PlayerID)
		}
	}

	return nil
}

// QuarterScore is the per-quarter breakdown of a match.
type QuarterScore struct {
	ID            int64
	MatchID       int64
	Quarter       int
	OurScore      int
	OpponentScore int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q QuarterScore) Validate() error {
	if q.Quarter < 1 {
		return fmt.Errorf("quarter must be >= 1, got %d", q.Quarter)
	}
	if q.OurScore < 0 || q.OpponentScore < 0 {
		return fmt.Errorf("quarter %d scores must be >= 0", q.Quarter)
	}

	return nil
}

// Patch carries the optional fields of a match update.
type Patch struct {
	Date          *time.Time
	Opponent      *string
	Score         *string
	PlayerIDs     []int64
	ReplaceRoster bool
	QuarterScores []QuarterScore
	ReplaceScores bool
}

func (p Patch) Apply(m Match) Match {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Opponent != nil {
		m.Opponent = *p.Opponent
	}
	if p.Score != nil {
		m.Score = *p.Score
	}
	if p.ReplaceRoster {
		m.PlayerIDs = append([]int64(nil), p.PlayerIDs...)
	}
	return m
}
