package player

import (
	"fmt"
	"strings"
	"time"
)

// Counter names the derived statistics kept on a player row.
type Counter string

const (
	CounterGoals   Counter = "goal_count"
	CounterAssists Counter = "assist_count"
	CounterMOM     Counter = "mom_count"
)

// Player belongs to one team. GoalCount, AssistCount and MOMCount are derived
// from the goal ledger, except when overridden through a stats edit.
type Player struct {
	ID          int64
	TeamID      int64
	Name        string
	Number      int
	Position    string
	GoalCount   int
	AssistCount int
	MOMCount    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Player) Validate() error {
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Number < 0 {
		return fmt.Errorf("player number must be >= 0")
	}
	if p.GoalCount < 0 || p.AssistCount < 0 || p.MOMCount < 0 {
		return fmt.Errorf("player counters must be >= 0")
	}

	return nil
}

func (p Player) Counter(c Counter) int {
	switch c {
	case CounterGoals:
		return p.GoalCount
	case CounterAssists:
		return p.AssistCount
	case CounterMOM:
		return p.MOMCount
	default:
		return 0
	}
}

func (p *Player) SetCounter(c Counter, v int) {
	switch c {
	case CounterGoals:
		p.GoalCount = v
	case CounterAssists:
		p.AssistCount = v
	case CounterMOM:
		p.MOMCount = v
	}
}

// Patch carries the optional profile fields of a player update.
type Patch struct {
	Name     *string
	Number   *int
	Position *string
}

func (p Patch) Apply(pl Player) Player {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Number != nil {
		pl.Number = *p.Number
	}
	if p.Position != nil {
		pl.Position = *p.Position
	}
	return pl
}

// StatsPatch is a manual override of the derived counters.
type StatsPatch struct {
	GoalCount   *int
	AssistCount *int
	MOMCount    *int
}

func (p StatsPatch) Empty() bool {
	return p.GoalCount == nil && p.AssistCount == nil && p.MOMCount == nil
}

func (p StatsPatch) Apply(pl Player) Player {
	if p.GoalCount != nil {
		pl.GoalCount = *p.GoalCount
	}
	if p.AssistCount != nil {
		pl.AssistCount = *p.AssistCount
	}
	if p.MOMCount != nil {
		pl.MOMCount = *p.MOMCount
	}
	return pl
}
