package match

import (
	"strconv"
	"strings"
)

// Result is the outcome of a match from the owning team's point of view.
type Result string

const (
	ResultWin  Result = "WIN"
	ResultDraw Result = "DRAW"
	ResultLose Result = "LOSE"
)

// Score is a parsed final score.
type Score struct {
	Ours   int
	Theirs int
}

// ParseScore reads "ours:theirs". Anything that is not exactly two
// non-negative integers separated by a colon yields 0:0.
func ParseScore(raw string) Score {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return Score{}
	}

	ours, ok := parseGoals(parts[0])
	if !ok {
		return Score{}
	}
	theirs, ok := parseGoals(parts[1])
	if !ok {
		return Score{}
	}

	return Score{Ours: ours, Theirs: theirs}
}

func parseGoals(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (s Score) Result() Result {
	switch {
	case s.Ours > s.Theirs:
		return ResultWin
	case s.Ours < s.Theirs:
		return ResultLose
	default:
		return ResultDraw
	}
}

func (s Score) String() string {
	return strconv.Itoa(s.Ours) + ":" + strconv.Itoa(s.Theirs)
}
