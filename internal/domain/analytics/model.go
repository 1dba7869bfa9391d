package analytics

// MatchRef points at one match and a goal figure in it.
type MatchRef struct {
	MatchID int64
	Goals   int
}

type Overview struct {
	TotalMatches        int
	Wins                int
	Draws               int
	Losses              int
	WinRate             float64
	AvgGoalsScored      float64
	AvgGoalsConceded    float64
	HighestScoringMatch MatchRef
	MostConcededMatch   MatchRef
}

type GoalRange struct {
	Goals   string
	Matches int
	Wins    int
	WinRate float64
}

type GoalsWinCorrelation struct {
	GoalRanges     []GoalRange
	OptimalGoals   int
	AvgGoalsForWin float64
}

type ConcededRange struct {
	Conceded string
	Matches  int
	Losses   int
	LossRate float64
}

type ConcededLossCorrelation struct {
	ConcededRanges     []ConcededRange
	DangerThreshold    int
	AvgConcededForLoss float64
}

type PlayerContribution struct {
	PlayerID          int64
	Name              string
	MatchesPlayed     int
	Wins              int
	WinRate           float64
	Goals             int
	Assists           int
	MOMCount          int
	ContributionScore float64
	AvgGoalsPerMatch  float64
}

type PlayerContributions struct {
	Players        []PlayerContribution
	TopContributor *PlayerContribution
	MostReliable   *PlayerContribution
}

// Dashboard bundles every analytics view of a team.
type Dashboard struct {
	Overview                Overview
	GoalsWinCorrelation     GoalsWinCorrelation
	ConcededLossCorrelation ConcededLossCorrelation
	PlayerContributions     PlayerContributions
}
