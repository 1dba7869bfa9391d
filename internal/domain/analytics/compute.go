package analytics

import (
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/shopspring/decimal"
)

const (
	bucketOpenEnded     = 3
	dangerLossRate      = 50.0
	reliableMinMatches  = 3
	contributionGoalPts = 4
	contributionAstPts  = 2
)

var bucketLabels = []string{"0", "1", "2", "3+"}

func ComputeOverview(matches []match.Match) Overview {
	out := Overview{TotalMatches: len(matches)}
	if len(matches) == 0 {
		return out
	}

	scored, conceded := 0, 0
	for _, m := range matches {
		score := match.ParseScore(m.Score)
		switch score.Result() {
		case match.ResultWin:
			out.Wins++
		case match.ResultDraw:
			out.Draws++
		default:
			out.Losses++
		}
		scored += score.Ours
		conceded += score.Theirs

		if score.Ours > out.HighestScoringMatch.Goals {
			out.HighestScoringMatch = MatchRef{MatchID: m.ID, Goals: score.Ours}
		}
		if score.Theirs > out.MostConcededMatch.Goals {
			out.MostConcededMatch = MatchRef{MatchID: m.ID, Goals: score.Theirs}
		}
	}

	total := len(matches)
	out.WinRate = percent(out.Wins, total)
	out.AvgGoalsScored = ratio(scored, total, 1)
	out.AvgGoalsConceded = ratio(conceded, total, 1)
	return out
}

func ComputeGoalsWinCorrelation(matches []match.Match) GoalsWinCorrelation {
	buckets := make([][]match.Result, len(bucketLabels))
	for _, m := range matches {
		score := match.ParseScore(m.Score)
		idx := bucketIndex(score.Ours)
		buckets[idx] = append(buckets[idx], score.Result())
	}

	out := GoalsWinCorrelation{GoalRanges: make([]GoalRange, 0, len(buckets))}
	totalWins, goalsForWins := 0, 0
	bestRate := 0.0
	for idx, results := range buckets {
		if len(results) == 0 {
			continue
		}
		wins := countResult(results, match.ResultWin)
		item := GoalRange{
			Goals:   bucketLabels[idx],
			Matches: len(results),
			Wins:    wins,
			WinRate: percent(wins, len(results)),
		}
		out.GoalRanges = append(out.GoalRanges, item)

		totalWins += wins
		goalsForWins += wins * idx
		if item.WinRate > bestRate {
			bestRate = item.WinRate
			out.OptimalGoals = idx
		}
	}
	out.AvgGoalsForWin = ratio(goalsForWins, totalWins, 1)
	return out
}

func ComputeConcededLossCorrelation(matches []match.Match) ConcededLossCorrelation {
	buckets := make([][]match.Result, len(bucketLabels))
	for _, m := range matches {
		score := match.ParseScore(m.Score)
		idx := bucketIndex(score.Theirs)
		buckets[idx] = append(buckets[idx], score.Result())
	}

	out := ConcededLossCorrelation{
		ConcededRanges:  make([]ConcededRange, 0, len(buckets)),
		DangerThreshold: bucketOpenEnded,
	}
	totalLosses, concededForLosses := 0, 0
	thresholdFound := false
	for idx, results := range buckets {
		if len(results) == 0 {
			continue
		}
		losses := countResult(results, match.ResultLose)
		item := ConcededRange{
			Conceded: bucketLabels[idx],
			Matches:  len(results),
			Losses:   losses,
			LossRate: percent(losses, len(results)),
		}
		out.ConcededRanges = append(out.ConcededRanges, item)

		totalLosses += losses
		concededForLosses += losses * idx
		if !thresholdFound && item.LossRate >= dangerLossRate {
			out.DangerThreshold = idx
			thresholdFound = true
		}
	}
	out.AvgConcededForLoss = ratio(concededForLosses, totalLosses, 1)
	return out
}

// ComputePlayerContributions scores each player who appeared in at least one
// match. roster maps match id to the players fielded in it.
func ComputePlayerContributions(players []player.Player, matches []match.Match, roster map[int64][]int64) PlayerContributions {
	results := make(map[int64]match.Result, len(matches))
	for _, m := range matches {
		results[m.ID] = match.ParseScore(m.Score).Result()
	}

	played := make(map[int64]int)
	won := make(map[int64]int)
	for matchID, playerIDs := range roster {
		result, ok := results[matchID]
		if !ok {
			continue
		}
		for _, id := range playerIDs {
			played[id]++
			if result == match.ResultWin {
				won[id]++
			}
		}
	}

	out := PlayerContributions{Players: make([]PlayerContribution, 0, len(players))}
	for _, p := range players {
		matchesPlayed := played[p.ID]
		if matchesPlayed == 0 {
			continue
		}
		wins := won[p.ID]
		weight := int64(p.GoalCount*contributionGoalPts+p.AssistCount*contributionAstPts) * int64(p.MOMCount+1)
		score := decimal.NewFromInt(int64(wins) * weight).
			Div(decimal.NewFromInt(int64(matchesPlayed))).
			Truncate(2)

		out.Players = append(out.Players, PlayerContribution{
			PlayerID:          p.ID,
			Name:              p.Name,
			MatchesPlayed:     matchesPlayed,
			Wins:              wins,
			WinRate:           percent(wins, matchesPlayed),
			Goals:             p.GoalCount,
			Assists:           p.AssistCount,
			MOMCount:          p.MOMCount,
			ContributionScore: score.InexactFloat64(),
			AvgGoalsPerMatch:  ratio(p.GoalCount, matchesPlayed, 2),
		})
	}

	sort.SliceStable(out.Players, func(i, j int) bool {
		if out.Players[i].ContributionScore != out.Players[j].ContributionScore {
			return out.Players[i].ContributionScore > out.Players[j].ContributionScore
		}
		return out.Players[i].PlayerID < out.Players[j].PlayerID
	})

	if len(out.Players) > 0 {
		top := out.Players[0]
		out.TopContributor = &top
	}
	for i := range out.Players {
		candidate := out.Players[i]
		if candidate.MatchesPlayed < reliableMinMatches {
			continue
		}
		if out.MostReliable == nil || candidate.WinRate > out.MostReliable.WinRate {
			c := candidate
			out.MostReliable = &c
		}
	}

	return out
}

func bucketIndex(goals int) int {
	if goals >= bucketOpenEnded {
		return bucketOpenEnded
	}
	if goals < 0 {
		return 0
	}
	return goals
}

func countResult(results []match.Result, want match.Result) int {
	n := 0
	for _, r := range results {
		if r == want {
			n++
		}
	}
	return n
}

func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1).
		InexactFloat64()
}

func ratio(part, total int, places int32) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(total))).
		Round(places).
		InexactFloat64()
}
