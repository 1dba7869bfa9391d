package httpapi

import (
	"strconv"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/analytics"
	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/usecase"
	"github.com/shopspring/decimal"
)

type createTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Type        string `json:"type" validate:"max=50"`
	Password    string `json:"password" validate:"required,min=4,max=72"`
}

// loginRequest tolerates the registration fields so clients can post the same
// body to both endpoints.
type loginRequest struct {
	Name        string `json:"name" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

type updateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Type        *string `json:"type,omitempty" validate:"omitempty,max=50"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=4,max=72"`
}

type createPlayerRequest struct {
	TeamID   int64  `json:"team_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=100"`
	Number   int    `json:"number" validate:"gte=0,lte=999"`
	Position string `json:"position" validate:"max=20"`
}

type updatePlayerRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Number   *int    `json:"number,omitempty" validate:"omitempty,gte=0,lte=999"`
	Position *string `json:"position,omitempty" validate:"omitempty,max=20"`
}

type updatePlayerStatsRequest struct {
	GoalCount   *int `json:"goal_count,omitempty"`
	AssistCount *int `json:"assist_count,omitempty"`
	MOMCount    *int `json:"mom_count,omitempty"`
}

type quarterScoreRequest struct {
	Quarter       int `json:"quarter"`
	OurScore      int `json:"our_score"`
	OpponentScore int `json:"opponent_score"`
}

// goalRequest leaves quarter and assist checks to the ledger so the error
// names the offending value.
type goalRequest struct {
	MatchID        *int64 `json:"match_id,omitempty"`
	PlayerID       int64  `json:"player_id" validate:"required"`
	AssistPlayerID *int64 `json:"assist_player_id,omitempty"`
	Quarter        int    `json:"quarter"`
}

type createMatchRequest struct {
	TeamID        int64                 `json:"team_id" validate:"required,gt=0"`
	Date          time.Time             `json:"date" validate:"required"`
	Opponent      string                `json:"opponent" validate:"required,max=100"`
	Score         string                `json:"score" validate:"max=20"`
	PlayerIDs     []int64               `json:"player_ids"`
	QuarterScores []quarterScoreRequest `json:"quarter_scores"`
	Goals         []goalRequest         `json:"goals" validate:"dive"`
}

type updateMatchRequest struct {
	Date          *time.Time             `json:"date,omitempty"`
	Opponent      *string                `json:"opponent,omitempty" validate:"omitempty,max=100"`
	Score         *string                `json:"score,omitempty" validate:"omitempty,max=20"`
	PlayerIDs     *[]int64               `json:"player_ids,omitempty"`
	QuarterScores *[]quarterScoreRequest `json:"quarter_scores,omitempty"`
}

func (r goalRequest) toInput() match.GoalInput {
	return match.GoalInput{
		PlayerID:       r.PlayerID,
		AssistPlayerID: r.AssistPlayerID,
		Quarter:        r.Quarter,
	}
}

func quarterScoresFromRequest(in []quarterScoreRequest) []match.QuarterScore {
	out := make([]match.QuarterScore, 0, len(in))
	for _, q := range in {
		out = append(out, match.QuarterScore{
			Quarter:       q.Quarter,
			OurScore:      q.OurScore,
			OpponentScore: q.OpponentScore,
		})
	}
	return out
}

type teamDTO struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	LogoURL     *string    `json:"logo_url"`
	ImageURL    *string    `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type tokenDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type playerDTO struct {
	ID          int64      `json:"id"`
	TeamID      int64      `json:"team_id"`
	Name        string     `json:"name"`
	Number      int        `json:"number"`
	Position    string     `json:"position"`
	GoalCount   int        `json:"goal_count"`
	AssistCount int        `json:"assist_count"`
	MOMCount    int        `json:"mom_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type matchDTO struct {
	ID          int64      `json:"id"`
	TeamID      int64      `json:"team_id"`
	Date        time.Time  `json:"date"`
	Opponent    string     `json:"opponent"`
	Score       string     `json:"score"`
	MOMPlayerID *int64     `json:"mom_player_id"`
	PlayerIDs   []int64    `json:"player_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type goalDTO struct {
	ID             int64      `json:"id"`
	MatchID        int64      `json:"match_id"`
	PlayerID       int64      `json:"player_id"`
	AssistPlayerID *int64     `json:"assist_player_id"`
	Quarter        int        `json:"quarter"`
	ScorerName     string     `json:"scorer_name"`
	AssistName     *string    `json:"assist_name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type quarterScoreDTO struct {
	ID            int64      `json:"id"`
	MatchID       int64      `json:"match_id"`
	Quarter       int        `json:"quarter"`
	OurScore      int        `json:"our_score"`
	OpponentScore int        `json:"opponent_score"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type matchDetailDTO struct {
	matchDTO
	Goals         []goalDTO                  `json:"goals"`
	QuarterScores map[string]quarterScoreDTO `json:"quarter_scores"`
	Players       []playerDTO                `json:"players"`
}

type matchRefDTO struct {
	MatchID int64 `json:"match_id"`
	Goals   int   `json:"goals"`
}

type overviewDTO struct {
	TotalMatches        int         `json:"total_matches"`
	Wins                int         `json:"wins"`
	Draws               int         `json:"draws"`
	Losses              int         `json:"losses"`
	WinRate             float64     `json:"win_rate"`
	AvgGoalsScored      float64     `json:"avg_goals_scored"`
	AvgGoalsConceded    float64     `json:"avg_goals_conceded"`
	HighestScoringMatch matchRefDTO `json:"highest_scoring_match"`
	MostConcededMatch   matchRefDTO `json:"most_conceded_match"`
}

type goalRangeDTO struct {
	Goals   string  `json:"goals"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

type goalsWinCorrelationDTO struct {
	GoalRanges     []goalRangeDTO `json:"goal_ranges"`
	OptimalGoals   int            `json:"optimal_goals"`
	AvgGoalsForWin float64        `json:"avg_goals_for_win"`
}

type concededRangeDTO struct {
	Conceded string  `json:"conceded"`
	Matches  int     `json:"matches"`
	Losses   int     `json:"losses"`
	LossRate float64 `json:"loss_rate"`
}

type concededLossCorrelationDTO struct {
	ConcededRanges     []concededRangeDTO `json:"conceded_ranges"`
	DangerThreshold    int                `json:"danger_threshold"`
	AvgConcededForLoss float64            `json:"avg_conceded_for_loss"`
}

type playerContributionDTO struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	MatchesPlayed     int     `json:"matches_played"`
	Wins              int     `json:"wins"`
	WinRate           float64 `json:"win_rate"`
	Goals             int     `json:"goals"`
	Assists           int     `json:"assists"`
	MOMCount          int     `json:"mom_count"`
	ContributionScore float64 `json:"contribution_score"`
	AvgGoalsPerMatch  float64 `json:"avg_goals_per_match"`
}

type playerContributionsDTO struct {
	Players        []playerContributionDTO `json:"players"`
	TopContributor map[string]string       `json:"top_contributor"`
	MostReliable   map[string]string       `json:"most_reliable"`
}

type dashboardDTO struct {
	Overview                overviewDTO                `json:"overview"`
	GoalsWinCorrelation     goalsWinCorrelationDTO     `json:"goals_win_correlation"`
	ConcededLossCorrelation concededLossCorrelationDTO `json:"conceded_loss_correlation"`
	PlayerContributions     playerContributionsDTO     `json:"player_contributions"`
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// updatedAt reports no update time for rows that were never modified.
func updatedAt(created, updated time.Time) *time.Time {
	if updated.IsZero() || updated.Equal(created) {
		return nil
	}
	return &updated
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Type:        v.Type,
		LogoURL:     optionalString(v.LogoURL),
		ImageURL:    optionalString(v.ImageURL),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   updatedAt(v.CreatedAt, v.UpdatedAt),
	}
}

func tokenToDTO(v usecase.AccessToken) tokenDTO {
	return tokenDTO{
		AccessToken: v.Token,
		TokenType:   v.TokenType,
		ExpiresAt:   v.ExpiresAt,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		Name:        v.Name,
		Number:      v.Number,
		Position:    v.Position,
		GoalCount:   v.GoalCount,
		AssistCount: v.AssistCount,
		MOMCount:    v.MOMCount,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   updatedAt(v.CreatedAt, v.UpdatedAt),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func matchToDTO(v match.Match) matchDTO {
	ids := v.PlayerIDs
	if ids == nil {
		ids = []int64{}
	}
	return matchDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		Date:        v.Date,
		Opponent:    v.Opponent,
		Score:       v.Score,
		MOMPlayerID: v.MOMPlayerID,
		PlayerIDs:   ids,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   updatedAt(v.CreatedAt, v.UpdatedAt),
	}
}

func goalToDTO(v match.Goal) goalDTO {
	out := goalDTO{
		ID:             v.ID,
		MatchID:        v.MatchID,
		PlayerID:       v.PlayerID,
		AssistPlayerID: v.AssistPlayerID,
		Quarter:        v.Quarter,
		ScorerName:     v.ScorerName,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      updatedAt(v.CreatedAt, v.UpdatedAt),
	}
	if v.AssistPlayerID != nil || v.AssistName != "" {
		out.AssistName = optionalString(v.AssistName)
	}
	return out
}

func quarterScoreToDTO(v match.QuarterScore) quarterScoreDTO {
	return quarterScoreDTO{
		ID:            v.ID,
		MatchID:       v.MatchID,
		Quarter:       v.Quarter,
		OurScore:      v.OurScore,
		OpponentScore: v.OpponentScore,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     updatedAt(v.CreatedAt, v.UpdatedAt),
	}
}

func matchDetailToDTO(v usecase.MatchDetail) matchDetailDTO {
	out := matchDetailDTO{
		matchDTO:      matchToDTO(v.Match),
		Goals:         make([]goalDTO, 0, len(v.Goals)),
		QuarterScores: make(map[string]quarterScoreDTO, len(v.QuarterScores)),
		Players:       playersToDTO(v.Players),
	}
	for _, g := range v.Goals {
		out.Goals = append(out.Goals, goalToDTO(g))
	}
	for _, q := range v.QuarterScores {
		out.QuarterScores[strconv.Itoa(q.Quarter)] = quarterScoreToDTO(q)
	}
	return out
}

func overviewToDTO(v analytics.Overview) overviewDTO {
	return overviewDTO{
		TotalMatches:        v.TotalMatches,
		Wins:                v.Wins,
		Draws:               v.Draws,
		Losses:              v.Losses,
		WinRate:             v.WinRate,
		AvgGoalsScored:      v.AvgGoalsScored,
		AvgGoalsConceded:    v.AvgGoalsConceded,
		HighestScoringMatch: matchRefDTO{MatchID: v.HighestScoringMatch.MatchID, Goals: v.HighestScoringMatch.Goals},
		MostConcededMatch:   matchRefDTO{MatchID: v.MostConcededMatch.MatchID, Goals: v.MostConcededMatch.Goals},
	}
}

func goalsWinCorrelationToDTO(v analytics.GoalsWinCorrelation) goalsWinCorrelationDTO {
	out := goalsWinCorrelationDTO{
		GoalRanges:     make([]goalRangeDTO, 0, len(v.GoalRanges)),
		OptimalGoals:   v.OptimalGoals,
		AvgGoalsForWin: v.AvgGoalsForWin,
	}
	for _, r := range v.GoalRanges {
		out.GoalRanges = append(out.GoalRanges, goalRangeDTO{
			Goals:   r.Goals,
			Matches: r.Matches,
			Wins:    r.Wins,
			WinRate: r.WinRate,
		})
	}
	return out
}

func concededLossCorrelationToDTO(v analytics.ConcededLossCorrelation) concededLossCorrelationDTO {
	out := concededLossCorrelationDTO{
		ConcededRanges:     make([]concededRangeDTO, 0, len(v.ConcededRanges)),
		DangerThreshold:    v.DangerThreshold,
		AvgConcededForLoss: v.AvgConcededForLoss,
	}
	for _, r := range v.ConcededRanges {
		out.ConcededRanges = append(out.ConcededRanges, concededRangeDTO{
			Conceded: r.Conceded,
			Matches:  r.Matches,
			Losses:   r.Losses,
			LossRate: r.LossRate,
		})
	}
	return out
}

func playerContributionsToDTO(v analytics.PlayerContributions) playerContributionsDTO {
	out := playerContributionsDTO{
		Players:        make([]playerContributionDTO, 0, len(v.Players)),
		TopContributor: map[string]string{"name": "", "score": "0"},
		MostReliable:   map[string]string{"name": "", "win_rate": "0"},
	}
	for _, p := range v.Players {
		out.Players = append(out.Players, playerContributionDTO{
			ID:                p.PlayerID,
			Name:              p.Name,
			MatchesPlayed:     p.MatchesPlayed,
			Wins:              p.Wins,
			WinRate:           p.WinRate,
			Goals:             p.Goals,
			Assists:           p.Assists,
			MOMCount:          p.MOMCount,
			ContributionScore: p.ContributionScore,
			AvgGoalsPerMatch:  p.AvgGoalsPerMatch,
		})
	}
	if top := v.TopContributor; top != nil {
		out.TopContributor = map[string]string{"name": top.Name, "score": decimal.NewFromFloat(top.ContributionScore).String()}
	}
	if reliable := v.MostReliable; reliable != nil {
		out.MostReliable = map[string]string{"name": reliable.Name, "win_rate": decimal.NewFromFloat(reliable.WinRate).String()}
	}
	return out
}

func dashboardToDTO(v analytics.Dashboard) dashboardDTO {
	return dashboardDTO{
		Overview:                overviewToDTO(v.Overview),
		GoalsWinCorrelation:     goalsWinCorrelationToDTO(v.GoalsWinCorrelation),
		ConcededLossCorrelation: concededLossCorrelationToDTO(v.ConcededLossCorrelation),
		PlayerContributions:     playerContributionsToDTO(v.PlayerContributions),
	}
}
