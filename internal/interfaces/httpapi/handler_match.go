package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	goals := make([]match.GoalInput, 0, len(req.Goals))
	for _, g := range req.Goals {
		goals = append(goals, g.toInput())
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		CallerTeamID:  principal.TeamID,
		TeamID:        req.TeamID,
		Date:          req.Date,
		Opponent:      req.Opponent,
		Score:         req.Score,
		PlayerIDs:     req.PlayerIDs,
		QuarterScores: quarterScoresFromRequest(req.QuarterScores),
		Goals:         goals,
	})
	if err != nil {
		h.fail(ctx, w, "create match failed", err, "team_id", req.TeamID, "caller_team_id", principal.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) ListMatchesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListByTeam(ctx, principal.TeamID, teamID)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "team_id", teamID)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) routeMatchRead(w http.ResponseWriter, r *http.Request) {
	scope, resource := r.PathValue("scope"), r.PathValue("resource")
	switch {
	case scope == "team":
		r.SetPathValue("teamID", resource)
		h.ListMatchesByTeam(w, r)
	case resource == "detail":
		r.SetPathValue("matchID", scope)
		h.GetMatchDetail(w, r)
	default:
		writeError(r.Context(), w, fmt.Errorf("%w: no route for %s", usecase.ErrNotFound, r.URL.Path))
	}
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchService.Detail(ctx, principal.TeamID, matchID)
	if err != nil {
		h.fail(ctx, w, "get match detail failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

func (h *Handler) AddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGoal")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req goalRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.MatchID != nil && *req.MatchID != matchID {
		writeError(ctx, w, fmt.Errorf("%w: body match_id %d does not match path match %d", usecase.ErrInvalidInput, *req.MatchID, matchID))
		return
	}

	goal, err := h.matchService.AddGoal(ctx, usecase.AddGoalInput{
		CallerTeamID: principal.TeamID,
		MatchID:      matchID,
		Goal:         req.toInput(),
	})
	if err != nil {
		h.fail(ctx, w, "add goal failed", err, "match_id", matchID, "player_id", req.PlayerID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, goalToDTO(goal))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := match.Patch{
		Date:     req.Date,
		Opponent: req.Opponent,
		Score:    req.Score,
	}
	if req.PlayerIDs != nil {
		patch.PlayerIDs = *req.PlayerIDs
		patch.ReplaceRoster = true
	}
	if req.QuarterScores != nil {
		patch.QuarterScores = quarterScoresFromRequest(*req.QuarterScores)
		patch.ReplaceScores = true
	}

	updated, err := h.matchService.Update(ctx, usecase.UpdateMatchInput{
		CallerTeamID: principal.TeamID,
		MatchID:      matchID,
		Patch:        patch,
	})
	if err != nil {
		h.fail(ctx, w, "update match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, principal.TeamID, matchID); err != nil {
		h.fail(ctx, w, "delete match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageResponse("match deleted"))
}
