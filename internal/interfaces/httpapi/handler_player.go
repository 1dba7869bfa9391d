package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		CallerTeamID: principal.TeamID,
		TeamID:       req.TeamID,
		Name:         req.Name,
		Number:       req.Number,
		Position:     req.Position,
	})
	if err != nil {
		h.fail(ctx, w, "create player failed", err, "team_id", req.TeamID, "caller_team_id", principal.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
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

	players, err := h.playerService.ListByTeam(ctx, principal.TeamID, teamID)
	if err != nil {
		h.fail(ctx, w, "list players failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.playerService.Get(ctx, principal.TeamID, playerID)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, usecase.UpdatePlayerInput{
		CallerTeamID: principal.TeamID,
		PlayerID:     playerID,
		Patch: player.Patch{
			Name:     req.Name,
			Number:   req.Number,
			Position: req.Position,
		},
	})
	if err != nil {
		h.fail(ctx, w, "update player failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) UpdatePlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerStats")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePlayerStatsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdateStats(ctx, usecase.UpdatePlayerStatsInput{
		CallerTeamID: principal.TeamID,
		PlayerID:     playerID,
		Stats: player.StatsPatch{
			GoalCount:   req.GoalCount,
			AssistCount: req.AssistCount,
			MOMCount:    req.MOMCount,
		},
	})
	if err != nil {
		h.fail(ctx, w, "update player stats failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, principal.TeamID, playerID); err != nil {
		h.fail(ctx, w, "delete player failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageResponse("player deleted"))
}
