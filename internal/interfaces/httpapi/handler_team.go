package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-stats/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Password:    req.Password,
	})
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "name", req.Name)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, err := h.teamService.Login(ctx, usecase.LoginInput{Name: req.Name, Password: req.Password})
	if err != nil {
		h.fail(ctx, w, "team login failed", err, "name", req.Name)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tokenToDTO(token))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
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

	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.Update(ctx, usecase.UpdateTeamInput{
		CallerTeamID: principal.TeamID,
		TeamID:       teamID,
		Name:         req.Name,
		Description:  req.Description,
		Type:         req.Type,
		Password:     req.Password,
	})
	if err != nil {
		h.fail(ctx, w, "update team failed", err, "team_id", teamID, "caller_team_id", principal.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
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

	if err := h.teamService.Delete(ctx, principal.TeamID, teamID); err != nil {
		h.fail(ctx, w, "delete team failed", err, "team_id", teamID, "caller_team_id", principal.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, messageResponse("team deleted"))
}
