package httpapi

import (
	"net/http"
)

func (h *Handler) GetAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnalyticsOverview")
	defer span.End()

	principal, teamID, err := analyticsScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	v, err := h.analyticsService.Overview(ctx, principal, teamID)
	if err != nil {
		h.fail(ctx, w, "analytics overview failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(v))
}

func (h *Handler) GetGoalsWinCorrelation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalsWinCorrelation")
	defer span.End()

	principal, teamID, err := analyticsScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	v, err := h.analyticsService.GoalsWinCorrelation(ctx, principal, teamID)
	if err != nil {
		h.fail(ctx, w, "goals win correlation failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, goalsWinCorrelationToDTO(v))
}

func (h *Handler) GetConcededLossCorrelation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConcededLossCorrelation")
	defer span.End()

	principal, teamID, err := analyticsScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	v, err := h.analyticsService.ConcededLossCorrelation(ctx, principal, teamID)
	if err != nil {
		h.fail(ctx, w, "conceded loss correlation failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, concededLossCorrelationToDTO(v))
}

func (h *Handler) GetPlayerContributions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerContributions")
	defer span.End()

	principal, teamID, err := analyticsScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	v, err := h.analyticsService.PlayerContributions(ctx, principal, teamID)
	if err != nil {
		h.fail(ctx, w, "player contributions failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerContributionsToDTO(v))
}

func (h *Handler) GetAnalyticsDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnalyticsDashboard")
	defer span.End()

	principal, teamID, err := analyticsScope(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	v, err := h.analyticsService.Dashboard(ctx, principal, teamID)
	if err != nil {
		h.fail(ctx, w, "analytics dashboard failed", err, "team_id", teamID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(v))
}

// analyticsScope returns the caller team id and the team id in the path.
func analyticsScope(r *http.Request) (int64, int64, error) {
	principal, err := requirePrincipal(r.Context())
	if err != nil {
		return 0, 0, err
	}
	teamID, err := pathID(r, "teamID")
	if err != nil {
		return 0, 0, err
	}
	return principal.TeamID, teamID, nil
}
