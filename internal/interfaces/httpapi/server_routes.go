package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /teams/create", handler.CreateTeam)
	mux.HandleFunc("POST /teams/login", handler.Login)
	mux.HandleFunc("GET /teams/{teamID}", handler.GetTeam)
	mux.Handle("PUT /teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /players/create", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("GET /players/team/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayersByTeam)))
	mux.Handle("GET /players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("PUT /players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("PUT /players/{playerID}/stats", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayerStats)))
	mux.Handle("DELETE /players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /matches/create", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	// GET /matches/team/{teamID} and GET /matches/{matchID}/detail overlap in
	// the mux, so both go through one pattern.
	mux.Handle("GET /matches/{scope}/{resource}", RequireAuth(verifier, http.HandlerFunc(handler.routeMatchRead)))
	mux.Handle("POST /matches/{matchID}/goals", RequireAuth(verifier, http.HandlerFunc(handler.AddGoal)))
	mux.Handle("PUT /matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMatch)))
}

func registerAnalyticsRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /analytics/team/{teamID}/overview", RequireAuth(verifier, http.HandlerFunc(handler.GetAnalyticsOverview)))
	mux.Handle("GET /analytics/team/{teamID}/goals-win-correlation", RequireAuth(verifier, http.HandlerFunc(handler.GetGoalsWinCorrelation)))
	mux.Handle("GET /analytics/team/{teamID}/conceded-loss-correlation", RequireAuth(verifier, http.HandlerFunc(handler.GetConcededLossCorrelation)))
	mux.Handle("GET /analytics/team/{teamID}/player-contributions", RequireAuth(verifier, http.HandlerFunc(handler.GetPlayerContributions)))
	mux.Handle("GET /analytics/team/{teamID}/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetAnalyticsDashboard)))
}
