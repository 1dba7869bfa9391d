package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	const site = "https://club-stats.example.com"

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantVary   string
		nextCalled bool
	}{
		{name: "configured origin", allowed: []string{site}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, wantOrigin: site, wantVary: "Origin", nextCalled: true},
		{name: "wildcard", allowed: []string{" * "}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, wantOrigin: "*", nextCalled: true},
		{name: "unknown origin", allowed: []string{"https://coach.example.com"}, method: http.MethodGet, origin: site, wantStatus: http.StatusOK, nextCalled: true},
		{name: "no origin header", allowed: []string{site}, method: http.MethodGet, wantStatus: http.StatusOK, nextCalled: true},
		{name: "preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: site, wantStatus: http.StatusNoContent, wantOrigin: "*"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := CORS(tc.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tc.method, "/analytics/team/1/dashboard", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status: got %d want %d", rec.Code, tc.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin: got %q want %q", got, tc.wantOrigin)
			}
			if got := rec.Header().Get("Vary"); got != tc.wantVary {
				t.Fatalf("Vary: got %q want %q", got, tc.wantVary)
			}
			if called != tc.nextCalled {
				t.Fatalf("next called=%v want %v", called, tc.nextCalled)
			}
		})
	}
}

func TestCORS_ExposesRequestIDHeader(t *testing.T) {
	handler := CORS([]string{"https://club-stats.example.com"}, RequestID(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/matches/team/1", nil)
	req.Header.Set("Origin", "https://club-stats.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Expose-Headers"); got != requestIDHeader {
		t.Fatalf("unexpected Access-Control-Expose-Headers: %q", got)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected request id header on response")
	}
}
