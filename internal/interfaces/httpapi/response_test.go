package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

func TestEnvelope_ExactlyOneOfDataOrError(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeSuccess(context.Background(), rec, http.StatusCreated, map[string]int64{"id": 7})

		var body map[string]any
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
		if rec.Code != http.StatusCreated || body["apiVersion"] != "2.0" {
			t.Fatalf("unexpected envelope: code=%d body=%v", rec.Code, body)
		}
		if _, ok := body["data"]; !ok {
			t.Fatalf("expected data key")
		}
		if _, ok := body["error"]; ok {
			t.Fatalf("unexpected error key")
		}
	})

	t.Run("error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, fmt.Errorf("%w: quarter must be >= 1", usecase.ErrInvalidInput))

		var body struct {
			APIVersion string           `json:"apiVersion"`
			Data       any              `json:"data"`
			Error      *googleErrorBody `json:"error"`
		}
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
		if rec.Code != http.StatusBadRequest || body.APIVersion != "2.0" || body.Data != nil {
			t.Fatalf("unexpected envelope: code=%d body=%+v", rec.Code, body)
		}
		if body.Error == nil || body.Error.Status != "INVALID_ARGUMENT" || body.Error.Code != http.StatusBadRequest {
			t.Fatalf("unexpected error body: %+v", body.Error)
		}
		if len(body.Error.Errors) != 1 || body.Error.Errors[0].Reason != "invalidInput" || body.Error.Errors[0].Domain != errorDomain {
			t.Fatalf("unexpected error items: %+v", body.Error.Errors)
		}
	})
}

func TestMapError_StatusTable(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid input", err: usecase.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCode: "INVALID_ARGUMENT"},
		{name: "unauthorized", err: usecase.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED"},
		{name: "forbidden", err: fmt.Errorf("%w: other team", usecase.ErrForbidden), wantStatus: http.StatusForbidden, wantCode: "PERMISSION_DENIED"},
		{name: "not found", err: usecase.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "conflict", err: fmt.Errorf("%w: name taken", usecase.ErrConflict), wantStatus: http.StatusConflict, wantCode: "ALREADY_EXISTS"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: "UNAVAILABLE"},
		{name: "unknown", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(context.Background(), tc.err)
			if got.HTTPStatus != tc.wantStatus || got.Status != tc.wantCode {
				t.Fatalf("mapError(%v) = %d %s, want %d %s", tc.err, got.HTTPStatus, got.Status, tc.wantStatus, tc.wantCode)
			}
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("pq: connection refused to 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.3") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}
