package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WarnContextCarriesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	ctx := ContextWithRequestID(context.Background(), "req-42")
	logger.WarnContext(ctx, "player counter clamped at zero", "player_id", int64(7), "counter", "goal_count", "attempted", -1)

	entries := logs.FilterMessage("player counter clamped at zero").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-42" {
		t.Fatalf("unexpected request_id: %v", fields["request_id"])
	}
	if fields["counter"] != "goal_count" {
		t.Fatalf("unexpected counter: %v", fields["counter"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected level: %v", entries[0].Level)
	}
}

func TestLogger_ErrorValuesAreNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Error("commit failed", "error", errors.New("connection reset"))

	fields := logs.All()[0].ContextMap()
	if fields["error"] != "connection reset" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_NewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("ignored")
	logger.Warn("kept", "team_id", 3)

	out := buf.String()
	if strings.Contains(out, "ignored") {
		t.Fatalf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) || !strings.Contains(out, `"team_id":3`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "", want: LevelInfo},
		{in: "DEBUG", want: LevelDebug},
		{in: " warn ", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseLevel(%q)=%v,%v want=%v", tc.in, got, err, tc.want)
		}
	}
}
