package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"", LevelWarn, false},       // empty defaults to warn
		{"DEBUG", LevelDebug, false}, // case-insensitive
		{"invalid", 0, true},
		{"fatal", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) should return error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// capture redirects global output for the duration of the test.
func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLevel := GlobalLevel()
	SetOutput(&buf)
	SetColored(false)
	SetGlobalLevel(level)
	t.Cleanup(func() {
		SetOutput(nil)
		SetColored(true)
		SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelWarn)
	log := New("guard")

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	log.Warn("shown %s", "warn")
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] [guard] shown warn") {
		t.Errorf("missing warn line:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] [guard] shown error") {
		t.Errorf("missing error line:\n%s", out)
	}
}

func TestDefaultLevelIsSilentBelowWarn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	if GlobalLevel() != LevelWarn {
		t.Fatalf("default level = %d, want LevelWarn", GlobalLevel())
	}
	New("x").Debug("not shown")
	if buf.Len() != 0 {
		t.Errorf("debug output at default level: %q", buf.String())
	}
}

func TestTraceEnabled(t *testing.T) {
	buf := capture(t, LevelTrace)
	New("git").Trace("running %s", "diff")
	if !strings.Contains(buf.String(), "[TRACE] [git] running diff") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
