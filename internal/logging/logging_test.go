package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "text", want: FormatText},
		{in: "TINT", want: FormatText},
		{in: "human", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "auto", want: FormatAuto},
		{in: "", want: FormatAuto},
		{in: "xml", want: FormatAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "loud", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		interactive bool
		longRunning bool
		want        slog.Level
	}{
		{name: "one-shot default", want: slog.LevelWarn},
		{name: "one-shot on terminal", interactive: true, want: slog.LevelWarn},
		{name: "daemon default", longRunning: true, want: slog.LevelInfo},
		{name: "daemon on terminal", interactive: true, longRunning: true, want: slog.LevelDebug},
		{name: "explicit wins", in: "error", interactive: true, longRunning: true, want: slog.LevelError},
		{name: "explicit one-shot", in: "debug", want: slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFor(tt.in, tt.interactive, tt.longRunning); got != tt.want {
				t.Errorf("LevelFor(%q, %v, %v) = %s, want %s", tt.in, tt.interactive, tt.longRunning, got, tt.want)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, FormatAuto, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("clipboard captured", "type", "Text")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("non-TTY auto output is not JSON: %v", err)
	}
	if rec["msg"] != "clipboard captured" || rec["type"] != "Text" {
		t.Errorf("record = %v", rec)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, FormatText, slog.LevelDebug).Debug("sampling", "iter", 1)
	out := buf.String()
	if !strings.Contains(out, "sampling") || strings.HasPrefix(out, "{") {
		t.Errorf("text output = %q", out)
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) = true")
	}
}
