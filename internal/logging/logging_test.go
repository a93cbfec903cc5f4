package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("starting unit", "unit_id", "intro", "scheduled_time", 1500*time.Millisecond)

	output := buf.String()
	if !strings.Contains(output, "unit_id=intro") {
		t.Errorf("expected 'unit_id=intro' in output, got: %s", output)
	}
	if !strings.Contains(output, "scheduled_time=1.5s") {
		t.Errorf("expected 'scheduled_time=1.5s' in output, got: %s", output)
	}
}

func TestNew_JSONDurationsReadable(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "INFO", "JSON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("timeline complete", "relative_time", 2050*time.Millisecond, "count_units", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["relative_time"] != "2.05s" {
		t.Errorf("expected relative_time \"2.05s\", got %v", entry["relative_time"])
	}
	if entry["count_units"] != float64(3) {
		t.Errorf("expected count_units=3, got %v", entry["count_units"])
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("hidden")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info and debug filtered, got: %s", buf.String())
	}

	logger.Warn("timeline interrupted before completion")
	if buf.Len() == 0 {
		t.Fatal("expected warning logged")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		want   error
	}{
		{"bad level", "loud", "text", ErrUnknownLevel},
		{"empty level", "", "text", ErrUnknownLevel},
		{"bad format", "info", "xml", ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&bytes.Buffer{}, tt.level, tt.format)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInstall(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	if err := Install(&buf, "debug", "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slog.Debug("scheduled unit", "bucket", 2)
	if !strings.Contains(buf.String(), "bucket=2") {
		t.Fatalf("expected default logger replaced, got: %s", buf.String())
	}
}
