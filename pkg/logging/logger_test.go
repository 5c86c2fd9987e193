package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeEntry(t *testing.T, line []byte) LogEntry {
	t.Helper()
	var entry LogEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", line, err)
	}
	return entry
}

func TestJSONLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("computation finished",
		String("model", "steves-utility"),
		Int("nodes", 33))

	entry := decodeEntry(t, buf.Bytes())
	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "computation finished" {
		t.Errorf("Unexpected message: %s", entry.Message)
	}
	if entry.Fields["model"] != "steves-utility" {
		t.Errorf("Expected model field, got %v", entry.Fields)
	}
	if entry.Fields["nodes"] != float64(33) {
		t.Errorf("Expected nodes field 33, got %v", entry.Fields["nodes"])
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}
	entry := decodeEntry(t, []byte(lines[0]))
	if entry.Message != "kept" {
		t.Errorf("Expected only the warning, got %s", entry.Message)
	}
}

func TestJSONLogger_WithPresetsFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, InfoLevel)

	child := base.With(Component("centrality"))
	child.Info("run started", RunID("abc-123"))

	entry := decodeEntry(t, buf.Bytes())
	if entry.Fields["component"] != "centrality" {
		t.Errorf("Expected preset component field, got %v", entry.Fields)
	}
	if entry.Fields["run_id"] != "abc-123" {
		t.Errorf("Expected call-site run_id field, got %v", entry.Fields)
	}
}

func TestJSONLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.SetLevel(ErrorLevel)
	if logger.GetLevel() != ErrorLevel {
		t.Errorf("Expected ErrorLevel, got %v", logger.GetLevel())
	}
	logger.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected warning to be filtered, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	timer := StartTimer(logger, "betweenness pass", Model("test"))
	timer.End()

	entry := decodeEntry(t, buf.Bytes())
	if entry.Message != "betweenness pass" {
		t.Errorf("Unexpected message: %s", entry.Message)
	}
	if _, ok := entry.Fields["latency"]; !ok {
		t.Errorf("Expected latency field, got %v", entry.Fields)
	}
}

func TestTimedOperation_EndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	timer := StartTimer(logger, "load failed")
	timer.EndError(errors.New("boom"))

	entry := decodeEntry(t, buf.Bytes())
	if entry.Level != "ERROR" {
		t.Errorf("Expected ERROR level, got %s", entry.Level)
	}
	if entry.Fields["error"] != "boom" {
		t.Errorf("Expected error field, got %v", entry.Fields)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("goes nowhere")
	if logger.With(String("k", "v")).GetLevel() != InfoLevel {
		t.Error("Expected NopLogger to report InfoLevel")
	}
}
