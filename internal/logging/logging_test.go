package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := WithComponent(NewLogger(&buf, "info"), "generator")
	logger.Debug("hidden")
	logger.Info("script generated", "scenes", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "script generated" || entry["component"] != "generator" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closer, err := OpenFile(dir, "debug")
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if !bytes.Contains(data, []byte(`"msg":"hello"`)) {
		t.Errorf("Expected entry in log file, got %q", data)
	}
}

func TestSanitizeKey(t *testing.T) {
	if got := SanitizeKey("short"); got != "****" {
		t.Errorf("SanitizeKey(short) = %q", got)
	}
	if got := SanitizeKey("AIzaSyExampleKey1234"); got != "AIza...1234" {
		t.Errorf("SanitizeKey(long) = %q", got)
	}
}
