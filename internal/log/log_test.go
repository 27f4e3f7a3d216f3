package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"trace", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if want := tt.in != "" && tt.in != "trace"; ValidLevel(tt.in) != want {
			t.Errorf("ValidLevel(%q) = %v, want %v", tt.in, !want, want)
		}
	}
}

func TestNewJSONLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "info")

	l.Debug().Msg("hidden")
	l.Info().Str("language", "english").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["message"] != "shown" || entry["language"] != "english" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry has no timestamp")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "warn")
	l.Info().Msg("quiet")
	l.Warn().Msg("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Errorf("output = %q", out)
	}
}

func withLogger(t *testing.T, l zerolog.Logger) {
	t.Helper()
	prev := Logger
	Logger = l
	initComponentLoggers()
	t.Cleanup(func() {
		Logger = prev
		initComponentLoggers()
	})
}

func TestComponentLoggers(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, NewJSONLogger(&buf, "debug"))

	Codec.Info().Msg("a")
	logger := WithLanguage("czech")
	logger.Info().Msg("b")

	out := buf.String()
	if !strings.Contains(out, `"component":"codec"`) {
		t.Errorf("codec logger missing component: %s", out)
	}
	if !strings.Contains(out, `"component":"wordlist","language":"czech"`) {
		t.Errorf("language logger missing fields: %s", out)
	}
}

func TestBenchmark(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, NewJSONLogger(&buf, "debug"))

	done := Benchmark("seed")
	done()

	if !strings.Contains(buf.String(), `"operation":"seed"`) {
		t.Errorf("benchmark entry missing: %s", buf.String())
	}
}

func TestInit_File(t *testing.T) {
	withLogger(t, Logger)
	path := filepath.Join(t.TempDir(), "mnemonic.log")

	if err := Init("info", true, path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	CLI.Debug().Msg("dropped")
	CLI.Info().Msg("kept")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"message":"kept"`) {
		t.Errorf("log file = %q", out)
	}
	if !strings.Contains(out, `"component":"cli"`) {
		t.Errorf("log file has no component: %q", out)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("log file mode = %v, want owner-only", perm)
	}
}

func TestInit_BadFile(t *testing.T) {
	withLogger(t, Logger)
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	if err := Init("info", false, path); err == nil {
		t.Error("Init() should fail for an unwritable path")
	}
}
