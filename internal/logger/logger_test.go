package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init("debug", ""); err != nil {
		t.Fatal(err)
	}
	if Log == nil || Sugar == nil {
		t.Fatal("Init left loggers nil")
	}
	Sugar.Debugw("console only", "key", "value")
	Sync()
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clsurf.log")
	if err := Init("info", path); err != nil {
		t.Fatal(err)
	}

	Sugar.Infow("surface built", "vertices", 25)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "surface built") {
		t.Errorf("log file missing entry, got: %q", data)
	}
}
