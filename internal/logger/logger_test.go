package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNopBeforeInit(t *testing.T) {
	// Packages log through the global before any Init call.
	if Log == nil || Sugar == nil {
		t.Fatal("global logger should be installed at package init")
	}
	Info("logging before init must not panic")
}

func TestNewWithoutOutputs(t *testing.T) {
	l := New("debug", FileConfig{}, false)
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should discard everything")
	}
}

func TestNamed(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

	if err := InitWithFileConfig("info", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	Named("scene").Info("scene initialized")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "scene") || !strings.Contains(string(content), "scene initialized") {
		t.Errorf("named logger output missing component name: %q", content)
	}
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "frames.log")

	// 1 MB is the smallest size lumberjack rotates at.
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}

	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d: %s", i, payload)
	}
	Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("current log file: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var rotated []string
	for _, e := range entries {
		if name := e.Name(); name != "frames.log" && strings.HasPrefix(name, "frames-") {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) == 0 {
		t.Fatalf("no rotated files in %v", entries)
	}
	for _, name := range rotated {
		// frames-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(name, "-20") || !strings.HasSuffix(name, ".log") {
			t.Errorf("rotated file %q lacks a timestamp", name)
		}
	}
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	tests := []struct {
		level string
		from  int // index into all of the lowest level written
	}{
		{"debug", 0},
		{"info", 1},
		{"warn", 2},
		{"error", 3},
		{"verbose", 1}, // unknown levels fall back to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false); err != nil {
				t.Fatalf("InitWithFileConfig() error = %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			for i, lvl := range all {
				if got, want := strings.Contains(string(content), lvl), i >= tt.from; got != want {
					t.Errorf("%s present = %v, want %v", lvl, got, want)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("scenekit.log")
	want := FileConfig{Path: "scenekit.log", MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got != want {
		t.Errorf("DefaultFileConfig() = %+v, want %+v", got, want)
	}
}
