package common

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLogger(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewConsoleLogger(&buffer)

	logger.Info("processing cat001.png")
	logger.Warn("label unknown")
	logger.Error("decode failed")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buffer.String())
	}
	for i, want := range []string{"INFO  processing cat001.png", "WARN  label unknown", "ERROR decode failed"} {
		if !strings.HasSuffix(lines[i], want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	logger := NewFileLogger(path)

	logger.Info("first")
	logger.Warn("second")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "INFO  first") || !strings.Contains(string(content), "WARN  second") {
		t.Fatalf("unexpected log content %q", content)
	}
}
