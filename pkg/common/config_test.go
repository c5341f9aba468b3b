package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "apiURL: http://localhost:8080/images\nheight: 256\nrequestTimeout: 1500\nserverErrorsAsFailures: true\nratio: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if got := config.GetString("apiURL"); got != "http://localhost:8080/images" {
		t.Errorf("Expected apiURL to be read, got %q", got)
	}
	if got := config.GetIntOrDefault("height", 512); got != 256 {
		t.Errorf("Expected height 256, got %d", got)
	}
	if got := config.GetDurationOrDefault("requestTimeout", time.Second); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s timeout, got %v", got)
	}
	if !config.GetBoolOrDefault("serverErrorsAsFailures", false) {
		t.Error("Expected serverErrorsAsFailures to be true")
	}
}

func TestConfigDefaults(t *testing.T) {
	config := NewConfig(map[string]any{
		"height": "not a number",
		"flag":   "yes",
	})

	if got := config.GetStringOrDefault("missing", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := config.GetIntOrDefault("height", 512); got != 512 {
		t.Errorf("Expected default for a non-integer value, got %d", got)
	}
	if got := config.GetBoolOrDefault("flag", true); !got {
		t.Error("Expected default for a non-boolean value")
	}
	if got := config.GetDurationOrDefault("missing", 3*time.Second); got != 3*time.Second {
		t.Errorf("Expected default duration, got %v", got)
	}
}

func TestNewConfigNil(t *testing.T) {
	config := NewConfig(nil)
	if got := config.GetString("anything"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for a missing file")
	}
}

func TestGetDurationOrDefault(t *testing.T) {
	config := NewConfig(map[string]any{
		"milliseconds": 250,
		"text":         "45s",
		"negative":     -5,
		"garbage":      "soon",
	})

	cases := map[string]time.Duration{
		"milliseconds": 250 * time.Millisecond,
		"text":         45 * time.Second,
		"negative":     time.Minute,
		"garbage":      time.Minute,
		"missing":      time.Minute,
	}
	for key, expected := range cases {
		if got := config.GetDurationOrDefault(key, time.Minute); got != expected {
			t.Errorf("%s: expected %v, got %v", key, expected, got)
		}
	}
}
