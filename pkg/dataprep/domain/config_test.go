package domain

import (
	"strings"
	"testing"
	"time"

	"kgeyst.com/dataprep/pkg/common"
)

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig(common.NewConfig(map[string]any{
		ConfigKeyTargetDirectory: "dataset",
	}))

	if config.TargetDirectory != "dataset" {
		t.Errorf("unexpected target %q", config.TargetDirectory)
	}
	if config.SourceDirectory != DefaultSourceDirectory {
		t.Errorf("unexpected source %q", config.SourceDirectory)
	}
	if config.APIURL != DefaultAPIURL {
		t.Errorf("unexpected API URL %q", config.APIURL)
	}
	if config.Height != 512 || config.Width != 512 {
		t.Errorf("unexpected size %dx%d", config.Width, config.Height)
	}
	if config.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("unexpected timeout %v", config.RequestTimeout)
	}
	if config.Pattern() != "*.png" {
		t.Errorf("unexpected pattern %q", config.Pattern())
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected defaults to be valid, got %v", err)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	config := NewConfig(common.NewConfig(map[string]any{
		ConfigKeyTargetDirectory:        "out",
		ConfigKeyHeight:                 28,
		ConfigKeyWidth:                  32,
		ConfigKeyRequestTimeout:         250,
		ConfigKeyServerErrorsAsFailures: true,
		ConfigKeyExtension:              ".jpg",
	}))

	if config.Height != 28 || config.Width != 32 {
		t.Errorf("unexpected size %dx%d", config.Width, config.Height)
	}
	if config.RequestTimeout != 250*time.Millisecond {
		t.Errorf("unexpected timeout %v", config.RequestTimeout)
	}
	if !config.ServerErrorsAsFailures {
		t.Error("Expected server errors as failures")
	}
	if config.Pattern() != "*.jpg" {
		t.Errorf("unexpected pattern %q", config.Pattern())
	}
}

func TestValidate(t *testing.T) {
	config := Config{
		APIURL:         "not a url",
		Height:         0,
		Width:          512,
		Extension:      "png",
		RequestTimeout: 0,
		Interpolation:  "lanczos",
	}

	err := config.Validate()
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	for _, want := range []string{"target directory", "source directory", "dimensions", "extension", "API URL", "timeout", "interpolation"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in %q", want, err.Error())
		}
	}
}
