package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"kgeyst.com/dataprep/pkg/common"
)

const (
	ConfigKeyTargetDirectory        = "targetDirectory"
	ConfigKeySourceDirectory        = "sourceDirectory"
	ConfigKeyAPIURL                 = "apiURL"
	ConfigKeyHeight                 = "height"
	ConfigKeyWidth                  = "width"
	ConfigKeyExtension              = "extension"
	ConfigKeyRequestTimeout         = "requestTimeout"
	ConfigKeyInterpolation          = "interpolation"
	ConfigKeyServerErrorsAsFailures = "serverErrorsAsFailures"
	ConfigKeyLogPath                = "logPath"
	ConfigKeyReportPath             = "reportPath"
)

const (
	DefaultSourceDirectory = "./raw_images"
	DefaultAPIURL          = "https://my-json-server.typicode.com/Barchid/preprocessor_assignement/images"
	DefaultHeight          = 512
	DefaultWidth           = 512
	DefaultExtension       = ".png"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultInterpolation   = InterpolationCatmullRom
)

const (
	InterpolationNearest        = "nearest"
	InterpolationApproxBiLinear = "approxbilinear"
	InterpolationBiLinear       = "bilinear"
	InterpolationCatmullRom     = "catmullrom"
)

var interpolations = []string{
	InterpolationNearest,
	InterpolationApproxBiLinear,
	InterpolationBiLinear,
	InterpolationCatmullRom,
}

// Config is built once at startup and passed by value; nothing mutates it during a run.
type Config struct {
	TargetDirectory        string
	SourceDirectory        string
	APIURL                 string
	Height                 int
	Width                  int
	Extension              string
	RequestTimeout         time.Duration
	Interpolation          string
	ServerErrorsAsFailures bool
	LogPath                string
	ReportPath             string
}

// NewConfig reads the run configuration from `values`, falling back to defaults for anything not set.
func NewConfig(values *common.Config) Config {
	return Config{
		TargetDirectory:        values.GetString(ConfigKeyTargetDirectory),
		SourceDirectory:        values.GetStringOrDefault(ConfigKeySourceDirectory, DefaultSourceDirectory),
		APIURL:                 values.GetStringOrDefault(ConfigKeyAPIURL, DefaultAPIURL),
		Height:                 values.GetIntOrDefault(ConfigKeyHeight, DefaultHeight),
		Width:                  values.GetIntOrDefault(ConfigKeyWidth, DefaultWidth),
		Extension:              values.GetStringOrDefault(ConfigKeyExtension, DefaultExtension),
		RequestTimeout:         values.GetDurationOrDefault(ConfigKeyRequestTimeout, DefaultRequestTimeout),
		Interpolation:          values.GetStringOrDefault(ConfigKeyInterpolation, DefaultInterpolation),
		ServerErrorsAsFailures: values.GetBoolOrDefault(ConfigKeyServerErrorsAsFailures, false),
		LogPath:                values.GetString(ConfigKeyLogPath),
		ReportPath:             values.GetString(ConfigKeyReportPath),
	}
}

// Validate checks the values that don't need the filesystem; directories are checked when the run starts.
func (c Config) Validate() error {
	var errs []error
	if c.TargetDirectory == "" {
		errs = append(errs, errors.New("target directory is required"))
	}
	if c.SourceDirectory == "" {
		errs = append(errs, errors.New("source directory is required"))
	}
	if c.Height <= 0 || c.Width <= 0 {
		errs = append(errs, fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height))
	}
	if !common.IsImageExtension(c.Extension) {
		errs = append(errs, fmt.Errorf("unsupported extension %q", c.Extension))
	}
	if !common.IsWebURL(c.APIURL) {
		errs = append(errs, fmt.Errorf("API URL %q is not an absolute http(s) URL", c.APIURL))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %v", c.RequestTimeout))
	}
	if !slices.Contains(interpolations, c.Interpolation) {
		errs = append(errs, fmt.Errorf("unknown interpolation %q (expected one of %s)", c.Interpolation, strings.Join(interpolations, ", ")))
	}
	return errors.Join(errs...)
}

// Pattern is the glob the scanner matches file names against.
func (c Config) Pattern() string {
	return "*" + c.Extension
}
