package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"kgeyst.com/dataprep/pkg/common"
	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

// parseConfig builds the run configuration: defaults, then the optional yaml file, then the flags that were
// set explicitly.
func parseConfig(args []string, output io.Writer) (domain.Config, error) {
	flags := flag.NewFlagSet("dataprep", flag.ContinueOnError)
	flags.SetOutput(output)
	configPath := flags.String("config", "", "yaml file with default values for the options below")
	targetDirectory := flags.String("target-directory", "", "dataset root; created if absent (required)")
	sourceDirectory := flags.String("source-directory", domain.DefaultSourceDirectory, "directory with the raw images")
	apiURL := flags.String("api-url", domain.DefaultAPIURL, "base URL of the label service")
	height := flags.Int("height", domain.DefaultHeight, "target height in pixels")
	width := flags.Int("width", domain.DefaultWidth, "target width in pixels")
	extension := flags.String("extension", domain.DefaultExtension, "extension of the files to process")
	timeout := flags.Duration("timeout", domain.DefaultRequestTimeout, "timeout of a single label lookup")
	interpolation := flags.String("interpolation", domain.DefaultInterpolation, "resize interpolation: nearest, approxbilinear, bilinear or catmullrom")
	serverErrorsAsFailures := flags.Bool("server-errors-as-failures", false, "count 5xx responses as failures instead of unknown labels")
	logPath := flags.String("log-path", "", "log file (logs to the console if empty)")
	reportPath := flags.String("report", "", "write a yaml run report to this path")
	err := flags.Parse(args)
	if err != nil {
		return domain.Config{}, err
	}
	if flags.NArg() > 0 {
		return domain.Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}
	values := common.NewConfig(nil)
	if *configPath != "" {
		values, err = common.LoadConfig(*configPath)
		if err != nil {
			return domain.Config{}, fmt.Errorf("cannot load %s: %w", *configPath, err)
		}
	}
	config := domain.NewConfig(values)
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target-directory":
			config.TargetDirectory = *targetDirectory
		case "source-directory":
			config.SourceDirectory = *sourceDirectory
		case "api-url":
			config.APIURL = *apiURL
		case "height":
			config.Height = *height
		case "width":
			config.Width = *width
		case "extension":
			config.Extension = *extension
		case "timeout":
			config.RequestTimeout = *timeout
		case "interpolation":
			config.Interpolation = *interpolation
		case "server-errors-as-failures":
			config.ServerErrorsAsFailures = *serverErrorsAsFailures
		case "log-path":
			config.LogPath = *logPath
		case "report":
			config.ReportPath = *reportPath
		}
	})
	config.TargetDirectory, err = absolutePath(config.TargetDirectory)
	if err != nil {
		return domain.Config{}, err
	}
	config.SourceDirectory, err = absolutePath(config.SourceDirectory)
	if err != nil {
		return domain.Config{}, err
	}
	return config, nil
}

func absolutePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return filepath.Abs(path)
}
