package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kgeyst.com/dataprep/pkg/common"
)

type FileOutcome int

const (
	FileStored FileOutcome = iota
	FileSkipped
	FileFailed
)

// FileResult is where a single scanned file ended up.
type FileResult struct {
	Path         string
	Outcome      FileOutcome
	Label        string
	StatusCode   int
	StoredPath   string
	ClassCreated bool
}

// Pipeline turns a flat directory of raw images into a dataset tree with one subdirectory per label.
// Files are processed one at a time: transform, resolve the label, store. A file whose label is unknown
// is skipped with a warning; a file that hits a fault is logged and counted, and the run goes on.
type Pipeline struct {
	scanner       Scanner
	transformer   Transformer
	labelResolver LabelResolver
	datasetWriter DatasetWriter
	statistics    DatasetStatistics
	config        Config
	runID         string
	logger        common.Logger
}

func NewPipeline(
	scanner Scanner,
	transformer Transformer,
	labelResolver LabelResolver,
	datasetWriter DatasetWriter,
	statistics DatasetStatistics,
	config Config,
	runID string,
	logger common.Logger,
) *Pipeline {
	return &Pipeline{
		scanner:       scanner,
		transformer:   transformer,
		labelResolver: labelResolver,
		datasetWriter: datasetWriter,
		statistics:    statistics,
		config:        config,
		runID:         runID,
		logger:        logger,
	}
}

// Run processes every matching file of the source directory. The returned error is only set if the run
// itself couldn't go on (bad source directory, unwritable target, scan failure, cancellation); per-file
// faults are in the report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := newReport(p.runID, p.config)
	p.logger.Info(fmt.Sprintf("Run %s: iterating through %s files from %s", p.runID, p.config.Pattern(), p.config.SourceDirectory))
	err := checkSourceDirectory(p.config.SourceDirectory)
	if err != nil {
		return p.finish(report), err
	}
	existed, err := p.datasetWriter.EnsureRoot(p.config.TargetDirectory)
	if err != nil {
		return p.finish(report), fmt.Errorf("cannot create target directory: %w", err)
	}
	if existed {
		p.logger.Info("Target directory already exists. This run will update the existing dataset.")
	} else {
		p.logger.Info(fmt.Sprintf("Target directory %s did not exist and was created.", p.config.TargetDirectory))
	}
	for path, err := range p.scanner.Scan(p.config.SourceDirectory, p.config.Pattern()) {
		if err != nil {
			return p.finish(report), fmt.Errorf("cannot scan %s: %w", p.config.SourceDirectory, err)
		}
		if ctx.Err() != nil {
			report.Cancelled = true
			return p.finish(report), ctx.Err()
		}
		report.Scanned++
		result, err := p.ProcessFile(ctx, path)
		p.logResult(result, err)
		report.record(result, err)
	}
	return p.finish(report), nil
}

// ProcessFile runs a single file through transform, label lookup and store.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (FileResult, error) {
	p.logger.Info(fmt.Sprintf("Processing %s...", path))
	result := FileResult{
		Path:    path,
		Outcome: FileFailed,
	}
	asset, err := p.transformer.Transform(path, p.config.Width, p.config.Height)
	if err != nil {
		return result, err
	}
	labelResult, err := p.labelResolver.Resolve(ctx, p.config.APIURL, LookupKey(path))
	if err != nil {
		return result, err
	}
	result.StatusCode = labelResult.StatusCode
	if labelResult.Outcome == LabelNotFound {
		result.Outcome = FileSkipped
		return result, nil
	}
	storeResult, err := p.datasetWriter.Store(asset, labelResult.Label, filepath.Base(path), p.config.TargetDirectory)
	if err != nil {
		return result, err
	}
	p.statistics.Add(labelResult.Label, asset)
	result.Outcome = FileStored
	result.Label = labelResult.Label
	result.StoredPath = storeResult.Path
	result.ClassCreated = storeResult.ClassCreated
	return result, nil
}

func (p *Pipeline) logResult(result FileResult, err error) {
	switch result.Outcome {
	case FileStored:
		if result.ClassCreated {
			p.logger.Info(fmt.Sprintf("The label '%s' was not known in %s. Created the new class.", result.Label, p.config.TargetDirectory))
		}
		p.logger.Info(fmt.Sprintf("Succeeded processing and storing %s as %s", filepath.Base(result.Path), result.StoredPath))
	case FileSkipped:
		p.logger.Warn(fmt.Sprintf("The label of %s is not known by the label service %s (status %d). Going to the next file.", result.Path, p.config.APIURL, result.StatusCode))
	case FileFailed:
		p.logger.Error(fmt.Sprintf("Failed processing %s (%s): %s", result.Path, ClassifyFailure(err), err))
	}
}

func (p *Pipeline) finish(report *Report) *Report {
	report.Duration = time.Since(report.StartedAt)
	report.Statistics = p.statistics.Summary()
	p.logger.Info(fmt.Sprintf(
		"Run %s finished in %s: %d scanned, %d stored, %d unknown, %d failed",
		report.RunID,
		report.Duration.Round(time.Millisecond),
		report.Scanned,
		report.Stored,
		report.Unknown,
		report.FailureCount(),
	))
	if report.Stored > 0 {
		p.logger.Info(fmt.Sprintf("Labels: %s", strings.Join(report.LabelNames(), ", ")))
		p.logger.Info(fmt.Sprintf(
			"Dataset intensity: mean %.4f, standard deviation %.4f",
			report.Statistics.MeanIntensity,
			report.Statistics.StdDevIntensity,
		))
	}
	return report
}

func checkSourceDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source directory %s is not a directory", path)
	}
	return nil
}
