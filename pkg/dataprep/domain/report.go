package domain

import (
	"sort"
	"time"
)

type FailedFile struct {
	Path  string      `yaml:"path"`
	Kind  FailureKind `yaml:"kind"`
	Error string      `yaml:"error"`
}

type UnknownFile struct {
	Path       string `yaml:"path"`
	StatusCode int    `yaml:"statusCode"`
}

// Report summarizes one run. It's filled in by Pipeline.Run and optionally written next to the dataset.
type Report struct {
	RunID           string              `yaml:"runID"`
	StartedAt       time.Time           `yaml:"startedAt"`
	Duration        time.Duration       `yaml:"duration"`
	SourceDirectory string              `yaml:"sourceDirectory"`
	TargetDirectory string              `yaml:"targetDirectory"`
	Scanned         int                 `yaml:"scanned"`
	Stored          int                 `yaml:"stored"`
	Unknown         int                 `yaml:"unknown"`
	Failures        map[FailureKind]int `yaml:"failures,omitempty"`
	Labels          map[string]int      `yaml:"labels,omitempty"`
	CreatedLabels   []string            `yaml:"createdLabels,omitempty"`
	UnknownFiles    []UnknownFile       `yaml:"unknownFiles,omitempty"`
	FailedFiles     []FailedFile        `yaml:"failedFiles,omitempty"`
	Statistics      DatasetSummary      `yaml:"statistics"`
	Cancelled       bool                `yaml:"cancelled,omitempty"`
}

func newReport(runID string, config Config) *Report {
	return &Report{
		RunID:           runID,
		StartedAt:       time.Now(),
		SourceDirectory: config.SourceDirectory,
		TargetDirectory: config.TargetDirectory,
		Failures:        make(map[FailureKind]int),
		Labels:          make(map[string]int),
	}
}

// FailureCount is the number of files that hit a fault. Unknown labels are not faults.
func (r *Report) FailureCount() int {
	count := 0
	for _, n := range r.Failures {
		count += n
	}
	return count
}

func (r *Report) HasFailures() bool {
	return r.FailureCount() > 0
}

// LabelNames returns the labels stored during the run, sorted.
func (r *Report) LabelNames() []string {
	names := make([]string, 0, len(r.Labels))
	for name := range r.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Report) record(result FileResult, err error) {
	switch result.Outcome {
	case FileStored:
		r.Stored++
		r.Labels[result.Label]++
		if result.ClassCreated {
			r.CreatedLabels = append(r.CreatedLabels, result.Label)
		}
	case FileSkipped:
		r.Unknown++
		r.UnknownFiles = append(r.UnknownFiles, UnknownFile{
			Path:       result.Path,
			StatusCode: result.StatusCode,
		})
	case FileFailed:
		kind := ClassifyFailure(err)
		r.Failures[kind]++
		r.FailedFiles = append(r.FailedFiles, FailedFile{
			Path:  result.Path,
			Kind:  kind,
			Error: err.Error(),
		})
	}
}
