package domain

import (
	"strings"

	"kgeyst.com/dataprep/pkg/common"
)

type LabelOutcome int

const (
	LabelFound LabelOutcome = iota
	LabelNotFound
)

func (o LabelOutcome) String() string {
	if o == LabelFound {
		return "found"
	}
	return "not found"
}

// LabelResult is what the label service said about a lookup key. Faults (network, malformed body)
// are reported as errors next to it, never as a LabelResult.
type LabelResult struct {
	Outcome    LabelOutcome
	Label      string
	StatusCode int
}

func Found(label string, statusCode int) LabelResult {
	return LabelResult{
		Outcome:    LabelFound,
		Label:      label,
		StatusCode: statusCode,
	}
}

func NotFound(statusCode int) LabelResult {
	return LabelResult{
		Outcome:    LabelNotFound,
		StatusCode: statusCode,
	}
}

// LookupKey is the file name without extension, case preserved and not escaped.
func LookupKey(path string) string {
	return common.FileStem(path)
}

// IsValidLabel reports whether `label` can be used as a dataset directory name: a single, non-empty path
// segment that doesn't point outside the dataset root.
func IsValidLabel(label string) bool {
	if label == "" || label == "." || label == ".." {
		return false
	}
	return !strings.ContainsAny(label, "/\\\x00")
}
