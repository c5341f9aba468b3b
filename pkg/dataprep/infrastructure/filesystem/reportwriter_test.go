package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	report := &domain.Report{
		RunID:    "run-1",
		Duration: 1500 * time.Millisecond,
		Scanned:  3,
		Stored:   2,
		Unknown:  1,
		Failures: map[domain.FailureKind]int{},
		Labels:   map[string]int{"cat": 1, "dog": 1},
		UnknownFiles: []domain.UnknownFile{
			{Path: "raw_images/unknown77.png", StatusCode: 404},
		},
	}

	if err := WriteReport(path, report); err != nil {
		t.Fatalf("WriteReport returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded["runID"] != "run-1" {
		t.Errorf("unexpected runID %#v", decoded["runID"])
	}
	if decoded["stored"] != 2 {
		t.Errorf("unexpected stored %#v", decoded["stored"])
	}
	if decoded["duration"] != "1.5s" {
		t.Errorf("unexpected duration %#v", decoded["duration"])
	}
	if _, ok := decoded["failures"]; ok {
		t.Error("Expected empty failures to be omitted")
	}
	labels, ok := decoded["labels"].(map[string]any)
	if !ok || labels["cat"] != 1 {
		t.Errorf("unexpected labels %#v", decoded["labels"])
	}
}
