package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"kgeyst.com/dataprep/pkg/dataprep/domain"
)

// WriteReport saves the run report as yaml.
func WriteReport(path string, report *domain.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	err = os.MkdirAll(filepath.Dir(path), directoryPermissions)
	if err != nil {
		return err
	}
	return writeAtomically(path, func(writer io.Writer) error {
		_, err := writer.Write(data)
		return err
	})
}
