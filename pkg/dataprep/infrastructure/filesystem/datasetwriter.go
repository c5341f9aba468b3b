package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"kgeyst.com/dataprep/pkg/dataprep/domain"
	"kgeyst.com/dataprep/pkg/dataprep/infrastructure/imaging"
)

const (
	directoryPermissions = 0755
	filePermissions      = 0644
)

type DatasetWriter struct{}

func NewDatasetWriter() *DatasetWriter {
	return &DatasetWriter{}
}

func (d *DatasetWriter) EnsureRoot(targetDirectory string) (bool, error) {
	existed, err := directoryExists(targetDirectory)
	if err != nil {
		return false, err
	}
	return existed, os.MkdirAll(targetDirectory, directoryPermissions)
}

func (d *DatasetWriter) Store(asset *domain.ImageAsset, label, originalFilename, targetDirectory string) (domain.StoreResult, error) {
	if !domain.IsValidLabel(label) {
		return domain.StoreResult{}, fmt.Errorf("%w: invalid label %q", domain.ErrStore, label)
	}
	classDirectory := filepath.Join(targetDirectory, label)
	existed, err := directoryExists(classDirectory)
	if err != nil {
		return domain.StoreResult{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	// MkdirAll is a no-op for a directory that exists (or was just created by someone else).
	err = os.MkdirAll(classDirectory, directoryPermissions)
	if err != nil {
		return domain.StoreResult{}, fmt.Errorf("%w: %v", domain.ErrStore, err)
	}
	path := filepath.Join(classDirectory, originalFilename)
	err = writeAtomically(path, func(writer io.Writer) error {
		return imaging.Encode(writer, asset)
	})
	if err != nil {
		if !existed {
			// Only removes the directory if it's still empty.
			_ = os.Remove(classDirectory)
		}
		return domain.StoreResult{}, fmt.Errorf("%w: %s: %v", domain.ErrStore, path, err)
	}
	return domain.StoreResult{
		Path:         path,
		ClassCreated: !existed,
	}, nil
}

func directoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s exists and is not a directory", path)
	}
	return true, nil
}

// writeAtomically writes into a temp file next to `path` and renames it over `path`, so readers never see
// a half-written file and an existing file is replaced in one step.
func writeAtomically(path string, write func(writer io.Writer) error) error {
	temp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := temp.Name()
	err = write(temp)
	closeErr := temp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tempPath, filePermissions)
	}
	if err == nil {
		err = os.Rename(tempPath, path)
	}
	if err != nil {
		_ = os.Remove(tempPath)
	}
	return err
}
