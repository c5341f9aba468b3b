package domain

type StoreResult struct {
	Path string
	// ClassCreated is true if the label directory didn't exist before this write.
	ClassCreated bool
}

type DatasetWriter interface {
	// EnsureRoot creates the dataset root (and parents) if needed and reports whether it already existed.
	EnsureRoot(targetDirectory string) (existed bool, err error)
	// Store writes `asset` to targetDirectory/label/originalFilename, creating the label directory on first use
	// and silently overwriting an existing file.
	Store(asset *ImageAsset, label, originalFilename, targetDirectory string) (StoreResult, error)
}
