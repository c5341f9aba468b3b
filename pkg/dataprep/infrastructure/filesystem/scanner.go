package filesystem

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
)

const readDirBatchSize = 64

type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the directory in batches, so a huge source directory is never listed in memory at once.
// Subdirectories are skipped even if their name matches.
func (s *Scanner) Scan(directory, pattern string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		dir, err := os.Open(directory)
		if err != nil {
			yield("", err)
			return
		}
		defer func() {
			_ = dir.Close()
		}()
		for {
			entries, err := dir.ReadDir(readDirBatchSize)
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				matched, matchErr := filepath.Match(pattern, entry.Name())
				if matchErr != nil {
					yield("", matchErr)
					return
				}
				if !matched {
					continue
				}
				if !yield(filepath.Join(directory, entry.Name()), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
		}
	}
}
