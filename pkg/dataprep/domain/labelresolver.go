package domain

import "context"

type LabelResolver interface {
	// Resolve asks the label service at `apiBaseURL` for the label of `key`. An unknown key is a
	// LabelNotFound result, not an error.
	Resolve(ctx context.Context, apiBaseURL, key string) (LabelResult, error)
}
