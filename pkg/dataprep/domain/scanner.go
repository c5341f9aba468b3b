package domain

import "iter"

type Scanner interface {
	// Scan lazily yields the paths of the files directly inside `directory` whose names match the glob
	// `pattern`. No recursion and no particular order.
	Scan(directory, pattern string) iter.Seq2[string, error]
}
