package common

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/mvdan/xurls"
)

var imageExtensions = []string{
	".jpg",
	".jpeg",
	".png",
	".gif",
	".bmp",
	".tif",
	".tiff",
	".webp",
}

// IsImageExtension reports whether `extension` (with the leading dot) names a format we can decode.
func IsImageExtension(extension string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(extension))
}

// FileStem returns the file name of `path` without its last extension: "dir/abc123.png" -> "abc123".
// A dot file without another extension (".png") is its own stem.
func FileStem(path string) string {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return name
	}
	return stem
}

// IsWebURL returns true if the whole string is an absolute http(s) URL.
func IsWebURL(str string) bool {
	lower := strings.ToLower(str)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	return xurls.Strict.FindString(str) == str
}
