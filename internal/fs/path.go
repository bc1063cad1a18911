package fs

import (
	"path/filepath"
)

// CanonicalPath returns the canonical, absolute path by resolving symlinks.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// HasExt reports whether path ends in one of the given extensions.
// Extensions are compared case-sensitively and must include the leading dot.
func HasExt(path string, exts ...string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
