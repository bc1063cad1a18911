package check

import (
	"github.com/andyballingall/cstylecheck/internal/fs"
)

// SourceExtensions lists the extensions picked up when files are discovered rather
// than named explicitly, e.g. from the git index.
var SourceExtensions = []string{".c", ".h", ".cpp", ".hpp"}

// SourceFile is a file read into memory, one entry per line with trailing
// whitespace removed.
type SourceFile struct {
	Path  string
	Lines []string
}

// Load reads the file at path. The file is closed before Load returns.
func Load(path string) (*SourceFile, error) {
	lines, err := fs.ReadLines(path)
	if err != nil {
		return nil, &ReadError{Path: path, Wrapped: err}
	}
	return &SourceFile{Path: path, Lines: lines}, nil
}
