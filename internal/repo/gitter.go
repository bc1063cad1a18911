// Package repo finds the files to check from a git repository.
package repo

// Gitter defines the interface for git repository operations.
type Gitter interface {
	// StagedFiles lists the files added, copied, modified or renamed in the index
	// whose extension is one of exts. Deleted files are never listed.
	StagedFiles(exts []string) ([]string, error)
}
