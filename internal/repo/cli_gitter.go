package repo

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/andyballingall/cstylecheck/internal/fs"
)

// canonicalPath is a variable to allow mocking in tests.
var canonicalPath = fs.CanonicalPath

// CLIGitter is the concrete implementation of Gitter using the git CLI.
type CLIGitter struct {
	dir string
}

// NewCLIGitter creates a CLIGitter operating on the repository containing dir.
// Returned paths are relative to dir where possible.
func NewCLIGitter(dir string) *CLIGitter {
	return &CLIGitter{dir: dir}
}

func (g *CLIGitter) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w (output: %s)",
			args[0], err, strings.TrimSpace(stderr.String()))
	}
	return out.String(), nil
}

// getGitRoot finds the top-level directory of the git repository.
func (g *CLIGitter) getGitRoot() (string, error) {
	out, err := g.git("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find git root: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// StagedFiles lists the staged files with one of the given extensions, in the
// order git reports them.
func (g *CLIGitter) StagedFiles(exts []string) ([]string, error) {
	base, err := canonicalPath(g.dir)
	if err != nil {
		return nil, err
	}

	root, err := g.getGitRoot()
	if err != nil {
		return nil, err
	}

	// With -z names are NUL-terminated and never C-quoted.
	out, err := g.git("diff", "--cached", "--name-only", "-z", "--diff-filter=ACMR")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, name := range strings.Split(out, "\x00") {
		if name == "" || !fs.HasExt(name, exts...) {
			continue
		}

		// git reports paths relative to the repository root.
		p := filepath.Join(root, filepath.FromSlash(name))
		if rel, rErr := filepath.Rel(base, p); rErr == nil {
			p = rel
		}
		files = append(files, p)
	}
	return files, nil
}
