// Package main installs cstylecheck as the pre-commit hook of a git repository.
//
//	go run ./scripts/install-hook [-force] [repo-dir]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const hook = `#!/bin/sh
# Installed by cstylecheck. Checks the staged C source and header files.
exec cstylecheck --staged
`

var forceFlag = flag.Bool("force", false, "Replace an existing pre-commit hook")

func main() {
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	hooksDir, err := gitHooksDir(dir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	hookPath := filepath.Join(hooksDir, "pre-commit")
	if _, err := os.Stat(hookPath); err == nil && !*forceFlag {
		fmt.Printf("❌ %s already exists; rerun with -force to replace it\n", hookPath)
		os.Exit(1)
	}

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		fmt.Printf("❌ Failed to create %s: %v\n", hooksDir, err)
		os.Exit(1)
	}

	//nolint:gosec // hooks must be executable
	if err := os.WriteFile(hookPath, []byte(hook), 0o755); err != nil {
		fmt.Printf("❌ Failed to write hook: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Installed %s\n", hookPath)
	if _, err := exec.LookPath("cstylecheck"); err != nil {
		fmt.Println("cstylecheck is not on your PATH yet. Install it with:\n" +
			"  go install github.com/andyballingall/cstylecheck/cmd/cstylecheck@latest")
	}
}

// gitHooksDir returns the hooks directory of the repository containing dir.
func gitHooksDir(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-path", "hooks")
	cmd.Dir = dir
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("not a git repository: %s", strings.TrimSpace(stderr.String()))
	}

	p := strings.TrimSpace(out.String())
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return p, nil
}
