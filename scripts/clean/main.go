// Package main provides a script to clean up build and test artefacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	cleanDirs([]string{"bin"})
	if logFile := os.Getenv("CSTYLECHECK_LOG_FILE"); logFile != "" {
		cleanFiles([]string{logFile})
	}
	cleanPatterns([]string{"coverage*", "*.out", "*.test", "*.coverprofile"})
}

func cleanDirs(dirs []string) {
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			_, _ = fmt.Printf("❌ Failed to remove dir %s: %v\n", dir, err)
		} else {
			_, _ = fmt.Printf("✅ Removed dir %s\n", dir)
		}
	}
}

func cleanFiles(files []string) {
	for _, file := range files {
		err := os.Remove(file)
		switch {
		case err == nil:
			_, _ = fmt.Printf("✅ Removed file %s\n", file)
		case !os.IsNotExist(err):
			_, _ = fmt.Printf("❌ Failed to remove file %s: %v\n", file, err)
		}
	}
}

func cleanPatterns(patterns []string) {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			_, _ = fmt.Printf("❌ Failed to glob pattern %s: %v\n", pattern, err)
			continue
		}
		cleanFiles(matches)
	}
}
