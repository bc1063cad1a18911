package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/cstylecheck/internal/fs"
)

// Run executes the command line in args. The returned error is nil when every file
// passed; use ExitCode to turn it into a process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}
	defer func() { _ = lazy.Close() }()

	if envProvider == nil {
		envProvider = fs.NewEnvProvider()
	}

	rootCmd := NewRootCmd(lazy, logLevel, stderr, envProvider)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Violations have already been reported on stdout.
		if errors.Is(err, ErrViolations) {
			return err
		}

		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)

		var uErr *UsageError
		if errors.As(err, &uErr) {
			fmt.Fprint(stdout, rootCmd.UsageString())
		}
		return err
	}

	return nil
}
