package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyballingall/cstylecheck/internal/check"
	"github.com/andyballingall/cstylecheck/internal/config"
	"github.com/andyballingall/cstylecheck/internal/fs"
	"github.com/andyballingall/cstylecheck/internal/repo"
	"github.com/andyballingall/cstylecheck/internal/report"
)

// Version is the current version of cstylecheck, set at build time.
var Version = "dev"

const InitCmdName = "init"

var LongDescription = `
cstylecheck checks C source and header files for two conventions that code
formatters leave alone:

  - header files (.h, .hpp) must carry a canonical include guard:
      #ifndef NAME_H
      #define NAME_H
      ...
      #endif /* NAME_H */
  - /*...*/ comments belong outside function and struct bodies unless they span
    several lines, and // comments belong inside them.

It is designed to run as a git pre-commit hook. It exits with status 1 when any
file fails a check and 2 when it is given nothing to check.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var (
		debug         bool
		verbose       bool
		staged        bool
		watch         bool
		includeGuards bool
		comments      bool
		configPath    pathValue
		jobs          = jobsValue(1)
	)

	rootCmd := &cobra.Command{
		Use:           "cstylecheck [flags] FILE...",
		Short:         "Check include guards and comment placement in C files",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Example: `
  cstylecheck src/*.c include/*.h
  cstylecheck --staged
  cstylecheck --comments=false include/list.h
  cstylecheck -j auto --verbose $(git ls-files '*.c' '*.h')`,
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case staged && len(args) > 0:
				return &UsageError{Reason: "--staged does not take file arguments"}
			case !staged && len(args) == 0:
				return &UsageError{}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion and init commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}

			if debug {
				ll.Set(slog.LevelDebug)
			}

			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				return nil
			}

			logger, closer, err := setupLogger(stderr, ll, env)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}
			lazy.SetCloser(closer)

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("cannot determine working directory: %w", err)
			}

			cfg, err := config.Load(wd, string(configPath), env)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("include-guards") {
				cfg.CheckIncludeGuards = includeGuards
			}
			if cmd.Flags().Changed("comments") {
				cfg.CheckComments = comments
			}

			mgr := NewCLIManager(
				logger,
				check.NewChecker(cfg),
				&report.TextReporter{Verbose: verbose},
				repo.NewCLIGitter(wd),
				cmd.OutOrStdout(),
			)
			mgr.SetJobs(int(jobs))
			lazy.SetInner(mgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if staged {
				var err error
				if files, err = lazy.StagedFiles(); err != nil {
					return err
				}
				if len(files) == 0 {
					return nil
				}
			}

			if watch {
				return lazy.WatchFiles(cmd.Context(), files, nil)
			}

			summary, err := lazy.CheckFiles(cmd.Context(), files)
			if err != nil {
				return err
			}
			if !summary.Passed() {
				return ErrViolations
			}
			return nil
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Reason: err.Error()}
	})

	f := rootCmd.Flags()
	f.BoolVar(&includeGuards, "include-guards", true, "Check include guards in header files (overrides env/config)")
	f.BoolVar(&comments, "comments", true, "Check comment placement (overrides env/config)")
	f.Var(&configPath, "config", "Configuration file (default "+config.File+" in the working directory)")
	f.BoolVar(&staged, "staged", false, "Check the C files staged in git instead of FILE arguments")
	f.VarP(&jobs, "jobs", "j", "Number of files to check at once, or 'auto'")
	f.BoolVarP(&watch, "watch", "w", false, "Re-check files whenever they are written")
	f.BoolVarP(&verbose, "verbose", "v", false, "Also report files that pass and a summary")

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	// Subcommands
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
