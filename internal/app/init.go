package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andyballingall/cstylecheck/internal/config"
)

// NewInitCmd returns a new cobra command for writing a default configuration file.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   InitCmdName + " [dirpath]",
		Short: "Write a default " + config.File,
		Long:  `Write a configuration file with every check enabled to the given directory, or the working directory.`,
		Args:  cobra.MaximumNArgs(1),
		Example: `
cstylecheck init
cstylecheck init ./firmware
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirpath := "."
			if len(args) > 0 {
				dirpath = args[0]
			}

			info, err := os.Stat(dirpath)
			if err != nil {
				return fmt.Errorf("cannot use directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("not a directory: %s", dirpath)
			}

			configPath := filepath.Join(dirpath, config.File)
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("configuration already exists: %s", configPath)
			}

			if err := os.WriteFile(configPath, []byte(config.DefaultConfigContent), 0o600); err != nil {
				return fmt.Errorf("failed to write configuration file: %w", err)
			}

			cmd.Printf("Created %s\n", configPath)
			return nil
		},
	}

	return cmd
}
