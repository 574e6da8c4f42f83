package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkwell-fs/inkwell/internal/logger"
	"github.com/inkwell-fs/inkwell/pkg/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Secure local-file utilities for notebook-style servers",
	Long: `inkwell handles the file plumbing a notebook-style server needs:
percent-encoding of path segments, hidden-entry detection, owner-only
secure file writes, and directory archiving.

Every command resolves relative paths against files.root from the
configuration and refuses hidden targets unless files.allow_hidden is set.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = "DEBUG"
		}
		if err := logger.Configure(level, cfg.Logging.Output); err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// resolveTarget turns a command argument into an absolute path plus the
// root it should be classified against. Relative arguments resolve under
// files.root the way a server resolves request paths against its root
// directory; absolute arguments are classified against the filesystem root.
func resolveTarget(arg string) (path, root string, err error) {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg), "", nil
	}

	root, err = filepath.Abs(cfg.Files.Root)
	if err != nil {
		return "", "", fmt.Errorf("resolve files.root: %w", err)
	}
	return filepath.Join(root, arg), root, nil
}
