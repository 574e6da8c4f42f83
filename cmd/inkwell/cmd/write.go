package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inkwell-fs/inkwell/internal/logger"
	"github.com/inkwell-fs/inkwell/pkg/securefile"
)

var writeCmd = &cobra.Command{
	Use:   "write PATH",
	Short: "Write stdin to a file readable only by the owner",
	Long: `Write standard input to PATH with permissions restricted to the
owning user (mode 0600 on POSIX; an owner-plus-administrators ACL on
Windows). A pre-existing file is truncated and its permissions tightened,
whatever they were before.

Examples:
  echo 'secret' | inkwell write runtime/server-info.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, root, err := resolveTarget(args[0])
		if err != nil {
			return err
		}
		if err := ensureNotHidden(path, root); err != nil {
			return err
		}

		f, err := securefile.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		n, err := io.Copy(f, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}

		logger.Info("Wrote %d bytes to %s with owner-only permissions", n, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
