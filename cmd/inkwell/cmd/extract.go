package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkwell-fs/inkwell/internal/logger"
	"github.com/inkwell-fs/inkwell/pkg/archive"
)

var extractCmd = &cobra.Command{
	Use:   "extract ARCHIVE",
	Short: "Extract an archive next to itself",
	Long: `Extract ARCHIVE into its parent directory. The format is detected
from the file extension.

Entries with absolute names or names escaping the destination are
rejected before anything is written.

Examples:
  inkwell extract notebooks.tar.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, root, err := resolveTarget(args[0])
		if err != nil {
			return err
		}
		if err := ensureNotHidden(path, root); err != nil {
			return err
		}

		dest := filepath.Dir(path)
		logger.Info("Begin extraction of %s to %s", path, dest)

		if err := archive.Extract(path, dest); err != nil {
			return err
		}

		logger.Info("Finished extracting %s to %s", path, dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
