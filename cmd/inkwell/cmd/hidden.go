package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-fs/inkwell/internal/logger"
	"github.com/inkwell-fs/inkwell/pkg/hidden"
)

var hiddenLeafOnly bool

var hiddenCmd = &cobra.Command{
	Use:   "hidden PATH",
	Short: "Report whether a path is hidden",
	Long: `Report whether PATH is hidden: true when any component below the
root starts with a dot or carries the platform hidden attribute.

With --leaf, only the final path component is checked, the way a server
decides whether a single directory entry should appear in a listing.

Relative paths are resolved and classified against files.root.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, root, err := resolveTarget(args[0])
		if err != nil {
			return err
		}

		var isHidden bool
		if hiddenLeafOnly {
			isHidden, err = hidden.IsFileHidden(path, nil)
		} else {
			isHidden, err = hidden.IsHidden(path, root)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), isHidden)
		return nil
	},
}

// ensureNotHidden enforces the files.allow_hidden policy before a command
// touches path. Hidden targets are refused, the same gate the original
// file-serving handlers apply before serving anything.
func ensureNotHidden(path, root string) error {
	if cfg.Files.AllowHidden {
		return nil
	}

	isHidden, err := hidden.IsHidden(path, root)
	if err != nil {
		return err
	}
	if isHidden {
		logger.Info("Refusing to operate on hidden path %s", path)
		return fmt.Errorf("%s is hidden (set files.allow_hidden to override)", path)
	}
	return nil
}

func init() {
	hiddenCmd.Flags().BoolVar(&hiddenLeafOnly, "leaf", false, "check only the final path component")
	rootCmd.AddCommand(hiddenCmd)
}
