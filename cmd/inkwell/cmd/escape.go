package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-fs/inkwell/pkg/pathenc"
)

var escapeCmd = &cobra.Command{
	Use:   "escape PATH",
	Short: "Percent-encode a path for use in a URL",
	Long: `Percent-encode every character of PATH outside the URL-safe set,
leaving '/' intact so the result is still a path.

Examples:
  inkwell escape '/this is a test/for spaces/'
  inkwell escape 'notebook with space.ipynb'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), pathenc.Escape(args[0]))
		return nil
	},
}

var unescapeCmd = &cobra.Command{
	Use:   "unescape PATH",
	Short: "Decode a percent-encoded path",
	Long: `Replace every %XX escape in PATH with the character it names.
Malformed escapes are passed through unchanged.

Examples:
  inkwell unescape 'notebook%20with%20space.ipynb'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), pathenc.Unescape(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(unescapeCmd)
}
