package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-fs/inkwell/internal/logger"
	"github.com/inkwell-fs/inkwell/pkg/archive"
	"github.com/inkwell-fs/inkwell/pkg/securefile"
)

var (
	archiveFormat string
	archiveOutput string
)

var archiveCmd = &cobra.Command{
	Use:   "archive DIR",
	Short: "Pack a directory into an archive",
	Long: `Pack DIR into an archive. A directory cannot be downloaded or
copied as one object, so it is archived first, with or without compression
depending on the format.

The archive is written through the secure writer, so it is readable only
by the owning user until explicitly shared. Directories larger than
archive.size_limit are refused.

Supported formats: zip, tgz, tar.gz, tbz, tbz2, tar.bz, tar.bz2, txz, tar.xz.

Examples:
  inkwell archive notebooks
  inkwell archive notebooks --format tar.gz --output /tmp/notebooks.tar.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, root, err := resolveTarget(args[0])
		if err != nil {
			return err
		}
		if err := ensureNotHidden(dir, root); err != nil {
			return err
		}

		formatName := archiveFormat
		if formatName == "" {
			formatName = cfg.Archive.Format
		}
		format, err := archive.ParseFormat(formatName)
		if err != nil {
			return err
		}

		fi, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("stat %s: %w", dir, err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}

		size, err := archive.DirSize(dir)
		if err != nil {
			return err
		}
		if size > cfg.Archive.SizeLimit {
			return fmt.Errorf("%s is %d bytes with a limit of %d: %w",
				dir, size, cfg.Archive.SizeLimit, archive.ErrSizeLimitExceeded)
		}

		output := archiveOutput
		if output == "" {
			output = dir + "." + format.Extension()
		}

		logger.Info("Preparing %s for archiving", output)

		out, err := securefile.Create(output)
		if err != nil {
			return err
		}
		defer func() { _ = out.Close() }()

		if err := archive.WriteDir(out, dir, format); err != nil {
			return err
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", output, err)
		}

		logger.Info("Finished archiving %s", output)
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVarP(&archiveFormat, "format", "f", "", "archive format (default from config)")
	archiveCmd.Flags().StringVarP(&archiveOutput, "output", "o", "", "output file (default DIR.<format>)")
	rootCmd.AddCommand(archiveCmd)
}
