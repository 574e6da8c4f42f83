// Package archive builds and extracts directory archives.
//
// A directory cannot be downloaded or copied as-is, so it is first packed
// into an archive, with or without compression. The supported formats are
// zip and tar combined with gzip, bzip2, or xz; the short aliases accepted
// by ParseFormat match the extensions frontends commonly request (tgz,
// tbz2, txz, ...).
package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Format identifies a supported archive format, normalized to its
// canonical name.
type Format string

const (
	Zip    Format = "zip"
	TarGz  Format = "tar.gz"
	TarBz2 Format = "tar.bz2"
	TarXz  Format = "tar.xz"
)

// DefaultFormat is used when a caller does not specify one.
const DefaultFormat = Zip

// DefaultSizeLimit caps the total size of a directory being archived (1 GiB).
const DefaultSizeLimit int64 = 1 << 30

var (
	// ErrUnknownFormat indicates an archive format that is not supported.
	ErrUnknownFormat = errors.New("unknown archive format")

	// ErrSizeLimitExceeded indicates a directory larger than the configured
	// archiving limit.
	ErrSizeLimitExceeded = errors.New("directory exceeds archive size limit")

	// ErrUnsafePath indicates an archive entry whose name would escape the
	// extraction destination.
	ErrUnsafePath = errors.New("archive entry escapes destination")
)

// ParseFormat normalizes a format name or alias to its canonical Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "zip":
		return Zip, nil
	case "tgz", "tar.gz":
		return TarGz, nil
	case "tbz", "tbz2", "tar.bz", "tar.bz2":
		return TarBz2, nil
	case "txz", "tar.xz":
		return TarXz, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// pathExtensions maps file extensions to formats, longest first so
// ".tar.gz" wins over a hypothetical ".gz" suffix of the same name.
var pathExtensions = []struct {
	ext    string
	format Format
}{
	{".tar.gz", TarGz},
	{".tar.bz2", TarBz2},
	{".tar.bz", TarBz2},
	{".tar.xz", TarXz},
	{".tgz", TarGz},
	{".tbz2", TarBz2},
	{".tbz", TarBz2},
	{".txz", TarXz},
	{".zip", Zip},
}

// FormatFromPath detects the archive format from the extension chain of
// path (for example "notes.tar.gz" is TarGz).
func FormatFromPath(path string) (Format, error) {
	name := filepath.Base(path)
	for _, e := range pathExtensions {
		if strings.HasSuffix(name, e.ext) {
			return e.format, nil
		}
	}
	return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
}

// Extension returns the canonical file extension for the format, without a
// leading dot.
func (f Format) Extension() string {
	return string(f)
}

// DirSize returns the total size in bytes of all regular files under dir.
// Callers use it to enforce a size limit before archiving.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to measure %s: %w", dir, err)
	}
	return total, nil
}
