package archive

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Extract unpacks the archive at archivePath into dest, detecting the
// format from the file extension. Callers typically pass the archive's own
// parent directory as dest, so the archived directory reappears next to it.
//
// Entry names are validated before anything touches the disk: absolute
// names and names escaping dest through ".." are rejected with
// ErrUnsafePath. Non-regular entries other than directories are skipped.
func Extract(archivePath, dest string) error {
	format, err := FormatFromPath(archivePath)
	if err != nil {
		return err
	}

	if format == Zip {
		return extractZip(archivePath, dest)
	}
	return extractTar(archivePath, dest, format)
}

// entryTarget resolves an archive entry name inside dest, rejecting names
// that would land outside it.
func entryTarget(dest, name string) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}
	return filepath.Join(dest, local), nil
}

func extractZip(archivePath, dest string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archivePath, err)
	}
	defer func() { _ = r.Close() }()

	for _, entry := range r.File {
		target, err := entryTarget(dest, entry.Name)
		if err != nil {
			return err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
			continue
		}
		if !entry.FileInfo().Mode().IsRegular() {
			continue
		}

		src, err := entry.Open()
		if err != nil {
			return fmt.Errorf("failed to read %s from %s: %w", entry.Name, archivePath, err)
		}
		err = writeEntry(target, entry.FileInfo().Mode().Perm(), src)
		_ = src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTar(archivePath, dest string, format Format) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archivePath, err)
	}
	defer func() { _ = f.Close() }()

	var src io.Reader
	switch format {
	case TarGz:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to read gzip stream from %s: %w", archivePath, err)
		}
		defer func() { _ = gz.Close() }()
		src = gz
	case TarBz2:
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return fmt.Errorf("failed to read bzip2 stream from %s: %w", archivePath, err)
		}
		defer func() { _ = bz.Close() }()
		src = bz
	case TarXz:
		xr, err := xz.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to read xz stream from %s: %w", archivePath, err)
		}
		src = xr
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	tr := tar.NewReader(src)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", archivePath, err)
		}

		target, err := entryTarget(dest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := writeEntry(target, hdr.FileInfo().Mode().Perm(), tr); err != nil {
				return err
			}
		default:
			// Symlinks, devices and the like are not extracted.
		}
	}
}

// writeEntry materializes one regular archive entry on disk, creating
// parent directories as needed.
func writeEntry(target string, perm os.FileMode, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}

	if perm == 0 {
		perm = 0o644
	}
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to extract %s: %w", target, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to extract %s: %w", target, err)
	}
	return nil
}
