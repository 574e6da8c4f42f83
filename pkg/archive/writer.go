package archive

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// Writer streams an archive to an underlying io.Writer, one file at a time.
//
// Exactly one of zw/tw is set, depending on the container format; for tar
// variants the compressor holds the compression layer that must be closed
// after the tar stream.
type Writer struct {
	zw         *zip.Writer
	tw         *tar.Writer
	compressor io.Closer
	closed     bool
}

// NewWriter wraps w in an archive writer for the given format.
func NewWriter(w io.Writer, format Format) (*Writer, error) {
	switch format {
	case Zip:
		return &Writer{zw: zip.NewWriter(w)}, nil

	case TarGz:
		gz := gzip.NewWriter(w)
		return &Writer{tw: tar.NewWriter(gz), compressor: gz}, nil

	case TarBz2:
		bz, err := bzip2.NewWriter(w, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create bzip2 writer: %w", err)
		}
		return &Writer{tw: tar.NewWriter(bz), compressor: bz}, nil

	case TarXz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return &Writer{tw: tar.NewWriter(xw), compressor: xw}, nil
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Add stores the regular file at fsPath under the entry name within the
// archive. Entry names always use forward slashes.
func (w *Writer) Add(fsPath, name string) error {
	f, err := os.Open(fsPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fsPath, err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", fsPath, err)
	}

	name = filepath.ToSlash(name)

	var dst io.Writer
	if w.zw != nil {
		hdr, err := zip.FileInfoHeader(fi)
		if err != nil {
			return fmt.Errorf("failed to build zip header for %s: %w", fsPath, err)
		}
		hdr.Name = name
		hdr.Method = zip.Deflate
		dst, err = w.zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
	} else {
		hdr, err := tar.FileInfoHeader(fi, "")
		if err != nil {
			return fmt.Errorf("failed to build tar header for %s: %w", fsPath, err)
		}
		hdr.Name = name
		if err := w.tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		dst = w.tw
	}

	if _, err := io.Copy(dst, f); err != nil {
		return fmt.Errorf("failed to archive %s: %w", fsPath, err)
	}
	return nil
}

// Close finalizes the archive, flushing the container and then any
// compression layer. Closing more than once is safe.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var firstErr error
	if w.zw != nil {
		firstErr = w.zw.Close()
	} else if w.tw != nil {
		firstErr = w.tw.Close()
	}
	if w.compressor != nil {
		if err := w.compressor.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return fmt.Errorf("failed to finalize archive: %w", firstErr)
	}
	return nil
}

// WriteDir archives every regular file under dir to w. Entry names are
// rooted at the directory's own name, so extracting the archive recreates
// the directory rather than spilling its contents.
func WriteDir(w io.Writer, dir string, format Format) error {
	dir = filepath.Clean(dir)
	parent := filepath.Dir(dir)

	aw, err := NewWriter(w, format)
	if err != nil {
		return err
	}

	walkErr := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(parent, path)
		if err != nil {
			return err
		}
		return aw.Add(path, rel)
	})
	if walkErr != nil {
		_ = aw.Close()
		return fmt.Errorf("failed to archive %s: %w", dir, walkErr)
	}

	return aw.Close()
}
