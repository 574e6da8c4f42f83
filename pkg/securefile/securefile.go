// Package securefile creates files that only the owning user can read or
// write, regardless of the file's prior permissions, the process umask, or
// the platform.
//
// New files are created with owner-only permissions in the creation call
// itself, so there is no window in which another user could open the file
// with broader default permissions. Pre-existing files are tightened to
// owner-only before being opened for writing; the atomic-create path only
// protects files that did not exist yet.
//
// If the owner-only guarantee cannot be established, no handle is returned:
// the package fails closed rather than handing out an insecure stream.
package securefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ownerReadWrite is the only permission set a secure file may carry
// (0600: owner read/write, no group or other access).
const ownerReadWrite fs.FileMode = 0o600

// ErrInsecurePermissions indicates the owner-only guarantee could not be
// established: the file reported broader permissions even after tightening.
var ErrInsecurePermissions = errors.New("file permissions could not be restricted to owner")

// File is a writable stream bound to exactly one path whose permissions
// were restricted to the owning user before the handle was handed out.
//
// Close is idempotent, so the usual defer f.Close() discipline releases the
// descriptor exactly once on every exit path.
type File struct {
	*os.File
	closed bool
}

// Create opens path for writing with owner-only permissions.
//
// If the file does not exist it is created with mode 0600 atomically with
// creation. If it exists, its permissions are tightened to 0600 before the
// open, whatever they were, and its content is truncated. On Windows the
// file's ACL is additionally replaced so that only the current user
// (read/write) and Administrators (full control) have access; inherited
// entries are stripped.
//
// Create never returns a usable handle unless the guarantee holds. Failures
// to create, chmod, or adjust the ACL propagate wrapped, with no retry and
// no downgrade.
func Create(path string) (*File, error) {
	fi, err := os.Stat(path)
	switch {
	case err == nil:
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("secure write target %s is not a regular file", path)
		}
		// The O_CREATE mode below only applies to new files; a pre-existing
		// file keeps its old permissions unless explicitly tightened.
		if err := os.Chmod(path, ownerReadWrite); err != nil {
			return nil, fmt.Errorf("failed to tighten permissions on %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Fresh file: the restrictive mode rides along with the create call.
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, ownerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for secure write: %w", path, err)
	}

	if err := restrictToOwner(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &File{File: f}, nil
}

// Close releases the underlying descriptor. Calling Close more than once is
// safe; only the first call closes the file.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.File.Close()
}

// WriteFile writes data to path under the owner-only guarantee, replacing
// any previous content.
func WriteFile(path string, data []byte) error {
	f, err := Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
