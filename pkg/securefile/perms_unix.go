//go:build !windows

package securefile

import (
	"fmt"
	"os"
)

// restrictToOwner verifies the open file carries mode 0600 and tightens it
// if anything broader slipped through. The umask can only clear bits on a
// freshly created file, so a broader mode means the file pre-existed; the
// chmod here closes that gap through the open descriptor.
func restrictToOwner(f *os.File) error {
	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", f.Name(), err)
	}
	if fi.Mode().Perm() == ownerReadWrite {
		return nil
	}

	if err := f.Chmod(ownerReadWrite); err != nil {
		return fmt.Errorf("failed to tighten permissions on %s: %w", f.Name(), err)
	}

	fi, err = f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", f.Name(), err)
	}
	if fi.Mode().Perm() != ownerReadWrite {
		return fmt.Errorf("%s has mode %04o after tightening: %w",
			f.Name(), fi.Mode().Perm(), ErrInsecurePermissions)
	}
	return nil
}
