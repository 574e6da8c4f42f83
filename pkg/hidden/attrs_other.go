//go:build !windows && !darwin

package hidden

import "io/fs"

// Plain POSIX platforms have no hidden attribute bit; the dotfile
// convention is the only signal.
const attrCheckNeeded = false

func attrHidden(fs.FileInfo) bool {
	return false
}
