//go:build darwin

package hidden

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

const attrCheckNeeded = true

// attrHidden reports the UF_HIDDEN flag Finder uses to hide entries.
func attrHidden(info fs.FileInfo) bool {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}
	return st.Flags&unix.UF_HIDDEN != 0
}
