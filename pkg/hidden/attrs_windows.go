//go:build windows

package hidden

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/windows"
)

const attrCheckNeeded = true

// attrHidden reports the FILE_ATTRIBUTE_HIDDEN bit from the entry's
// Win32 attribute data.
func attrHidden(info fs.FileInfo) bool {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return false
	}
	return attrs.FileAttributes&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
