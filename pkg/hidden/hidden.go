// Package hidden classifies filesystem entries as hidden or visible.
//
// An entry is hidden when its name starts with a dot (the POSIX convention)
// or when the platform marks it hidden through a filesystem attribute
// (FILE_ATTRIBUTE_HIDDEN on Windows, UF_HIDDEN on Darwin). Platform
// dispatch lives in the build-tagged attrs_*.go files; callers never branch
// on the operating system themselves.
package hidden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotUnderRoot indicates the queried path does not live under the root
// it was checked against.
var ErrNotUnderRoot = errors.New("path is not under root")

// isDotName reports whether name follows the hidden dotfile convention.
// The special entries "." and ".." are never hidden.
func isDotName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// IsFileHidden reports whether the entry at path is itself hidden, looking
// only at the leaf: ancestors are not consulted.
//
// info may carry a pre-fetched stat result to avoid a redundant filesystem
// query; pass nil to have IsFileHidden stat the path itself. Stat failures,
// including a missing path, propagate to the caller.
func IsFileHidden(path string, info fs.FileInfo) (bool, error) {
	if isDotName(filepath.Base(path)) {
		return true, nil
	}

	if info == nil {
		var err error
		info, err = os.Stat(path)
		if err != nil {
			return false, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	if !attrCheckNeeded {
		return false, nil
	}
	return attrHidden(info), nil
}

// IsHidden reports whether the entry at path is hidden relative to root:
// true if any component strictly below root, down to and including the leaf,
// is a dot name or carries the platform hidden attribute.
//
// A path is never hidden relative to itself. An empty root means the
// filesystem root, so every component of path is checked. Both paths should
// be absolute, or both relative to the same directory.
func IsHidden(path, root string) (bool, error) {
	path = filepath.Clean(path)
	if root == "" {
		root = filepath.VolumeName(path) + string(filepath.Separator)
	} else {
		root = filepath.Clean(root)
	}

	if path == root {
		return false, nil
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, fmt.Errorf("%s relative to %s: %w", path, root, ErrNotUnderRoot)
	}

	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if isDotName(part) {
			return true, nil
		}
	}

	if !attrCheckNeeded {
		return false, nil
	}

	// Walk ancestors from the leaf up to (excluding) root, checking the
	// platform attribute on each one that still exists.
	for p := path; len(p) > len(root); p = filepath.Dir(p) {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return false, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if attrHidden(info) {
			return true, nil
		}
	}

	return false, nil
}
