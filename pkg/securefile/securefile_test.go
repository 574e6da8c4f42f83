package securefile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOwnerOnly verifies the file's permission bits allow only owner
// read/write. Windows expresses the guarantee through ACLs instead of mode
// bits, so the check is skipped there.
func assertOwnerOnly(t *testing.T, path string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		return
	}
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, ownerReadWrite, fi.Mode().Perm(),
		"expected mode 0600, got %04o", fi.Mode().Perm())
}

func TestCreateNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check_perms")

	f, err := Create(path)
	require.NoError(t, err)

	_, err = f.WriteString("test 1")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assertOwnerOnly(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test 1", string(content))
}

func TestCreateTightensExistingPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check_perms")

	require.NoError(t, WriteFile(path, []byte("test 1")))
	assertOwnerOnly(t, path)

	// Broaden the permissions ahead of time; the next secure write must
	// tighten them back and still succeed.
	require.NoError(t, os.Chmod(path, 0o755))

	f, err := Create(path)
	require.NoError(t, err)

	_, err = f.WriteString("test 2")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assertOwnerOnly(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test 2", string(content))
}

func TestCreateTruncatesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	require.NoError(t, WriteFile(path, []byte("a much longer first version")))
	require.NoError(t, WriteFile(path, []byte("short")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(content))
}

func TestCreateRefusesNonRegularFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Create(dir)
	require.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed_twice")

	f, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}
