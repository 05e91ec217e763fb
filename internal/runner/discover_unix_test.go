//go:build unix

package runner

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverOnlyRegularFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "S1.py", "target.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	require.NoError(t, os.Symlink("target.txt", filepath.Join(dir, "S2.py")))
	require.NoError(t, os.Symlink("sub", filepath.Join(dir, "S3.py")))
	require.NoError(t, os.Symlink("missing", filepath.Join(dir, "S4.py")))
	require.NoError(t, syscall.Mkfifo(filepath.Join(dir, "S5.py"), 0o600))

	examples, err := Discover(dir, ".py", "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1.py", "S2.py"}, names(examples))
}
