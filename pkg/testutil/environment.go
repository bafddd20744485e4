package testutil

import (
	"path/filepath"
	"testing"
)

// TempHome points HOME and the XDG state directory at fresh temporary
// directories and returns the (symlink-resolved) home path.
func TempHome(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	home := filepath.Join(root, "home")
	MkdirAll(t, osFS, home)
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return home
}

// TempDir returns a symlink-resolved temporary directory, so paths compare
// equal to what EvalSymlinks reports (macOS /var -> /private/var).
func TempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return resolved
	}
	return dir
}
