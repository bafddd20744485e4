package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/potbin/pkg/filesystem"
	"github.com/arthur-debert/potbin/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile creates a file, and its parent directories, on fs.
func WriteFile(t *testing.T, fs types.FS, path, content string) string {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// MkdirAll creates a directory tree on fs.
func MkdirAll(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// SetMtime sets the modification time of path to the given unix seconds.
func SetMtime(t *testing.T, fs types.FS, path string, unix int64) {
	t.Helper()
	mtime := time.Unix(unix, 0)
	if err := fs.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Failed to set mtime on %s: %v", path, err)
	}
}

// Mtime returns the modification time of path in unix seconds.
func Mtime(t *testing.T, fs types.FS, path string) int64 {
	t.Helper()
	info, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.ModTime().Unix()
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
