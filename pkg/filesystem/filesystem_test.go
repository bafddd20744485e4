package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fs.Symlink(testFile, link))
	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, testFile, target)

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(testFile)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)

	require.NoError(t, fs.Remove(link))
	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestOSCreateAndChtimes(t *testing.T) {
	fs := NewOS()
	path := filepath.Join(t.TempDir(), "copy.txt")

	w, err := fs.Create(path, 0600)
	require.NoError(t, err)
	_, err = io.WriteString(w, "data")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	mtime := time.Unix(1000, 0)
	require.NoError(t, fs.Chtimes(path, mtime, mtime))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestAferoFS(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/cloud", 0755))
	require.NoError(t, fs.WriteFile("/cloud/_vimrc", []byte("set nu"), 0644))

	t.Run("read_file", func(t *testing.T) {
		data, err := fs.ReadFile("/cloud/_vimrc")
		require.NoError(t, err)
		assert.Equal(t, "set nu", string(data))
	})

	t.Run("read_dir_as_file_fails", func(t *testing.T) {
		_, err := fs.ReadFile("/cloud")
		assert.Error(t, err)
	})

	t.Run("read_dir", func(t *testing.T) {
		entries, err := fs.ReadDir("/cloud")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "_vimrc", entries[0].Name())
	})

	t.Run("open_and_create", func(t *testing.T) {
		r, err := fs.Open("/cloud/_vimrc")
		require.NoError(t, err)
		defer func() { _ = r.Close() }()

		w, err := fs.Create("/cloud/copy", 0644)
		require.NoError(t, err)
		n, err := io.Copy(w, r)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.Equal(t, int64(6), n)
	})

	t.Run("chtimes", func(t *testing.T) {
		mtime := time.Unix(100, 0)
		require.NoError(t, fs.Chtimes("/cloud/_vimrc", mtime, mtime))
		info, err := fs.Stat("/cloud/_vimrc")
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(mtime))
	})

	t.Run("symlinks_unsupported_in_memory", func(t *testing.T) {
		err := fs.Symlink("/cloud/_vimrc", "/home/.vimrc")
		assert.ErrorIs(t, err, afero.ErrNoSymlink)

		_, err = fs.Readlink("/cloud/_vimrc")
		assert.ErrorIs(t, err, afero.ErrNoReadlink)
	})

	t.Run("eval_symlinks_cleans_path", func(t *testing.T) {
		got, err := fs.EvalSymlinks("/cloud/../cloud/_vimrc")
		require.NoError(t, err)
		assert.Equal(t, "/cloud/_vimrc", got)

		_, err = fs.EvalSymlinks("/missing")
		assert.Error(t, err)
	})
}
