package ports

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRename wraps the real file system and refuses to rename
type failingRename struct {
	FileSystem
	err error
}

func (f failingRename) Rename(oldpath, newpath string) error {
	return f.err
}

// failingSync hands out temp files whose Sync always fails
type failingSync struct {
	FileSystem
	err error
}

type unsyncedFile struct {
	File
	err error
}

func (f failingSync) CreateTemp(dir, pattern string) (File, error) {
	file, err := f.FileSystem.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return unsyncedFile{File: file, err: f.err}, nil
}

func (f unsyncedFile) Sync() error {
	return f.err
}

func TestWriteFileAtomic(t *testing.T) {
	fsys := NewRealFileSystem()

	t.Run("writes the file with the given mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		require.NoError(t, WriteFileAtomic(fsys, path, []byte("hello"), 0o644))

		data, err := fsys.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))

		info, err := fsys.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("replaces an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o600))

		require.NoError(t, WriteFileAtomic(fsys, path, []byte("new"), 0o644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("missing directory", func(t *testing.T) {
		err := WriteFileAtomic(fsys, filepath.Join(t.TempDir(), "missing", "out.txt"), []byte("x"), 0o644)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("failed rename leaves nothing behind", func(t *testing.T) {
		dir := t.TempDir()
		renameErr := errors.New("cross-device link")

		err := WriteFileAtomic(failingRename{FileSystem: fsys, err: renameErr}, filepath.Join(dir, "out.txt"), []byte("x"), 0o644)
		require.ErrorIs(t, err, renameErr)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("failed sync leaves nothing behind", func(t *testing.T) {
		dir := t.TempDir()
		syncErr := errors.New("input/output error")

		err := WriteFileAtomic(failingSync{FileSystem: fsys, err: syncErr}, filepath.Join(dir, "out.txt"), []byte("x"), 0o644)
		require.ErrorIs(t, err, syncErr)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
