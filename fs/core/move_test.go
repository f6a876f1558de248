//go:build unix

package core_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/jmgilman/go/filemgr/fs/billy"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/stretchr/testify/require"
)

// crossDeviceFS makes every rename fail as if src and dst were on different
// filesystems.
type crossDeviceFS struct {
	*billy.LocalFS
}

func (c crossDeviceFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
}

func TestMove_Rename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	method, err := core.Move(billy.NewLocal(), src, dst)
	require.NoError(t, err)
	require.Equal(t, core.MoveRename, method)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
	require.NoFileExists(t, src)
}

func TestMove_RenameFailureIsNotRetriedAsCopy(t *testing.T) {
	dir := t.TempDir()

	method, err := core.Move(billy.NewLocal(), filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	require.Equal(t, core.MoveRename, method)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var moveErr *core.MoveError
	require.ErrorAs(t, err, &moveErr)
	require.Equal(t, core.MoveRename, moveErr.Method)
}

func TestMove_CrossDeviceCopiesTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(src, "top.txt"), []byte("top"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "deep.txt"), []byte("deep"), 0o644))
	require.NoError(t, os.Symlink("top.txt", filepath.Join(src, "link")))
	mtime := time.Date(2020, 5, 4, 3, 2, 1, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(src, "top.txt"), mtime, mtime))

	method, err := core.Move(crossDeviceFS{billy.NewLocal()}, src, dst)
	require.NoError(t, err)
	require.Equal(t, core.MoveCopy, method)
	require.NoDirExists(t, src)

	data, err := os.ReadFile(filepath.Join(dst, "sub", "deep.txt"))
	require.NoError(t, err)
	require.Equal(t, "deep", string(data))

	info, err := os.Stat(filepath.Join(dst, "top.txt"))
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
	require.True(t, info.ModTime().Equal(mtime))

	dirInfo, err := os.Stat(filepath.Join(dst, "sub"))
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o750), dirInfo.Mode().Perm())

	target, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	require.Equal(t, "top.txt", target)
}

func TestMove_CrossDeviceCopyFailureKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, syscall.Mkfifo(filepath.Join(src, "pipe"), 0o644))

	method, err := core.Move(crossDeviceFS{billy.NewLocal()}, src, dst)
	require.Error(t, err)
	require.ErrorIs(t, err, core.ErrUnsupported)
	require.Equal(t, core.MoveCopy, method)
	require.FileExists(t, filepath.Join(src, "a.txt"))
	require.NoDirExists(t, dst)

	var moveErr *core.MoveError
	require.ErrorAs(t, err, &moveErr)
	require.Equal(t, core.MoveCopy, moveErr.Method)
}

func TestCopyTree_Memory(t *testing.T) {
	mem := billy.NewMemory()
	require.NoError(t, mem.MkdirAll("/src/a/b", 0o755))
	require.NoError(t, mem.WriteFile("/src/a/b/c.txt", []byte("c"), 0o644))

	require.NoError(t, core.CopyTree(mem, "/src", "/dst"))

	data, err := mem.ReadFile("/dst/a/b/c.txt")
	require.NoError(t, err)
	require.Equal(t, "c", string(data))
}

func TestCopyTree_RejectsExistingDestination(t *testing.T) {
	mem := billy.NewMemory()
	require.NoError(t, mem.WriteFile("/a", []byte("a"), 0o644))
	require.NoError(t, mem.WriteFile("/b", []byte("b"), 0o644))

	require.Error(t, core.CopyTree(mem, "/a", "/b"))
}

func TestMove_CrossDeviceNeverClobbersDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	method, err := core.Move(crossDeviceFS{billy.NewLocal()}, src, dst)
	require.ErrorIs(t, err, fs.ErrExist)
	require.Equal(t, core.MoveCopy, method)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "old", string(data))
	require.FileExists(t, src)
}
