package trash

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/billy"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/sorting"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2024, 3, 5, 7, 8, 9, 0, time.Local)

const testSuffix = "20240305070809"

// crossDeviceFS makes every rename fail as if source and destination were on
// different filesystems.
type crossDeviceFS struct {
	*billy.LocalFS
}

func (c crossDeviceFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
}

// newTestManager opens a trash under a temporary directory and returns it
// with a working directory next to it.
func newTestManager(t *testing.T, opts ...Option) (*Manager, string) {
	t.Helper()
	base := t.TempDir()
	work := filepath.Join(base, "work")
	require.NoError(t, os.Mkdir(work, 0o755))

	defaults := []Option{
		WithWorkDir(work),
		WithClock(func() time.Time { return testClock }),
		WithSorter(sorting.New(sorting.DefaultConfig(), sorting.WithLocale(sorting.ParseLocale("C")))),
	}
	m, err := New(filepath.Join(base, "Trash"), append(defaults, opts...)...)
	require.NoError(t, err)
	return m, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

func contextOf(t *testing.T, err error) map[string]interface{} {
	t.Helper()
	var pe errors.PlatformError
	require.True(t, errors.As(err, &pe))
	return pe.Context()
}

func TestNew_CreatesLayout(t *testing.T) {
	m, _ := newTestManager(t)

	for _, dir := range []string{m.Root(), m.FilesDir(), m.InfoDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
		require.Equal(t, iofs.FileMode(0o700), info.Mode().Perm())
	}

	// Opening an existing trash is fine.
	_, err := New(m.Root(), WithWorkDir("/"))
	require.NoError(t, err)
}

func TestNew_Unavailable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	writeFile(t, blocker, "not a directory")

	_, err := New(filepath.Join(blocker, "Trash"), WithWorkDir("/"))
	require.Error(t, err)
	require.Equal(t, errors.CodeTrashUnavailable, errors.GetCode(err))
	require.True(t, errors.IsFatal(err))

	_, err = New("", WithWorkDir("/"))
	require.Equal(t, errors.CodeTrashUnavailable, errors.GetCode(err))
}

func TestTrash_RoundTrip(t *testing.T) {
	m, work := newTestManager(t)
	orig := filepath.Join(work, "foo.txt")
	writeFile(t, orig, "hello")

	report, err := m.Trash("foo.txt")
	require.NoError(t, err)
	require.Len(t, report.Succeeded, 1)
	require.Empty(t, report.Failed)
	require.Equal(t, 1, report.Remaining)

	res := report.Succeeded[0]
	require.Equal(t, "foo.txt."+testSuffix, res.Name)
	require.Equal(t, orig, res.Path)
	require.Equal(t, core.MoveRename, res.Method)
	require.NoFileExists(t, orig)
	require.FileExists(t, filepath.Join(m.FilesDir(), res.Name))

	info, err := os.ReadFile(filepath.Join(m.InfoDir(), res.Name+".trashinfo"))
	require.NoError(t, err)
	require.Equal(t,
		"[Trash Info]\nPath="+encodePath(orig)+"\nDeletionDate=2024-3-5T7:8:9\n",
		string(info))

	entry, err := m.Inspect(res.Name)
	require.NoError(t, err)
	require.Equal(t, orig, entry.OriginalPath)
	require.True(t, testClock.Equal(entry.DeletionDate))

	report, err = m.Untrash(Names(res.Name))
	require.NoError(t, err)
	require.Len(t, report.Succeeded, 1)
	require.Equal(t, 0, report.Remaining)

	data, err := os.ReadFile(orig)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
	require.NoFileExists(t, filepath.Join(m.FilesDir(), res.Name))
	require.NoFileExists(t, filepath.Join(m.InfoDir(), res.Name+".trashinfo"))
}

func TestTrash_DirectoryRoundTrip(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "proj", "src", "main.go"), "package main")
	writeFile(t, filepath.Join(work, "proj", "README"), "readme")

	report, err := m.Trash(filepath.Join(work, "proj") + "/")
	require.NoError(t, err)
	require.Len(t, report.Succeeded, 1)
	require.NoDirExists(t, filepath.Join(work, "proj"))

	_, err = m.Untrash(Indices(1))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(work, "proj", "src", "main.go"))
	require.NoError(t, err)
	require.Equal(t, "package main", string(data))
}

func TestTrash_SymlinkWithTrailingSlash(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "target", "keep"), "x")
	require.NoError(t, os.Symlink("target", filepath.Join(work, "link")))

	report, err := m.Trash("link/")
	require.NoError(t, err)
	require.Equal(t, "link."+testSuffix, report.Succeeded[0].Name)

	require.FileExists(t, filepath.Join(work, "target", "keep"))
	info, err := os.Lstat(filepath.Join(m.FilesDir(), "link."+testSuffix))
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&iofs.ModeSymlink)
}

func TestTrash_NameTooLong(t *testing.T) {
	const nameMax = 64
	m, work := newTestManager(t, WithNameMax(nameMax))
	long := strings.Repeat("n", 60) + ".txt"
	writeFile(t, filepath.Join(work, long), "long")

	report, err := m.Trash(long)
	require.NoError(t, err)
	name := report.Succeeded[0].Name
	require.True(t, strings.HasSuffix(name, "~."+testSuffix), name)
	require.LessOrEqual(t, len(name)+len(".trashinfo"), nameMax)

	_, err = m.Untrash(Names(name))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(work, long))
}

func TestTrash_RejectsTrashItself(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "ok.txt"), "ok")

	report, err := m.Trash(
		m.Root(),
		m.FilesDir(),
		filepath.Join(m.InfoDir(), "x.trashinfo"),
		filepath.Dir(m.Root()),
		"/",
		"ok.txt",
	)
	require.Error(t, err)
	require.Equal(t, errors.CodePartialFailure, errors.GetCode(err))
	require.Len(t, report.Failed, 5)
	require.Len(t, report.Succeeded, 1)
	for _, f := range report.Failed {
		require.Equal(t, errors.CodeInvalidTarget, errors.GetCode(f.Err), f.Path)
	}
	require.DirExists(t, m.FilesDir())
}

func TestTrash_RejectsDevices(t *testing.T) {
	if _, err := os.Lstat("/dev/null"); err != nil {
		t.Skip("no /dev/null")
	}
	m, _ := newTestManager(t)

	report, err := m.Trash("/dev/null")
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidTarget, errors.GetCode(report.Failed[0].Err))
	require.Contains(t, report.Failed[0].Err.Error(), "character device")
}

func TestTrash_Missing(t *testing.T) {
	m, _ := newTestManager(t)

	report, err := m.Trash("nope", "")
	require.Error(t, err)
	require.Len(t, report.Failed, 2)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(report.Failed[0].Err))
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(report.Failed[1].Err))
	require.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestTrash_PermissionDenied(t *testing.T) {
	skipIfRoot(t)
	m, work := newTestManager(t)
	dir := filepath.Join(work, "ro")
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "stay")
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	report, err := m.Trash(file)
	require.Error(t, err)
	require.Len(t, report.Failed, 1)
	require.Equal(t, errors.CodePermissionDenied, errors.GetCode(report.Failed[0].Err))
	require.FileExists(t, file)
	require.Equal(t, 0, report.Remaining)
}

func TestTrash_PreflightReportsEverySubdirectory(t *testing.T) {
	skipIfRoot(t)
	m, work := newTestManager(t)
	tree := filepath.Join(work, "tree")
	one := filepath.Join(tree, "one")
	two := filepath.Join(tree, "two")
	writeFile(t, filepath.Join(one, "a"), "a")
	writeFile(t, filepath.Join(two, "b"), "b")
	writeFile(t, filepath.Join(tree, "fine", "c"), "c")
	require.NoError(t, os.Chmod(one, 0o555))
	require.NoError(t, os.Chmod(two, 0o555))
	t.Cleanup(func() {
		_ = os.Chmod(one, 0o755)
		_ = os.Chmod(two, 0o755)
	})

	report, err := m.Trash(tree)
	require.Error(t, err)
	itemErr := report.Failed[0].Err
	require.Equal(t, errors.CodePermissionDenied, errors.GetCode(itemErr))
	require.Equal(t, []string{one, two}, contextOf(t, itemErr)["offending"])
	require.Contains(t, itemErr.Error(), one)
	require.Contains(t, itemErr.Error(), two)
	require.DirExists(t, tree)
}

func TestTrash_PreflightWalksBelowReadOnlyParent(t *testing.T) {
	skipIfRoot(t)
	m, work := newTestManager(t)
	parent := filepath.Join(work, "parent")
	tree := filepath.Join(parent, "tree")
	locked := filepath.Join(tree, "locked")
	writeFile(t, filepath.Join(locked, "a"), "a")
	require.NoError(t, os.Chmod(locked, 0o555))
	require.NoError(t, os.Chmod(parent, 0o555))
	t.Cleanup(func() {
		_ = os.Chmod(parent, 0o755)
		_ = os.Chmod(locked, 0o755)
	})

	report, err := m.Trash(tree)
	require.Error(t, err)
	itemErr := report.Failed[0].Err
	require.Equal(t, errors.CodePermissionDenied, errors.GetCode(itemErr))
	require.Equal(t, []string{parent, locked}, contextOf(t, itemErr)["offending"])
	require.DirExists(t, locked)
}

func TestTrash_SameSecondCollision(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "a", "x"), "first")
	writeFile(t, filepath.Join(work, "b", "x"), "second")

	report, err := m.Trash("a/x", "b/x")
	require.Error(t, err)
	require.Len(t, report.Succeeded, 1)
	require.Len(t, report.Failed, 1)
	require.Equal(t, errors.CodeAlreadyExists, errors.GetCode(report.Failed[0].Err))
	require.FileExists(t, filepath.Join(work, "b", "x"))

	data, err := os.ReadFile(filepath.Join(m.FilesDir(), "x."+testSuffix))
	require.NoError(t, err)
	require.Equal(t, "first", string(data))
}

func TestTrash_CrossDevice(t *testing.T) {
	m, work := newTestManager(t, WithFS(crossDeviceFS{billy.NewLocal()}))
	writeFile(t, filepath.Join(work, "dir", "inner.txt"), "inner")

	report, err := m.Trash("dir")
	require.NoError(t, err)
	require.Equal(t, core.MoveCopy, report.Succeeded[0].Method)
	require.NoDirExists(t, filepath.Join(work, "dir"))
	require.FileExists(t, filepath.Join(m.FilesDir(), "dir."+testSuffix, "inner.txt"))

	report, err = m.Untrash(All())
	require.NoError(t, err)
	require.Equal(t, core.MoveCopy, report.Succeeded[0].Method)
	require.FileExists(t, filepath.Join(work, "dir", "inner.txt"))
}

func TestTrash_InfoWriteFailureRollsBack(t *testing.T) {
	m, work := newTestManager(t)
	orig := filepath.Join(work, "foo.txt")
	writeFile(t, orig, "precious")
	stale := filepath.Join(m.InfoDir(), "foo.txt."+testSuffix+".trashinfo")
	writeFile(t, stale, "stale")

	report, err := m.Trash(orig)
	require.Error(t, err)
	require.Len(t, report.Failed, 1)

	data, err := os.ReadFile(orig)
	require.NoError(t, err)
	require.Equal(t, "precious", string(data))
	require.NoFileExists(t, filepath.Join(m.FilesDir(), "foo.txt."+testSuffix))

	data, err = os.ReadFile(stale)
	require.NoError(t, err)
	require.Equal(t, "stale", string(data))
}

func TestList_Sorted(t *testing.T) {
	m, work := newTestManager(t)
	for _, n := range []string{"img10", "Beta", "img2", ".alpha"} {
		writeFile(t, filepath.Join(work, n), n)
	}
	_, err := m.Trash("img10", "Beta", "img2", ".alpha")
	require.NoError(t, err)

	names, err := m.List()
	require.NoError(t, err)
	require.Equal(t, []string{
		".alpha." + testSuffix,
		"Beta." + testSuffix,
		"img10." + testSuffix,
		"img2." + testSuffix,
	}, names)

	again, err := m.List()
	require.NoError(t, err)
	require.Equal(t, names, again)

	n, err := m.Count()
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestRemove(t *testing.T) {
	m, work := newTestManager(t)
	for _, n := range []string{"a", "b", "c", "d"} {
		writeFile(t, filepath.Join(work, n), n)
	}
	_, err := m.Trash("a", "b", "c", "d")
	require.NoError(t, err)

	report, err := m.Remove(Selection{Indices: []int{1, 9, 1}, Names: []string{"c." + testSuffix, "../escape"}})
	require.Error(t, err)
	require.Len(t, report.Succeeded, 2)
	require.Len(t, report.Failed, 2)
	require.Equal(t, 2, report.Remaining)
	require.True(t, errors.HasCode(err, errors.CodeInvalidInput))
	require.Contains(t, report.Failed[0].Err.Error(), "9: invalid ELN")

	names, err := m.List()
	require.NoError(t, err)
	require.Equal(t, []string{"b." + testSuffix, "d." + testSuffix}, names)
	require.NoFileExists(t, filepath.Join(m.InfoDir(), "a."+testSuffix+".trashinfo"))
	require.Equal(t, []string{"0 file(s) removed from the trash can", "2 total trashed file(s)"}, RemovedStatus(Report{Remaining: 2}))
}

func TestRemove_RangeClampedToListing(t *testing.T) {
	m, work := newTestManager(t)
	for _, n := range []string{"a", "b", "c"} {
		writeFile(t, filepath.Join(work, n), n)
	}
	_, err := m.Trash("a", "b", "c")
	require.NoError(t, err)

	sel, quit, err := ParseSelection("2-100000000")
	require.NoError(t, err)
	require.False(t, quit)

	report, err := m.Remove(sel)
	require.Error(t, err)
	require.Len(t, report.Succeeded, 2)
	require.Len(t, report.Failed, 1)
	require.Equal(t, "4-100000000", report.Failed[0].Name)
	require.Contains(t, report.Failed[0].Err.Error(), "invalid ELN (valid range 1-3)")
	require.Equal(t, 1, report.Remaining)

	names, err := m.List()
	require.NoError(t, err)
	require.Equal(t, []string{"a." + testSuffix}, names)

	report, err = m.Remove(Selection{Ranges: []Range{{First: 0, Last: 1}}})
	require.Error(t, err)
	require.Empty(t, report.Succeeded)
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(report.Failed[0].Err))
}

func TestRemove_Directory(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "deep", "er", "file"), "x")
	_, err := m.Trash("deep")
	require.NoError(t, err)

	report, err := m.Remove(All())
	require.NoError(t, err)
	require.Len(t, report.Succeeded, 1)
	require.NoDirExists(t, filepath.Join(m.FilesDir(), "deep."+testSuffix))
}

func TestRemove_MissingHalf(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "a"), "a")
	writeFile(t, filepath.Join(work, "b"), "b")
	_, err := m.Trash("a", "b")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(m.InfoDir(), "a."+testSuffix+".trashinfo")))

	report, err := m.Clear()
	require.Error(t, err)
	require.Len(t, report.Succeeded, 1)
	require.Len(t, report.Failed, 1)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(report.Failed[0].Err))
	// The orphan is reported, not repaired.
	require.FileExists(t, filepath.Join(m.FilesDir(), "a."+testSuffix))
	require.Equal(t, 1, report.Remaining)
	require.Equal(t, "1 file(s) removed from the trash can", ClearedStatus(report))
}

func TestClear_Idempotent(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "a"), "a")
	writeFile(t, filepath.Join(work, "b"), "b")
	_, err := m.Trash("a", "b")
	require.NoError(t, err)

	report, err := m.Clear()
	require.NoError(t, err)
	require.Len(t, report.Succeeded, 2)
	require.Equal(t, "Trash can emptied", ClearedStatus(report))

	report, err = m.Clear()
	require.NoError(t, err)
	require.Empty(t, report.Succeeded)
	require.Empty(t, report.Failed)
	require.Equal(t, 0, report.Remaining)
	require.Equal(t, NoTrashedFiles, ClearedStatus(report))
}

func TestUntrash_Collision(t *testing.T) {
	m, work := newTestManager(t)
	orig := filepath.Join(work, "foo.txt")
	writeFile(t, orig, "trashed")
	_, err := m.Trash(orig)
	require.NoError(t, err)
	writeFile(t, orig, "new")

	report, err := m.Untrash(All())
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.CodeAlreadyExists))
	require.Equal(t, errors.CodeAlreadyExists, errors.GetCode(report.Failed[0].Err))
	require.Contains(t, report.Failed[0].Err.Error(), "destination file exists")

	data, err := os.ReadFile(orig)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
	require.FileExists(t, filepath.Join(m.FilesDir(), "foo.txt."+testSuffix))
	require.FileExists(t, filepath.Join(m.InfoDir(), "foo.txt."+testSuffix+".trashinfo"))
	require.Equal(t, 1, report.Remaining)
}

func TestUntrash_CorruptSidecarSkipsItem(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "bad"), "bad")
	writeFile(t, filepath.Join(work, "good"), "good")
	_, err := m.Trash("bad", "good")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(m.InfoDir(), "bad."+testSuffix+".trashinfo"), []byte("garbage\n"), 0o600))

	report, err := m.Untrash(All())
	require.Error(t, err)
	require.Len(t, report.Succeeded, 1)
	require.Equal(t, "good."+testSuffix, report.Succeeded[0].Name)
	require.Equal(t, errors.CodeCorruption, errors.GetCode(report.Failed[0].Err))
	require.FileExists(t, filepath.Join(work, "good"))
	require.FileExists(t, filepath.Join(m.FilesDir(), "bad."+testSuffix))
	require.Equal(t, []string{"1 file(s) untrashed", "1 total trashed file(s)"}, UntrashedStatus(report))
}

func TestUntrash_MissingSidecar(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "a"), "a")
	_, err := m.Trash("a")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(m.InfoDir(), "a."+testSuffix+".trashinfo")))

	report, err := m.Untrash(Indices(1))
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(report.Failed[0].Err))
	require.Contains(t, report.Failed[0].Err.Error(), "try restoring the file manually")
}

func TestUntrash_MissingParent(t *testing.T) {
	m, work := newTestManager(t)
	writeFile(t, filepath.Join(work, "sub", "f"), "f")
	_, err := m.Trash("sub/f")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(work, "sub")))

	report, err := m.Untrash(All())
	require.Error(t, err)
	require.Equal(t, errors.CodeNotFound, errors.GetCode(report.Failed[0].Err))
	require.NoDirExists(t, filepath.Join(work, "sub"))
}

func TestUntrash_ReadOnlyParent(t *testing.T) {
	skipIfRoot(t)
	m, work := newTestManager(t)
	dir := filepath.Join(work, "locked")
	writeFile(t, filepath.Join(dir, "f"), "f")
	_, err := m.Trash(filepath.Join(dir, "f"))
	require.NoError(t, err)
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	report, err := m.Untrash(All())
	require.Error(t, err)
	require.Equal(t, errors.CodePermissionDenied, errors.GetCode(report.Failed[0].Err))
	require.FileExists(t, filepath.Join(m.FilesDir(), "f."+testSuffix))
}

func TestInspect_InvalidName(t *testing.T) {
	m, _ := newTestManager(t)
	_, err := m.Inspect("../../etc/passwd")
	require.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestManager_Memory(t *testing.T) {
	fsys := billy.NewMemory()
	require.NoError(t, fsys.WriteFile("/home/me/notes.md", []byte("notes"), 0o644))

	m, err := New("/home/me/.local/share/Trash",
		WithFS(fsys),
		WithWorkDir("/home/me"),
		WithClock(func() time.Time { return testClock }),
	)
	require.NoError(t, err)

	report, err := m.Trash("notes.md")
	require.NoError(t, err)
	require.Equal(t, []string{"1 file(s) trashed", "1 total trashed file(s)"}, TrashedStatus(report))

	ok, err := fsys.Exists("/home/me/notes.md")
	require.NoError(t, err)
	require.False(t, ok)

	// The home directory contains the trash and cannot be trashed.
	_, err = m.Trash(".")
	require.True(t, errors.HasCode(err, errors.CodeInvalidTarget))

	_, err = m.Untrash(All())
	require.NoError(t, err)
	data, err := fsys.ReadFile("/home/me/notes.md")
	require.NoError(t, err)
	require.Equal(t, "notes", string(data))
}

func TestReport_Err(t *testing.T) {
	require.NoError(t, Report{}.Err())

	r := Report{
		Succeeded: []Result{{Name: "a"}},
		Failed:    []Result{{Name: "b", Err: errors.New(errors.CodeNotFound, "b: gone")}},
		Remaining: 3,
	}
	err := r.Err()
	require.Equal(t, errors.CodePartialFailure, errors.GetCode(err))
	require.True(t, errors.HasCode(err, errors.CodeNotFound))
	require.Contains(t, err.Error(), "1 of 2 item(s) failed")
	require.Equal(t, 3, contextOf(t, err)["remaining"])
}
