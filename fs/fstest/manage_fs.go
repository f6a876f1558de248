package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// TestManageFS tests Remove, RemoveAll, and Rename.
func TestManageFS(t *testing.T, filesystem core.FS) {
	t.Run("RemoveFile", func(t *testing.T) {
		mustWrite(t, filesystem, "rm.txt", "x")
		if err := filesystem.Remove("rm.txt"); err != nil {
			t.Fatalf("Remove(rm.txt): %v", err)
		}
		mustNotExist(t, filesystem, "rm.txt")
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		if err := filesystem.Remove("never.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(never.txt): got %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveAllTree", func(t *testing.T) {
		if err := filesystem.MkdirAll("tree/a/b", 0755); err != nil {
			t.Fatalf("MkdirAll(tree/a/b): %v", err)
		}
		mustWrite(t, filesystem, "tree/top.txt", "1")
		mustWrite(t, filesystem, "tree/a/b/deep.txt", "2")
		if err := filesystem.RemoveAll("tree"); err != nil {
			t.Fatalf("RemoveAll(tree): %v", err)
		}
		mustNotExist(t, filesystem, "tree")
	})

	t.Run("RemoveAllMissing", func(t *testing.T) {
		if err := filesystem.RemoveAll("never"); err != nil {
			t.Errorf("RemoveAll(never): got %v, want nil", err)
		}
	})

	t.Run("RenameFile", func(t *testing.T) {
		mustWrite(t, filesystem, "old.txt", "payload")
		if err := filesystem.Rename("old.txt", "new.txt"); err != nil {
			t.Fatalf("Rename(old.txt, new.txt): %v", err)
		}
		mustNotExist(t, filesystem, "old.txt")
		mustRead(t, filesystem, "new.txt", "payload")
	})

	t.Run("RenameDirectory", func(t *testing.T) {
		if err := filesystem.MkdirAll("olddir/sub", 0755); err != nil {
			t.Fatalf("MkdirAll(olddir/sub): %v", err)
		}
		mustWrite(t, filesystem, "olddir/sub/f.txt", "f")
		if err := filesystem.Rename("olddir", "newdir"); err != nil {
			t.Fatalf("Rename(olddir, newdir): %v", err)
		}
		mustNotExist(t, filesystem, "olddir")
		mustRead(t, filesystem, "newdir/sub/f.txt", "f")
	})
}

func mustWrite(t *testing.T, filesystem core.FS, name, content string) {
	t.Helper()
	if err := filesystem.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}

func mustRead(t *testing.T, filesystem core.FS, name, want string) {
	t.Helper()
	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	if string(got) != want {
		t.Errorf("ReadFile(%s) = %q, want %q", name, got, want)
	}
}

func mustNotExist(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	if _, err := filesystem.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%s): got %v, want fs.ErrNotExist", name, err)
	}
}
