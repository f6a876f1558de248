package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// TestSymlinkFS tests Symlink and Readlink, including dangling links, which
// the trash must be able to move like any other entry.
// Uses type assertion - skips if fs doesn't implement core.SymlinkFS.
func TestSymlinkFS(t *testing.T, filesystem core.FS) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
	}
	mustWrite(t, filesystem, "target.txt", "target")

	t.Run("CreateAndRead", func(t *testing.T) {
		if err := sfs.Symlink("target.txt", "link.txt"); err != nil {
			t.Fatalf("Symlink(target.txt, link.txt): %v", err)
		}
		target, err := sfs.Readlink("link.txt")
		if err != nil {
			t.Fatalf("Readlink(link.txt): %v", err)
		}
		if target != "target.txt" {
			t.Errorf("Readlink(link.txt) = %q, want target.txt", target)
		}
		mustRead(t, filesystem, "link.txt", "target")
	})

	t.Run("Dangling", func(t *testing.T) {
		if err := sfs.Symlink("nowhere", "dangling"); err != nil {
			t.Fatalf("Symlink(nowhere, dangling): %v", err)
		}
		ok, err := filesystem.Exists("dangling")
		if err != nil || !ok {
			t.Errorf("Exists(dangling) = %v, %v; want true, nil", ok, err)
		}
		mfs, isMeta := filesystem.(core.MetadataFS)
		if !isMeta {
			return
		}
		info, err := mfs.Lstat("dangling")
		if err != nil {
			t.Fatalf("Lstat(dangling): %v", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(dangling).Mode() = %v, want symlink", info.Mode())
		}
	})

	t.Run("RemoveLink", func(t *testing.T) {
		if err := filesystem.RemoveAll("link.txt"); err != nil {
			t.Fatalf("RemoveAll(link.txt): %v", err)
		}
		mustRead(t, filesystem, "target.txt", "target")
	})
}
