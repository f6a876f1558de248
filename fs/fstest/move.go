package fstest

import (
	"testing"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// TestMove tests core.Move and core.CopyTree against the provider.
func TestMove(t *testing.T, filesystem core.FS) {
	t.Run("MoveFile", func(t *testing.T) {
		mustWrite(t, filesystem, "mv-src.txt", "move me")
		if err := filesystem.MkdirAll("mv-dst", 0755); err != nil {
			t.Fatalf("MkdirAll(mv-dst): %v", err)
		}
		method, err := core.Move(filesystem, "mv-src.txt", "mv-dst/moved.txt")
		if err != nil {
			t.Fatalf("Move(mv-src.txt): %v", err)
		}
		if method != core.MoveRename {
			t.Errorf("Move(mv-src.txt) method = %v, want rename", method)
		}
		mustNotExist(t, filesystem, "mv-src.txt")
		mustRead(t, filesystem, "mv-dst/moved.txt", "move me")
	})

	t.Run("CopyTree", func(t *testing.T) {
		if err := filesystem.MkdirAll("cp-src/sub", 0755); err != nil {
			t.Fatalf("MkdirAll(cp-src/sub): %v", err)
		}
		mustWrite(t, filesystem, "cp-src/one.txt", "1")
		mustWrite(t, filesystem, "cp-src/sub/two.txt", "2")
		if err := core.CopyTree(filesystem, "cp-src", "cp-dst"); err != nil {
			t.Fatalf("CopyTree(cp-src, cp-dst): %v", err)
		}
		mustRead(t, filesystem, "cp-dst/one.txt", "1")
		mustRead(t, filesystem, "cp-dst/sub/two.txt", "2")
		mustRead(t, filesystem, "cp-src/sub/two.txt", "2")
	})
}
