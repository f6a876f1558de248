package fstest

import (
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// TestWalkFS tests Walk ordering, SkipDir handling, and that symbolic links
// to directories are reported but not descended into.
func TestWalkFS(t *testing.T, filesystem core.FS) {
	if err := filesystem.MkdirAll("walk/a/deep", 0755); err != nil {
		t.Fatalf("MkdirAll(walk/a/deep): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("walk/b", 0755); err != nil {
		t.Fatalf("MkdirAll(walk/b): setup failed: %v", err)
	}
	mustWrite(t, filesystem, "walk/a/deep/f.txt", "f")
	mustWrite(t, filesystem, "walk/b/g.txt", "g")

	t.Run("LexicalOrder", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk("walk", func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk): %v", err)
		}
		want := []string{"walk", "walk/a", "walk/a/deep", "walk/a/deep/f.txt", "walk/b", "walk/b/g.txt"}
		if !slices.Equal(visited, want) {
			t.Errorf("Walk(walk) visited %v, want %v", visited, want)
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk("walk", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			if d.IsDir() && path == "walk/a" {
				return fs.SkipDir
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk): %v", err)
		}
		if slices.Contains(visited, "walk/a/deep") {
			t.Errorf("Walk(walk) descended into skipped dir: %v", visited)
		}
		if !slices.Contains(visited, "walk/b/g.txt") {
			t.Errorf("Walk(walk) stopped early after SkipDir: %v", visited)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		var gotErr error
		_ = filesystem.Walk("missing", func(_ string, _ fs.DirEntry, err error) error {
			gotErr = err
			return nil
		})
		if gotErr == nil {
			t.Error("Walk(missing): walkFn received nil error, want not-exist")
		}
	})

	t.Run("SymlinkNotFollowed", func(t *testing.T) {
		sfs, ok := filesystem.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}
		if err := sfs.Symlink("a", "walk/link"); err != nil {
			t.Fatalf("Symlink(a, walk/link): %v", err)
		}
		var visited []string
		err := filesystem.Walk("walk", func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk): %v", err)
		}
		if !slices.Contains(visited, "walk/link") {
			t.Errorf("Walk(walk) did not report the link: %v", visited)
		}
		if slices.Contains(visited, "walk/link/deep") {
			t.Errorf("Walk(walk) followed the link: %v", visited)
		}
	})
}
