package fstest

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// TestMetadataFS tests Lstat, Chmod, and Chtimes.
// Uses type assertion - skips if fs doesn't implement core.MetadataFS.
// Chmod and Chtimes may return core.ErrUnsupported.
func TestMetadataFS(t *testing.T, filesystem core.FS) {
	mfs, ok := filesystem.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
	}
	mustWrite(t, filesystem, "meta.txt", "meta")

	t.Run("Lstat", func(t *testing.T) {
		info, err := mfs.Lstat("meta.txt")
		if err != nil {
			t.Fatalf("Lstat(meta.txt): %v", err)
		}
		if info.IsDir() || info.Size() != 4 {
			t.Errorf("Lstat(meta.txt) = dir=%v size=%d, want file of 4 bytes", info.IsDir(), info.Size())
		}
		if _, err := mfs.Lstat("missing"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Lstat(missing): got %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Chmod", func(t *testing.T) {
		err := mfs.Chmod("meta.txt", 0600)
		if errors.Is(err, core.ErrUnsupported) {
			t.Skip("Chmod unsupported")
		}
		if err != nil {
			t.Fatalf("Chmod(meta.txt): %v", err)
		}
		info, err := mfs.Lstat("meta.txt")
		if err != nil {
			t.Fatalf("Lstat(meta.txt): %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode after Chmod = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("Chtimes", func(t *testing.T) {
		mtime := time.Date(2019, 7, 1, 12, 0, 0, 0, time.UTC)
		err := mfs.Chtimes("meta.txt", mtime, mtime)
		if errors.Is(err, core.ErrUnsupported) {
			t.Skip("Chtimes unsupported")
		}
		if err != nil {
			t.Fatalf("Chtimes(meta.txt): %v", err)
		}
		info, err := mfs.Lstat("meta.txt")
		if err != nil {
			t.Fatalf("Lstat(meta.txt): %v", err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("ModTime after Chtimes = %v, want %v", info.ModTime(), mtime)
		}
	})
}
