package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// TestReadWriteFS tests WriteFile, ReadFile, Stat, Exists, Mkdir, and ReadDir.
func TestReadWriteFS(t *testing.T, filesystem core.FS) {
	t.Run("WriteThenRead", func(t *testing.T) {
		want := []byte("file content")
		if err := filesystem.WriteFile("rw.txt", want, 0644); err != nil {
			t.Fatalf("WriteFile(rw.txt): %v", err)
		}
		got, err := filesystem.ReadFile("rw.txt")
		if err != nil {
			t.Fatalf("ReadFile(rw.txt): %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("ReadFile(rw.txt) = %q, want %q", got, want)
		}
		info, err := filesystem.Stat("rw.txt")
		if err != nil {
			t.Fatalf("Stat(rw.txt): %v", err)
		}
		if info.Size() != int64(len(want)) {
			t.Errorf("Stat(rw.txt).Size() = %d, want %d", info.Size(), len(want))
		}
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := filesystem.Exists("rw.txt")
		if err != nil || !ok {
			t.Errorf("Exists(rw.txt) = %v, %v; want true, nil", ok, err)
		}
		ok, err = filesystem.Exists("nope.txt")
		if err != nil || ok {
			t.Errorf("Exists(nope.txt) = %v, %v; want false, nil", ok, err)
		}
	})

	t.Run("ReadMissing", func(t *testing.T) {
		_, err := filesystem.ReadFile("nope.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadFile(nope.txt): got %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("MkdirAndReadDir", func(t *testing.T) {
		if err := filesystem.Mkdir("dir", 0755); err != nil {
			t.Fatalf("Mkdir(dir): %v", err)
		}
		if err := filesystem.Mkdir("dir", 0755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(dir) twice: got %v, want fs.ErrExist", err)
		}
		for _, name := range []string{"dir/b", "dir/a", "dir/c"} {
			if err := filesystem.WriteFile(name, []byte(name), 0644); err != nil {
				t.Fatalf("WriteFile(%s): %v", name, err)
			}
		}
		entries, err := filesystem.ReadDir("dir")
		if err != nil {
			t.Fatalf("ReadDir(dir): %v", err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
			t.Errorf("ReadDir(dir) = %v, want [a b c]", names)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("x/y/z", 0755); err != nil {
			t.Fatalf("MkdirAll(x/y/z): %v", err)
		}
		if err := filesystem.MkdirAll("x/y/z", 0755); err != nil {
			t.Errorf("MkdirAll(x/y/z) on existing: %v", err)
		}
		info, err := filesystem.Stat("x/y/z")
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(x/y/z) = %v, %v; want directory", info, err)
		}
	})
}
