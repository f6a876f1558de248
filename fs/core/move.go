package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

// MoveMethod identifies how Move relocated a file.
type MoveMethod int

const (
	// MoveNone means nothing was moved.
	MoveNone MoveMethod = iota
	// MoveRename means an atomic rename succeeded.
	MoveRename
	// MoveCopy means the rename crossed a device boundary and the tree was
	// copied to the destination and then removed from the source.
	MoveCopy
)

// String returns a string representation of the MoveMethod.
func (m MoveMethod) String() string {
	switch m {
	case MoveRename:
		return "rename"
	case MoveCopy:
		return "copy"
	default:
		return "none"
	}
}

// MoveError records which move strategy failed.
type MoveError struct {
	Method MoveMethod
	Src    string
	Dst    string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s -> %s: %v", e.Method, e.Src, e.Dst, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// Move renames src to dst, falling back to a recursive copy followed by
// removal of src when the rename fails with a cross-device error.
//
// The returned method reports which strategy was used, including on
// failure. A failed copy removes whatever it wrote to dst and leaves src in
// place. Failing to remove src after a complete copy leaves both copies and
// returns an error.
func Move(fsys FS, src, dst string) (MoveMethod, error) {
	err := fsys.Rename(src, dst)
	if err == nil {
		return MoveRename, nil
	}
	if !IsCrossDevice(err) {
		return MoveRename, &MoveError{Method: MoveRename, Src: src, Dst: dst, Err: err}
	}

	// The cleanup below must never remove something the copy did not create.
	if _, err := Lstat(fsys, dst); err == nil {
		return MoveCopy, &MoveError{Method: MoveCopy, Src: src, Dst: dst, Err: &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrExist}}
	}
	if err := CopyTree(fsys, src, dst); err != nil {
		_ = fsys.RemoveAll(dst)
		return MoveCopy, &MoveError{Method: MoveCopy, Src: src, Dst: dst, Err: err}
	}
	if err := fsys.RemoveAll(src); err != nil {
		return MoveCopy, &MoveError{Method: MoveCopy, Src: src, Dst: dst, Err: fmt.Errorf("removing source after copy: %w", err)}
	}
	return MoveCopy, nil
}

// CopyTree recursively copies src to dst. Regular files, directories, and
// symbolic links are supported; any other file type fails with
// ErrUnsupported. Permission bits and modification times are preserved when
// fsys implements MetadataFS. dst must not exist.
func CopyTree(fsys FS, src, dst string) error {
	info, err := Lstat(fsys, src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		sfs, ok := fsys.(SymlinkFS)
		if !ok {
			return &fs.PathError{Op: "copy", Path: src, Err: ErrUnsupported}
		}
		target, err := sfs.Readlink(src)
		if err != nil {
			return err
		}
		return sfs.Symlink(target, dst)

	case info.IsDir():
		if err := fsys.Mkdir(dst, info.Mode().Perm()|0o700); err != nil {
			return err
		}
		entries, err := fsys.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := CopyTree(fsys, path.Join(src, entry.Name()), path.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
		return copyMetadata(fsys, dst, info)

	case info.Mode().IsRegular():
		if err := copyFile(fsys, src, dst, info.Mode().Perm()); err != nil {
			return err
		}
		return copyMetadata(fsys, dst, info)

	default:
		return &fs.PathError{Op: "copy", Path: src, Err: ErrUnsupported}
	}
}

func copyFile(fsys FS, src, dst string, perm fs.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if s, ok := out.(Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = out.Close()
			return err
		}
	}
	return out.Close()
}

// copyMetadata restores mode and times on dst. Providers that cannot store
// them are skipped silently.
func copyMetadata(fsys FS, dst string, info fs.FileInfo) error {
	mfs, ok := fsys.(MetadataFS)
	if !ok {
		return nil
	}
	if err := mfs.Chmod(dst, info.Mode().Perm()); err != nil && !errors.Is(err, ErrUnsupported) {
		return err
	}
	if err := mfs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil && !errors.Is(err, ErrUnsupported) {
		return err
	}
	return nil
}

// Lstat returns file info for name without following a final symbolic link
// when the provider supports it, and falls back to Stat otherwise.
func Lstat(fsys FS, name string) (fs.FileInfo, error) {
	if mfs, ok := fsys.(MetadataFS); ok {
		return mfs.Lstat(name)
	}
	return fsys.Stat(name)
}
