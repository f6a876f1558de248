package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/filemgr/fs/core"
)

// LocalFS wraps billy's osfs for local filesystem access.
// Besides core.FS it implements the optional MetadataFS, SymlinkFS,
// AccessFS, AttributeFS, and LimitsFS capabilities.
type LocalFS struct {
	provider
	root string
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
// It implements core.FS, MetadataFS (Lstat only), and SymlinkFS.
type MemoryFS struct {
	provider
}

// provider holds the operations shared by every billy backend.
type provider struct {
	bfs billy.Filesystem
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a local filesystem at dir instead of "/". Every path,
// absolute or relative, is resolved beneath dir.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// The returned filesystem is rooted at the filesystem root ("/") unless
// WithRoot is given.
func NewLocal(opts ...Option) *LocalFS {
	cfg := config{root: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LocalFS{
		provider: provider{bfs: osfs.New(cfg.root)},
		root:     cfg.root,
	}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{
		provider: provider{bfs: memfs.New()},
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (p *provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
// Returns a File that also implements fs.File.
func (p *provider) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := p.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// Stat returns file metadata for the named file, following symbolic links.
func (p *provider) Stat(name string) (fs.FileInfo, error) {
	return p.bfs.Stat(normalize(name))
}

// Lstat returns file metadata without following a final symbolic link.
func (p *provider) Lstat(name string) (fs.FileInfo, error) {
	return p.bfs.Lstat(normalize(name))
}

// ReadDir reads the directory named by dirname and returns
// a list of directory entries sorted by filename.
func (p *provider) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := p.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (p *provider) ReadFile(name string) ([]byte, error) {
	f, err := p.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
// A dangling symbolic link exists.
func (p *provider) Exists(name string) (bool, error) {
	_, err := p.bfs.Lstat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (p *provider) Create(name string) (core.File, error) {
	name = normalize(name)
	f, err := p.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (p *provider) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := p.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: p.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (p *provider) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := p.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Mkdir creates a new directory with the specified name and permission bits.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (p *provider) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := p.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := p.bfs.Stat(parent); err != nil {
			return err
		}
	}
	return p.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (p *provider) MkdirAll(path string, perm fs.FileMode) error {
	return p.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (p *provider) Remove(name string) error {
	return p.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains. Symbolic links are
// removed, never followed.
func (p *provider) RemoveAll(path string) error {
	path = normalize(path)
	info, err := p.bfs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return p.bfs.Remove(path)
	}

	entries, err := p.bfs.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := p.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return err
		}
	}
	return p.bfs.Remove(path)
}

// Rename renames (moves) oldpath to newpath.
func (p *provider) Rename(oldpath, newpath string) error {
	return p.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root. Symbolic links are not followed.
func (p *provider) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := p.bfs.Lstat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = p.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (p *provider) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := p.bfs.ReadDir(path)
	if err != nil {
		err = walkFn(path, d, err)
		if err != nil {
			return err
		}
	}

	for _, entry := range entries {
		newPath := normalize(filepath.Join(path, entry.Name()))
		if err := p.walk(newPath, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Symlink creates a symbolic link named newname pointing to oldname.
func (p *provider) Symlink(oldname, newname string) error {
	return p.bfs.Symlink(oldname, normalize(newname))
}

// Readlink returns the destination of the named symbolic link.
func (p *provider) Readlink(name string) (string, error) {
	return p.bfs.Readlink(normalize(name))
}

// LocalFS specific capabilities

// host maps a filesystem path to the path on the host.
func (lfs *LocalFS) host(name string) string {
	return filepath.Join(lfs.root, filepath.FromSlash(name))
}

// Readlink returns the destination of the named symbolic link exactly as
// stored. The chroot layer rewrites absolute targets relative to the root.
func (lfs *LocalFS) Readlink(name string) (string, error) {
	return os.Readlink(lfs.host(name))
}

// Symlink creates a symbolic link named newname pointing to oldname,
// storing oldname verbatim.
func (lfs *LocalFS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, lfs.host(newname))
}

// Mkdir creates a directory with exactly perm (less the umask). The chroot
// layer would create it with 0755 regardless of perm.
func (lfs *LocalFS) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(lfs.host(normalize(name)), perm)
}

// MkdirAll creates path and any missing parents with perm (less the umask).
func (lfs *LocalFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(lfs.host(normalize(path)), perm)
}

// Chmod changes the mode of the named file.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(lfs.host(name), mode)
}

// Chtimes changes the access and modification times of the named file.
func (lfs *LocalFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(lfs.host(name), atime, mtime)
}

// Access checks the caller's access to the named file.
func (lfs *LocalFS) Access(name string, mode core.AccessMode) error {
	return access(lfs.host(name), mode)
}

// Immutable reports whether the named file has the immutable attribute set.
func (lfs *LocalFS) Immutable(name string) (bool, error) {
	return immutable(lfs.host(name))
}

// BirthTime returns the creation time of the named file, if recorded.
func (lfs *LocalFS) BirthTime(name string) (time.Time, error) {
	return birthTime(lfs.host(name))
}

// NameMax returns the maximum file name length on the filesystem holding dir.
func (lfs *LocalFS) NameMax(dir string) (int, error) {
	return nameMax(lfs.host(dir))
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// MemoryFS specific capabilities

// Chmod is not supported by the in-memory backend.
func (mfs *MemoryFS) Chmod(name string, _ fs.FileMode) error {
	return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
}

// Chtimes is not supported by the in-memory backend.
func (mfs *MemoryFS) Chtimes(name string, _, _ time.Time) error {
	return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrUnsupported}
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// Compile-time interface checks.
var (
	_ core.FS          = (*LocalFS)(nil)
	_ core.MetadataFS  = (*LocalFS)(nil)
	_ core.SymlinkFS   = (*LocalFS)(nil)
	_ core.AccessFS    = (*LocalFS)(nil)
	_ core.AttributeFS = (*LocalFS)(nil)
	_ core.LimitsFS    = (*LocalFS)(nil)
	_ core.FS          = (*MemoryFS)(nil)
	_ core.MetadataFS  = (*MemoryFS)(nil)
	_ core.SymlinkFS   = (*MemoryFS)(nil)
)
