package trash

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/billy"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
	"github.com/jmgilman/go/filemgr/sorting"
)

const (
	filesDirName = "files"
	infoDirName  = "info"
	dirPerm      = 0o700
	infoPerm     = 0o600
	defaultMax   = 255
)

// Manager operates on one trash root. It performs no internal locking: one
// session is expected to own the trash directory, and concurrent external
// changes surface as per-item not-found errors.
type Manager struct {
	fsys     core.FS
	root     string
	filesDir string
	infoDir  string
	workDir  string
	now      func() time.Time
	logger   *logging.Logger
	sorter   *sorting.Sorter
	nameMax  int
}

// Option configures a Manager.
type Option func(*Manager)

// WithFS sets the filesystem. Paths passed to it are absolute. The default
// is the local filesystem rooted at "/".
func WithFS(fsys core.FS) Option {
	return func(m *Manager) {
		m.fsys = fsys
	}
}

// WithWorkDir sets the directory relative paths are resolved against. The
// default is the process working directory.
func WithWorkDir(dir string) Option {
	return func(m *Manager) {
		m.workDir = dir
	}
}

// WithClock sets the time source for deletion timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithSorter sets the sorter used to order List results.
func WithSorter(sorter *sorting.Sorter) Option {
	return func(m *Manager) {
		m.sorter = sorter
	}
}

// WithNameMax fixes the maximum file name length instead of asking the
// filesystem.
func WithNameMax(n int) Option {
	return func(m *Manager) {
		m.nameMax = n
	}
}

// New opens the trash rooted at root, creating root/files and root/info
// with mode 0700 if needed. Failure to do so is fatal and carries
// CodeTrashUnavailable.
func New(root string, opts ...Option) (*Manager, error) {
	m := &Manager{
		now:    time.Now,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.fsys == nil {
		m.fsys = billy.NewLocal()
	}
	if m.sorter == nil {
		m.sorter = sorting.New(sorting.DefaultConfig())
	}
	if m.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeTrashUnavailable, "failed to determine working directory")
		}
		m.workDir = wd
	}

	if root == "" {
		return nil, errors.New(errors.CodeTrashUnavailable, "trash directory is not set")
	}
	m.root = m.resolve(root)
	m.filesDir = filepath.Join(m.root, filesDirName)
	m.infoDir = filepath.Join(m.root, infoDirName)

	for _, dir := range []string{m.filesDir, m.infoDir} {
		if err := m.fsys.MkdirAll(dir, dirPerm); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeTrashUnavailable,
				"failed to create trash directory", map[string]interface{}{"path": dir})
		}
		info, err := m.fsys.Stat(dir)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeTrashUnavailable,
				"failed to open trash directory", map[string]interface{}{"path": dir})
		}
		if !info.IsDir() {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeTrashUnavailable, "%s is not a directory", dir), "path", dir)
		}
	}

	m.logger.Debug("trash opened", "root", m.root)
	return m, nil
}

// Root returns the absolute trash root.
func (m *Manager) Root() string { return m.root }

// FilesDir returns the directory holding trashed items.
func (m *Manager) FilesDir() string { return m.filesDir }

// InfoDir returns the directory holding sidecar files.
func (m *Manager) InfoDir() string { return m.infoDir }

// List returns the names under files/ in the sorter's name order. The
// result is stable until a trash-modifying operation runs; its 1-based
// positions are the ELNs Selection.Indices and Selection.Ranges refer to.
func (m *Manager) List() ([]string, error) {
	entries, err := m.fsys.ReadDir(m.filesDir)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeTrashUnavailable,
			"failed to read trash directory", map[string]interface{}{"path": m.filesDir})
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n := e.Name(); n != "." && n != ".." {
			names = append(names, n)
		}
	}
	m.sorter.SortNames(names)

	m.logger.WithOperation(logging.OpList).WithCount(len(names)).Debug("listed trash")
	return names, nil
}

// Count returns the number of trashed items.
func (m *Manager) Count() (int, error) {
	names, err := m.List()
	return len(names), err
}

// Inspect reads the sidecar of the trashed item name.
func (m *Manager) Inspect(name string) (Entry, error) {
	if err := validName(name); err != nil {
		return Entry{Name: name}, err
	}
	return m.readInfo(name)
}

func (m *Manager) readInfo(name string) (Entry, error) {
	path := m.infoPath(name)
	data, err := m.fsys.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Entry{Name: name}, errors.WithContext(
			errors.Wrapf(err, errors.CodeNotFound, "%s: info file not found; try restoring the file manually", name),
			"path", path)
	}
	if err != nil {
		return Entry{Name: name}, errors.WithContext(
			errors.Wrapf(err, errors.CodeCorruption, "%s: failed to read info file", name),
			"path", path)
	}
	return decodeInfo(name, data)
}

func (m *Manager) filePath(name string) string {
	return filepath.Join(m.filesDir, name)
}

func (m *Manager) infoPath(name string) string {
	return filepath.Join(m.infoDir, name+infoExt)
}

// resolve makes p absolute against the working directory and cleans it,
// which also drops a trailing slash.
func (m *Manager) resolve(p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(m.workDir, p)
	}
	return filepath.Clean(p)
}

func (m *Manager) limit() int {
	if m.nameMax > 0 {
		return m.nameMax
	}
	if lfs, ok := m.fsys.(core.LimitsFS); ok {
		if n, err := lfs.NameMax(m.filesDir); err == nil && n > 0 {
			return n
		}
	}
	return defaultMax
}

// validName rejects names that would escape files/ or info/.
func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') {
		return errors.Newf(errors.CodeInvalidInput, "%q: invalid trashed file name", name)
	}
	return nil
}

// within reports whether p is dir or lies beneath it.
func within(p, dir string) bool {
	if p == dir {
		return true
	}
	if dir == "/" {
		return strings.HasPrefix(p, "/")
	}
	return strings.HasPrefix(p, dir+"/")
}
