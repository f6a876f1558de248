package trash

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
)

// violation is one path that blocks a trash operation.
type violation struct {
	path   string
	reason string
}

func (v violation) String() string {
	return v.path + ": " + v.reason
}

// checker answers access and immutability questions for the preflight.
// Providers without AccessFS or AttributeFS grant everything.
type checker struct {
	fsys   core.FS
	access core.AccessFS
	attrs  core.AttributeFS
}

func newChecker(fsys core.FS) checker {
	c := checker{fsys: fsys}
	c.access, _ = fsys.(core.AccessFS)
	c.attrs, _ = fsys.(core.AttributeFS)
	return c
}

func (c checker) writable(dir string) error {
	if c.access == nil {
		return nil
	}
	return c.access.Access(dir, core.AccessWrite|core.AccessExecute)
}

func (c checker) immutable(name string) (bool, error) {
	if c.attrs == nil {
		return false, nil
	}
	return c.attrs.Immutable(name)
}

// checkTarget rejects the trash itself, anything inside it, any ancestor of
// it, and device files.
func (m *Manager) checkTarget(abs string, info fs.FileInfo) error {
	switch {
	case within(m.root, abs):
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidTarget, "cannot trash %s: it contains the trash directory", abs),
			"path", abs)
	case within(abs, m.root):
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidTarget, "cannot trash %s: use 'trash del' to remove trashed files", abs),
			"path", abs)
	}

	if info == nil {
		return nil
	}
	switch mode := info.Mode(); {
	case mode&fs.ModeCharDevice != 0:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidTarget, "%s: cannot trash a character device", abs), "path", abs)
	case mode&fs.ModeDevice != 0:
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidTarget, "%s: cannot trash a block device", abs), "path", abs)
	}
	return nil
}

// preflight verifies that abs can be moved out of its parent. Directories
// are checked recursively; the walk keeps going after a failure so every
// offending subdirectory is reported at once. Nothing is modified.
func (m *Manager) preflight(abs string, info fs.FileInfo) error {
	c := newChecker(m.fsys)
	parent := filepath.Dir(abs)
	var found []violation

	if err := c.writable(parent); err != nil {
		found = append(found, violation{parent, "permission denied"})
	}
	if imm, err := c.immutable(parent); err == nil && imm {
		found = append(found, violation{parent, "directory is immutable"})
	}

	switch {
	case info.Mode().IsRegular():
		found = append(found, c.checkImmutable(abs, "file is immutable")...)
	case info.IsDir():
		found = append(found, c.checkImmutable(abs, "directory is immutable")...)
		found = append(found, c.walkDirs(abs)...)
	}
	// Symlinks, sockets and FIFOs carry no immutable attribute of their own.

	if len(found) == 0 {
		return nil
	}
	return preflightError(abs, found)
}

func (c checker) checkImmutable(name, why string) []violation {
	imm, err := c.immutable(name)
	switch {
	case err != nil:
		return []violation{{name, reason(err)}}
	case imm:
		return []violation{{name, why}}
	default:
		return nil
	}
}

// walkDirs checks write and search permission and immutability on root and
// every directory beneath it. Symbolic links are not followed.
func (c checker) walkDirs(root string) []violation {
	var found []violation
	seen := make(map[string]bool)
	report := func(v violation) {
		if !seen[v.path] {
			seen[v.path] = true
			found = append(found, v)
		}
	}

	_ = c.fsys.Walk(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			report(violation{path, reason(err)})
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := c.writable(path); err != nil {
			report(violation{path, "permission denied"})
		}
		if path != root {
			for _, v := range c.checkImmutable(path, "directory is immutable") {
				report(v)
			}
		}
		return nil
	})
	return found
}

// reason strips the operation and path from err, which the violation
// already names.
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

func preflightError(abs string, found []violation) error {
	paths := make([]string, len(found))
	lines := make([]string, len(found))
	for i, v := range found {
		paths[i] = v.path
		lines[i] = v.String()
	}
	return errors.WithContextMap(
		errors.New(errors.CodePermissionDenied,
			fmt.Sprintf("cannot trash %s: %s", abs, strings.Join(lines, "; "))),
		map[string]interface{}{"path": abs, "offending": paths})
}
