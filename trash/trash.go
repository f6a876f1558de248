package trash

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
)

// Trash moves each path into the trash. Relative paths are resolved against
// the working directory and a trailing slash is ignored, so a symbolic link
// is trashed as a link. Every item of one call shares a deletion suffix.
//
// Each item is checked before anything moves: it must not be the trash, an
// ancestor of it, or a device, and the preflight must pass. Failures are
// per item; the returned error is the Report's.
func (m *Manager) Trash(paths ...string) (Report, error) {
	at := m.now()
	suffix := deletionSuffix(at)
	nameMax := m.limit()

	var r Report
	for _, p := range paths {
		res := m.trashOne(p, suffix, at, nameMax)
		m.logResult(logging.OpTrash, res)
		r.add(res)
	}
	return m.finish(logging.OpTrash, r)
}

func (m *Manager) trashOne(p, suffix string, at time.Time, nameMax int) Result {
	if p == "" {
		return Result{Err: errors.New(errors.CodeInvalidInput, "empty path")}
	}
	abs := m.resolve(p)
	res := Result{Path: abs}

	if err := m.checkTarget(abs, nil); err != nil {
		res.Err = err
		return res
	}
	info, err := core.Lstat(m.fsys, abs)
	if err != nil {
		res.Err = pathError(err, abs, "%s: cannot trash", abs)
		return res
	}
	if err := m.checkTarget(abs, info); err != nil {
		res.Err = err
		return res
	}
	if err := m.preflight(abs, info); err != nil {
		res.Err = err
		return res
	}

	name, err := trashedName(filepath.Base(abs), suffix, nameMax)
	if err != nil {
		res.Err = err
		return res
	}
	res.Name = name
	dst := m.filePath(name)

	if _, err := core.Lstat(m.fsys, dst); err == nil {
		res.Err = errors.WithContextMap(
			errors.Newf(errors.CodeAlreadyExists, "%s: %s already exists in the trash", abs, name),
			map[string]interface{}{"path": abs, "name": name})
		return res
	}

	method, err := core.Move(m.fsys, abs, dst)
	res.Method = method
	if err != nil {
		res.Err = moveError(err, method, abs, "%s: failed to move file to the trash", abs)
		return res
	}

	if err := m.writeInfo(name, abs, at); err != nil {
		res.Err = m.rollback(name, abs, err)
	}
	return res
}

func (m *Manager) writeInfo(name, abs string, at time.Time) error {
	path := m.infoPath(name)
	f, err := m.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, infoPerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(encodeInfo(abs, at)); err != nil {
		_ = f.Close()
		_ = m.fsys.Remove(path)
		return err
	}
	if s, ok := f.(core.Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = f.Close()
			_ = m.fsys.Remove(path)
			return err
		}
	}
	if err := f.Close(); err != nil {
		_ = m.fsys.Remove(path)
		return err
	}
	return nil
}

// rollback undoes a move whose sidecar could not be written, so files/
// never holds an entry without one. The item is moved back to where it
// came from; only if that fails is the trashed copy deleted.
func (m *Manager) rollback(name, abs string, cause error) error {
	err := errors.WithContextMap(
		errors.Wrapf(cause, errors.CodeForOS(cause), "%s: failed to write info file", abs),
		map[string]interface{}{"path": abs, "name": name})

	if _, moveErr := core.Move(m.fsys, m.filePath(name), abs); moveErr == nil {
		return err
	}
	if rmErr := m.fsys.RemoveAll(m.filePath(name)); rmErr != nil {
		m.logger.WithOperation(logging.OpTrash).WithPath(m.filePath(name)).WithError(rmErr).
			Error("failed removing trashed file; remove it manually")
		return errors.WithContext(err, "orphan", m.filePath(name))
	}
	return errors.WithContext(err, "deleted", true)
}

// pathError wraps an OS error with the code matching it.
func pathError(err error, path, format string, args ...interface{}) error {
	return errors.WithContext(errors.Wrapf(err, errors.CodeForOS(err), format, args...), "path", path)
}

// moveError tags a failed move with the strategy that failed, so a failed
// cross-device copy reads differently from a failed rename.
func moveError(err error, method core.MoveMethod, path, format string, args ...interface{}) error {
	code := errors.CodeForOS(err)
	if method == core.MoveCopy && code == errors.CodeCrossDevice {
		code = errors.CodeIO
	}
	msg := format
	if method == core.MoveCopy {
		msg += " (cross-device copy)"
	}
	return errors.WithContextMap(
		errors.Wrapf(err, code, msg, args...),
		map[string]interface{}{"path": path, "method": method.String()})
}

// isNotExist is errors.Is(err, fs.ErrNotExist).
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
