package trash

import (
	"path/filepath"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
)

// Untrash restores the selected items to their original paths and deletes
// their sidecars. An item is skipped, never overwritten, when something
// already occupies its original path. Corrupt or missing sidecars fail that
// item only.
func (m *Manager) Untrash(sel Selection) (Report, error) {
	names, bad, err := m.resolveSelection(sel)
	if err != nil {
		return Report{Remaining: -1}, err
	}

	var r Report
	for _, res := range bad {
		m.logResult(logging.OpUntrash, res)
		r.add(res)
	}
	for _, name := range names {
		res := m.untrashOne(name)
		m.logResult(logging.OpUntrash, res)
		r.add(res)
	}
	return m.finish(logging.OpUntrash, r)
}

func (m *Manager) untrashOne(name string) Result {
	res := Result{Name: name}

	entry, err := m.readInfo(name)
	if err != nil {
		res.Err = err
		return res
	}
	dst := filepath.Clean(entry.OriginalPath)
	res.Path = dst

	parent := filepath.Dir(dst)
	info, err := m.fsys.Stat(parent)
	if err != nil {
		res.Err = pathError(err, parent, "%s: cannot restore to %s", name, parent)
		return res
	}
	if !info.IsDir() {
		res.Err = errors.WithContext(
			errors.Newf(errors.CodeNotFound, "%s: cannot restore to %s: not a directory", name, parent),
			"path", parent)
		return res
	}
	if err := newChecker(m.fsys).writable(parent); err != nil {
		res.Err = pathError(err, parent, "%s: cannot restore to %s", name, parent)
		return res
	}

	if _, err := core.Lstat(m.fsys, dst); err == nil {
		res.Err = errors.WithContextMap(
			errors.Newf(errors.CodeAlreadyExists, "%s: destination file exists", dst),
			map[string]interface{}{"path": dst, "name": name})
		return res
	}

	src := m.filePath(name)
	if _, err := core.Lstat(m.fsys, src); err != nil {
		res.Err = pathError(err, src, "%s: trashed file missing", name)
		return res
	}

	method, err := core.Move(m.fsys, src, dst)
	res.Method = method
	if err != nil {
		res.Err = moveError(err, method, dst, "%s: failed to restore %s", name, dst)
		return res
	}

	if err := m.fsys.Remove(m.infoPath(name)); err != nil && !isNotExist(err) {
		res.Err = pathError(err, m.infoPath(name), "%s: error removing info file", name)
	}
	return res
}
