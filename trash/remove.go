package trash

import (
	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
	"github.com/jmgilman/go/filemgr/logging"
)

// Remove permanently deletes the selected items, both the files/ entry
// (recursively) and its sidecar. An item missing either half is reported
// and left alone.
func (m *Manager) Remove(sel Selection) (Report, error) {
	return m.remove(logging.OpRemove, sel)
}

// Clear removes every trashed item. Removals that succeed stay removed when
// others fail. Clearing an empty trash succeeds with an empty Report.
func (m *Manager) Clear() (Report, error) {
	return m.remove(logging.OpClear, All())
}

func (m *Manager) remove(op logging.Operation, sel Selection) (Report, error) {
	names, bad, err := m.resolveSelection(sel)
	if err != nil {
		return Report{Remaining: -1}, err
	}

	var r Report
	for _, res := range bad {
		m.logResult(op, res)
		r.add(res)
	}
	for _, name := range names {
		res := Result{Name: name, Err: m.removeOne(name)}
		m.logResult(op, res)
		r.add(res)
	}
	return m.finish(op, r)
}

func (m *Manager) removeOne(name string) error {
	file, info := m.filePath(name), m.infoPath(name)

	var missing []string
	for _, p := range []string{file, info} {
		_, err := core.Lstat(m.fsys, p)
		switch {
		case isNotExist(err):
			missing = append(missing, p)
		case err != nil:
			return pathError(err, p, "%s: cannot remove from the trash can", name)
		}
	}
	if len(missing) > 0 {
		return errors.WithContextMap(
			errors.Newf(errors.CodeNotFound, "%s: cannot remove from the trash can: %s missing", name, missing[0]),
			map[string]interface{}{"name": name, "missing": missing})
	}

	if err := m.fsys.RemoveAll(file); err != nil {
		return pathError(err, file, "%s: error removing trashed file", name)
	}
	if err := m.fsys.Remove(info); err != nil {
		return pathError(err, info, "%s: error removing info file", name)
	}
	return nil
}
