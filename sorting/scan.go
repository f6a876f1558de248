package sorting

import (
	"io/fs"
	"path"

	"github.com/jmgilman/go/filemgr/errors"
	"github.com/jmgilman/go/filemgr/fs/core"
)

// Scan reads dir and returns one Entry per child, excluding "." and "..".
// Entries describe the child itself (symbolic links are not followed) except
// that IsDir is set for links that resolve to a directory. Birth times are
// filled in when fsys implements core.AttributeFS.
//
// A child that disappears between listing and stat is skipped.
func Scan(fsys core.FS, dir string) ([]Entry, error) {
	children, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeForOS(err), "failed to read directory %s", dir)
	}

	attrs, _ := fsys.(core.AttributeFS)
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if name == "." || name == ".." {
			continue
		}
		full := path.Join(dir, name)

		info, err := core.Lstat(fsys, full)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeForOS(err), "failed to stat %s", full)
		}

		e := NewEntry(info)
		if e.Type == TypeSymlink {
			if target, err := fsys.Stat(full); err == nil {
				e.IsDir = target.IsDir()
			}
		}
		if attrs != nil {
			if btime, err := attrs.BirthTime(full); err == nil {
				e.BTime = btime
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
