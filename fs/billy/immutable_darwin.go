package billy

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func lstat(path string) (*unix.Stat_t, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}
	return &st, nil
}

func immutable(path string) (bool, error) {
	st, err := lstat(path)
	if err != nil {
		return false, err
	}
	return st.Flags&(unix.UF_IMMUTABLE|unix.SF_IMMUTABLE) != 0, nil
}

func birthTime(path string) (time.Time, error) {
	st, err := lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(st.Btim.Unix()), nil
}

func nameMax(string) (int, error) {
	return defaultNameMax, nil
}
