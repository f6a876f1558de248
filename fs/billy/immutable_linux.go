package billy

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func statx(path string, mask int) (*unix.Statx_t, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW|unix.AT_STATX_SYNC_AS_STAT, mask, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return nil, nil
	}
	if err != nil {
		return nil, &fs.PathError{Op: "statx", Path: path, Err: err}
	}
	return &stx, nil
}

// immutable reads STATX_ATTR_IMMUTABLE. Kernels or filesystems that do not
// report the attribute are treated as mutable.
func immutable(path string) (bool, error) {
	stx, err := statx(path, unix.STATX_BASIC_STATS)
	if err != nil || stx == nil {
		return false, err
	}
	if stx.Attributes_mask&unix.STATX_ATTR_IMMUTABLE == 0 {
		return false, nil
	}
	return stx.Attributes&unix.STATX_ATTR_IMMUTABLE != 0, nil
}

func birthTime(path string) (time.Time, error) {
	stx, err := statx(path, unix.STATX_BTIME)
	if err != nil || stx == nil {
		return time.Time{}, err
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, nil
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}

func nameMax(dir string) (int, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return 0, &fs.PathError{Op: "statfs", Path: dir, Err: err}
	}
	if st.Namelen <= 0 {
		return defaultNameMax, nil
	}
	return int(st.Namelen), nil
}
