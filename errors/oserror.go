package errors

import (
	"io/fs"
	"syscall"
)

// CodeForOS maps an operating system error to the closest ErrorCode. The
// original error is expected to stay in the chain (see Wrap) so callers can
// still match the raw errno.
//
// Example:
//
//	if err := fsys.Rename(src, dst); err != nil {
//	    return errors.Wrap(err, errors.CodeForOS(err), "failed to move file")
//	}
func CodeForOS(err error) ErrorCode {
	switch {
	case err == nil:
		return CodeUnknown
	case Is(err, fs.ErrNotExist):
		return CodeNotFound
	case Is(err, fs.ErrPermission), Is(err, syscall.EPERM), Is(err, syscall.EROFS):
		return CodePermissionDenied
	case Is(err, fs.ErrExist), Is(err, syscall.ENOTEMPTY):
		return CodeAlreadyExists
	case Is(err, syscall.EXDEV):
		return CodeCrossDevice
	case Is(err, syscall.ENAMETOOLONG):
		return CodeNameTooLong
	default:
		return CodeIO
	}
}
