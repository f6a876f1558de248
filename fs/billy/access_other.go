//go:build !unix

package billy

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// access only checks existence and the owner write bit where access(2) is
// unavailable.
func access(path string, mode core.AccessMode) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if mode&core.AccessWrite != 0 && info.Mode().Perm()&0o200 == 0 {
		return &fs.PathError{Op: "access", Path: path, Err: fs.ErrPermission}
	}
	return nil
}
