//go:build unix

package billy

import (
	"io/fs"

	"github.com/jmgilman/go/filemgr/fs/core"
	"golang.org/x/sys/unix"
)

func access(path string, mode core.AccessMode) error {
	if err := unix.Access(path, uint32(mode)); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
