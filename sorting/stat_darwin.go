package sorting

import (
	"io/fs"
	"syscall"
	"time"
)

func fillSys(e *Entry, info fs.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	e.Inode = st.Ino
	e.UID = st.Uid
	e.GID = st.Gid
	e.ATime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	e.CTime = time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	e.BTime = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
}
