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
	e.Inode = uint64(st.Ino)
	e.UID = st.Uid
	e.GID = st.Gid
	e.ATime = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	e.CTime = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
}
