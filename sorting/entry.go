package sorting

import (
	"io/fs"
	"time"
)

// FileType classifies a directory entry.
type FileType int

// File types.
const (
	TypeUnknown FileType = iota
	TypeRegular
	TypeDir
	TypeSymlink
	TypeSocket
	TypeFIFO
	TypeBlockDevice
	TypeCharDevice
	TypeDoor
)

// String returns a short name for the file type.
func (t FileType) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDir:
		return "dir"
	case TypeSymlink:
		return "symlink"
	case TypeSocket:
		return "socket"
	case TypeFIFO:
		return "fifo"
	case TypeBlockDevice:
		return "blockdev"
	case TypeCharDevice:
		return "chardev"
	case TypeDoor:
		return "door"
	default:
		return "unknown"
	}
}

// TypeOf maps file mode type bits to a FileType.
func TypeOf(mode fs.FileMode) FileType {
	switch {
	case mode.IsRegular():
		return TypeRegular
	case mode&fs.ModeDir != 0:
		return TypeDir
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	default:
		return TypeUnknown
	}
}

// Entry is one directory entry with the metadata the sort keys need.
// Entries are treated as immutable once handed to a Sorter.
type Entry struct {
	Name  string
	Type  FileType
	Size  int64
	ATime time.Time
	// BTime is the birth time. The zero value means unknown; comparisons
	// then use CTime.
	BTime time.Time
	CTime time.Time
	MTime time.Time
	Inode uint64
	UID   uint32
	GID   uint32
	// IsDir is true for directories and symbolic links to directories.
	IsDir bool
}

// NewEntry builds an Entry from lstat-style file info. Platform metadata
// (inode, owner, atime, ctime) is filled in when info.Sys() carries it.
func NewEntry(info fs.FileInfo) Entry {
	e := Entry{
		Name:  info.Name(),
		Type:  TypeOf(info.Mode()),
		Size:  info.Size(),
		MTime: info.ModTime(),
		IsDir: info.IsDir(),
	}
	e.ATime = e.MTime
	e.CTime = e.MTime
	fillSys(&e, info)
	return e
}

func (e Entry) birthOrChange() time.Time {
	if e.BTime.IsZero() {
		return e.CTime
	}
	return e.BTime
}
