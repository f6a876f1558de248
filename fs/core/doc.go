// Package core provides the foundational interfaces and types for a
// multi-provider filesystem abstraction.
//
// This package defines contracts that filesystem providers must implement,
// so the sorting and trash packages run unchanged against the local disk and
// an in-memory filesystem.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses Go standard library
//   - Interface composition: Small focused interfaces compose into larger contracts
//   - Stdlib compatibility: Extends fs.FS and fs.File rather than replacing them
//   - Optional capabilities: Use type assertions for provider-specific features
//
// # Interface Hierarchy
//
// The main FS interface is composed of four sub-interfaces:
//
//   - ReadFS: Read-only operations (Open, Stat, ReadDir, ReadFile)
//   - WriteFS: Write operations (Create, OpenFile, WriteFile, Mkdir)
//   - ManageFS: File management (Remove, RemoveAll, Rename)
//   - WalkFS: Directory traversal (Walk)
//
// Optional interfaces for provider-specific capabilities:
//
//   - MetadataFS: Metadata operations (Lstat, Chmod, Chtimes)
//   - SymlinkFS: Symbolic link operations (Symlink, Readlink)
//   - AccessFS: access(2) style permission probes
//   - AttributeFS: Immutable flag and birth time
//   - LimitsFS: Maximum file name length
//
// Move renames a tree and falls back to copy and delete across devices.
//
// # Usage Example
//
//	import "github.com/jmgilman/go/filemgr/fs/core"
//
//	func Backup(filesystem core.FS, name string) error {
//	    data, err := filesystem.ReadFile(name)
//	    if err != nil {
//	        return err
//	    }
//	    return filesystem.WriteFile(name+".bak", data, 0644)
//	}
//
// # Checking Optional Capabilities
//
//	if mfs, ok := filesystem.(core.MetadataFS); ok {
//	    mfs.Chmod("file.txt", 0600)
//	}
//
// # Stdlib Compatibility
//
// The FS interface embeds fs.FS, making it compatible with standard library
// functions like fs.WalkDir, fs.ReadFile, etc.
//
//	import "io/fs"
//
//	err := fs.WalkDir(filesystem, ".", func(path string, d fs.DirEntry, err error) error {
//	    fmt.Println(path)
//	    return nil
//	})
//
// # Provider Implementations
//
// Concrete implementations live in github.com/jmgilman/go/filemgr/fs/billy,
// which provides go-billy-backed LocalFS and MemoryFS.
package core
