// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps osfs and is what the trash manager runs against in
// production. Beyond the core interfaces it reports access(2) results,
// the immutable file attribute, and the file name length limit, which the
// trash permission preflight and name truncation rely on.
//
// MemoryFS wraps memfs and is used by tests that exercise pure logic.
//
// Usage:
//
//	fsys := billy.NewLocal()
//	mgr, err := trash.New(trashDir, trash.WithFS(fsys))
//
//	// Scoped to a directory, e.g. for tests
//	fsys := billy.NewLocal(billy.WithRoot(t.TempDir()))
//
// # Thread Safety
//
// FS instances (LocalFS, MemoryFS) are safe for concurrent use by
// multiple goroutines. File handles are not safe for concurrent use.
package billy
