// Package trash implements a freedesktop-style trash can: a root directory
// holding files/ and info/, where every trashed item files/<name> has a
// sidecar info/<name>.trashinfo recording its original absolute path and
// deletion time.
//
// A Manager moves files into the trash (Trash), enumerates it (List,
// Inspect), deletes items permanently (Remove, Clear) and restores them
// (Untrash). Batch operations never stop at the first failing item; they
// return a Report with per-item results and an error carrying
// CodePartialFailure when any item failed.
//
// Selections are pre-parsed data. ParseSelection turns interactive input
// such as "1 3-5" or "*" into a Selection for callers that need it.
package trash
