//go:build !linux && !darwin

package sorting

import "io/fs"

// fillSys leaves the ModTime-derived defaults in place.
func fillSys(*Entry, fs.FileInfo) {}
