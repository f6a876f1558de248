// Package fstest provides a conformance test suite for core.FS providers.
//
// The suite checks the behavior the trash manager and directory scanner
// depend on: reading and writing files, rename and recursive removal,
// non-following walks, symbolic links, and the Move primitive. Optional
// capabilities are detected with type assertions and skipped when absent.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/go/filemgr/fs/core"
)

// FSTestConfig configures the test suite.
type FSTestConfig struct {
	// SkipTests lists test groups to skip, e.g. "SymlinkFS".
	SkipTests []string
}

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each group.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs conformance tests, skipping the configured groups.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS)
	}{
		{"ReadWriteFS", TestReadWriteFS},
		{"ManageFS", TestManageFS},
		{"WalkFS", TestWalkFS},
		{"MetadataFS", TestMetadataFS},
		{"SymlinkFS", TestSymlinkFS},
		{"Move", TestMove},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, g.name) {
				t.Skip("Skipped by provider configuration")
			}
			g.run(t, newFS())
		})
	}
}
