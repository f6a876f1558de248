// Package sorting orders directory entries for display.
//
// A Sorter compares Entry values by a Key (name, size, one of four
// timestamps, version, extension, inode, owner, group, or none) with
// directories-first and reverse modifiers. Names are compared with leading
// punctuation ignored, digit runs compared numerically, and text collated
// for the user's locale via golang.org/x/text/collate.
//
// Sorters are not safe for concurrent use: the collator keeps internal
// buffers. Create one per goroutine.
//
//	s := sorting.New(sorting.Config{Key: sorting.KeyName, DirsFirst: true})
//	s.Sort(entries)
//	fmt.Println(s.Method()) // "name"
package sorting
