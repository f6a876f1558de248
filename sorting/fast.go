package sorting

import (
	"slices"
	"strings"
)

// XAlphaSort is a cheap name comparator for large scans that are already
// mostly sorted: it compares the first byte and only falls back to a full
// bytewise comparison when the first bytes match.
func XAlphaSort(a, b string) int {
	if a != "" && b != "" && a[0] != b[0] {
		if a[0] < b[0] {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// AlphaSortInsensitive is the ASCII case-insensitive variant of XAlphaSort.
// A single leading dot is skipped on each side so hidden files interleave
// with the rest.
func AlphaSortInsensitive(a, b string) int {
	a = strings.TrimPrefix(a, ".")
	b = strings.TrimPrefix(b, ".")
	if a != "" && b != "" {
		if ca, cb := upper(a[0]), upper(b[0]); ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return compareFold(a, b)
}

// SortNames orders plain names, such as a trash listing, without stat
// metadata. It uses the collator when Unicode collation is enabled and the
// fast comparators otherwise, honoring case sensitivity and reversal.
func (s *Sorter) SortNames(names []string) {
	less := AlphaSortInsensitive
	switch {
	case s.cfg.UnicodeAware && s.collator != nil:
		less = s.collator.CompareString
	case s.cfg.CaseSensitive:
		less = XAlphaSort
	}
	compare := func(a, b string) int {
		c := less(a, b)
		if c == 0 {
			c = strings.Compare(a, b)
		}
		if s.cfg.Reverse {
			c = invert(c)
		}
		return c
	}
	slices.SortFunc(names, compare)
}
