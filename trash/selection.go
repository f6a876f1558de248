package trash

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jmgilman/go/filemgr/errors"
)

// Selection picks trashed items. Indices are 1-based positions (ELNs) in
// the List result; Ranges are inclusive ELN spans, kept unexpanded until
// they are resolved against a listing; Names are literal trashed names.
// All selects everything and overrides the other fields.
type Selection struct {
	All     bool
	Indices []int
	Ranges  []Range
	Names   []string
}

// Range is an inclusive span of ELNs.
type Range struct {
	First, Last int
}

// All returns a Selection of every trashed item.
func All() Selection {
	return Selection{All: true}
}

// Indices returns a Selection of 1-based list positions.
func Indices(eln ...int) Selection {
	return Selection{Indices: eln}
}

// Names returns a Selection of literal trashed names.
func Names(names ...string) Selection {
	return Selection{Names: names}
}

// Empty reports whether the selection picks nothing.
func (s Selection) Empty() bool {
	return !s.All && len(s.Indices) == 0 && len(s.Ranges) == 0 && len(s.Names) == 0
}

// ParseSelection parses interactive picker input: space separated ELNs
// ("3"), ranges ("2-6"), "*", "a" or "all" for everything, and any other
// word as a literal trashed name. quit is true when the input contains "q",
// in which case the selection is empty.
func ParseSelection(input string) (sel Selection, quit bool, err error) {
	return ParseSelectionArgs(strings.Fields(input))
}

// ParseSelectionArgs is ParseSelection for pre-split arguments.
func ParseSelectionArgs(args []string) (sel Selection, quit bool, err error) {
	for _, arg := range args {
		switch arg {
		case "q":
			return Selection{}, true, nil
		case "*", "a", "all":
			sel.All = true
			continue
		}

		if first, last, ok := parseRange(arg); ok {
			if first < 1 || last < first {
				return Selection{}, false, errors.Newf(errors.CodeInvalidInput, "%s: invalid ELN range", arg)
			}
			sel.Ranges = append(sel.Ranges, Range{First: first, Last: last})
			continue
		}
		if n, err := strconv.Atoi(arg); err == nil {
			sel.Indices = append(sel.Indices, n)
			continue
		}
		sel.Names = append(sel.Names, arg)
	}
	return sel, false, nil
}

func parseRange(s string) (first, last int, ok bool) {
	a, b, found := strings.Cut(s, "-")
	if !found || a == "" || b == "" {
		return 0, 0, false
	}
	first, errA := strconv.Atoi(a)
	last, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return first, last, true
}

// resolveSelection turns sel into trashed names against the current listing.
// Out-of-range indices and malformed names become failed results. Each
// name appears at most once.
func (m *Manager) resolveSelection(sel Selection) ([]string, []Result, error) {
	listing, err := m.List()
	if err != nil {
		return nil, nil, err
	}
	if sel.All {
		return listing, nil, nil
	}

	var names []string
	var bad []Result
	for _, eln := range sel.Indices {
		if eln < 1 || eln > len(listing) {
			bad = append(bad, Result{
				Name: strconv.Itoa(eln),
				Err:  errors.Newf(errors.CodeInvalidInput, "%d: invalid ELN (valid range 1-%d)", eln, len(listing)),
			})
			continue
		}
		names = append(names, listing[eln-1])
	}
	for _, r := range sel.Ranges {
		if r.First < 1 || r.Last < r.First {
			bad = append(bad, Result{
				Name: fmt.Sprintf("%d-%d", r.First, r.Last),
				Err:  errors.Newf(errors.CodeInvalidInput, "%d-%d: invalid ELN range", r.First, r.Last),
			})
			continue
		}
		last := min(r.Last, len(listing))
		for eln := r.First; eln <= last; eln++ {
			names = append(names, listing[eln-1])
		}
		if r.Last > len(listing) {
			first := max(r.First, len(listing)+1)
			bad = append(bad, Result{
				Name: fmt.Sprintf("%d-%d", first, r.Last),
				Err: errors.Newf(errors.CodeInvalidInput, "%d-%d: invalid ELN (valid range 1-%d)",
					first, r.Last, len(listing)),
			})
		}
	}
	for _, name := range sel.Names {
		if err := validName(name); err != nil {
			bad = append(bad, Result{Name: name, Err: err})
			continue
		}
		names = append(names, name)
	}

	return dedupe(names), bad, nil
}

func dedupe(names []string) []string {
	out := names[:0:0]
	for _, n := range names {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}
