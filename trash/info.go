package trash

import (
	"bufio"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jmgilman/go/filemgr/errors"
)

const (
	infoHeader    = "[Trash Info]"
	infoExt       = ".trashinfo"
	keyPath       = "Path="
	keyDeletionAt = "DeletionDate="
)

// Entry describes one trashed item.
type Entry struct {
	// Name is the entry's name under files/, including the deletion suffix.
	Name string
	// OriginalPath is the decoded absolute path the item was trashed from.
	OriginalPath string
	// DeletionDate is the local time the item was trashed. It is zero when
	// the sidecar carries no parseable date.
	DeletionDate time.Time
}

// encodeInfo renders a sidecar. Date fields are written without zero
// padding, the format existing trash cans already contain.
func encodeInfo(path string, at time.Time) []byte {
	return fmt.Appendf(nil, "%s\n%s%s\n%s%d-%d-%dT%d:%d:%d\n",
		infoHeader,
		keyPath, encodePath(path),
		keyDeletionAt, at.Year(), int(at.Month()), at.Day(), at.Hour(), at.Minute(), at.Second())
}

// decodeInfo parses a sidecar. A missing or undecodable Path is
// corruption; an unparseable DeletionDate leaves the date zero, since the
// path alone is enough to restore the item.
func decodeInfo(name string, data []byte) (Entry, error) {
	e := Entry{Name: name}
	var rawPath string

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.HasPrefix(line, keyPath):
			rawPath = strings.TrimPrefix(line, keyPath)
		case strings.HasPrefix(line, keyDeletionAt):
			if at, err := parseDeletionDate(strings.TrimPrefix(line, keyDeletionAt)); err == nil {
				e.DeletionDate = at
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return e, errors.Wrapf(err, errors.CodeCorruption, "%s: unreadable info file", name)
	}

	if rawPath == "" {
		return e, errors.Newf(errors.CodeCorruption, "%s: info file has no original path", name)
	}
	path, err := decodePath(rawPath)
	if err != nil {
		return e, errors.Wrapf(err, errors.CodeCorruption, "%s: error decoding original path", name)
	}
	if !strings.HasPrefix(path, "/") {
		return e, errors.Newf(errors.CodeCorruption, "%s: original path %q is not absolute", name, path)
	}
	e.OriginalPath = path
	return e, nil
}

// encodePath percent-encodes each path segment, leaving separators intact.
func encodePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func decodePath(s string) (string, error) {
	return url.PathUnescape(s)
}

// parseDeletionDate accepts YYYY-M-DTh:m:s with or without zero padding.
func parseDeletionDate(s string) (time.Time, error) {
	date, clock, ok := strings.Cut(strings.TrimSpace(s), "T")
	if !ok {
		return time.Time{}, fmt.Errorf("deletion date %q: missing time", s)
	}
	d, err := splitInts(date, "-")
	if err != nil {
		return time.Time{}, fmt.Errorf("deletion date %q: %w", s, err)
	}
	c, err := splitInts(clock, ":")
	if err != nil {
		return time.Time{}, fmt.Errorf("deletion date %q: %w", s, err)
	}
	if d[1] < 1 || d[1] > 12 || d[2] < 1 || d[2] > 31 || c[0] > 23 || c[1] > 59 || c[2] > 60 {
		return time.Time{}, fmt.Errorf("deletion date %q: field out of range", s)
	}
	return time.Date(d[0], time.Month(d[1]), d[2], c[0], c[1], c[2], 0, time.Local), nil
}

func splitInts(s, sep string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(s, sep)
	if len(parts) != len(out) {
		return out, fmt.Errorf("expected %d fields in %q", len(out), s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return out, fmt.Errorf("invalid field %q", p)
		}
		out[i] = n
	}
	return out, nil
}
