package sorting

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/text/collate"
)

// Sorter orders directory entries according to a Config. The zero value is
// not usable; create one with New. A Sorter is not safe for concurrent use
// because the underlying collator keeps scratch buffers.
type Sorter struct {
	cfg       Config
	locale    Locale
	birthTime bool
	collator  *collate.Collator
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithLocale overrides the collation locale read from the environment.
func WithLocale(loc Locale) Option {
	return func(s *Sorter) {
		s.locale = loc
	}
}

// WithBirthTime declares whether the platform supplies birth times. When it
// does not, the btime key degrades to ctime.
func WithBirthTime(supported bool) Option {
	return func(s *Sorter) {
		s.birthTime = supported
	}
}

// BirthTimeSupported reports whether the running platform records file
// birth times.
func BirthTimeSupported() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "netbsd", "openbsd":
		return true
	default:
		return false
	}
}

// New returns a Sorter for cfg.
func New(cfg Config, opts ...Option) *Sorter {
	s := &Sorter{
		cfg:       cfg,
		locale:    EnvLocale(),
		birthTime: BirthTimeSupported(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.collator = newCollator(s.locale, cfg)
	return s
}

// Config returns the configuration the Sorter was built with.
func (s *Sorter) Config() Config {
	return s.cfg
}

// EffectiveKey returns the key actually used for comparison after
// degradations: owner and group fall back to name in light mode, and btime
// falls back to ctime when birth times are unavailable.
func (s *Sorter) EffectiveKey() Key {
	switch key := s.cfg.Key; {
	case s.cfg.LightMode && (key == KeyOwner || key == KeyGroup):
		return KeyName
	case key == KeyBTime && !s.birthTime:
		return KeyCTime
	default:
		return key
	}
}

// Degraded reports whether the configured key could not be honored.
func (s *Sorter) Degraded() bool {
	return s.EffectiveKey() != s.cfg.Key
}

// Method returns a human-readable description of the current sort order,
// for example "name [rev]" or "btime (not available: using 'ctime')".
func (s *Sorter) Method() string {
	return s.describe(s.EffectiveKey())
}

// MethodFor is Method for a concrete listing. A btime order is reported as
// degraded to ctime when any entry carries no birth time, which happens on
// filesystems that do not record one even where the platform supports it.
func (s *Sorter) MethodFor(entries []Entry) string {
	key := s.EffectiveKey()
	if key == KeyBTime && !HasBirthTimes(entries) {
		key = KeyCTime
	}
	return s.describe(key)
}

// HasBirthTimes reports whether every entry has a known birth time.
func HasBirthTimes(entries []Entry) bool {
	for _, e := range entries {
		if e.BTime.IsZero() {
			return false
		}
	}
	return true
}

func (s *Sorter) describe(effective Key) string {
	m := s.cfg.Key.String()
	if effective != s.cfg.Key {
		m = fmt.Sprintf("%s (not available: using '%s')", m, effective)
	}
	if s.cfg.Reverse {
		m += " [rev]"
	}
	return m
}

// Compare returns a negative number when a sorts before b, a positive
// number when it sorts after, and zero when the order is undefined (only
// for KeyNone). Directories-first partitioning is applied before, and is
// not affected by, reversal.
func (s *Sorter) Compare(a, b Entry) int {
	if s.cfg.DirsFirst && a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}

	key := s.EffectiveKey()
	if key == KeyNone {
		return 0
	}

	c := s.compareKey(key, a, b)
	if c == 0 && key != KeyName {
		c = s.CompareNames(a.Name, b.Name)
	}
	if s.cfg.Reverse {
		c = invert(c)
	}
	return c
}

// Sort orders entries in place. Entries that compare equal keep their
// relative order.
func (s *Sorter) Sort(entries []Entry) {
	slices.SortStableFunc(entries, s.Compare)
}

func (s *Sorter) compareKey(key Key, a, b Entry) int {
	switch key {
	case KeyName:
		return s.CompareNames(a.Name, b.Name)
	case KeySize:
		return cmp.Compare(a.Size, b.Size)
	case KeyATime:
		return a.ATime.Compare(b.ATime)
	case KeyBTime:
		return a.birthOrChange().Compare(b.birthOrChange())
	case KeyCTime:
		return a.CTime.Compare(b.CTime)
	case KeyMTime:
		return a.MTime.Compare(b.MTime)
	case KeyVersion:
		return compareVersions(a.Name, b.Name)
	case KeyExtension:
		return compareExtensions(a.Name, b.Name)
	case KeyInode:
		return cmp.Compare(a.Inode, b.Inode)
	case KeyOwner:
		return cmp.Compare(a.UID, b.UID)
	case KeyGroup:
		return cmp.Compare(a.GID, b.GID)
	default:
		return 0
	}
}

// invert flips the sign of c without negating it, so no input overflows.
func invert(c int) int {
	switch {
	case c < 0:
		return 1
	case c > 0:
		return -1
	default:
		return 0
	}
}

// CompareNames is the name comparator used for KeyName and as the final
// tiebreak of every other key. Leading ASCII punctuation is ignored, leading
// numbers compare by value, and the remainder is compared in natural order
// with locale collation where configured. Names that differ only in ways the
// comparison ignores are ordered bytewise, so distinct names never compare
// equal.
func (s *Sorter) CompareNames(a, b string) int {
	sa, sb := skipPrefix(a), skipPrefix(b)

	if sa != "" && sb != "" {
		if isDigit(sa[0]) && isDigit(sb[0]) {
			da, _ := digitRun(sa)
			db, _ := digitRun(sb)
			if c := compareDigits(da, db); c != 0 {
				return c
			}
		}
		if ca, cb := sa[0], sb[0]; ca < utf8RuneSelf && cb < utf8RuneSelf {
			if !s.cfg.CaseSensitive {
				ca, cb = upper(ca), upper(cb)
			}
			if c := cmp.Compare(ca, cb); c != 0 {
				return c
			}
		}
	}

	if c := natural(sa, sb, s.compareText); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func (s *Sorter) compareText(a, b string) int {
	switch {
	case s.collator != nil:
		return s.collator.CompareString(a, b)
	case !s.cfg.CaseSensitive:
		return compareFold(a, b)
	default:
		return strings.Compare(a, b)
	}
}

// compareVersions orders names as version strings: digit runs compare
// numerically and everything else bytewise.
func compareVersions(a, b string) int {
	if c := natural(a, b, strings.Compare); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// compareExtensions compares the text after the last dot, ignoring ASCII
// case. A leading dot does not start an extension. Names without an
// extension sort first.
func compareExtensions(a, b string) int {
	ea, oka := extension(a)
	eb, okb := extension(b)
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return -1
	case !okb:
		return 1
	default:
		return compareFold(ea, eb)
	}
}

func extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}
