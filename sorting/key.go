package sorting

import (
	"strconv"
	"strings"

	"github.com/jmgilman/go/filemgr/errors"
)

// Key selects the primary sort criterion. The numeric values are the ones
// users type at the sort command.
type Key int

// Sort keys.
const (
	KeyNone Key = iota
	KeyName
	KeySize
	KeyATime
	KeyBTime
	KeyCTime
	KeyMTime
	KeyVersion
	KeyExtension
	KeyInode
	KeyOwner
	KeyGroup
)

var keyNames = [...]string{
	KeyNone:      "none",
	KeyName:      "name",
	KeySize:      "size",
	KeyATime:     "atime",
	KeyBTime:     "btime",
	KeyCTime:     "ctime",
	KeyMTime:     "mtime",
	KeyVersion:   "version",
	KeyExtension: "extension",
	KeyInode:     "inode",
	KeyOwner:     "owner",
	KeyGroup:     "group",
}

// Keys returns every key in numeric order.
func Keys() []Key {
	keys := make([]Key, len(keyNames))
	for i := range keyNames {
		keys[i] = Key(i)
	}
	return keys
}

// Valid reports whether k is a known key.
func (k Key) Valid() bool {
	return k >= KeyNone && int(k) < len(keyNames)
}

// String returns the key's name.
func (k Key) String() string {
	if !k.Valid() {
		return "key(" + strconv.Itoa(int(k)) + ")"
	}
	return keyNames[k]
}

// ParseKey accepts a key name ("mtime") or number ("6").
func ParseKey(s string) (Key, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if k := Key(n); k.Valid() {
			return k, nil
		}
		return KeyNone, errors.Newf(errors.CodeInvalidInput, "%d: sort key out of range (0-%d)", n, len(keyNames)-1)
	}
	for i, name := range keyNames {
		if name == s {
			return Key(i), nil
		}
	}
	return KeyNone, errors.Newf(errors.CodeInvalidInput, "%s: no such sorting order", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Newf(errors.CodeInvalidInput, "invalid sort key %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Config is the session-wide sort setting.
type Config struct {
	Key       Key
	Reverse   bool
	DirsFirst bool
	// CaseSensitive compares names byte for byte instead of folding case.
	CaseSensitive bool
	// UnicodeAware collates names with the locale collator even when the
	// locale is C or POSIX.
	UnicodeAware bool
	// LightMode means owner and group were not collected, so those keys
	// fall back to name.
	LightMode bool
}

// DefaultConfig returns name order with directories first.
func DefaultConfig() Config {
	return Config{Key: KeyName, DirsFirst: true}
}

// Apply interprets sort command arguments against cfg and returns the new
// configuration:
//
//	[]               unchanged
//	["rev"]          toggle reverse
//	[key]            set key (name or number)
//	[key, "rev"]     set key and toggle reverse
func Apply(cfg Config, args ...string) (Config, error) {
	if len(args) == 0 {
		return cfg, nil
	}
	if args[0] == "rev" {
		cfg.Reverse = !cfg.Reverse
		return cfg, nil
	}

	key, err := ParseKey(args[0])
	if err != nil {
		return cfg, err
	}
	cfg.Key = key
	if len(args) > 1 && args[1] == "rev" {
		cfg.Reverse = !cfg.Reverse
	}
	return cfg, nil
}
