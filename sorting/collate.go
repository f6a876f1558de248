package sorting

import (
	"os"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale identifies the collation locale used for name comparison.
type Locale struct {
	Tag language.Tag
	// POSIX is set for the C and POSIX locales, where collation is
	// bytewise.
	POSIX bool
}

// ParseLocale interprets a POSIX locale string such as "en_US.UTF-8",
// "de_DE@euro", "C" or "POSIX". Unparseable names collate with the root
// (language-neutral) order.
func ParseLocale(s string) Locale {
	if s == "" || s == "C" || s == "POSIX" || strings.HasPrefix(s, "C.") {
		return Locale{Tag: language.Und, POSIX: true}
	}
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		tag = language.Und
	}
	return Locale{Tag: tag}
}

// EnvLocale returns the collation locale from LC_ALL, LC_COLLATE or LANG,
// in that order of precedence.
func EnvLocale() Locale {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return ParseLocale(v)
		}
	}
	return ParseLocale("")
}

// newCollator returns nil when names should be compared without a
// collator: in the POSIX locale unless Unicode collation was requested,
// and for case-sensitive listings that are not Unicode aware.
func newCollator(loc Locale, cfg Config) *collate.Collator {
	if loc.POSIX && !cfg.UnicodeAware {
		return nil
	}
	if cfg.CaseSensitive && !cfg.UnicodeAware {
		return nil
	}
	var opts []collate.Option
	if !cfg.CaseSensitive {
		opts = append(opts, collate.IgnoreCase)
	}
	return collate.New(loc.Tag, opts...)
}
