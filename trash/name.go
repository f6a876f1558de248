package trash

import (
	"time"
	"unicode/utf8"

	"github.com/jmgilman/go/filemgr/errors"
)

const suffixLayout = "20060102150405"

// deletionSuffix is shared by every item trashed in one batch. Items with
// the same base name trashed within the same second collide.
func deletionSuffix(at time.Time) string {
	return at.Format(suffixLayout)
}

// trashedName returns "<base>.<suffix>", truncating base and marking it
// with a trailing '~' when "<base>.<suffix>.trashinfo" would not fit in
// nameMax bytes. Truncation never splits a UTF-8 sequence.
func trashedName(base, suffix string, nameMax int) (string, error) {
	over := len(base) + 1 + len(suffix) + len(infoExt) - nameMax
	if over <= 0 {
		return base + "." + suffix, nil
	}

	keep := len(base) - over - 1
	for keep > 0 && !utf8.RuneStart(base[keep]) {
		keep--
	}
	if keep <= 0 {
		return "", errors.Newf(errors.CodeNameTooLong,
			"%s: no room for a trashed name within %d bytes", base, nameMax)
	}
	return base[:keep] + "~." + suffix, nil
}
