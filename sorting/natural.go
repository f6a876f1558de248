package sorting

import "strings"

const utf8RuneSelf = 0x80

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// skipPrefix drops leading ASCII characters that are not letters or digits.
// A name made only of such characters is returned unchanged.
func skipPrefix(name string) string {
	for i := 0; i < len(name); i++ {
		if c := name[i]; c >= utf8RuneSelf || isAlnum(c) {
			return name[i:]
		}
	}
	return name
}

// digitRun splits s after its leading run of ASCII digits.
func digitRun(s string) (run, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func textRun(s string) (run, rest string) {
	i := 0
	for i < len(s) && !isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// compareDigits compares two digit strings by numeric value without
// parsing them, so arbitrarily long runs cannot overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// natural compares a and b run by run: digit runs by numeric value, text
// runs with text. A digit run sorts before a text run at the same position.
func natural(a, b string, text func(a, b string) int) int {
	for a != "" && b != "" {
		da, db := isDigit(a[0]), isDigit(b[0])
		switch {
		case da && db:
			var ra, rb string
			ra, a = digitRun(a)
			rb, b = digitRun(b)
			if c := compareDigits(ra, rb); c != 0 {
				return c
			}
		case da:
			return -1
		case db:
			return 1
		default:
			var ra, rb string
			ra, a = textRun(a)
			rb, b = textRun(b)
			if c := text(ra, rb); c != 0 {
				return c
			}
		}
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// compareFold compares ASCII case-insensitively; other bytes compare by
// value.
func compareFold(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if ca, cb := upper(a[i]), upper(b[i]); ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
