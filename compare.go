package strq

import (
	"unicode"
	"unicode/utf8"
)

// CompareFold compares a and b lexicographically, ignoring case. It
// returns a negative number if a sorts before b, a positive one if it
// sorts after, and 0 if they differ only in case.
func CompareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		a, b = a[na:], b[nb:]

		ra, rb = unicode.ToLower(ra), unicode.ToLower(rb)
		if ra != rb {
			return int(ra) - int(rb)
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
