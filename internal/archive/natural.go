package archive

import (
	"cmp"
	"strings"
)

// NaturalCompare orders names case-insensitively with runs of digits
// compared by numeric value, so "page2.png" sorts before "page10.png".
// Names that compare equal fall back to ordinal order.
func NaturalCompare(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)

	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		ca, cb := la[i], lb[j]

		if isDigit(ca) && isDigit(cb) {
			ra := digitRun(la[i:])
			rb := digitRun(lb[j:])
			if c := compareNumeric(ra, rb); c != 0 {
				return c
			}
			i += len(ra)
			j += len(rb)
			continue
		}

		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		i++
		j++
	}

	switch {
	case i == len(la) && j < len(lb):
		return -1
	case i < len(la) && j == len(lb):
		return 1
	}
	return strings.Compare(a, b)
}

// digitRun returns the leading run of ASCII digits in s.
func digitRun(s string) string {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return s[:n]
}

// compareNumeric compares two digit runs by value without parsing, so runs
// of any length work. Leading zeros are ignored.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	return strings.Compare(ta, tb)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
