// Package natsort orders filenames the way a human reads them: runs of
// digits compare by numeric value instead of character by character, so
// "file2" sorts before "file10".
//
// Policy, fixed and documented here: names split into alternating runs
// of digits and non-digits. A digit run immediately followed by a
// letter is read as part of the text ("1a" in "file1a"), not as a
// number; numeric runs order before text runs, which keeps "file10"
// ahead of "file1a". Text runs compare case-insensitively (ASCII
// fold). Names equal under those rules tie-break on the unmodified
// strings byte-wise, making the ordering total.
package natsort

import (
	"sort"
	"strings"
)

// Compare returns -1, 0 or 1 ordering a relative to b in natural order.
func Compare(a, b string) int {
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		arun, anum, an := nextRun(a, ai)
		brun, bnum, bn := nextRun(b, bi)
		switch {
		case anum && bnum:
			if c := compareNumeric(arun, brun); c != 0 {
				return c
			}
		case anum:
			// Numeric run meets text: numbers order first.
			return -1
		case bnum:
			return 1
		default:
			if c := compareFolded(arun, brun); c != 0 {
				return c
			}
		}
		ai, bi = an, bn
	}
	switch {
	case ai < len(a):
		return 1
	case bi < len(b):
		return -1
	}
	// Equal under folding and numeric value; raw bytes decide.
	return strings.Compare(a, b)
}

// Less reports whether a orders before b in natural order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders names in place in natural order. Sorting an already
// sorted slice leaves it unchanged.
func Sort(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
}

// nextRun returns the run starting at i, whether it is numeric, and the
// index just past it. A digit run whose next byte is a letter is a text
// run, so "1a" never compares as the number one.
func nextRun(s string, i int) (run string, numeric bool, next int) {
	j := i
	if numericRunAt(s, i) {
		return s[i:digitRunEnd(s, i)], true, digitRunEnd(s, i)
	}
	for j < len(s) && !numericRunAt(s, j) {
		j++
	}
	return s[i:j], false, j
}

// numericRunAt reports whether position i starts a digit run that is
// not immediately followed by a letter.
func numericRunAt(s string, i int) bool {
	if !isDigit(s[i]) {
		return false
	}
	end := digitRunEnd(s, i)
	return end == len(s) || !isLetter(s[end])
}

// compareNumeric compares two digit runs by value. Leading zeros are
// skipped so the comparison never overflows regardless of run length.
func compareNumeric(a, b string) int {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func compareFolded(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := foldASCII(a[i]), foldASCII(b[i])
		if ca != cb {
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
	}
	return 0
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// digitRunEnd returns the index just past the digit run starting at i.
func digitRunEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
