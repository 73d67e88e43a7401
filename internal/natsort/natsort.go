// Package natsort orders file names the way users expect: digit runs
// compare by numeric value, everything else case-insensitively, so
// "img2.png" sorts before "img10.png".
package natsort

import (
	"sort"
	"strings"
)

// Less reports whether a orders before b under natural ordering.
func Less(a, b string) bool {
	ai, bi, la, lb := 0, 0, len(a), len(b)
	for ai < la && bi < lb {
		ra, rb := a[ai], b[bi]
		isDigitA := ra >= '0' && ra <= '9'
		isDigitB := rb >= '0' && rb <= '9'

		if isDigitA && isDigitB {
			startA, startB := ai, bi
			for ai < la && a[ai] >= '0' && a[ai] <= '9' {
				ai++
			}
			for bi < lb && b[bi] >= '0' && b[bi] <= '9' {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")

			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}

			// Equal value: fewer leading zeros first.
			lenA, lenB := ai-startA, bi-startB
			if lenA != lenB {
				return lenA < lenB
			}
			continue
		}

		raLower, rbLower := toLowerByte(ra), toLowerByte(rb)
		if raLower != rbLower {
			return raLower < rbLower
		}
		ai++
		bi++
	}
	return la < lb
}

// Strings sorts names in place under natural ordering. The sort is stable
// so equal names keep their load order.
func Strings(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}
