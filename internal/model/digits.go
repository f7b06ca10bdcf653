package model

import (
	"strconv"
	"strings"
)

// Digits is a candidate set over 1..9, one bit per digit.
type Digits uint16

// AllDigits is the full candidate set {1..9}.
const AllDigits Digits = 0x3FE // bits 1..9

// Only returns the singleton set {d}.
func Only(d int) Digits {
	return 1 << uint(d)
}

// Has reports whether d is in the set.
func (s Digits) Has(d int) bool {
	return s&(1<<uint(d)) != 0
}

// Without returns the set with d removed.
func (s Digits) Without(d int) Digits {
	return s &^ (1 << uint(d))
}

// Count returns the number of candidates in the set.
func (s Digits) Count() int {
	n := 0
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Single returns the only digit in a singleton set, or 0 otherwise.
func (s Digits) Single() int {
	single := 0
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			if single != 0 {
				return 0
			}
			single = d
		}
	}
	return single
}

// Min returns the smallest candidate, or 0 for the empty set.
func (s Digits) Min() int {
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			return d
		}
	}
	return 0
}

// Max returns the largest candidate, or 0 for the empty set.
func (s Digits) Max() int {
	for d := 9; d >= 1; d-- {
		if s.Has(d) {
			return d
		}
	}
	return 0
}

func (s Digits) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			if b.Len() > 1 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(d))
		}
	}
	b.WriteByte('}')
	return b.String()
}
