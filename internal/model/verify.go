package model

import (
	"github.com/duke-git/lancet/v2/slice"

	"killersudoku/internal/parse"
)

var oneToNine = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// Verify recomputes every constraint of s against a, independently of
// how a was produced. It returns true only if every cell holds a digit
// in 1..9, every distinctness unit's 9 cells form exactly {1..9}, every
// cage sums to its target, and every fixed cell kept its given digit.
//
// The original tool only re-checked units after solving; cage sums are
// re-checked here as well so a solution can never report solved while
// violating a cage.
func Verify(a parse.Assignment, s *Set) bool {
	for c := range s.Domains {
		if d := a[c]; d < 1 || d > 9 {
			return false
		}
	}

	for _, u := range s.Distincts {
		got := make([]int, 0, len(u.Cells))
		for _, c := range u.Cells {
			got = append(got, a[c])
		}
		slice.Sort(got)
		if !slice.Equal(got, oneToNine) {
			return false
		}
	}

	for _, cage := range s.Sums {
		sum := 0
		for _, c := range cage.Cells {
			sum += a[c]
		}
		if sum != cage.Target {
			return false
		}
	}

	for c, d := range s.Fixed {
		if a[c] != d {
			return false
		}
	}
	return true
}
