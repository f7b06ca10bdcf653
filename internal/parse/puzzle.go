// Package parse turns puzzle text and cage specifications into the
// structures the constraint model is built from.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"killersudoku/internal/grid"
)

// ErrMalformedPuzzle reports input that does not reduce to exactly 81
// puzzle symbols after filtering.
var ErrMalformedPuzzle = errors.New("malformed puzzle")

// Assignment maps each cell to its digit, 0 meaning unknown. A parsed
// puzzle covers all 81 cells; a solution holds no zeros.
type Assignment map[grid.Cell]int

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	c := make(Assignment, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Puzzle extracts the 81 puzzle symbols from s and assigns them to the
// cells in row-major order. Digits 1-9 are givens; both '0' and '.'
// mark an unknown cell. Every other character is discarded, so boxed or
// whitespace-formatted grids can be pasted as-is. Fails with
// ErrMalformedPuzzle unless exactly 81 symbols remain.
func Puzzle(s string) (Assignment, error) {
	var symbols []int
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			symbols = append(symbols, int(r-'0'))
		case r == '0' || r == '.':
			symbols = append(symbols, 0)
		}
	}
	if len(symbols) != len(grid.Cells) {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrMalformedPuzzle, len(symbols), len(grid.Cells))
	}

	a := make(Assignment, len(grid.Cells))
	for i, c := range grid.Cells {
		a[c] = symbols[i]
	}
	return a, nil
}

// OneLine renders a in the 81-character row-major form, '.' for unknown.
func OneLine(a Assignment) string {
	var b strings.Builder
	b.Grow(len(grid.Cells))
	for _, c := range grid.Cells {
		if d := a[c]; d == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(byte('0' + d))
		}
	}
	return b.String()
}
