// Package render draws assignments as boxed text grids for human
// inspection.
package render

import (
	"errors"
	"strings"

	"github.com/duke-git/lancet/v2/slice"

	"killersudoku/internal/grid"
	"killersudoku/internal/parse"
)

const (
	border    = "+-------+-------+-------+"
	headerGap = "    "
)

// ErrDimensionMismatch reports two grids with different line counts in
// a side-by-side render.
var ErrDimensionMismatch = errors.New("grids have different dimensions")

// Grid renders a as a boxed 9x9 grid, '.' for unknown cells.
func Grid(a parse.Assignment) string {
	var lines []string
	for ri, r := range grid.Rows {
		if ri%3 == 0 {
			lines = append(lines, border)
		}
		var b strings.Builder
		for ci, c := range grid.Cols {
			if ci%3 == 0 {
				b.WriteString("| ")
			}
			d := a[grid.Cell(string(r)+string(c))]
			if d == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + d))
			}
			b.WriteByte(' ')
		}
		b.WriteByte('|')
		lines = append(lines, b.String())
	}
	lines = append(lines, border)
	return strings.Join(lines, "\n") + "\n"
}

// OneLine renders a as "[+] GRID:" followed by the 81-character form.
func OneLine(a parse.Assignment) string {
	return "[+] GRID:" + parse.OneLine(a) + "\n"
}

// SideBySide renders two grids next to each other under PROBLEM and
// SOLUTION headers.
func SideBySide(problem, solution parse.Assignment) (string, error) {
	return sideBySide(Grid(problem), Grid(solution))
}

func sideBySide(left, right string) (string, error) {
	leftLines := strings.Split(strings.TrimRight(left, "\n"), "\n")
	rightLines := strings.Split(strings.TrimRight(right, "\n"), "\n")
	if len(leftLines) != len(rightLines) {
		return "", ErrDimensionMismatch
	}

	leftLines = withHeader("PROBLEM", leftLines)
	rightLines = withHeader("SOLUTION", rightLines)

	var b strings.Builder
	for i := range leftLines {
		b.WriteString(leftLines[i])
		b.WriteString(headerGap)
		b.WriteString(rightLines[i])
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// withHeader prepends a header line padded to the grid width.
func withHeader(header string, lines []string) []string {
	width := len(lines[0])
	padded := header + strings.Repeat(" ", width-len(header))
	return slice.InsertAt(lines, 0, padded)
}
