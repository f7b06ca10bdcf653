package parse

import (
	"fmt"
	"strconv"
	"strings"

	"killersudoku/internal/grid"
)

// Cage is a list of cell references whose digits must add up to Target.
// Cells may repeat; a repeated reference contributes its digit once per
// occurrence. Cell tokens are not validated here: an unknown reference
// surfaces when the constraint model resolves it.
type Cage struct {
	Cells  []grid.Cell
	Target int
}

// Cages parses a cage specification block, one cage per line, in the
// form CELL(+CELL)*=INTEGER, e.g. "B9+B8+C1=23". Blank lines are
// skipped.
func Cages(s string) ([]Cage, error) {
	var cages []Cage
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lhs, rhs, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("cage %q: missing \"=\"", line)
		}
		target, err := strconv.Atoi(strings.TrimSpace(rhs))
		if err != nil {
			return nil, fmt.Errorf("cage %q: bad target sum: %v", line, err)
		}

		var cells []grid.Cell
		for _, tok := range strings.Split(lhs, "+") {
			cells = append(cells, grid.Cell(strings.TrimSpace(tok)))
		}
		cages = append(cages, Cage{Cells: cells, Target: target})
	}
	return cages, nil
}
