package solve

import (
	"github.com/mitchellh/go-sat"
	"github.com/mitchellh/go-sat/cnf"
	"gonum.org/v1/gonum/stat/combin"

	"killersudoku/internal/grid"
	"killersudoku/internal/model"
	"killersudoku/internal/parse"
)

/*
   CNF encoding: one boolean variable per (cell, digit) pair. A cell at
   row-major index i holding digit k maps to literal i*9 + k, so A1=1
   is 1, A1=9 is 9, A2=1 is 10 and I9=9 is 729. Each cell and each
   (group, digit) pair gets an at-least-one clause plus pairwise
   at-most-one clauses. Sum constraints have no compact clausal form
   here, which is why this backend only takes cage-free sets.
*/

func lit(cellIdx, digit int) int {
	return cellIdx*9 + digit
}

func solveSAT(set *model.Set) (Solution, error) {
	var clauses [][]int

	// every cell holds exactly one digit
	for i := range grid.Cells {
		r := []int{}
		for k := 1; k <= 9; k++ {
			r = append(r, lit(i, k))
		}
		clauses = append(clauses, r)
		clauses = append(clauses, atMostOne(r)...)
	}

	// every group covers every digit exactly once
	for _, d := range set.Distincts {
		for k := 1; k <= 9; k++ {
			r := []int{}
			for _, c := range d.Cells {
				r = append(r, lit(grid.Index(c), k))
			}
			clauses = append(clauses, r)
			clauses = append(clauses, atMostOne(r)...)
		}
	}

	// domain restrictions; fixed cells come through as singleton domains
	for i, c := range grid.Cells {
		dom := set.Domains[c]
		for k := 1; k <= 9; k++ {
			if !dom.Has(k) {
				clauses = append(clauses, []int{-lit(i, k)})
			}
		}
	}

	s := sat.New()
	s.AddFormula(cnf.NewFormulaFromInts(clauses))
	if !s.Solve() {
		return Solution{}, nil
	}

	as := s.Assignments()
	cells := make(parse.Assignment, len(grid.Cells))
	for i, c := range grid.Cells {
		for k := 1; k <= 9; k++ {
			if as[lit(i, k)] {
				cells[c] = k
				break
			}
		}
	}
	return Solution{Solved: true, Cells: cells}, nil
}

// atMostOne returns the pairwise exclusion clauses for the literals in
// r: one two-literal negative clause per combination.
func atMostOne(r []int) [][]int {
	var out [][]int
	for _, c := range combin.Combinations(len(r), 2) {
		out = append(out, []int{-r[c[0]], -r[c[1]]})
	}
	return out
}
