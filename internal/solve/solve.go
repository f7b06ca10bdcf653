// Package solve turns a constraint set into a total assignment or a
// definitive unsatisfiable verdict. Two engines share the contract: a
// propagation-with-backtracking search that handles the full constraint
// language, and a CNF/SAT backend for sets without sum constraints.
package solve

import (
	"errors"

	"killersudoku/internal/model"
	"killersudoku/internal/parse"
)

// ErrAborted reports that the step budget was exhausted before the
// search reached a verdict.
var ErrAborted = errors.New("search aborted: step budget exhausted")

// Options tunes a solve call. The zero value solves with no budget and
// automatic engine selection.
type Options struct {
	// MaxSteps caps the number of branch decisions; 0 means unlimited.
	// A positive budget forces the search engine, which is the only one
	// that counts steps.
	MaxSteps int

	// NoSAT forces the search engine even for sets the SAT backend
	// could handle.
	NoSAT bool
}

// Solution is the outcome of one solve call. Solved false with a nil
// error means the constraint set is unsatisfiable; that is a normal
// result, not a fault.
type Solution struct {
	Solved bool
	Cells  parse.Assignment
}

// Solve produces a total satisfying assignment for set, or reports
// unsatisfiability. The engine holds no state across calls; solving the
// same set twice yields a solution that verifies both times.
func Solve(set *model.Set, opts Options) (Solution, error) {
	if len(set.Sums) == 0 && !opts.NoSAT && opts.MaxSteps == 0 {
		return solveSAT(set)
	}
	return solveSearch(set, opts)
}
