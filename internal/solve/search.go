package solve

import (
	"killersudoku/internal/grid"
	"killersudoku/internal/model"
	"killersudoku/internal/parse"
)

// state holds one candidate domain per cell, indexed row-major.
type state [81]model.Digits

// searcher is the call-local search context: the constraint set
// translated to cell indexes, plus the step budget.
type searcher struct {
	groups [][]int // distinctness groups as cell indexes
	peers  [81][]int
	sums   []indexedSum
	budget int // remaining branch decisions; -1 means unlimited
}

type indexedSum struct {
	cells  []int // with repetition, as declared
	target int
}

func solveSearch(set *model.Set, opts Options) (Solution, error) {
	sr := newSearcher(set, opts)

	var st state
	for i, c := range grid.Cells {
		st[i] = set.Domains[c]
	}

	final, err := sr.search(st)
	if err != nil {
		return Solution{}, err
	}
	if final == nil {
		return Solution{}, nil
	}

	cells := make(parse.Assignment, len(grid.Cells))
	for i, c := range grid.Cells {
		cells[c] = final[i].Single()
	}
	return Solution{Solved: true, Cells: cells}, nil
}

func newSearcher(set *model.Set, opts Options) *searcher {
	sr := &searcher{budget: -1}
	if opts.MaxSteps > 0 {
		sr.budget = opts.MaxSteps
	}

	for _, d := range set.Distincts {
		group := make([]int, len(d.Cells))
		for i, c := range d.Cells {
			group[i] = grid.Index(c)
		}
		sr.groups = append(sr.groups, group)
		for _, a := range group {
			for _, b := range group {
				if a != b && !contains(sr.peers[a], b) {
					sr.peers[a] = append(sr.peers[a], b)
				}
			}
		}
	}

	for _, s := range set.Sums {
		cells := make([]int, len(s.Cells))
		for i, c := range s.Cells {
			cells[i] = grid.Index(c)
		}
		sr.sums = append(sr.sums, indexedSum{cells: cells, target: s.Target})
	}
	return sr
}

// search runs propagation then branches on the most-constrained cell.
// It returns the solved state, nil for exhausted (unsatisfiable), or
// ErrAborted when the budget runs out.
func (sr *searcher) search(st state) (*state, error) {
	if !sr.propagate(&st) {
		return nil, nil
	}

	branch := -1
	branchSize := 10
	for i := range st {
		if n := st[i].Count(); n > 1 && n < branchSize {
			branch, branchSize = i, n
		}
	}
	if branch == -1 {
		return &st, nil // every domain is a singleton
	}

	for d := 1; d <= 9; d++ {
		if !st[branch].Has(d) {
			continue
		}
		if sr.budget == 0 {
			return nil, ErrAborted
		}
		if sr.budget > 0 {
			sr.budget--
		}

		next := st
		next[branch] = model.Only(d)
		solved, err := sr.search(next)
		if err != nil {
			return nil, err
		}
		if solved != nil {
			return solved, nil
		}
	}
	return nil, nil
}

// propagate shrinks domains to a fixed point. Returns false on
// contradiction (an empty domain, a digit with no place in a group, or
// a cage whose target is out of reach).
func (sr *searcher) propagate(st *state) bool {
	for changed := true; changed; {
		changed = false

		// a settled cell eliminates its digit from all peers
		for i := range st {
			d := st[i].Single()
			if d == 0 {
				if st[i] == 0 {
					return false
				}
				continue
			}
			for _, p := range sr.peers[i] {
				if st[p].Has(d) {
					st[p] = st[p].Without(d)
					if st[p] == 0 {
						return false
					}
					changed = true
				}
			}
		}

		// a digit with a single remaining place in a group settles there
		for _, group := range sr.groups {
			for d := 1; d <= 9; d++ {
				place, n := -1, 0
				for _, i := range group {
					if st[i].Has(d) {
						place = i
						n++
					}
				}
				if n == 0 {
					return false
				}
				if n == 1 && st[place].Single() == 0 {
					st[place] = model.Only(d)
					changed = true
				}
			}
		}

		// cage bounds: each occurrence must fit between the other
		// occurrences' minimum and maximum contributions
		for _, s := range sr.sums {
			minSum, maxSum := 0, 0
			for _, i := range s.cells {
				minSum += st[i].Min()
				maxSum += st[i].Max()
			}
			if s.target < minSum || s.target > maxSum {
				return false
			}
			for _, i := range s.cells {
				restMin := minSum - st[i].Min()
				restMax := maxSum - st[i].Max()
				for d := 1; d <= 9; d++ {
					if !st[i].Has(d) {
						continue
					}
					if d+restMin > s.target || d+restMax < s.target {
						st[i] = st[i].Without(d)
						if st[i] == 0 {
							return false
						}
						changed = true
					}
				}
			}
		}
	}
	return true
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
