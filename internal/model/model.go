// Package model assembles puzzle input into a solver-agnostic
// constraint set and verifies candidate solutions against it.
package model

import (
	"errors"
	"fmt"

	"killersudoku/internal/grid"
	"killersudoku/internal/parse"
)

var (
	// ErrUnknownCell reports a constraint referencing a key outside the
	// 81 valid cells.
	ErrUnknownCell = errors.New("unknown cell reference")

	// ErrConflictingFixed reports two different fixed values on one cell.
	ErrConflictingFixed = errors.New("conflicting fixed value")
)

// Distinct requires its 9 cells to take pairwise-distinct digits.
type Distinct struct {
	Name  string // "row A", "col 1", "box A1" for diagnostics
	Cells []grid.Cell
}

// Sum requires the referenced cells' digits to add up to Target.
// Repeated references count once per occurrence.
type Sum struct {
	Cells  []grid.Cell
	Target int
}

// Set is the complete constraint set for one solve request. Domains
// carries the per-cell domain constraint (candidates restricted to
// 1..9, or a singleton for fixed cells); Distincts covers the 27
// units; Sums the cages; Fixed the originally-given cells. Once built
// a Set is immutable and solving is a pure function of it.
type Set struct {
	Domains   map[grid.Cell]Digits
	Distincts []Distinct
	Sums      []Sum
	Fixed     map[grid.Cell]int
}

// Build assembles the constraint set in the canonical order: domains,
// row distinctness, column distinctness, box distinctness, cage sums,
// known-cell fixes. givens holds digit 0 for unknown cells; cages may
// be nil.
func Build(givens parse.Assignment, cages []parse.Cage) (*Set, error) {
	set := &Set{
		Domains: make(map[grid.Cell]Digits, len(grid.Cells)),
		Fixed:   make(map[grid.Cell]int),
	}

	for _, c := range grid.Cells {
		set.Domains[c] = AllDigits
	}

	for _, l := range grid.Rows {
		set.Distincts = append(set.Distincts, Distinct{
			Name:  "row " + string(l),
			Cells: grid.Cross(string(l), grid.Cols),
		})
	}
	for _, d := range grid.Cols {
		set.Distincts = append(set.Distincts, Distinct{
			Name:  "col " + string(d),
			Cells: grid.Cross(grid.Rows, string(d)),
		})
	}
	for _, ls := range []string{"ABC", "DEF", "GHI"} {
		for _, ds := range []string{"123", "456", "789"} {
			set.Distincts = append(set.Distincts, Distinct{
				Name:  "box " + ls[:1] + ds[:1],
				Cells: grid.Cross(ls, ds),
			})
		}
	}

	for _, cage := range cages {
		for _, c := range cage.Cells {
			if !grid.Valid(c) {
				return nil, fmt.Errorf("%w: %q in cage summing to %d", ErrUnknownCell, c, cage.Target)
			}
		}
		set.Sums = append(set.Sums, Sum{Cells: cage.Cells, Target: cage.Target})
	}

	for _, c := range grid.Cells {
		d := givens[c]
		if d == 0 {
			continue
		}
		if err := set.fix(c, d); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// fix pins cell c to digit d, checking against an earlier fix. Not
// reachable twice per cell through parse.Puzzle, but Build is a
// general-purpose entry point.
func (s *Set) fix(c grid.Cell, d int) error {
	if !grid.Valid(c) {
		return fmt.Errorf("%w: %q", ErrUnknownCell, c)
	}
	if prev, ok := s.Fixed[c]; ok && prev != d {
		return fmt.Errorf("%w: cell %s fixed to both %d and %d", ErrConflictingFixed, c, prev, d)
	}
	s.Fixed[c] = d
	s.Domains[c] = Only(d)
	return nil
}
