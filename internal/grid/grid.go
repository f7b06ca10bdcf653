// Package grid holds the fixed 9x9 board topology: the 81 cell keys,
// the 27 units (rows, columns, boxes) and the per-cell membership
// indexes. Everything here is built once at startup and never mutated.
package grid

// Cell is a board position key such as "A1" or "I9". Rows are letters
// A-I top to bottom, columns are digits 1-9 left to right.
type Cell string

// Unit is a set of 9 cells that must take the digits 1-9 exactly once.
type Unit []Cell

const (
	Rows = "ABCDEFGHI"
	Cols = "123456789"

	// Size is the number of cells per unit and the maximum digit.
	Size = 9
)

var (
	// Cells lists all 81 cells in row-major order (A1..A9, B1..B9, ...).
	Cells = Cross(Rows, Cols)

	// UnitList holds the 27 units: 9 rows, then 9 columns, then 9 boxes.
	UnitList = buildUnitList()

	// UnitsOf maps each cell to the 3 units containing it, one per family.
	UnitsOf = buildUnitsOf()

	// PeersOf maps each cell to the 20 distinct cells sharing a unit with it.
	PeersOf = buildPeersOf()

	// indexOf maps each cell key to its position in Cells.
	indexOf = buildIndex()
)

// Cross returns the cross product of row letters and column digits,
// row-major: for each letter, every digit in order.
func Cross(letters, digits string) []Cell {
	cells := make([]Cell, 0, len(letters)*len(digits))
	for _, l := range letters {
		for _, d := range digits {
			cells = append(cells, Cell(string(l)+string(d)))
		}
	}
	return cells
}

// Index returns the row-major position of c in Cells, or -1 if c is not
// one of the 81 valid cell keys.
func Index(c Cell) int {
	i, ok := indexOf[c]
	if !ok {
		return -1
	}
	return i
}

// Valid reports whether c is one of the 81 cell keys.
func Valid(c Cell) bool {
	_, ok := indexOf[c]
	return ok
}

func buildUnitList() []Unit {
	var units []Unit
	for _, l := range Rows {
		units = append(units, Unit(Cross(string(l), Cols)))
	}
	for _, d := range Cols {
		units = append(units, Unit(Cross(Rows, string(d))))
	}
	for _, ls := range []string{"ABC", "DEF", "GHI"} {
		for _, ds := range []string{"123", "456", "789"} {
			units = append(units, Unit(Cross(ls, ds)))
		}
	}
	return units
}

func buildUnitsOf() map[Cell][]Unit {
	m := make(map[Cell][]Unit, len(Cells))
	for _, u := range UnitList {
		for _, c := range u {
			m[c] = append(m[c], u)
		}
	}
	return m
}

func buildPeersOf() map[Cell][]Cell {
	m := make(map[Cell][]Cell, len(Cells))
	for _, c := range Cells {
		seen := map[Cell]bool{c: true}
		var peers []Cell
		for _, u := range UnitsOf[c] {
			for _, p := range u {
				if !seen[p] {
					seen[p] = true
					peers = append(peers, p)
				}
			}
		}
		m[c] = peers
	}
	return m
}

func buildIndex() map[Cell]int {
	m := make(map[Cell]int, len(Cells))
	for i, c := range Cells {
		m[c] = i
	}
	return m
}
