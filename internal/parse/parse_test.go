package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killersudoku/internal/grid"
)

const hardest = "8........" +
	"..36....." +
	".7..9.2.." +
	".5...7..." +
	"....457.." +
	"...1...3." +
	"..1....68" +
	"..85...1." +
	".9....4.."

func TestPuzzle(t *testing.T) {
	a, err := Puzzle(hardest)
	require.NoError(t, err)
	require.Len(t, a, 81)
	assert.Equal(t, 8, a["A1"])
	assert.Equal(t, 0, a["A2"])
}

func TestPuzzleAcceptsFormattedGrid(t *testing.T) {
	boxed := `
	+-------+-------+-------+
	| 8 0 0 | 0 0 0 | 0 0 0 |
	| 0 0 3 | 6 0 0 | 0 0 0 |
	| 0 7 0 | 0 9 0 | 2 0 0 |
	+-------+-------+-------+
	| 0 5 0 | 0 0 7 | 0 0 0 |
	| 0 0 0 | 0 4 5 | 7 0 0 |
	| 0 0 0 | 1 0 0 | 0 3 0 |
	+-------+-------+-------+
	| 0 0 1 | 0 0 0 | 0 6 8 |
	| 0 0 8 | 5 0 0 | 0 1 0 |
	| 0 9 0 | 0 0 0 | 4 0 0 |
	+-------+-------+-------+
	`
	a, err := Puzzle(boxed)
	require.NoError(t, err)
	assert.Equal(t, 8, a["A1"])
	assert.Equal(t, 3, a["B3"])
	assert.Equal(t, 4, a["I7"])
}

func TestPuzzleZeroAndDotInterchangeable(t *testing.T) {
	dots, err := Puzzle(strings.Repeat(".", 81))
	require.NoError(t, err)
	zeros, err := Puzzle(strings.Repeat("0", 81))
	require.NoError(t, err)
	assert.Equal(t, dots, zeros)
}

func TestPuzzleMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"80 symbols", strings.Repeat(".", 80)},
		{"82 symbols", strings.Repeat(".", 82)},
		{"letters only", strings.Repeat("x", 81)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Puzzle(tc.input)
			assert.ErrorIs(t, err, ErrMalformedPuzzle)
		})
	}
}

func TestOneLineRoundTrip(t *testing.T) {
	a, err := Puzzle(hardest)
	require.NoError(t, err)
	assert.Equal(t, hardest, OneLine(a))
}

func TestCages(t *testing.T) {
	spec := `
	B9+B8+C1+H4+H4=23
	A5+D7+I5+G8+B3+A5=19
	I2+I3+F2+E9=15
	`
	cages, err := Cages(spec)
	require.NoError(t, err)
	require.Len(t, cages, 3)

	assert.Equal(t, []grid.Cell{"B9", "B8", "C1", "H4", "H4"}, cages[0].Cells)
	assert.Equal(t, 23, cages[0].Target)

	// duplicate references are preserved, not deduplicated
	assert.Equal(t, []grid.Cell{"A5", "D7", "I5", "G8", "B3", "A5"}, cages[1].Cells)
	assert.Equal(t, 19, cages[1].Target)
}

func TestCagesSingleCell(t *testing.T) {
	cages, err := Cages("E5=5")
	require.NoError(t, err)
	require.Len(t, cages, 1)
	assert.Equal(t, []grid.Cell{"E5"}, cages[0].Cells)
	assert.Equal(t, 5, cages[0].Target)
}

func TestCagesMalformed(t *testing.T) {
	_, err := Cages("A1+A2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	_, err = Cages("A1+A2=ten")
	require.Error(t, err)

	// unknown cell tokens are accepted here and rejected by the model builder
	cages, err := Cages("Z9+A1=10")
	require.NoError(t, err)
	assert.Equal(t, grid.Cell("Z9"), cages[0].Cells[0])
}

func TestErrorsWrapSentinel(t *testing.T) {
	_, err := Puzzle("123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedPuzzle))
	assert.Contains(t, err.Error(), "3 symbols")
}
