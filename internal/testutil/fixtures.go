package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/minefield/internal/game/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LowSource always returns the low end of the requested range, so every
// draw lands on A1.
type LowSource struct {
	Calls int
}

func (s *LowSource) Int(low, high int) int {
	s.Calls++
	return low
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Values are clamped to the requested range.
type SequenceSource struct {
	Values []int
	pos    int
}

func (s *SequenceSource) Int(low, high int) int {
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// CoordinateSource yields the row label and column draws for each given
// coordinate in turn.
func CoordinateSource(coords ...core.Coordinate) *SequenceSource {
	values := make([]int, 0, len(coords)*2)
	for _, c := range coords {
		values = append(values, int(core.FirstRowLabel)+c.Row, c.Col+1)
	}
	return &SequenceSource{Values: values}
}

// BoardFromRows builds a board from rows of cell strings, e.g. "*1 ".
func BoardFromRows(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	board, err := core.NewBoard(len(rows))
	require.NoError(t, err)
	for r, row := range rows {
		require.Len(t, row, len(rows), "row %d must be square", r)
		for c, ch := range row {
			board.Set(core.Coordinate{Row: r, Col: c}, core.Cell(string(ch)))
		}
	}
	return board
}

// AssertValidBoard checks the final-board invariants: the expected number of
// mines, and every other cell showing exactly its adjacent mine count. Counts
// are recomputed pairwise rather than through Board.Verify so a bug in the
// board's own neighbor walk cannot hide itself.
func AssertValidBoard(t *testing.T, board *core.Board, width, mineCount int) {
	t.Helper()
	require.NotNil(t, board)
	assert.Equal(t, width, board.W)
	require.Len(t, board.T, width*width)

	var mines []core.Coordinate
	for i, cell := range board.T {
		if cell.IsMine() {
			mines = append(mines, core.FromIndex(i, width))
		}
	}
	assert.Len(t, mines, mineCount)

	for i, cell := range board.T {
		if cell.IsMine() {
			continue
		}
		pos := core.FromIndex(i, width)
		want := 0
		for _, m := range mines {
			if pos.IsAdjacentTo(m) {
				want++
			}
		}
		got, ok := cell.Count()
		if want == 0 {
			assert.True(t, cell.IsBlank(), "cell %s should be blank, got %q", pos, cell)
			continue
		}
		if assert.True(t, ok, "cell %s should hold a count, got %q", pos, cell) {
			assert.Equal(t, want, got, "adjacent mines at %s", pos)
		}
	}
}
