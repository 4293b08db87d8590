package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for width := MinWidth; width <= MaxWidth; width++ {
		board, err := NewBoard(width)
		require.NoError(t, err, "width %d", width)

		assert.Equal(t, width, board.W)
		assert.Len(t, board.T, width*width)

		rows := board.Rows()
		assert.Len(t, rows, width)
		for r := 0; r < width; r++ {
			row, ok := rows[RowLabel(r)]
			require.True(t, ok, "row %s should exist for width %d", RowLabel(r), width)
			assert.Len(t, row, width)
			for _, cell := range row {
				assert.Equal(t, " ", cell)
			}
		}
	}
}

func TestNewBoard_InvalidWidth(t *testing.T) {
	for _, width := range []int{0, -1, 27, 100} {
		board, err := NewBoard(width)
		assert.Nil(t, board)
		assert.ErrorIs(t, err, ErrInvalidWidth, "width %d", width)
	}
}

func TestBoard_Rows_Labels(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)

	rows := board.Rows()
	assert.Contains(t, rows, "A")
	assert.Contains(t, rows, "B")
	assert.Contains(t, rows, "C")
	assert.NotContains(t, rows, "D")
}

func TestBoard_Rows_MatchRow(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)
	board.Set(Coordinate{Row: 1, Col: 2}, CellMine)
	board.Set(Coordinate{Row: 0, Col: 1}, CountCell(1))

	rows := board.Rows()
	require.Len(t, rows, 3)
	for label, row := range rows {
		cells := board.Row(label)
		require.Len(t, row, len(cells), "row %s", label)
		for i, cell := range cells {
			assert.Equal(t, string(cell), row[i], "cell %s%d", label, i+1)
		}
	}
	assert.Equal(t, []string{" ", " ", "*"}, rows["B"])
	assert.Nil(t, board.Row("D"))
}

func TestBoard_GetSet(t *testing.T) {
	board, err := NewBoard(4)
	require.NoError(t, err)

	c := Coordinate{Row: 2, Col: 3}
	board.Set(c, CellMine)

	assert.Equal(t, CellMine, board.Get(c))
	assert.Equal(t, CellMine, board.T[11])
	assert.Equal(t, c, board.Coord(11))
	assert.Equal(t, 11, board.Idx(c))
}

func TestBoard_Row(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)
	board.Set(Coordinate{Row: 1, Col: 0}, "2")

	row := board.Row("B")
	assert.Equal(t, []Cell{"2", CellBlank, CellBlank}, row)

	row[0] = CellMine
	assert.Equal(t, Cell("2"), board.Get(Coordinate{Row: 1, Col: 0}), "Row should return a copy")

	assert.Nil(t, board.Row("D"))
	assert.Nil(t, board.Row(""))
	assert.Nil(t, board.Row("AB"))
}

func TestBoard_Neighbors(t *testing.T) {
	board, err := NewBoard(5)
	require.NoError(t, err)

	tests := []struct {
		name  string
		coord Coordinate
		count int
	}{
		{"top left corner", Coordinate{0, 0}, 3},
		{"top right corner", Coordinate{0, 4}, 3},
		{"bottom left corner", Coordinate{4, 0}, 3},
		{"bottom right corner", Coordinate{4, 4}, 3},
		{"top edge", Coordinate{0, 2}, 5},
		{"left edge", Coordinate{2, 0}, 5},
		{"right edge", Coordinate{2, 4}, 5},
		{"bottom edge", Coordinate{4, 2}, 5},
		{"interior", Coordinate{2, 2}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neighbors := board.Neighbors(tt.coord)
			assert.Len(t, neighbors, tt.count)
			for _, n := range neighbors {
				assert.True(t, board.InBounds(n))
				assert.True(t, tt.coord.IsAdjacentTo(n))
			}
		})
	}
}

func TestBoard_Neighbors_Order(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)

	neighbors := board.Neighbors(Coordinate{Row: 0, Col: 0})
	assert.Equal(t, []Coordinate{{0, 1}, {1, 0}, {1, 1}}, neighbors)

	neighbors = board.Neighbors(Coordinate{Row: 1, Col: 1})
	assert.Equal(t, []Coordinate{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, neighbors)
}

func TestBoard_Neighbors_SingleCell(t *testing.T) {
	board, err := NewBoard(1)
	require.NoError(t, err)

	assert.Empty(t, board.Neighbors(Coordinate{0, 0}))
}

func TestBoard_Verify(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)

	board.Set(Coordinate{0, 0}, CellMine)
	board.Set(Coordinate{0, 1}, "1")
	board.Set(Coordinate{1, 0}, "1")
	board.Set(Coordinate{1, 1}, "1")
	require.NoError(t, board.Verify())
	assert.Equal(t, 1, board.MineCount())
	assert.Equal(t, 1, board.AdjacentMines(Coordinate{1, 1}))

	board.Set(Coordinate{1, 1}, "2")
	err = board.Verify()
	assert.ErrorIs(t, err, ErrInconsistentBoard)
	assert.Contains(t, err.Error(), "B2")
}

func TestBoard_Clone(t *testing.T) {
	board, err := NewBoard(2)
	require.NoError(t, err)

	clone := board.Clone()
	clone.Set(Coordinate{0, 0}, CellMine)

	assert.Equal(t, CellBlank, board.Get(Coordinate{0, 0}))
	assert.Equal(t, board.W, clone.W)
}

func TestBoard_String(t *testing.T) {
	board, err := NewBoard(2)
	require.NoError(t, err)
	board.Set(Coordinate{0, 0}, CellMine)
	board.Set(Coordinate{0, 1}, "1")
	board.Set(Coordinate{1, 0}, "1")
	board.Set(Coordinate{1, 1}, "1")

	expected := "    1  2\n" +
		"A   *  1\n" +
		"B   1  1\n"
	assert.Equal(t, expected, board.String())
}
