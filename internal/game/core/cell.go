package core

import "strconv"

// Cell is the displayed value of a single board square: blank, a digit
// count of adjacent mines, or the mine marker.
type Cell string

const (
	CellBlank Cell = " "
	CellMine  Cell = "*"
)

// MaxNeighborCount is the largest count a cell can display.
const MaxNeighborCount = 8

// CountCell renders an adjacent-mine count. Zero renders as blank.
func CountCell(n int) Cell {
	if n <= 0 {
		return CellBlank
	}
	return Cell(strconv.Itoa(n))
}

func (c Cell) IsMine() bool  { return c == CellMine }
func (c Cell) IsBlank() bool { return c == CellBlank }

// Count returns the numeric value of a digit cell. Blank cells count as 0;
// mines and anything else report ok=false.
func (c Cell) Count() (int, bool) {
	if c.IsBlank() {
		return 0, true
	}
	n, err := strconv.Atoi(string(c))
	if err != nil || n < 1 || n > MaxNeighborCount {
		return 0, false
	}
	return n, true
}

// Increment returns the cell with one more adjacent mine. Mines are left as is.
func (c Cell) Increment() Cell {
	n, ok := c.Count()
	if !ok {
		return c
	}
	return CountCell(n + 1)
}

func (c Cell) String() string { return string(c) }
