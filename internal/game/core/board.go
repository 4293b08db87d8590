package core

import (
	"fmt"
	"strings"
)

const (
	MinWidth = 1
	MaxWidth = 26 // one row per letter
)

// Board is a square grid of cells, stored row-major. Rows are labelled
// A, B, ... and columns are numbered from 1 when shown to callers.
type Board struct {
	W int
	T []Cell // length = W*W
}

// NewBoard builds a blank width x width board.
func NewBoard(width int) (*Board, error) {
	if err := WidthError(width); err != nil {
		return nil, err
	}
	b := &Board{W: width, T: make([]Cell, width*width)}
	for i := range b.T {
		b.T[i] = CellBlank
	}
	return b, nil
}

func (b *Board) Idx(c Coordinate) int       { return c.ToIndex(b.W) }
func (b *Board) Coord(idx int) Coordinate   { return FromIndex(idx, b.W) }
func (b *Board) InBounds(c Coordinate) bool { return c.IsValid(b.W) }

// Get returns the cell at c. Callers must pass an in-bounds coordinate.
func (b *Board) Get(c Coordinate) Cell {
	return b.T[b.Idx(c)]
}

func (b *Board) Set(c Coordinate, cell Cell) {
	b.T[b.Idx(c)] = cell
}

// Row returns a copy of the row with the given label, or nil if the board
// has no such row.
func (b *Board) Row(label string) []Cell {
	if len(label) != 1 {
		return nil
	}
	r := int(rune(label[0]) - FirstRowLabel)
	if r < 0 || r >= b.W {
		return nil
	}
	row := make([]Cell, b.W)
	copy(row, b.T[r*b.W:(r+1)*b.W])
	return row
}

// Rows returns the board as a mapping from row label to the ordered row of
// cell values, index 0 being column 1.
func (b *Board) Rows() map[string][]string {
	rows := make(map[string][]string, b.W)
	for r := 0; r < b.W; r++ {
		label := RowLabel(r)
		cells := b.Row(label)
		row := make([]string, len(cells))
		for c, cell := range cells {
			row[c] = string(cell)
		}
		rows[label] = row
	}
	return rows
}

// Neighbors returns the in-bounds neighbors of c in fixed order: the row
// above left to right, then left and right, then the row below.
func (b *Board) Neighbors(c Coordinate) []Coordinate {
	return c.ValidNeighbors(b.W)
}

// AdjacentMines counts the mines around c.
func (b *Board) AdjacentMines(c Coordinate) int {
	n := 0
	for _, nb := range b.Neighbors(c) {
		if b.Get(nb).IsMine() {
			n++
		}
	}
	return n
}

// MineCount returns the number of mine cells on the board.
func (b *Board) MineCount() int {
	n := 0
	for _, cell := range b.T {
		if cell.IsMine() {
			n++
		}
	}
	return n
}

// Verify checks that every non-mine cell shows exactly the number of mines
// around it, with zero shown as blank.
func (b *Board) Verify() error {
	for idx, cell := range b.T {
		if cell.IsMine() {
			continue
		}
		c := b.Coord(idx)
		if want := CountCell(b.AdjacentMines(c)); cell != want {
			return fmt.Errorf("%w: %s shows %q, expected %q", ErrInconsistentBoard, c, cell, want)
		}
	}
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	t := make([]Cell, len(b.T))
	copy(t, b.T)
	return &Board{W: b.W, T: t}
}

// String renders the board as a grid with a column header and row labels.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.W*3 + 4) * (b.W + 1))

	sb.WriteString("  ")
	for c := 1; c <= b.W; c++ {
		sb.WriteString(IntToStringFixedWidth(c, 3))
	}
	sb.WriteString("\n")

	for r := 0; r < b.W; r++ {
		sb.WriteString(RowLabel(r))
		sb.WriteString(" ")
		for c := 0; c < b.W; c++ {
			sb.WriteString("  ")
			sb.WriteString(string(b.T[r*b.W+c]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
