package core

import (
	"fmt"
	"strconv"
)

// FirstRowLabel is the label of row 0.
const FirstRowLabel = 'A'

// Coordinate represents a position on the board. Row and Col are zero-based;
// the labelled form ("C7") only appears at the edges via String and
// ParseCoordinate.
type Coordinate struct {
	Row, Col int
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		Row: idx / width,
		Col: idx % width,
	}
}

// FromLabel builds a coordinate from a row label and a 1-based column.
func FromLabel(label rune, column int) Coordinate {
	return Coordinate{Row: int(label - FirstRowLabel), Col: column - 1}
}

// RowLabel returns the letter used for the given zero-based row.
func RowLabel(row int) string {
	return string(rune(FirstRowLabel + row))
}

// ParseCoordinate parses the labelled form, e.g. "C7".
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	label := rune(s[0])
	if label < FirstRowLabel || label >= FirstRowLabel+MaxWidth {
		return Coordinate{}, fmt.Errorf("%w: %q has no row %q", ErrInvalidCoordinate, s, string(label))
	}
	column, err := strconv.Atoi(s[1:])
	if err != nil || column < 1 {
		return Coordinate{}, fmt.Errorf("%w: %q has no column %q", ErrInvalidCoordinate, s, s[1:])
	}
	return FromLabel(label, column), nil
}

// IsValid checks if the coordinate is within a width x width board
func (c Coordinate) IsValid(width int) bool {
	return c.Row >= 0 && c.Row < width && c.Col >= 0 && c.Col < width
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Row*width + c.Col
}

// neighborOffsets lists the 8 surrounding squares, row by row.
var neighborOffsets = [8]Coordinate{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Neighbors returns all 8 candidate neighbors of this coordinate, including
// ones that fall off the board.
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		out = append(out, c.Add(off))
	}
	return out
}

// ValidNeighbors returns only the neighbors that are within a width x width board
func (c Coordinate) ValidNeighbors(width int) []Coordinate {
	valid := make([]Coordinate, 0, len(neighborOffsets))
	for _, n := range c.Neighbors() {
		if n.IsValid(width) {
			valid = append(valid, n)
		}
	}
	return valid
}

// IsAdjacentTo checks if this coordinate shares an edge or corner with another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	dr := abs(c.Row - other.Row)
	dc := abs(c.Col - other.Col)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		Row: c.Row + other.Row,
		Col: c.Col + other.Col,
	}
}

// Label returns the row letter of this coordinate.
func (c Coordinate) Label() string {
	return RowLabel(c.Row)
}

// String returns the labelled form, row letter followed by the 1-based column
func (c Coordinate) String() string {
	return c.Label() + strconv.Itoa(c.Col+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
