package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWidth      = errors.New("invalid board width")
	ErrTooManyMines      = errors.New("too many mines")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInconsistentBoard = errors.New("inconsistent board")
)

// WidthError describes why a board width was rejected. It returns nil for
// widths in [MinWidth, MaxWidth].
func WidthError(width int) error {
	switch {
	case width > MaxWidth:
		return fmt.Errorf("%w: a board width of %d is too large, limit the width to %d", ErrInvalidWidth, width, MaxWidth)
	case width < MinWidth:
		return fmt.Errorf("%w: a board width of %d is too small, request a width of at least %d", ErrInvalidWidth, width, MinWidth)
	default:
		return nil
	}
}

// MineCountError reports a mine count that cannot fit on the board, or nil.
func MineCountError(width, mineCount int) error {
	capacity := width * width
	if mineCount > capacity {
		return fmt.Errorf("%w: a board of width %d has %d cells, requested %d mines; request fewer mines or a larger board width",
			ErrTooManyMines, width, capacity, mineCount)
	}
	return nil
}
