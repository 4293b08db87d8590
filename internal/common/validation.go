package common

import "github.com/mitchelldurbincs/minefield/internal/game/core"

// IsValidWidth checks if a board width has a row label for every row
func IsValidWidth(width int) bool {
	return width >= core.MinWidth && width <= core.MaxWidth
}

// BoardCapacity returns the number of cells on a width x width board
func BoardCapacity(width int) int {
	return width * width
}

// ValidateBoardRequest checks a width and mine count pair, returning the
// same errors board generation would.
func ValidateBoardRequest(width, mineCount int) error {
	if !IsValidWidth(width) {
		return core.WidthError(width)
	}
	return core.MineCountError(width, mineCount)
}
