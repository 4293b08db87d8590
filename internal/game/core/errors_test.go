package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthError(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected string
		isNil    bool
	}{
		{
			name:  "minimum width is valid",
			width: MinWidth,
			isNil: true,
		},
		{
			name:  "maximum width is valid",
			width: MaxWidth,
			isNil: true,
		},
		{
			name:     "too large",
			width:    27,
			expected: "invalid board width: a board width of 27 is too large, limit the width to 26",
		},
		{
			name:     "too small",
			width:    0,
			expected: "invalid board width: a board width of 0 is too small, request a width of at least 1",
		},
		{
			name:     "negative",
			width:    -3,
			expected: "invalid board width: a board width of -3 is too small, request a width of at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WidthError(tt.width)
			if tt.isNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.True(t, errors.Is(err, ErrInvalidWidth))
		})
	}
}

func TestMineCountError(t *testing.T) {
	t.Run("full board is allowed", func(t *testing.T) {
		assert.NoError(t, MineCountError(5, 25))
	})

	t.Run("zero mines is allowed", func(t *testing.T) {
		assert.NoError(t, MineCountError(5, 0))
	})

	t.Run("one over capacity", func(t *testing.T) {
		err := MineCountError(5, 26)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTooManyMines)
		assert.Contains(t, err.Error(), "has 25 cells")
		assert.Contains(t, err.Error(), "requested 26 mines")
	})
}
