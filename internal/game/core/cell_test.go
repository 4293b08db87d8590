package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCell(t *testing.T) {
	assert.Equal(t, CellBlank, CountCell(0), "zero renders as blank, not \"0\"")
	assert.Equal(t, CellBlank, CountCell(-1))
	assert.Equal(t, Cell("1"), CountCell(1))
	assert.Equal(t, Cell("8"), CountCell(8))
}

func TestCell_Count(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected int
		ok       bool
	}{
		{CellBlank, 0, true},
		{"1", 1, true},
		{"8", 8, true},
		{CellMine, 0, false},
		{"0", 0, false},
		{"9", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cell), func(t *testing.T) {
			n, ok := tt.cell.Count()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestCell_Increment(t *testing.T) {
	assert.Equal(t, Cell("1"), CellBlank.Increment())
	assert.Equal(t, Cell("3"), Cell("2").Increment())
	assert.Equal(t, CellMine, CellMine.Increment(), "mines never carry a count")
}

func TestCell_Predicates(t *testing.T) {
	assert.True(t, CellMine.IsMine())
	assert.False(t, CellMine.IsBlank())
	assert.True(t, CellBlank.IsBlank())
	assert.False(t, Cell("4").IsMine())
	assert.Equal(t, "*", CellMine.String())
}
