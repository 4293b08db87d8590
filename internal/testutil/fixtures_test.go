package testutil

import "testing"

func TestAssertValidBoard(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		mineCount int
	}{
		{"empty", []string{"   ", "   ", "   "}, 0},
		{"corner mine", []string{"*1 ", "11 ", "   "}, 1},
		{"center mine", []string{"111", "1*1", "111"}, 1},
		{"full board", []string{"**", "**"}, 4},
		{"two mines", []string{"*2*", "121", "   "}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := BoardFromRows(t, tt.rows...)
			AssertValidBoard(t, board, len(tt.rows), tt.mineCount)
		})
	}
}
