package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Reset(t *testing.T) {
	// Given: a board with some marks on it
	board := NewBoard()
	board.PlaceMark(0, 0, Cross)
	board.PlaceMark(1, 1, Nought)
	board.PlaceMark(2, 2, Cross)

	// When: the board is reset
	board.Reset()

	// Then: every cell should be empty
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			assert.Equal(t, Empty, board.Cell(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestBoard_PlaceMark(t *testing.T) {
	// Given: an empty board
	board := NewBoard()

	// When: a cross is placed in the middle of the bottom row
	board.PlaceMark(2, 1, Cross)

	// Then: only that cell changes
	expected := [Rows][Cols]Mark{
		{Empty, Empty, Empty},
		{Empty, Empty, Empty},
		{Empty, Cross, Empty},
	}
	require.Equal(t, expected, board.Cells())
	assert.False(t, board.IsEmpty(2, 1))
	assert.True(t, board.IsEmpty(0, 0))
}

func TestBoard_InBounds(t *testing.T) {
	board := NewBoard()

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(2, 2))
	assert.False(t, board.InBounds(-1, 0))
	assert.False(t, board.InBounds(0, -1))
	assert.False(t, board.InBounds(3, 0))
	assert.False(t, board.InBounds(0, 3))
	assert.False(t, board.InBounds(5, 5))
}

func TestBoard_HasWon(t *testing.T) {
	lines := []struct {
		name  string
		cells [3][2]int
	}{
		{"top row", [3][2]int{{0, 0}, {0, 1}, {0, 2}}},
		{"middle row", [3][2]int{{1, 0}, {1, 1}, {1, 2}}},
		{"bottom row", [3][2]int{{2, 0}, {2, 1}, {2, 2}}},
		{"left column", [3][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{"middle column", [3][2]int{{0, 1}, {1, 1}, {2, 1}}},
		{"right column", [3][2]int{{0, 2}, {1, 2}, {2, 2}}},
		{"main diagonal", [3][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"anti diagonal", [3][2]int{{0, 2}, {1, 1}, {2, 0}}},
	}

	for _, mark := range []Mark{Cross, Nought} {
		for _, line := range lines {
			t.Run(string(mark)+" "+line.name, func(t *testing.T) {
				// Given: a board where mark fills the line
				board := NewBoard()
				for _, cell := range line.cells {
					board.PlaceMark(cell[0], cell[1], mark)
				}

				// Then: a win is detected through every cell of the line
				for _, cell := range line.cells {
					assert.True(t, board.HasWon(mark, cell[0], cell[1]), "through (%d, %d)", cell[0], cell[1])
				}

				// And: the opponent has not won
				last := line.cells[2]
				assert.False(t, board.HasWon(mark.Opponent(), last[0], last[1]))
			})
		}
	}
}

func TestBoard_HasWon_OnlyLinesThroughLastCell(t *testing.T) {
	// Given: a board where X owns the top row and O has just played elsewhere
	board := NewBoard()
	board.PlaceMark(0, 0, Cross)
	board.PlaceMark(0, 1, Cross)
	board.PlaceMark(0, 2, Cross)
	board.PlaceMark(2, 0, Nought)

	// When: checking lines through a cell that is not on the top row
	won := board.HasWon(Cross, 2, 1)

	// Then: the top row is not considered
	assert.False(t, won)
}

func TestBoard_HasWon_PartialLines(t *testing.T) {
	t.Run("Two in a row is not a win", func(t *testing.T) {
		board := NewBoard()
		board.PlaceMark(1, 0, Cross)
		board.PlaceMark(1, 1, Cross)

		assert.False(t, board.HasWon(Cross, 1, 1))
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		board := NewBoard()
		board.PlaceMark(0, 0, Cross)
		board.PlaceMark(1, 1, Nought)
		board.PlaceMark(2, 2, Cross)

		assert.False(t, board.HasWon(Cross, 2, 2))
	})

	t.Run("Off-diagonal cell ignores diagonals", func(t *testing.T) {
		board := NewBoard()
		board.PlaceMark(0, 0, Cross)
		board.PlaceMark(1, 1, Cross)
		board.PlaceMark(2, 2, Cross)
		board.PlaceMark(1, 0, Nought)

		assert.False(t, board.HasWon(Cross, 1, 0))
	})
}

func TestBoard_IsDraw(t *testing.T) {
	t.Run("Empty board is not a draw", func(t *testing.T) {
		assert.False(t, NewBoard().IsDraw())
	})

	t.Run("Partially filled board is not a draw", func(t *testing.T) {
		board := NewBoard()
		board.PlaceMark(0, 0, Cross)
		board.PlaceMark(1, 1, Nought)

		assert.False(t, board.IsDraw())
	})

	t.Run("Full board is a draw", func(t *testing.T) {
		// Given: a full board with no winning line
		board := NewBoard()
		marks := [Rows][Cols]Mark{
			{Cross, Nought, Cross},
			{Cross, Nought, Cross},
			{Nought, Cross, Nought},
		}
		for row := range marks {
			for col := range marks[row] {
				board.PlaceMark(row, col, marks[row][col])
			}
		}

		// Then: it should be a draw
		assert.True(t, board.IsDraw())
	})
}
