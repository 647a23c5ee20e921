package entity

const (
	Rows = 3
	Cols = 3
)

// Board is a fixed 3x3 grid of marks. The zero value is an empty board.
type Board struct {
	cells [Rows][Cols]Mark
}

func NewBoard() *Board {
	return &Board{}
}

// Reset - clears every cell.
func (that *Board) Reset() {
	for row := range that.cells {
		for col := range that.cells[row] {
			that.cells[row][col] = Empty
		}
	}
}

// PlaceMark - puts mark into the cell. The caller checks bounds and emptiness.
func (that *Board) PlaceMark(row, col int, mark Mark) {
	that.cells[row][col] = mark
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.cells[row][col] == Empty
}

func (that *Board) Cell(row, col int) Mark {
	return that.cells[row][col]
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [Rows][Cols]Mark {
	return that.cells
}

// HasWon - checks whether mark has three in a row through the last played cell.
// Only the row, the column and the diagonals that contain (row, col) can have changed.
func (that *Board) HasWon(mark Mark, row, col int) bool {
	if that.lineOf(mark, func(i int) (int, int) { return row, i }) {
		return true
	}

	if that.lineOf(mark, func(i int) (int, int) { return i, col }) {
		return true
	}

	if row == col && that.lineOf(mark, func(i int) (int, int) { return i, i }) {
		return true
	}

	return row+col == Rows-1 && that.lineOf(mark, func(i int) (int, int) { return i, Rows - 1 - i })
}

func (that *Board) lineOf(mark Mark, at func(i int) (int, int)) bool {
	for i := 0; i < Rows; i++ {
		r, c := at(i)
		if that.cells[r][c] != mark {
			return false
		}
	}
	return true
}

// IsDraw - reports whether the board is full. It is only meaningful after HasWon
// returned false for the last move.
func (that *Board) IsDraw() bool {
	for row := range that.cells {
		for col := range that.cells[row] {
			if that.cells[row][col] == Empty {
				return false
			}
		}
	}
	return true
}
