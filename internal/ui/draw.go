package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var (
	gridStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	crossStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	noughtStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	playingStyle  = tcell.StyleDefault.Bold(true)
	finishedStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	helpStyle     = tcell.StyleDefault.Dim(true)
)

// draw - repaints board, status line, tally and help. Each cell is cellWidth x cellHeight
// characters; its last column and row hold the grid lines.
func (that *Screen) draw(game *entity.Game) {
	that.screen.Clear()

	for row := 0; row < entity.Rows; row++ {
		for col := 0; col < entity.Cols; col++ {
			that.drawCell(row, col, game.Cells[row][col])
		}
	}

	y := entity.Rows * that.cellHeight

	statusStyle := playingStyle
	if game.IsFinished() {
		statusStyle = finishedStyle
	}

	tally := that.session.Tally()

	that.drawText(0, y, game.StatusMessage(), statusStyle)
	that.drawText(0, y+1, tally.String(), tcell.StyleDefault)
	that.drawText(0, y+2, helpText, helpStyle)

	that.screen.Show()
}

func (that *Screen) drawCell(row, col int, mark entity.Mark) {
	x0, y0 := col*that.cellWidth, row*that.cellHeight
	right, bottom := x0+that.cellWidth-1, y0+that.cellHeight-1

	if col < entity.Cols-1 {
		for y := y0; y < bottom; y++ {
			that.screen.SetContent(right, y, tcell.RuneVLine, nil, gridStyle)
		}
	}

	if row < entity.Rows-1 {
		for x := x0; x < right; x++ {
			that.screen.SetContent(x, bottom, tcell.RuneHLine, nil, gridStyle)
		}

		corner := tcell.RuneHLine
		if col < entity.Cols-1 {
			corner = tcell.RunePlus
		}
		that.screen.SetContent(right, bottom, corner, nil, gridStyle)
	}

	switch mark {
	case entity.Cross:
		that.screen.SetContent(x0+(that.cellWidth-1)/2, y0+(that.cellHeight-1)/2, 'X', nil, crossStyle)
	case entity.Nought:
		that.screen.SetContent(x0+(that.cellWidth-1)/2, y0+(that.cellHeight-1)/2, 'O', nil, noughtStyle)
	}
}

func (that *Screen) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
