package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Outcome tells the caller what SelectCell did with the input.
type Outcome int

const (
	// OutcomeIgnored - the cell was out of range or already taken.
	OutcomeIgnored Outcome = iota
	// OutcomePlaced - the current player's mark was placed.
	OutcomePlaced
	// OutcomeRestarted - the game was over, so the input started a new one.
	OutcomeRestarted
)

func (that Outcome) String() string {
	switch that {
	case OutcomePlaced:
		return "placed"
	case OutcomeRestarted:
		return "restarted"
	default:
		return "ignored"
	}
}

// GameController runs a single game on a board: turn order, win and draw detection,
// and the restart after a finished game.
type GameController struct {
	board         *entity.Board
	state         entity.GameState
	currentPlayer entity.Mark
	moves         int
}

func NewGameController(board *entity.Board) *GameController {
	controller := &GameController{
		board: board,
	}
	controller.NewGame()

	return controller
}

// NewGame - clears the board and gives the first move to Cross.
func (that *GameController) NewGame() {
	that.board.Reset()
	that.state = entity.StatePlaying
	that.currentPlayer = entity.Cross
	that.moves = 0
}

// SelectCell - handles a click on (row, col). Invalid input is absorbed.
func (that *GameController) SelectCell(row, col int) Outcome {
	if that.state.IsTerminal() {
		that.NewGame()
		return OutcomeRestarted
	}

	if !that.board.InBounds(row, col) || !that.board.IsEmpty(row, col) {
		return OutcomeIgnored
	}

	that.board.PlaceMark(row, col, that.currentPlayer)
	that.moves++
	that.updateGameState(row, col)

	if that.state == entity.StatePlaying {
		that.currentPlayer = that.currentPlayer.Opponent()
	}

	return OutcomePlaced
}

// updateGameState - checks the game status after a move. A win takes priority over a full board.
func (that *GameController) updateGameState(row, col int) {
	switch {
	case that.board.HasWon(that.currentPlayer, row, col):
		that.state = entity.WonBy(that.currentPlayer)
	case that.board.IsDraw():
		that.state = entity.StateDraw
	}
}

func (that *GameController) State() entity.GameState {
	return that.state
}

func (that *GameController) CurrentPlayer() entity.Mark {
	return that.currentPlayer
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

// Moves returns the number of marks placed since the last reset.
func (that *GameController) Moves() int {
	return that.moves
}
