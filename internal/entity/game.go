package entity

import (
	"fmt"
	"time"
)

type GameState string

const (
	StatePlaying   GameState = "playing"
	StateDraw      GameState = "draw"
	StateCrossWon  GameState = "cross_won"
	StateNoughtWon GameState = "nought_won"
)

// IsTerminal - reports whether the next input restarts the game instead of making a move.
func (that GameState) IsTerminal() bool {
	return that != StatePlaying
}

// Winner returns the winning mark, or Empty for a draw or a game in progress.
func (that GameState) Winner() Mark {
	switch that {
	case StateCrossWon:
		return Cross
	case StateNoughtWon:
		return Nought
	default:
		return Empty
	}
}

// WonBy returns the terminal state for a win of mark.
func WonBy(mark Mark) GameState {
	if mark == Cross {
		return StateCrossWon
	}
	return StateNoughtWon
}

// Game is a read-only snapshot of a game for rendering and storage.
type Game struct {
	ID            string           `json:"id"`
	Cells         [Rows][Cols]Mark `json:"cells"`
	State         GameState        `json:"state"`
	CurrentPlayer Mark             `json:"current_player"`
	Moves         int              `json:"moves"`
}

func (that *Game) IsFinished() bool {
	return that.State.IsTerminal()
}

// StatusMessage - text of the status line.
func (that *Game) StatusMessage() string {
	switch that.State {
	case StateDraw:
		return "It's a Draw! Click to play again."
	case StateCrossWon, StateNoughtWon:
		return fmt.Sprintf("'%s' Won! Click to play again.", that.State.Winner())
	default:
		return fmt.Sprintf("%s's Turn", that.CurrentPlayer)
	}
}

// Result is a finished game as it is stored.
type Result struct {
	GameID     string           `json:"game_id"`
	State      GameState        `json:"state"`
	Winner     Mark             `json:"winner,omitempty"`
	Cells      [Rows][Cols]Mark `json:"cells"`
	Moves      int              `json:"moves"`
	FinishedAt time.Time        `json:"finished_at"`
}

func NewResult(game *Game, finishedAt time.Time) *Result {
	return &Result{
		GameID:     game.ID,
		State:      game.State,
		Winner:     game.State.Winner(),
		Cells:      game.Cells,
		Moves:      game.Moves,
		FinishedAt: finishedAt,
	}
}

// Tally counts finished games by outcome.
type Tally struct {
	CrossWins  int64 `json:"cross_wins"`
	NoughtWins int64 `json:"nought_wins"`
	Draws      int64 `json:"draws"`
}

// Record - counts one finished game. Non-terminal states are ignored.
func (that *Tally) Record(state GameState) {
	switch state {
	case StateCrossWon:
		that.CrossWins++
	case StateNoughtWon:
		that.NoughtWins++
	case StateDraw:
		that.Draws++
	}
}

func (that *Tally) Total() int64 {
	return that.CrossWins + that.NoughtWins + that.Draws
}

func (that *Tally) String() string {
	return fmt.Sprintf("X: %d  O: %d  Draws: %d", that.CrossWins, that.NoughtWins, that.Draws)
}
