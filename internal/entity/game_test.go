package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, Nought, Cross.Opponent())
	assert.Equal(t, Cross, Nought.Opponent())
}

func TestMark_IsPlayer(t *testing.T) {
	assert.True(t, Cross.IsPlayer())
	assert.True(t, Nought.IsPlayer())
	assert.False(t, Empty.IsPlayer())
}

func TestGameState(t *testing.T) {
	t.Run("Playing is the only non terminal state", func(t *testing.T) {
		assert.False(t, StatePlaying.IsTerminal())
		assert.True(t, StateDraw.IsTerminal())
		assert.True(t, StateCrossWon.IsTerminal())
		assert.True(t, StateNoughtWon.IsTerminal())
	})

	t.Run("Winner of each state", func(t *testing.T) {
		assert.Equal(t, Cross, StateCrossWon.Winner())
		assert.Equal(t, Nought, StateNoughtWon.Winner())
		assert.Equal(t, Empty, StateDraw.Winner())
		assert.Equal(t, Empty, StatePlaying.Winner())
	})

	t.Run("WonBy maps marks to states", func(t *testing.T) {
		assert.Equal(t, StateCrossWon, WonBy(Cross))
		assert.Equal(t, StateNoughtWon, WonBy(Nought))
	})
}

func TestGame_StatusMessage(t *testing.T) {
	tests := []struct {
		name     string
		game     Game
		expected string
	}{
		{"Cross to move", Game{State: StatePlaying, CurrentPlayer: Cross}, "X's Turn"},
		{"Nought to move", Game{State: StatePlaying, CurrentPlayer: Nought}, "O's Turn"},
		{"Draw", Game{State: StateDraw, CurrentPlayer: Nought}, "It's a Draw! Click to play again."},
		{"Cross won", Game{State: StateCrossWon, CurrentPlayer: Cross}, "'X' Won! Click to play again."},
		{"Nought won", Game{State: StateNoughtWon, CurrentPlayer: Nought}, "'O' Won! Click to play again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.game.StatusMessage())
		})
	}
}

func TestNewResult(t *testing.T) {
	// Given: a finished game
	finishedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	game := &Game{
		ID: "game-1",
		Cells: [Rows][Cols]Mark{
			{Cross, Cross, Cross},
			{Nought, Nought, Empty},
			{Empty, Empty, Empty},
		},
		State:         StateCrossWon,
		CurrentPlayer: Cross,
		Moves:         5,
	}

	// When: a result is built from it
	result := NewResult(game, finishedAt)

	// Then: it carries the outcome of the game
	expected := &Result{
		GameID:     "game-1",
		State:      StateCrossWon,
		Winner:     Cross,
		Cells:      game.Cells,
		Moves:      5,
		FinishedAt: finishedAt,
	}
	require.Equal(t, expected, result)
}

func TestTally_Record(t *testing.T) {
	// Given: an empty tally
	var tally Tally

	// When: a few games are recorded
	tally.Record(StateCrossWon)
	tally.Record(StateCrossWon)
	tally.Record(StateNoughtWon)
	tally.Record(StateDraw)
	tally.Record(StatePlaying)

	// Then: each outcome is counted and in-progress games are ignored
	assert.Equal(t, Tally{CrossWins: 2, NoughtWins: 1, Draws: 1}, tally)
	assert.Equal(t, int64(4), tally.Total())
	assert.Equal(t, "X: 2  O: 1  Draws: 1", tally.String())
}
