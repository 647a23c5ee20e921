package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Tally(ctx context.Context) (*entity.Tally, error)
}

type gameController interface {
	NewGame()
	SelectCell(row, col int) tictactoe.Outcome
	State() entity.GameState
	CurrentPlayer() entity.Mark
	Board() *entity.Board
	Moves() int
}

// GameSession drives the game controller for the UI: it numbers the games, keeps the
// running tally and stores finished games when a repository is configured.
type GameSession struct {
	logger     *slog.Logger
	controller gameController
	results    resultRepo
	now        func() time.Time

	gameID string
	tally  entity.Tally
}

// NewGameSession - results may be nil, then finished games are only counted in memory.
func NewGameSession(logger *slog.Logger, controller gameController, results resultRepo) *GameSession {
	return &GameSession{
		logger:     logger.With("component", "session"),
		controller: controller,
		results:    results,
		now:        time.Now,
		gameID:     uuid.NewString(),
	}
}

// Start - picks up the stored tally. A storage failure only costs the history.
func (that *GameSession) Start(ctx context.Context) {
	log := that.logger.With("method", "Start")

	if that.results == nil {
		return
	}

	tally, err := that.results.Tally(ctx)
	if err != nil {
		log.Error("failed to load tally", "error", err)
		return
	}

	that.tally = *tally
	log.Info("tally loaded", "games", tally.Total())
}

// SelectCell - passes a click to the controller and records the game if it just ended.
func (that *GameSession) SelectCell(ctx context.Context, row, col int) *entity.Game {
	log := that.logger.With("method", "SelectCell", "gameID", that.gameID)

	player := that.controller.CurrentPlayer()
	outcome := that.controller.SelectCell(row, col)

	switch outcome {
	case tictactoe.OutcomeRestarted:
		that.gameID = uuid.NewString()
		log.Info("game restarted", "newGameID", that.gameID)
	case tictactoe.OutcomePlaced:
		log.Debug("mark placed", "player", player, "row", row, "col", col)

		if that.controller.State().IsTerminal() {
			that.finishGame(ctx)
		}
	default:
		log.Debug("selection ignored", "row", row, "col", col)
	}

	return that.Snapshot()
}

// NewGame - abandons the current game and starts a fresh one.
func (that *GameSession) NewGame(_ context.Context) *entity.Game {
	that.controller.NewGame()
	that.gameID = uuid.NewString()

	that.logger.Info("new game", "gameID", that.gameID)

	return that.Snapshot()
}

func (that *GameSession) Snapshot() *entity.Game {
	return &entity.Game{
		ID:            that.gameID,
		Cells:         that.controller.Board().Cells(),
		State:         that.controller.State(),
		CurrentPlayer: that.controller.CurrentPlayer(),
		Moves:         that.controller.Moves(),
	}
}

func (that *GameSession) Tally() entity.Tally {
	return that.tally
}

func (that *GameSession) finishGame(ctx context.Context) {
	log := that.logger.With("method", "finishGame", "gameID", that.gameID)

	result := entity.NewResult(that.Snapshot(), that.now())
	that.tally.Record(result.State)

	log.Info("game finished", "state", result.State, "moves", result.Moves)

	if that.results == nil {
		return
	}

	if err := that.results.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
	}
}
