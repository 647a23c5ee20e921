package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const helpText = "click or 1-9: move   n: new game   q: quit"

var ErrScreenClosed = errors.New("screen closed")

type gameSession interface {
	SelectCell(ctx context.Context, row, col int) *entity.Game
	NewGame(ctx context.Context) *entity.Game
	Snapshot() *entity.Game
	Tally() entity.Tally
}

// Screen draws the board in a terminal and turns mouse clicks and keys into moves.
type Screen struct {
	logger  *slog.Logger
	screen  tcell.Screen
	session gameSession

	cellWidth  int
	cellHeight int

	// buttons held at the last mouse event; a click is the press edge of Button1
	buttons tcell.ButtonMask
}

func New(logger *slog.Logger, screen tcell.Screen, session gameSession, cellWidth, cellHeight int) *Screen {
	return &Screen{
		logger:     logger.With("component", "ui"),
		screen:     screen,
		session:    session,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// CellAt maps a terminal position to a board cell. The result may be off the board.
func CellAt(x, y, cellWidth, cellHeight int) (int, int) {
	return y / cellHeight, x / cellWidth
}

// Run - handles events until a quit key is pressed or ctx is cancelled.
func (that *Screen) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.EnableMouse()
	that.screen.Clear()

	stop := make(chan struct{})
	defer close(stop)

	// PollEvent blocks, so cancellation has to arrive as an event
	go func() {
		select {
		case <-ctx.Done():
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-stop:
		}
	}()

	game := that.session.Snapshot()
	that.draw(game)

	for {
		switch ev := that.screen.PollEvent().(type) {
		case nil:
			return ErrScreenClosed
		case *tcell.EventInterrupt:
			log.Info("interrupted")
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			next, quit := that.handleKey(ctx, ev)
			if quit {
				log.Info("quit requested")
				return nil
			}
			if next != nil {
				game = next
			}
		case *tcell.EventMouse:
			if next := that.handleMouse(ctx, ev); next != nil {
				game = next
			}
		}

		that.draw(game)
	}
}

func (that *Screen) handleMouse(ctx context.Context, ev *tcell.EventMouse) *entity.Game {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && that.buttons&tcell.Button1 == 0
	that.buttons = buttons

	if !pressed {
		return nil
	}

	x, y := ev.Position()
	row, col := CellAt(x, y, that.cellWidth, that.cellHeight)

	return that.session.SelectCell(ctx, row, col)
}

func (that *Screen) handleKey(ctx context.Context, ev *tcell.EventKey) (*entity.Game, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		return nil, true
	case r == 'n' || r == 'N':
		return that.session.NewGame(ctx), false
	case r >= '1' && r <= '9':
		index := int(r - '1')
		return that.session.SelectCell(ctx, index/entity.Cols, index%entity.Cols), false
	default:
		return nil, false
	}
}
