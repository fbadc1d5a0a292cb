package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// App runs one local two-player game on a terminal screen. Hints come from the
// search engine and are never applied automatically.
type App struct {
	screen  tcell.Screen
	game    *domain.Game
	engine  *bot.Engine
	message string
	logger  zerolog.Logger
}

func NewApp(screen tcell.Screen, engine *bot.Engine, logger zerolog.Logger) *App {
	return &App{
		screen: screen,
		game:   domain.NewGame(),
		engine: engine,
		logger: logger.With().Str("component", "terminal").Logger(),
	}
}

func (a *App) Game() *domain.Game {
	return a.game
}

func (a *App) Message() string {
	return a.message
}

// Run draws the board and processes key events until the player quits or the
// screen is finalized.
func (a *App) Run() error {
	a.draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			cmd, ok := KeyCommand(ev)
			if !ok {
				break
			}
			if a.Apply(cmd) {
				return nil
			}
		}
		a.draw()
	}
}

// Apply executes cmd against the game and reports whether the app should exit.
func (a *App) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CommandQuit:
		a.message = "Quitting!"
		return true
	case CommandUndo:
		a.undo()
	case CommandHint:
		a.hint()
	case CommandDrop:
		a.drop(cmd.Column)
	}
	return false
}

func (a *App) drop(column int) {
	board := a.game.Board()
	mover := board.Turn()

	err := a.game.Play(column)
	switch {
	case errors.Is(err, domain.ErrColumnFull):
		a.message = fmt.Sprintf("Column %d is full", column+1)
		return
	case errors.Is(err, domain.ErrGameOver):
		a.message = "The game is over"
		return
	case err != nil:
		a.message = err.Error()
		return
	}

	a.message = ""
	switch a.game.Status() {
	case domain.StatusWon:
		a.logger.Info().Stringer("winner", mover).Int("moves", board.MoveCount()+1).Msg("game won")
	case domain.StatusDraw:
		a.logger.Info().Msg("game drawn")
	}
}

func (a *App) undo() {
	if !a.game.Undo() {
		a.message = "Nothing to undo"
		return
	}
	a.message = ""
}

func (a *App) hint() {
	if a.game.IsFinished() {
		a.message = "The game is over"
		return
	}

	board := a.game.Board()
	move, err := a.engine.BestMove(board)
	if err != nil {
		a.logger.Error().Err(err).Msg("hint failed")
		a.message = fmt.Sprintf("No hint available: %v", err)
		return
	}

	a.message = fmt.Sprintf("The best move for %c is to play column %d (evaluation of %d)",
		Glyph(board.Turn()), move.Column+1, move.Score)
}

func (a *App) draw() {
	board := a.game.Board()
	Render(a.screen, board.Grid(), statusLine(a.game), a.message)
	a.screen.Show()
}
