package domain

import "fmt"

// Game wraps a Board with the InProgress -> Won | Draw state machine.
type Game struct {
	board  Board
	status GameStatus
	winner Player
}

func NewGame() *Game {
	return &Game{
		board:  NewBoard(),
		status: StatusInProgress,
		winner: Empty,
	}
}

// Replay builds a game by applying columns in order, stopping at the first
// rejected move.
func Replay(columns []int) (*Game, error) {
	g := NewGame()
	for i, col := range columns {
		if err := g.Play(col); err != nil {
			return nil, fmt.Errorf("move %d (column %d): %w", i+1, col, err)
		}
	}
	return g, nil
}

// Play drops the current player's token into column and settles the status.
func (g *Game) Play(column int) error {
	if g.status != StatusInProgress {
		return ErrGameOver
	}

	if !InRange(column) {
		return ErrColumnOutOfRange
	}

	mover := g.board.Turn()
	if !g.board.Place(column) {
		return ErrColumnFull
	}

	if HasWon(&g.board, mover) {
		g.status = StatusWon
		g.winner = mover
		return nil
	}

	if g.board.IsFull() {
		g.status = StatusDraw
	}
	return nil
}

// Undo takes back the last move. A decided game returns to InProgress.
func (g *Game) Undo() bool {
	if !g.board.Undo() {
		return false
	}
	g.status = StatusInProgress
	g.winner = Empty
	return true
}

func (g *Game) Status() GameStatus {
	return g.status
}

// Winner is Empty unless the status is StatusWon.
func (g *Game) Winner() Player {
	return g.winner
}

func (g *Game) IsFinished() bool {
	return g.status == StatusWon || g.status == StatusDraw
}

// Board returns a copy of the current position. Mutating the copy does not
// affect the game.
func (g *Game) Board() Board {
	return g.board
}
