package game

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

const ErrInvalidDepth domain.Error = "search depth outside allowed range"

// Request describes a position by the columns played from the empty board.
// A nil Depth selects the engine's configured depth.
type Request struct {
	Moves []int `json:"moves"`
	Depth *int  `json:"depth,omitempty"`
}

// Position is a read-only view of a replayed game. Board rows run top to
// bottom; cells hold 0 for blank, 1 and 2 for the players.
type Position struct {
	Board        [][]int           `json:"board"`
	Turn         int               `json:"turn"`
	Status       domain.GameStatus `json:"status"`
	Winner       int               `json:"winner"`
	MoveCount    int               `json:"moveCount"`
	LegalColumns []int             `json:"legalColumns"`
}

// Result is a Position plus the engine's choice. Best is nil once the game is decided.
type Result struct {
	Position
	Depth int       `json:"depth"`
	Best  *bot.Move `json:"best,omitempty"`
}

// Inspect replays the moves and describes the resulting position.
func (s *Service) Inspect(moves []int) (*domain.Game, Position, error) {
	g, err := domain.Replay(moves)
	if err != nil {
		return nil, Position{}, err
	}
	return g, NewPosition(g), nil
}

// Analyze replays req.Moves and searches the position. onColumn receives each
// root column's score as it is evaluated and may be nil.
func (s *Service) Analyze(req Request, onColumn func(bot.ColumnScore)) (*Result, error) {
	if _, err := s.depth(req.Depth); err != nil {
		return nil, err
	}

	g, pos, err := s.Inspect(req.Moves)
	if err != nil {
		s.logger.Warn().Err(err).Ints("moves", req.Moves).Msg("rejected position")
		return nil, err
	}
	return s.Evaluate(g, pos, req.Depth, onColumn)
}

// Evaluate searches a game already replayed by Inspect; pos must describe g.
func (s *Service) Evaluate(g *domain.Game, pos Position, depth *int, onColumn func(bot.ColumnScore)) (*Result, error) {
	plies, err := s.depth(depth)
	if err != nil {
		return nil, err
	}

	result := &Result{Position: pos, Depth: plies}
	if g.IsFinished() {
		return result, nil
	}

	move, err := s.Engine.Search(g.Board(), plies, onColumn)
	if err != nil {
		return nil, err
	}
	result.Best = &move

	s.logger.Info().
		Int("moves", pos.MoveCount).
		Int("depth", plies).
		Int("column", move.Column).
		Int("score", move.Score).
		Msg("position analyzed")
	return result, nil
}

func (s *Service) depth(requested *int) (int, error) {
	depth := s.Engine.Depth()
	if requested != nil {
		depth = *requested
	}
	if depth < 0 || depth > s.MaxDepth {
		return 0, ErrInvalidDepth
	}
	return depth, nil
}

func NewPosition(g *domain.Game) Position {
	board := g.Board()
	grid := board.Grid()

	cells := make([][]int, domain.Rows)
	for row := range cells {
		cells[row] = make([]int, domain.Columns)
		for col := range cells[row] {
			cells[row][col] = int(grid[row][col])
		}
	}

	return Position{
		Board:        cells,
		Turn:         int(board.Turn()),
		Status:       g.Status(),
		Winner:       int(g.Winner()),
		MoveCount:    board.MoveCount(),
		LegalColumns: board.LegalColumns(),
	}
}
