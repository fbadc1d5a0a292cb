package bot

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const DefaultDepth = 6

// ColumnScore is the evaluation of one root column, reported as soon as it is known.
type ColumnScore struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

// Engine picks moves for the side to move. It never touches the caller's
// board: every search starts from a copy.
type Engine struct {
	depth    int
	maxNodes int64
	parallel bool
	logger   zerolog.Logger
}

type Option func(*Engine)

func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth >= 0 {
			e.depth = depth
		}
	}
}

// WithMaxNodes caps the tree size of a single search. Zero disables the cap.
func WithMaxNodes(n int64) Option {
	return func(e *Engine) { e.maxNodes = n }
}

// WithParallel evaluates each root column on its own goroutine.
func WithParallel(parallel bool) Option {
	return func(e *Engine) { e.parallel = parallel }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		depth:  DefaultDepth,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().Str("component", "search").Logger()
	return e
}

func (e *Engine) Depth() int {
	return e.depth
}

// BestMove searches board at the configured depth.
func (e *Engine) BestMove(board domain.Board) (Move, error) {
	return e.Search(board, e.depth, nil)
}

// Search runs minimax from board for depth plies. onColumn, when set, receives
// each root column's score in column order for the sequential search and in
// completion order for the parallel one.
func (e *Engine) Search(board domain.Board, depth int, onColumn func(ColumnScore)) (Move, error) {
	start := time.Now()
	builder := &TreeBuilder{MaxNodes: e.maxNodes}

	var (
		move Move
		err  error
	)
	if e.parallel && depth > 0 && !isTerminal(&board, depth) {
		move, err = e.searchParallel(builder, board, depth, onColumn)
	} else {
		move, err = e.searchSequential(builder, board, depth, onColumn)
	}
	if err != nil {
		e.logger.Error().Err(err).Int("depth", depth).Int64("nodes", builder.Nodes()).Msg("search aborted")
		return Move{Column: domain.NoMove}, fmt.Errorf("search at depth %d: %w", depth, err)
	}

	e.logger.Debug().
		Int("depth", depth).
		Bool("parallel", e.parallel).
		Int64("nodes", builder.Nodes()).
		Dur("elapsed", time.Since(start)).
		Int("column", move.Column).
		Int("score", move.Score).
		Msg("search complete")
	return move, nil
}

func (e *Engine) searchSequential(builder *TreeBuilder, board domain.Board, depth int, onColumn func(ColumnScore)) (Move, error) {
	root, err := builder.Build(board, depth)
	if err != nil {
		return Move{}, err
	}

	if onColumn == nil || root.IsLeaf() {
		return Minimax(root, true), nil
	}

	best := Move{Column: domain.NoMove}
	for i, child := range root.Children {
		score := minimax(child, false, 1).Score
		onColumn(ColumnScore{Column: child.Column, Score: score})
		if i == 0 || improves(score, best.Score, true) {
			best = Move{Column: child.Column, Score: score}
		}
	}
	return best, nil
}

// searchParallel expands and scores every root child independently. Results
// are gathered by child index so the tie-break matches the sequential search.
func (e *Engine) searchParallel(builder *TreeBuilder, board domain.Board, depth int, onColumn func(ColumnScore)) (Move, error) {
	legal := board.LegalColumns()
	scores := make([]int, len(legal))

	var report chan ColumnScore
	done := make(chan struct{})
	if onColumn != nil {
		report = make(chan ColumnScore, len(legal))
		go func() {
			defer close(done)
			for cs := range report {
				onColumn(cs)
			}
		}()
	} else {
		close(done)
	}

	// the root counts towards the budget as in the sequential build
	builder.nodes.Add(1)

	var g errgroup.Group
	for i, col := range legal {
		g.Go(func() error {
			next := board
			next.Place(col)

			subtree, err := builder.expand(next, col, depth-1)
			if err != nil {
				return err
			}
			scores[i] = minimax(subtree, false, 1).Score
			if report != nil {
				report <- ColumnScore{Column: col, Score: scores[i]}
			}
			return nil
		})
	}
	err := g.Wait()
	if report != nil {
		close(report)
	}
	<-done
	if err != nil {
		return Move{}, err
	}

	best := Move{Column: legal[0], Score: scores[0]}
	for i := 1; i < len(legal); i++ {
		if improves(scores[i], best.Score, true) {
			best = Move{Column: legal[i], Score: scores[i]}
		}
	}
	return best, nil
}
