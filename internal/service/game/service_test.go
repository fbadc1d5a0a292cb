package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

func newService(depth int) *Service {
	return NewService(bot.NewEngine(bot.WithDepth(depth)), 5, zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func TestAnalyzeFindsWinningColumn(t *testing.T) {
	s := newService(2)

	var scores []bot.ColumnScore
	result, err := s.Analyze(Request{Moves: []int{0, 0, 1, 1, 2, 2}}, func(cs bot.ColumnScore) {
		scores = append(scores, cs)
	})
	require.NoError(t, err)

	require.NotNil(t, result.Best)
	assert.Equal(t, 3, result.Best.Column)
	assert.Equal(t, bot.WinScore-1, result.Best.Score)
	assert.Equal(t, 2, result.Depth)
	assert.Len(t, scores, domain.Columns)

	assert.Equal(t, domain.StatusInProgress, result.Status)
	assert.Equal(t, int(domain.PlayerOne), result.Turn)
	assert.Equal(t, 6, result.MoveCount)
	assert.Equal(t, 1, result.Board[domain.Rows-1][0])
	assert.Equal(t, 2, result.Board[domain.Rows-2][0])
}

func TestAnalyzeDecidedGameHasNoBest(t *testing.T) {
	result, err := newService(2).Analyze(Request{Moves: []int{0, 0, 1, 1, 2, 2, 3}}, nil)
	require.NoError(t, err)
	assert.Nil(t, result.Best)
	assert.Equal(t, domain.StatusWon, result.Status)
	assert.Equal(t, int(domain.PlayerOne), result.Winner)
}

func TestAnalyzeDepthOverride(t *testing.T) {
	s := newService(2)

	result, err := s.Analyze(Request{Depth: intPtr(0)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Depth)
	assert.Equal(t, &bot.Move{Column: 0, Score: bot.DrawScore}, result.Best)

	_, err = s.Analyze(Request{Depth: intPtr(6)}, nil)
	assert.ErrorIs(t, err, ErrInvalidDepth)

	_, err = s.Analyze(Request{Depth: intPtr(-1)}, nil)
	assert.ErrorIs(t, err, ErrInvalidDepth)
}

func TestAnalyzeRejectsIllegalMoves(t *testing.T) {
	s := newService(1)

	_, err := s.Analyze(Request{Moves: []int{7}}, nil)
	assert.ErrorIs(t, err, domain.ErrColumnOutOfRange)

	_, err = s.Analyze(Request{Moves: []int{1, 1, 1, 1, 1, 1, 1}}, nil)
	assert.ErrorIs(t, err, domain.ErrColumnFull)

	_, err = s.Analyze(Request{Moves: []int{0, 0, 1, 1, 2, 2, 3, 4}}, nil)
	assert.ErrorIs(t, err, domain.ErrGameOver)
}

func TestEvaluateInspectedGame(t *testing.T) {
	s := newService(1)

	g, pos, err := s.Inspect([]int{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)

	result, err := s.Evaluate(g, pos, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, pos, result.Position)
	assert.Equal(t, 1, result.Depth)
	require.NotNil(t, result.Best)
	assert.Equal(t, 3, result.Best.Column)

	// the search runs on a copy of the replayed game
	board := g.Board()
	assert.Equal(t, 6, board.MoveCount())

	_, err = s.Evaluate(g, pos, intPtr(6), nil)
	assert.ErrorIs(t, err, ErrInvalidDepth)
}
