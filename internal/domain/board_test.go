package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, b *Board, columns ...int) {
	t.Helper()
	for _, col := range columns {
		require.True(t, b.Place(col), "place column %d", col)
	}
}

func TestPlaceFallsToLowestRow(t *testing.T) {
	b := NewBoard()
	play(t, &b, 3, 3)

	assert.Equal(t, PlayerOne, b.Cell(Rows-1, 3))
	assert.Equal(t, PlayerTwo, b.Cell(Rows-2, 3))
	assert.Equal(t, Empty, b.Cell(Rows-3, 3))
	assert.Equal(t, []int{3, 3}, b.Moves())
	assert.Equal(t, PlayerOne, b.Turn())
}

func TestPlaceFullColumnIsRejected(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		play(t, &b, 0)
	}
	before := b

	assert.False(t, b.Place(0))
	assert.Equal(t, before, b)
	assert.Equal(t, Rows, b.MoveCount())
	assert.NotContains(t, b.LegalColumns(), 0)
}

func TestPlaceOutOfRange(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Place(-1))
	assert.False(t, b.Place(Columns))
	assert.Zero(t, b.MoveCount())
	assert.Equal(t, PlayerOne, b.Turn())
}

func TestUndoEmptyHistory(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.Undo())
	assert.Equal(t, NewBoard(), b)
}

func TestUndoReversesPlace(t *testing.T) {
	// a long legal sequence touching every column and stacking a few
	sequence := []int{3, 3, 2, 4, 4, 2, 1, 5, 0, 6, 6, 6, 5, 1, 0, 0, 3, 2}

	b := NewBoard()
	for _, col := range sequence {
		before := b
		require.True(t, b.Place(col))
		require.True(t, b.Undo())
		require.Equal(t, before, b, "undo after column %d", col)
		require.True(t, b.Place(col))
	}

	for i := len(sequence) - 1; i >= 0; i-- {
		require.True(t, b.Undo())
		assert.Equal(t, i, b.MoveCount())
	}
	assert.Equal(t, NewBoard(), b)
}

func TestLegalColumnsAndFull(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.LegalColumns())

	// Board does not stop on wins, so filling column by column is fine here
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			require.False(t, b.IsFull())
			require.True(t, b.Place(col))
		}
	}
	assert.True(t, b.IsFull())
	assert.Empty(t, b.LegalColumns())
	assert.Equal(t, MaxMoves, b.MoveCount())
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	play(t, &b, 3)

	c := b
	play(t, &c, 4)

	assert.Equal(t, 1, b.MoveCount())
	assert.Equal(t, Empty, b.Cell(Rows-1, 4))
	assert.Equal(t, PlayerTwo, c.Cell(Rows-1, 4))
}

func TestCellOutOfRange(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Empty, b.Cell(-1, 0))
	assert.Equal(t, Empty, b.Cell(0, Columns))
}
