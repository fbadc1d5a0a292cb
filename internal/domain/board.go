package domain

// Board holds the grid, the side to move and the placement history.
// It is a plain value: assigning a Board copies every cell, which the
// search relies on to give each tree node its own snapshot.
//
// Row 0 is the top row and Rows-1 the bottom one, matching how the grid is printed.
type Board struct {
	grid  [Rows][Columns]Player
	moves [MaxMoves]int8
	count int
}

// NewBoard returns an empty board with PlayerOne to move. The zero Board is
// equally ready to use.
func NewBoard() Board {
	return Board{}
}

// Place drops the current player's token into column. It reports false and
// leaves the board untouched when the column is full or out of range.
func (b *Board) Place(column int) bool {
	if !InRange(column) {
		return false
	}

	// shifting the disk from the bottom up till it finds an empty cell
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = b.Turn()
			b.moves[b.count] = int8(column)
			b.count++
			return true
		}
	}

	return false
}

// Undo takes back the last placement. It reports false on an empty history.
func (b *Board) Undo() bool {
	if b.count == 0 {
		return false
	}

	b.count--
	column := int(b.moves[b.count])
	b.moves[b.count] = 0
	for row := 0; row < Rows; row++ {
		if b.grid[row][column] != Empty {
			b.grid[row][column] = Empty
			break
		}
	}
	return true
}

// LegalColumns lists the columns whose top cell is still blank, in ascending order.
func (b *Board) LegalColumns() []int {
	columns := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.grid[0][col] == Empty {
			columns = append(columns, col)
		}
	}
	return columns
}

func (b *Board) IsFull() bool {
	return b.count >= MaxMoves
}

// Turn returns the player whose token goes in next. PlayerOne always opens,
// so the side to move follows from the parity of the history.
func (b *Board) Turn() Player {
	if b.count%2 == 0 {
		return PlayerOne
	}
	return PlayerTwo
}

func (b *Board) MoveCount() int {
	return b.count
}

// Moves returns a copy of the placement history, oldest first.
func (b *Board) Moves() []int {
	out := make([]int, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = int(b.moves[i])
	}
	return out
}

// Cell returns the owner of (row, col). Out-of-range coordinates read as Empty.
func (b *Board) Cell(row, col int) Player {
	if row < 0 || row >= Rows || !InRange(col) {
		return Empty
	}
	return b.grid[row][col]
}

// Grid returns a snapshot of the cells for display.
func (b *Board) Grid() [Rows][Columns]Player {
	return b.grid
}

func InRange(column int) bool {
	return column >= 0 && column < Columns
}
