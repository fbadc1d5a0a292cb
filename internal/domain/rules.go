package domain

// HasWon reports whether player owns ToWin consecutive cells in any of the
// four directions. It only reads the board.
func HasWon(b *Board, player Player) bool {
	if player == Empty {
		return false
	}

	return hasWonHorizontal(b, player) ||
		hasWonVertical(b, player) ||
		hasWonDescending(b, player) ||
		hasWonAscending(b, player)
}

// Winner returns the player holding a winning run, or Empty.
func Winner(b *Board) Player {
	switch {
	case HasWon(b, PlayerOne):
		return PlayerOne
	case HasWon(b, PlayerTwo):
		return PlayerTwo
	}
	return Empty
}

func hasWonHorizontal(b *Board, player Player) bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col+ToWin <= Columns; col++ {
			if runFrom(b, row, col, 0, 1, player) {
				return true
			}
		}
	}
	return false
}

func hasWonVertical(b *Board, player Player) bool {
	for col := 0; col < Columns; col++ {
		for row := 0; row+ToWin <= Rows; row++ {
			if runFrom(b, row, col, 1, 0, player) {
				return true
			}
		}
	}
	return false
}

// top-left to bottom-right
func hasWonDescending(b *Board, player Player) bool {
	for row := 0; row+ToWin <= Rows; row++ {
		for col := 0; col+ToWin <= Columns; col++ {
			if runFrom(b, row, col, 1, 1, player) {
				return true
			}
		}
	}
	return false
}

// bottom-left to top-right
func hasWonAscending(b *Board, player Player) bool {
	for row := Rows - 1; row >= ToWin-1; row-- {
		for col := 0; col+ToWin <= Columns; col++ {
			if runFrom(b, row, col, -1, 1, player) {
				return true
			}
		}
	}
	return false
}

// runFrom checks the ToWin cells starting at (row, col) stepping by (deltaRow, deltaCol).
// Callers pick start cells so the whole run stays on the grid.
func runFrom(b *Board, row, col, deltaRow, deltaCol int, player Player) bool {
	for i := 0; i < ToWin; i++ {
		if b.grid[row+i*deltaRow][col+i*deltaCol] != player {
			return false
		}
	}
	return true
}
