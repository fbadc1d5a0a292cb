package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

var (
	styleDefault = tcell.StyleDefault
	styleOne     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTwo     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Glyph is the printable token for a cell owner.
func Glyph(p domain.Player) rune {
	switch p {
	case domain.PlayerOne:
		return 'X'
	case domain.PlayerTwo:
		return 'O'
	}
	return '.'
}

func glyphStyle(p domain.Player) tcell.Style {
	switch p {
	case domain.PlayerOne:
		return styleOne
	case domain.PlayerTwo:
		return styleTwo
	}
	return styleMuted
}

// Render clears the screen and draws the grid, the column labels, a status
// line and the last message. It does not call Show.
func Render(s tcell.Screen, grid [domain.Rows][domain.Columns]domain.Player, status, message string) {
	s.Clear()

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			p := grid[row][col]
			s.SetContent(col*2, row, Glyph(p), nil, glyphStyle(p))
		}
	}

	for col := 0; col < domain.Columns; col++ {
		s.SetContent(col*2, domain.Rows, rune('1'+col), nil, styleMuted)
	}

	drawText(s, 0, domain.Rows+2, styleDefault, status)
	drawText(s, 0, domain.Rows+3, styleDefault, message)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func statusLine(g *domain.Game) string {
	board := g.Board()
	switch g.Status() {
	case domain.StatusWon:
		return fmt.Sprintf("%c has won! Press u to undo or q to quit.", Glyph(g.Winner()))
	case domain.StatusDraw:
		return "It's a draw! Press u to undo or q to quit."
	}
	return fmt.Sprintf("%c to move: 1-%d drop, u undo, h hint, q quit", Glyph(board.Turn()), domain.Columns)
}
