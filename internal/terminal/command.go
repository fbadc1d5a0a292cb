package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

type CommandKind int

const (
	CommandDrop CommandKind = iota
	CommandUndo
	CommandHint
	CommandQuit
)

// Command is one keystroke's worth of intent. Column is 0-based and only set
// for CommandDrop.
type Command struct {
	Kind   CommandKind
	Column int
}

// ParseRune maps a keystroke to a command. Digits are 1-based as shown on
// screen; digits outside the grid are rejected here so they never reach the board.
func ParseRune(r rune) (Command, bool) {
	switch r {
	case 'u', 'U':
		return Command{Kind: CommandUndo}, true
	case 'h', 'H':
		return Command{Kind: CommandHint}, true
	case 'q', 'Q':
		return Command{Kind: CommandQuit}, true
	}

	column := int(r - '1')
	if r < '0' || r > '9' || !domain.InRange(column) {
		return Command{}, false
	}
	return Command{Kind: CommandDrop, Column: column}, true
}

func KeyCommand(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}, true
	case tcell.KeyRune:
		return ParseRune(ev.Rune())
	}
	return Command{}, false
}
