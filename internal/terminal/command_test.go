package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestParseRune(t *testing.T) {
	tests := []struct {
		in   rune
		want Command
		ok   bool
	}{
		{'1', Command{Kind: CommandDrop, Column: 0}, true},
		{'7', Command{Kind: CommandDrop, Column: 6}, true},
		{'u', Command{Kind: CommandUndo}, true},
		{'H', Command{Kind: CommandHint}, true},
		{'q', Command{Kind: CommandQuit}, true},
		{'0', Command{}, false},
		{'8', Command{}, false},
		{'9', Command{}, false},
		{'x', Command{}, false},
		{' ', Command{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseRune(tt.in)
		assert.Equal(t, tt.ok, ok, "rune %q", tt.in)
		assert.Equal(t, tt.want, got, "rune %q", tt.in)
	}
}

func TestKeyCommand(t *testing.T) {
	cmd, ok := KeyCommand(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, CommandQuit, cmd.Kind)

	cmd, ok = KeyCommand(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, Command{Kind: CommandDrop, Column: 2}, cmd)

	_, ok = KeyCommand(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.False(t, ok)
}
