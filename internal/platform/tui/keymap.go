package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/input"
)

// enqueueKey maps a key message and queues the resulting action for the
// next tick. Unbound keys are ignored.
func enqueueKey(km input.KeyMap, q *core.KeyQueue, msg tea.KeyMsg) core.Action {
	a := km.Action(msg)
	if a == core.ActionNone {
		return a
	}
	q.Push(a)
	return a
}

// footer is the key help line under the board.
type footer struct {
	keys input.KeyMap
	help help.Model
}

func newFooter(keys input.KeyMap) footer {
	return footer{keys: keys, help: help.New()}
}

// View renders the short help, truncated to width when width is known.
func (f footer) View(width int) string {
	f.help.Width = width
	return f.help.View(f.keys)
}
