package tui

import "github.com/gdamore/tcell/v2"

// Action is a user command issued from the roster view.
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionAdd
	ActionBulk
	ActionRemove
	ActionStatus
	ActionHelp
	ActionQuit
)

// keyToAction maps a tcell key event to a roster command.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		return ActionNext
	case tcell.KeyEscape:
		return ActionQuit
	}
	switch ev.Rune() {
	case 'n', 'N', ' ':
		return ActionNext
	case 'a', 'A':
		return ActionAdd
	case 'b', 'B':
		return ActionBulk
	case 'r', 'R':
		return ActionRemove
	case 's', 'S':
		return ActionStatus
	case '?', 'h', 'H':
		return ActionHelp
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
