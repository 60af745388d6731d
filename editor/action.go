package editor

import (
	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/terminal"
)

// Action is the closed set of things an input event can do
type Action uint8

const (
	ActionIgnore Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionHome
	ActionEnd
	ActionPageUp
	ActionPageDown
)

var actionNames = [...]string{
	ActionIgnore:   "ignore",
	ActionQuit:     "quit",
	ActionUp:       "up",
	ActionDown:     "down",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionHome:     "home",
	ActionEnd:      "end",
	ActionPageUp:   "page_up",
	ActionPageDown: "page_down",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// IsNavigation reports whether the action moves the cursor
func (a Action) IsNavigation() bool {
	return a >= ActionUp && a <= ActionPageDown
}

// Interpret maps an input event to an action.
// Only key presses act; Ctrl+Q quits (no other modifier allowed), navigation keys ignore modifiers.
func Interpret(ev terminal.Event) Action {
	if ev.Type != terminal.EventKey || ev.Kind != terminal.KindPress {
		return ActionIgnore
	}

	switch ev.Key {
	case terminal.KeyRune:
		if ev.Rune == constants.QuitRune && ev.Modifiers == terminal.ModCtrl {
			return ActionQuit
		}
	case terminal.KeyUp:
		return ActionUp
	case terminal.KeyDown:
		return ActionDown
	case terminal.KeyLeft:
		return ActionLeft
	case terminal.KeyRight:
		return ActionRight
	case terminal.KeyHome:
		return ActionHome
	case terminal.KeyEnd:
		return ActionEnd
	case terminal.KeyPageUp:
		return ActionPageUp
	case terminal.KeyPageDown:
		return ActionPageDown
	}
	return ActionIgnore
}
