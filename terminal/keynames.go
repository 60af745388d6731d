package terminal

import "strings"

// keyToName maps Key constants to canonical names used in debug logs
var keyToName = map[Key]string{
	KeyNone:      "none",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// String returns the canonical key name
func (k Key) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}

// String renders an event as e.g. "ctrl+q", "shift+up", "x"
func (e Event) String() string {
	if e.Type == EventResize {
		return "resize"
	}

	var b strings.Builder
	if e.Modifiers&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if e.Modifiers&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if e.Modifiers&ModShift != 0 {
		b.WriteString("shift+")
	}
	if e.Key == KeyRune {
		b.WriteRune(e.Rune)
	} else {
		b.WriteString(e.Key.String())
	}
	return b.String()
}
