// @focus: #sys { term } #render { tcell }
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tcellTerminal implements Terminal on a tcell.Screen.
// tcell keeps its own cell buffer; Execute maps to Show.
type tcellTerminal struct {
	screen tcell.Screen
	style  tcell.Style

	// owned screens are created, initialized and finalized by the driver
	owned       bool
	initialized bool

	// Drawing position, advanced by Print
	x, y          int
	cursorVisible bool
}

// tcellKeys maps named tcell keys to terminal keys
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// NewTcell creates a Terminal backed by a new tcell screen on the controlling tty
func NewTcell() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return &tcellTerminal{
		screen: screen,
		style:  tcell.StyleDefault,
		owned:  true,
	}, nil
}

// NewTcellFromScreen wraps an already initialized screen; the caller keeps ownership
// and must call screen.Fini itself
func NewTcellFromScreen(screen tcell.Screen) Terminal {
	return &tcellTerminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

func (t *tcellTerminal) Init() error {
	if t.initialized {
		return nil
	}
	if t.owned {
		if err := t.screen.Init(); err != nil {
			return fmt.Errorf("init tcell screen: %w", err)
		}
	}
	t.initialized = true

	t.screen.Clear()
	t.screen.Show()
	return nil
}

func (t *tcellTerminal) Fini() error {
	if !t.initialized {
		return nil
	}
	t.initialized = false

	if t.owned {
		t.screen.Fini()
	} else {
		t.screen.Show()
	}
	return nil
}

func (t *tcellTerminal) ClearScreen() error {
	t.screen.Clear()
	return nil
}

func (t *tcellTerminal) ClearLine() error {
	w, h := t.screen.Size()
	if t.y < 0 || t.y >= h {
		return nil
	}
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, t.y, ' ', nil, t.style)
	}
	return nil
}

func (t *tcellTerminal) MoveCursorTo(x, y int) error {
	t.x, t.y = x, y
	if t.cursorVisible {
		t.screen.ShowCursor(x, y)
	}
	return nil
}

func (t *tcellTerminal) HideCursor() error {
	t.cursorVisible = false
	t.screen.HideCursor()
	return nil
}

func (t *tcellTerminal) ShowCursor() error {
	t.cursorVisible = true
	t.screen.ShowCursor(t.x, t.y)
	return nil
}

// Print places runes into cells, CR/LF move the drawing position, overflow past the right edge is dropped
func (t *tcellTerminal) Print(text string) error {
	w, h := t.screen.Size()
	for _, r := range text {
		switch r {
		case '\r':
			t.x = 0
			continue
		case '\n':
			t.y++
			continue
		}

		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if t.y >= 0 && t.y < h && t.x >= 0 && t.x+rw <= w {
			t.screen.SetContent(t.x, t.y, r, nil, t.style)
		}
		t.x += rw
	}
	return nil
}

func (t *tcellTerminal) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

func (t *tcellTerminal) Execute() error {
	t.screen.Show()
	return nil
}

func (t *tcellTerminal) ReadEvent() (Event, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return Event{}, ErrClosed
		case *tcell.EventResize:
			t.screen.Sync()
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}, nil
		case *tcell.EventKey:
			if out, ok := convertTcellKey(ev); ok {
				return out, nil
			}
		}
	}
}

// convertTcellKey maps a tcell key event, folding Ctrl+letter into KeyRune with ModCtrl
func convertTcellKey(ev *tcell.EventKey) (Event, bool) {
	var mod Modifier
	m := ev.Modifiers()
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}

	k := ev.Key()
	if k == tcell.KeyRune {
		if mod&ModCtrl != 0 {
			out := ctrlRune(ev.Rune())
			out.Modifiers |= mod
			return out, true
		}
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune(), Modifiers: mod}, true
	}

	if key, ok := tcellKeys[k]; ok {
		return Event{Type: EventKey, Key: key, Modifiers: mod}, true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		out := ctrlRune('a' + rune(k-tcell.KeyCtrlA))
		out.Modifiers |= mod
		return out, true
	}
	if k == tcell.KeyCtrlSpace {
		out := ctrlRune(' ')
		out.Modifiers |= mod
		return out, true
	}

	return Event{}, false
}
