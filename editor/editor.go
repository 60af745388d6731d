// @focus: #core { editor } #input { dispatch }
// Package editor runs the refresh/read/interpret loop and owns cursor and quit state.
package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/terminal"
	"github.com/lixenwraith/hecto/view"
)

// State of an editing session
type State uint8

const (
	// StateRunning is the zero value
	StateRunning State = iota
	// StateQuitting is terminal: once entered it is never left
	StateQuitting
)

func (s State) String() string {
	if s == StateQuitting {
		return "quitting"
	}
	return "running"
}

// Editor bundles the session state. Zero values: cursor at (0,0), StateRunning.
// An Editor is driven from a single goroutine.
type Editor struct {
	term  terminal.Terminal
	view  *view.View
	pos   Position
	state State
}

// New creates an editor drawing on t; a nil view means an empty buffer
func New(t terminal.Terminal, v *view.View) *Editor {
	if v == nil {
		v = view.New()
	}
	return &Editor{term: t, view: v}
}

// Position returns the stored cursor position
func (e *Editor) Position() Position {
	return e.pos
}

// State returns the current session state
func (e *Editor) State() State {
	return e.state
}

// Run enters raw mode, loops until quit, and always restores the terminal.
// A failed Init is still followed by Fini. Loop and teardown errors are joined.
func (e *Editor) Run() (err error) {
	if err := e.term.Init(); err != nil {
		err = fmt.Errorf("initialize terminal: %w", err)
		if ferr := e.terminate(); ferr != nil {
			err = errors.Join(err, ferr)
		}
		return err
	}

	defer func() {
		if ferr := e.terminate(); ferr != nil {
			err = errors.Join(err, ferr)
		}
	}()

	return e.repl()
}

func (e *Editor) terminate() error {
	if err := e.term.Fini(); err != nil {
		return fmt.Errorf("terminate terminal: %w", err)
	}
	return nil
}

// repl refreshes, stops once quitting, otherwise blocks for the next event
func (e *Editor) repl() error {
	for {
		if err := e.refresh(); err != nil {
			return fmt.Errorf("refresh screen: %w", err)
		}
		if e.state == StateQuitting {
			return nil
		}

		ev, err := e.term.ReadEvent()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}
		if err := e.evaluate(ev); err != nil {
			return err
		}
	}
}

// evaluate applies one event; every Action is handled here
func (e *Editor) evaluate(ev terminal.Event) error {
	action := Interpret(ev)

	switch action {
	case ActionIgnore:
		if ev.Type == terminal.EventResize {
			log.Printf("editor: resize to %dx%d", ev.Width, ev.Height)
		}
		return nil

	case ActionQuit:
		log.Printf("editor: %s -> %s", ev, StateQuitting)
		e.state = StateQuitting
		return nil

	case ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionHome, ActionEnd, ActionPageUp, ActionPageDown:
		if err := e.moveCursor(action); err != nil {
			return fmt.Errorf("move cursor: %w", err)
		}
		log.Printf("editor: %s -> %s at %d,%d", ev, action, e.pos.X, e.pos.Y)
		return nil
	}

	return fmt.Errorf("unhandled action %d", action)
}

// moveCursor re-queries the size on every move since the terminal may have been resized
func (e *Editor) moveCursor(a Action) error {
	width, height, err := e.term.Size()
	if err != nil {
		return err
	}
	e.pos = Move(a, e.pos, width, height)
	return nil
}

// refresh redraws the whole screen with the cursor hidden, then flushes once
func (e *Editor) refresh() error {
	t := e.term

	if err := t.HideCursor(); err != nil {
		return err
	}
	if err := t.MoveCursorTo(0, 0); err != nil {
		return err
	}

	if e.state == StateQuitting {
		if err := t.ClearScreen(); err != nil {
			return err
		}
		if err := t.Print(constants.Farewell); err != nil {
			return err
		}
	} else {
		if err := e.view.Render(t); err != nil {
			return err
		}
		if err := e.placeCursor(); err != nil {
			return err
		}
	}

	if err := t.ShowCursor(); err != nil {
		return err
	}
	return t.Execute()
}

// placeCursor moves the physical cursor to the stored position, kept inside
// the current viewport in case the terminal shrank since the last move
func (e *Editor) placeCursor() error {
	width, height, err := e.term.Size()
	if err != nil {
		return err
	}
	p := e.pos.clamp(width, height)
	return e.term.MoveCursorTo(p.X, p.Y)
}
