// Package termtest provides a scripted in-memory Terminal for tests.
package termtest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/hecto/terminal"
)

// ErrScriptExhausted is returned by ReadEvent once all scripted events are consumed
var ErrScriptExhausted = errors.New("termtest: no more scripted events")

// Op names recorded by Recorder
const (
	OpInit        = "init"
	OpFini        = "fini"
	OpClearScreen = "clear_screen"
	OpClearLine   = "clear_line"
	OpMove        = "move"
	OpHide        = "hide"
	OpShow        = "show"
	OpPrint       = "print"
	OpSize        = "size"
	OpExecute     = "execute"
	OpRead        = "read"
)

// Recorder implements terminal.Terminal by logging every call.
// Width and Height may be changed between calls to simulate resizes.
type Recorder struct {
	Width, Height int

	// Events are returned by ReadEvent in order
	Events []terminal.Event

	// Fail maps an op name to the error that op returns
	Fail map[string]error

	// Ops holds one entry per call, e.g. "move 3,4" or "print ~"
	Ops []string

	// Frames holds the printed text between consecutive Execute calls
	Frames []string

	// OnRead runs before each ReadEvent, receiving the zero-based read index
	OnRead func(n int)

	reads   int
	pending strings.Builder
}

// New creates a recorder with the given size and scripted events
func New(width, height int, events ...terminal.Event) *Recorder {
	return &Recorder{
		Width:  width,
		Height: height,
		Events: events,
		Fail:   make(map[string]error),
	}
}

func (r *Recorder) record(op string) error {
	r.Ops = append(r.Ops, op)
	name, _, _ := strings.Cut(op, " ")
	return r.Fail[name]
}

func (r *Recorder) Init() error        { return r.record(OpInit) }
func (r *Recorder) Fini() error        { return r.record(OpFini) }
func (r *Recorder) ClearScreen() error { return r.record(OpClearScreen) }
func (r *Recorder) ClearLine() error   { return r.record(OpClearLine) }
func (r *Recorder) HideCursor() error  { return r.record(OpHide) }
func (r *Recorder) ShowCursor() error  { return r.record(OpShow) }

func (r *Recorder) MoveCursorTo(x, y int) error {
	return r.record(fmt.Sprintf("%s %d,%d", OpMove, x, y))
}

func (r *Recorder) Print(text string) error {
	if err := r.record(OpPrint + " " + text); err != nil {
		return err
	}
	r.pending.WriteString(text)
	return nil
}

func (r *Recorder) Size() (int, int, error) {
	if err := r.record(OpSize); err != nil {
		return 0, 0, err
	}
	return r.Width, r.Height, nil
}

func (r *Recorder) Execute() error {
	if err := r.record(OpExecute); err != nil {
		return err
	}
	r.Frames = append(r.Frames, r.pending.String())
	r.pending.Reset()
	return nil
}

func (r *Recorder) ReadEvent() (terminal.Event, error) {
	if err := r.record(OpRead); err != nil {
		return terminal.Event{}, err
	}
	if r.OnRead != nil {
		r.OnRead(r.reads)
	}
	if r.reads >= len(r.Events) {
		return terminal.Event{}, ErrScriptExhausted
	}
	ev := r.Events[r.reads]
	r.reads++
	return ev, nil
}

// Count returns how many recorded ops have the given name
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op == name || strings.HasPrefix(op, name+" ") {
			n++
		}
	}
	return n
}

// Output returns the text printed since the last Execute
func (r *Recorder) Output() string {
	return r.pending.String()
}

// LastFrame returns the text printed before the most recent Execute
func (r *Recorder) LastFrame() string {
	if len(r.Frames) == 0 {
		return ""
	}
	return r.Frames[len(r.Frames)-1]
}

// Key builds a key press event
func Key(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

// Ctrl builds a Ctrl+letter press event
func Ctrl(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r, Modifiers: terminal.ModCtrl}
}

// Rune builds a plain character press event
func Rune(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}
