package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Terminal provides low-level terminal access.
// Drawing calls are queued and only reach the device on Execute.
type Terminal interface {
	// Init enters raw mode and clears the screen
	Init() error

	// Fini flushes pending output and restores terminal state. Safe to call multiple times
	Fini() error

	// ClearScreen erases the whole screen
	ClearScreen() error

	// ClearLine erases the line under the cursor
	ClearLine() error

	// MoveCursorTo positions cursor (0-indexed), no clamping
	MoveCursorTo(x, y int) error

	// HideCursor and ShowCursor toggle cursor visibility
	HideCursor() error
	ShowCursor() error

	// Print writes text at the cursor without an implicit newline
	Print(text string) error

	// Size returns current terminal dimensions, queried on every call
	Size() (width, height int, err error)

	// Execute flushes queued output
	Execute() error

	// ReadEvent blocks until next input event
	ReadEvent() (Event, error)
}

// ansiTerminal implements Terminal using the Backend interface
type ansiTerminal struct {
	backend Backend
	writer  *bufio.Writer
	input   *inputDecoder

	initialized bool
}

// New creates a Terminal on the platform backend (stdin/stdout)
func New() Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a Terminal over an explicit backend
func NewWithBackend(b Backend) Terminal {
	return &ansiTerminal{
		backend: b,
		writer:  bufio.NewWriterSize(b, 16384),
		input:   newInputDecoder(),
	}
}

// Init enters raw mode and clears the screen
func (t *ansiTerminal) Init() error {
	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}
	t.initialized = true

	if err := t.ClearScreen(); err != nil {
		return err
	}
	return t.Execute()
}

// Fini restores terminal state; raw mode is released even if the final flush fails
func (t *ansiTerminal) Fini() error {
	flushErr := t.Execute()
	finiErr := t.backend.Fini()
	t.initialized = false

	if flushErr != nil {
		return flushErr
	}
	return finiErr
}

func (t *ansiTerminal) ClearScreen() error {
	return t.queue(csiClearScreen)
}

func (t *ansiTerminal) ClearLine() error {
	return t.queue(csiClearLine)
}

func (t *ansiTerminal) MoveCursorTo(x, y int) error {
	writeCursorPos(t.writer, x, y)
	return nil
}

func (t *ansiTerminal) HideCursor() error {
	return t.queue(csiCursorHide)
}

func (t *ansiTerminal) ShowCursor() error {
	return t.queue(csiCursorShow)
}

func (t *ansiTerminal) Print(text string) error {
	if _, err := t.writer.WriteString(text); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func (t *ansiTerminal) Size() (int, int, error) {
	return t.backend.Size()
}

func (t *ansiTerminal) Execute() error {
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// ReadEvent decodes buffered input first, then blocks on the backend.
// The wait is unbounded unless a partial sequence is pending.
// Backends that observe resizes report them between key events.
func (t *ansiTerminal) ReadEvent() (Event, error) {
	for {
		if ev, ok := t.input.next(); ok {
			return ev, nil
		}
		if ev, ok := t.takeResize(); ok {
			return ev, nil
		}

		timeout := time.Duration(-1)
		if t.input.pending() {
			timeout = escapeTimeout
		}

		data, err := t.backend.Read(timeout)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return Event{}, ErrClosed
			}
			return Event{}, fmt.Errorf("read input: %w", err)
		}

		if len(data) == 0 {
			// A wake-up for a resize must not expire a partial sequence
			if ev, ok := t.takeResize(); ok {
				return ev, nil
			}
			if ev, ok := t.input.expire(); ok {
				return ev, nil
			}
			continue
		}

		t.input.feed(data)
	}
}

func (t *ansiTerminal) takeResize() (Event, bool) {
	if rs, ok := t.backend.(resizeSource); ok {
		return rs.takeResize()
	}
	return Event{}, false
}

// queue writes a control sequence into the output buffer
func (t *ansiTerminal) queue(seq []byte) error {
	if _, err := t.writer.Write(seq); err != nil {
		return fmt.Errorf("queue sequence: %w", err)
	}
	return nil
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write([]byte("\r\n"))

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored
	resetTerminalMode()
}
