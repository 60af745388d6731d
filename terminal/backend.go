package terminal

import (
	"errors"
	"time"
)

var (
	// ErrNotTerminal is returned by Init when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrClosed is returned by ReadEvent once the input stream has ended
	ErrClosed = errors.New("terminal input closed")

	// ErrUnsupported is returned on platforms without a raw-mode backend
	ErrUnsupported = errors.New("terminal backend not supported on this platform")
)

// Backend abstracts platform-specific terminal operations.
// The ANSI driver queues output on top of it and decodes its raw input bytes.
type Backend interface {
	// Lifecycle
	Init() error
	Fini() error

	// Size queries the device for current dimensions, never cached
	Size() (width, height int, err error)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read waits up to timeout for input; a negative timeout waits indefinitely.
	// Returns (nil, nil) on timeout and (nil, ErrClosed) on end of input.
	Read(timeout time.Duration) ([]byte, error)
}

// resizeSource is implemented by backends that observe window size changes
type resizeSource interface {
	// takeResize returns the latest size change not yet reported
	takeResize() (Event, bool)
}
