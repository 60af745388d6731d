//go:build unix

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
	resize  *resizeWatcher

	buf []byte
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
		buf:   make([]byte, 256),
	}
}

func (b *unixBackend) Init() error {
	if b.oldTerm != nil {
		return nil
	}
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	watcher, err := newResizeWatcher(b.outFd)
	if err != nil {
		return err
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		watcher.stopPipe()
		return fmt.Errorf("enable raw mode: %w", err)
	}
	b.oldTerm = old

	b.resize = watcher
	b.resize.start()
	return nil
}

func (b *unixBackend) Fini() error {
	if b.oldTerm == nil {
		return nil
	}
	if b.resize != nil {
		b.resize.stop()
		b.resize = nil
	}

	old := b.oldTerm
	b.oldTerm = nil
	if err := term.Restore(b.inFd, old); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	return nil
}

func (b *unixBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// takeResize returns the latest window size reported by SIGWINCH
func (b *unixBackend) takeResize() (Event, bool) {
	if b.resize == nil {
		return Event{}, false
	}
	return b.resize.take()
}

// Read polls stdin so a pending lone ESC can be resolved after a short timeout.
// A resize wakes the poll and is reported as a timeout.
func (b *unixBackend) Read(timeout time.Duration) ([]byte, error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}

	for {
		fds := []unix.PollFd{
			{Fd: int32(b.inFd), Events: unix.POLLIN},
		}
		if b.resize != nil {
			fds = append(fds, unix.PollFd{Fd: int32(b.resize.wakeR), Events: unix.POLLIN})
		}

		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("poll stdin: %w", err)
		}

		if n == 0 {
			return nil, nil // Timeout
		}

		if fds[0].Revents == 0 {
			b.resize.drain()
			return nil, nil
		}

		rn, err := unix.Read(b.inFd, b.buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		if rn == 0 {
			return nil, ErrClosed
		}

		// Return copy of data
		ret := make([]byte, rn)
		copy(ret, b.buf[:rn])
		return ret, nil
	}
}
