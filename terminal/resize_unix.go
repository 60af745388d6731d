//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// resizeWatcher turns SIGWINCH into a resize Event and wakes the input poll
// through a pipe so a blocked ReadEvent can report it
type resizeWatcher struct {
	fd      int
	wakeR   int
	wakeW   int
	sigCh   chan os.Signal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// newResizeWatcher creates a watcher that measures the terminal on fd
func newResizeWatcher(fd int) (*resizeWatcher, error) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return nil, fmt.Errorf("create resize pipe: %w", err)
	}
	for _, pfd := range p {
		if err := unix.SetNonblock(pfd, true); err != nil {
			unix.Close(p[0])
			unix.Close(p[1])
			return nil, fmt.Errorf("configure resize pipe: %w", err)
		}
	}

	return &resizeWatcher{
		fd:      fd,
		wakeR:   p[0],
		wakeW:   p[1],
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan Event, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// start begins listening for SIGWINCH
func (r *resizeWatcher) start() {
	signal.Notify(r.sigCh, unix.SIGWINCH)
	go r.watchLoop()
}

// stop halts the watcher and closes the wake pipe
func (r *resizeWatcher) stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
	r.stopPipe()
}

// stopPipe closes the wake pipe; alone it releases a watcher that was never started
func (r *resizeWatcher) stopPipe() {
	unix.Close(r.wakeR)
	unix.Close(r.wakeW)
}

func (r *resizeWatcher) watchLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRESIZE WATCHER CRASHED: %v\x1b[0m\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			ws, err := unix.IoctlGetWinsize(r.fd, unix.TIOCGWINSZ)
			if err != nil || ws.Col == 0 || ws.Row == 0 {
				continue
			}
			r.publish(Event{Type: EventResize, Width: int(ws.Col), Height: int(ws.Row)})
		}
	}
}

// publish keeps only the latest size and wakes the poller.
// A full pipe already guarantees a wake-up, so EAGAIN is ignored.
func (r *resizeWatcher) publish(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		select {
		case <-r.eventCh:
		default:
		}
		r.eventCh <- ev
	}
	unix.Write(r.wakeW, []byte{0})
}

// take returns the pending resize, if any
func (r *resizeWatcher) take() (Event, bool) {
	select {
	case ev := <-r.eventCh:
		return ev, true
	default:
		return Event{}, false
	}
}

// drain empties the wake pipe
func (r *resizeWatcher) drain() {
	var buf [64]byte
	for {
		n, err := unix.Read(r.wakeR, buf[:])
		if n <= 0 || err != nil {
			return
		}
	}
}
