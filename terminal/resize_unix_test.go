//go:build unix

package terminal

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestResizeWatcher_KeepsLatestAndWakes(t *testing.T) {
	r, err := newResizeWatcher(-1)
	if err != nil {
		t.Fatalf("newResizeWatcher failed: %v", err)
	}
	defer r.stopPipe()

	if _, ok := r.take(); ok {
		t.Fatal("Expected no pending resize on a new watcher")
	}

	r.publish(Event{Type: EventResize, Width: 80, Height: 24})
	r.publish(Event{Type: EventResize, Width: 120, Height: 40})

	fds := []unix.PollFd{{Fd: int32(r.wakeR), Events: unix.POLLIN}}
	if n, err := unix.Poll(fds, 0); err != nil || n != 1 {
		t.Fatalf("Expected wake pipe readable, got n=%d err=%v", n, err)
	}

	ev, ok := r.take()
	if !ok || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("Expected latest size 120x40, got %+v (ok=%v)", ev, ok)
	}
	if _, ok := r.take(); ok {
		t.Error("Expected older resize to be dropped")
	}

	r.drain()
	if n, _ := unix.Poll(fds, 0); n != 0 {
		t.Error("Expected wake pipe empty after drain")
	}
}

func TestResizeWatcher_StartStop(t *testing.T) {
	r, err := newResizeWatcher(-1)
	if err != nil {
		t.Fatalf("newResizeWatcher failed: %v", err)
	}
	r.start()

	// Invalid fd: the signal is received but no size is published
	if err := unix.Kill(unix.Getpid(), unix.SIGWINCH); err != nil {
		t.Fatalf("Failed to raise SIGWINCH: %v", err)
	}
	r.stop()

	if _, ok := r.take(); ok {
		t.Error("Expected no resize for an unmeasurable terminal")
	}
}
