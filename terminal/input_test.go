package terminal

import (
	"testing"
)

func TestDecodeEvent_Keys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
		n     int
	}{
		{"printable", "a", Event{Type: EventKey, Key: KeyRune, Rune: 'a'}, 1},
		{"ctrl q", "\x11", Event{Type: EventKey, Key: KeyRune, Rune: 'q', Modifiers: ModCtrl}, 1},
		{"ctrl a", "\x01", Event{Type: EventKey, Key: KeyRune, Rune: 'a', Modifiers: ModCtrl}, 1},
		{"ctrl z", "\x1a", Event{Type: EventKey, Key: KeyRune, Rune: 'z', Modifiers: ModCtrl}, 1},
		{"tab", "\t", Event{Type: EventKey, Key: KeyTab}, 1},
		{"enter cr", "\r", Event{Type: EventKey, Key: KeyEnter}, 1},
		{"enter lf", "\n", Event{Type: EventKey, Key: KeyEnter}, 1},
		{"del", "\x7f", Event{Type: EventKey, Key: KeyBackspace}, 1},
		{"utf8", "é", Event{Type: EventKey, Key: KeyRune, Rune: 'é'}, 2},
		{"up", "\x1b[A", Event{Type: EventKey, Key: KeyUp}, 3},
		{"down", "\x1b[B", Event{Type: EventKey, Key: KeyDown}, 3},
		{"right", "\x1b[C", Event{Type: EventKey, Key: KeyRight}, 3},
		{"left", "\x1b[D", Event{Type: EventKey, Key: KeyLeft}, 3},
		{"home H", "\x1b[H", Event{Type: EventKey, Key: KeyHome}, 3},
		{"end F", "\x1b[F", Event{Type: EventKey, Key: KeyEnd}, 3},
		{"home 1~", "\x1b[1~", Event{Type: EventKey, Key: KeyHome}, 4},
		{"end 4~", "\x1b[4~", Event{Type: EventKey, Key: KeyEnd}, 4},
		{"home 7~", "\x1b[7~", Event{Type: EventKey, Key: KeyHome}, 4},
		{"end 8~", "\x1b[8~", Event{Type: EventKey, Key: KeyEnd}, 4},
		{"page up", "\x1b[5~", Event{Type: EventKey, Key: KeyPageUp}, 4},
		{"page down", "\x1b[6~", Event{Type: EventKey, Key: KeyPageDown}, 4},
		{"delete", "\x1b[3~", Event{Type: EventKey, Key: KeyDelete}, 4},
		{"f5", "\x1b[15~", Event{Type: EventKey, Key: KeyF5}, 5},
		{"ss3 home", "\x1bOH", Event{Type: EventKey, Key: KeyHome}, 3},
		{"ss3 up", "\x1bOA", Event{Type: EventKey, Key: KeyUp}, 3},
		{"ss3 f1", "\x1bOP", Event{Type: EventKey, Key: KeyF1}, 3},
		{"ctrl up", "\x1b[1;5A", Event{Type: EventKey, Key: KeyUp, Modifiers: ModCtrl}, 6},
		{"shift end", "\x1b[1;2F", Event{Type: EventKey, Key: KeyEnd, Modifiers: ModShift}, 6},
		{"alt page down", "\x1b[6;3~", Event{Type: EventKey, Key: KeyPageDown, Modifiers: ModAlt}, 6},
		{"backtab", "\x1b[Z", Event{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift}, 3},
		{"alt x", "\x1bx", Event{Type: EventKey, Key: KeyRune, Rune: 'x', Modifiers: ModAlt}, 2},
		{"alt escape", "\x1b\x1b", Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ev, ok := decodeEvent([]byte(tt.input))
			if !ok {
				t.Fatalf("decodeEvent(%q) swallowed input (n=%d)", tt.input, n)
			}
			if n != tt.n {
				t.Errorf("decodeEvent(%q) consumed %d, want %d", tt.input, n, tt.n)
			}
			if ev != tt.want {
				t.Errorf("decodeEvent(%q) = %+v, want %+v", tt.input, ev, tt.want)
			}
		})
	}
}

func TestDecodeEvent_Incomplete(t *testing.T) {
	for _, input := range []string{"\x1b", "\x1b[", "\x1b[1", "\x1b[1;5", "\x1bO", "\xc3"} {
		n, _, _ := decodeEvent([]byte(input))
		if n != 0 {
			t.Errorf("decodeEvent(%q) consumed %d, want 0 (incomplete)", input, n)
		}
	}
}

func TestDecodeEvent_UnknownSwallowed(t *testing.T) {
	tests := []struct {
		input string
		n     int
	}{
		{"\x1b[99~", 5},
		{"\x1b[?1u", 5},
		{"\x1bOz", 3},
		{"\xff", 1},
	}
	for _, tt := range tests {
		n, _, ok := decodeEvent([]byte(tt.input))
		if ok {
			t.Errorf("decodeEvent(%q) produced an event, want swallowed", tt.input)
		}
		if n != tt.n {
			t.Errorf("decodeEvent(%q) consumed %d, want %d", tt.input, n, tt.n)
		}
	}
}

func TestInputDecoder_SplitSequence(t *testing.T) {
	d := newInputDecoder()

	d.feed([]byte("\x1b["))
	if _, ok := d.next(); ok {
		t.Fatal("Expected no event from partial sequence")
	}
	if !d.pending() {
		t.Fatal("Expected partial sequence to stay buffered")
	}

	d.feed([]byte("Bq"))
	ev, ok := d.next()
	if !ok || ev.Key != KeyDown {
		t.Fatalf("Expected KeyDown, got %+v (ok=%v)", ev, ok)
	}
	ev, ok = d.next()
	if !ok || ev.Key != KeyRune || ev.Rune != 'q' {
		t.Fatalf("Expected rune q, got %+v (ok=%v)", ev, ok)
	}
	if d.pending() {
		t.Error("Expected buffer to be drained")
	}
}

func TestInputDecoder_ExpireLoneEscape(t *testing.T) {
	d := newInputDecoder()
	d.feed([]byte{0x1b})

	if _, ok := d.next(); ok {
		t.Fatal("Lone ESC must wait for the timeout")
	}

	ev, ok := d.expire()
	if !ok || ev.Key != KeyEscape || ev.Modifiers != ModNone {
		t.Fatalf("Expected plain Escape after timeout, got %+v", ev)
	}
	if d.pending() {
		t.Error("Expected buffer to be empty after expire")
	}
}

func TestInputDecoder_SkipsUnknownBetweenKeys(t *testing.T) {
	d := newInputDecoder()
	d.feed([]byte("\x1b[99~\x1b[A"))

	ev, ok := d.next()
	if !ok || ev.Key != KeyUp {
		t.Fatalf("Expected KeyUp after unknown sequence, got %+v (ok=%v)", ev, ok)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Type: EventKey, Key: KeyRune, Rune: 'q', Modifiers: ModCtrl}, "ctrl+q"},
		{Event{Type: EventKey, Key: KeyUp, Modifiers: ModShift}, "shift+up"},
		{Event{Type: EventKey, Key: KeyPageDown}, "page_down"},
		{Event{Type: EventResize, Width: 80, Height: 24}, "resize"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
