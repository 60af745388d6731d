// @focus: #sys { io } #input { decode }
package terminal

import (
	"time"
	"unicode/utf8"
)

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// maxSequenceLen bounds how far a CSI sequence is scanned for its final byte
const maxSequenceLen = 32

// inputDecoder assembles raw stdin bytes into events.
// It is driven synchronously by ReadEvent; there is no reader goroutine.
type inputDecoder struct {
	// Persistent buffer for stream assembly, keeps partial UTF-8 and escape sequences across reads
	buf []byte
}

func newInputDecoder() *inputDecoder {
	return &inputDecoder{buf: make([]byte, 0, 256)}
}

// feed appends freshly read bytes
func (d *inputDecoder) feed(data []byte) {
	d.buf = append(d.buf, data...)
}

// pending reports whether an incomplete sequence is buffered
func (d *inputDecoder) pending() bool {
	return len(d.buf) > 0
}

// next returns the first complete event in the buffer, skipping unknown sequences
func (d *inputDecoder) next() (Event, bool) {
	for len(d.buf) > 0 {
		n, ev, ok := decodeEvent(d.buf)
		if n == 0 {
			return Event{}, false // Wait for more data
		}
		d.consume(n)
		if ok {
			return ev, true
		}
	}
	return Event{}, false
}

// expire resolves a buffered prefix after the escape timeout elapsed with no new input.
// A lone ESC becomes KeyEscape; any other stalled prefix (truncated UTF-8) is dropped.
func (d *inputDecoder) expire() (Event, bool) {
	if len(d.buf) == 0 {
		return Event{}, false
	}
	b := d.buf[0]
	d.consume(1)
	if b == 0x1b {
		return Event{Type: EventKey, Key: KeyEscape}, true
	}
	return Event{}, false
}

// consume drops n bytes from the front of the buffer
func (d *inputDecoder) consume(n int) {
	if n >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	copy(d.buf, d.buf[n:])
	d.buf = d.buf[:len(d.buf)-n]
}

// decodeEvent parses a single event from the front of data.
// n == 0 means the sequence is incomplete; ok == false with n > 0 means n bytes were swallowed.
func decodeEvent(data []byte) (n int, ev Event, ok bool) {
	b := data[0]

	switch {
	// Fast path: printable ASCII
	case b >= 0x20 && b < 0x7f:
		return 1, Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}, true

	case b == 0x1b:
		if len(data) < 2 {
			return 0, Event{}, false
		}
		return parseEscape(data)

	case b < 0x20:
		return 1, parseControl(b), true

	// DEL
	case b == 0x7f:
		return 1, Event{Type: EventKey, Key: KeyBackspace}, true
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return 0, Event{}, false
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return 1, Event{}, false
	}
	return size, Event{Type: EventKey, Key: KeyRune, Rune: r}, true
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return ctrlRune(' ')
	case 0x08: // Ctrl+H or Backspace
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return ctrlRune('\\')
	case 0x1d:
		return ctrlRune(']')
	case 0x1e:
		return ctrlRune('^')
	case 0x1f:
		return ctrlRune('_')
	}
	// 0x01..0x1a: Ctrl+A .. Ctrl+Z
	return ctrlRune(rune('a' + b - 1))
}

func parseEscape(data []byte) (int, Event, bool) {
	next := data[1]

	switch {
	// ESC ESC -> Alt+Escape
	case next == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}, true
	case next == '[':
		return parseCSI(data)
	case next == 'O':
		return parseSS3(data)

	// Alt+Control character
	case next < 0x20:
		ev := parseControl(next)
		ev.Modifiers |= ModAlt
		return 2, ev, true

	// Alt+printable
	case next < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(next), Modifiers: ModAlt}, true
	}

	// ESC followed by something that cannot start a sequence
	return 1, Event{Type: EventKey, Key: KeyEscape}, true
}

// parseCSI parses ESC [ params final, returns length even for unknown sequences
func parseCSI(data []byte) (int, Event, bool) {
	end := 2
	for {
		if end >= len(data) {
			if end >= maxSequenceLen {
				return end, Event{}, false
			}
			return 0, Event{}, false // Incomplete
		}
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			end++
			break
		}
		if b < 0x20 || b > 0x7e || end >= maxSequenceLen {
			// Malformed, swallow what was scanned
			return end, Event{}, false
		}
		end++
	}

	final := data[end-1]
	params, ok := parseParams(data[2 : end-1])
	if !ok {
		return end, Event{}, false
	}

	if final == 'Z' {
		return end, Event{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift}, true
	}

	var key Key
	var mod Modifier
	if final == '~' {
		if len(params) == 0 {
			return end, Event{}, false
		}
		key = csiTildeKeys[params[0]]
	} else {
		key = csiFinalKeys[final]
	}
	if key == KeyNone {
		return end, Event{}, false
	}
	if len(params) >= 2 {
		mod = xtermModifier(params[1])
	}
	return end, Event{Type: EventKey, Key: key, Modifiers: mod}, true
}

// parseSS3 parses ESC O final, returns length even for unknown sequences
func parseSS3(data []byte) (int, Event, bool) {
	if len(data) < 3 {
		return 0, Event{}, false
	}
	if key, ok := ss3Keys[data[2]]; ok {
		return 3, Event{Type: EventKey, Key: key}, true
	}
	return 3, Event{}, false
}

// parseParams splits "N;M" into integers; private-mode prefixes are rejected
func parseParams(data []byte) ([]int, bool) {
	if len(data) == 0 {
		return nil, true
	}
	params := make([]int, 0, 2)
	val := 0
	for _, b := range data {
		switch {
		case b == ';':
			params = append(params, val)
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 { // Sanity limit
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return append(params, val), true
}
