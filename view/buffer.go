package view

// Buffer is the ordered sequence of text lines shown by the view.
// The zero value is an empty buffer.
type Buffer struct {
	Lines []string
}

// Line returns the line at row, ok is false past the end of the buffer
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 || row >= len(b.Lines) {
		return "", false
	}
	return b.Lines[row], true
}
