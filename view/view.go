// @focus: #render { view }
// Package view renders the line buffer, filler rows and welcome banner
// onto a terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/terminal"
)

// View owns the line buffer and draws it full-screen
type View struct {
	buffer Buffer
}

// New creates a view over a copy of the given lines
func New(lines ...string) *View {
	v := &View{}
	if len(lines) > 0 {
		v.buffer.Lines = append([]string(nil), lines...)
	}
	return v
}

// Render draws every row of the screen top to bottom.
// Buffer lines print verbatim; other rows get a filler glyph, or the banner on row height/3.
// The last row has no trailing line break so the view never scrolls.
func (v *View) Render(t terminal.Terminal) error {
	width, height, err := t.Size()
	if err != nil {
		return fmt.Errorf("query size: %w", err)
	}

	bannerRow := height / constants.BannerRowDivisor

	for row := 0; row < height; row++ {
		if err := t.ClearLine(); err != nil {
			return err
		}

		if line, ok := v.buffer.Line(row); ok {
			if err := t.Print(line); err != nil {
				return err
			}
			if err := t.Print(constants.LineBreak); err != nil {
				return err
			}
			continue
		}

		text := constants.FillerGlyph
		if row == bannerRow {
			text = WelcomeLine(width)
		}
		if err := t.Print(text); err != nil {
			return err
		}

		if row+1 < height {
			if err := t.Print(constants.LineBreak); err != nil {
				return err
			}
		}
	}
	return nil
}

// WelcomeLine builds the banner row for the given width:
// a filler glyph, padding-1 spaces, then the banner text truncated to width.
// padding is (width - len(text)) / 2. The composed row is clipped to width.
func WelcomeLine(width int) string {
	if width <= 0 {
		return ""
	}

	welcome := []rune(constants.Welcome())
	if len(welcome) > width {
		welcome = welcome[:width]
	}

	padding := (width - len(welcome)) / 2
	spaces := max(padding-1, 0)

	line := []rune(constants.FillerGlyph + strings.Repeat(" ", spaces) + string(welcome))
	if len(line) > width {
		line = line[:width]
	}
	return string(line)
}
