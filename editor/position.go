package editor

// Position is a screen cell addressed by column X and row Y.
// The zero value is the top-left cell, where the cursor starts.
type Position struct {
	X, Y int
}

// bounds returns the largest valid column and row, never negative
func bounds(width, height int) (maxX, maxY int) {
	return max(width-1, 0), max(height-1, 0)
}

// Move applies a navigation action to pos for a screen of width x height.
// Arithmetic saturates at 0 and clamps at the last column/row; it never wraps.
// Non-navigation actions return pos unchanged.
func Move(a Action, pos Position, width, height int) Position {
	maxX, maxY := bounds(width, height)
	x, y := pos.X, pos.Y

	switch a {
	case ActionUp:
		y = max(y-1, 0)
	case ActionDown:
		y = min(maxY, y+1)
	case ActionLeft:
		x = max(x-1, 0)
	case ActionRight:
		x = min(maxX, x+1)
	case ActionHome:
		x = 0
	case ActionEnd:
		x = maxX
	case ActionPageUp:
		y = 0
	case ActionPageDown:
		y = maxY
	default:
		return pos
	}
	return Position{X: x, Y: y}
}

// clamp limits pos to the screen without touching axes already in range
func (p Position) clamp(width, height int) Position {
	maxX, maxY := bounds(width, height)
	return Position{X: min(max(p.X, 0), maxX), Y: min(max(p.Y, 0), maxY)}
}
