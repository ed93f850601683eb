package types

// Grid represents the board geometry. The playfield leaves a one cell
// border around the display and the top-right corner is reserved for the
// score box.
type Grid struct {
	Cell   int
	Width  int
	Height int
}

// DefaultGrid is the 800x600 board with 20px cells.
func DefaultGrid() Grid {
	return Grid{
		Cell:   CellSize,
		Width:  DisplayWidth,
		Height: DisplayHeight,
	}
}

// BoundX is the largest x a head may occupy.
func (g Grid) BoundX() int {
	return g.Width - 2*g.Cell
}

// BoundY is the largest y a head may occupy.
func (g Grid) BoundY() int {
	return g.Height - 2*g.Cell
}

// HudX is the left edge of the score box.
func (g Grid) HudX() int {
	return g.Width - HudWidth
}

// HudY is the bottom edge of the score box.
func (g Grid) HudY() int {
	return HudHeight - g.Cell
}

// Center returns the cell at the middle of the display.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// IsInsidePlayfield reports whether p is within the inner playable bounds.
func (g Grid) IsInsidePlayfield(p Point) bool {
	return p.X >= g.Cell && p.X <= g.BoundX() && p.Y >= g.Cell && p.Y <= g.BoundY()
}

// IsInsideHud reports whether p falls in the score box.
func (g Grid) IsInsideHud(p Point) bool {
	return p.X >= g.HudX() && p.Y <= g.HudY()
}

// IsAligned reports whether p sits exactly on a cell.
func (g Grid) IsAligned(p Point) bool {
	return p.X%g.Cell == 0 && p.Y%g.Cell == 0
}
