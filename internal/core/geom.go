// Package core provides the drawing primitives the whack renderers share:
// a colored character buffer, rectangles and the board grid layout. It has
// no Bubble Tea dependency so layouts can be tested on their own.
package core

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// Grid describes how board holes are laid out on screen.
type Grid struct {
	Count int // Number of cells
	Cols  int // Cells per row, at least 1
	CellW int
	CellH int
	GapX  int
	GapY  int
}

// Rows returns the number of rows needed for Count cells.
func (g Grid) Rows() int {
	cols := max(g.Cols, 1)
	return (g.Count + cols - 1) / cols
}

// Size returns the total width and height of the grid.
func (g Grid) Size() (w, h int) {
	cols := max(min(g.Cols, g.Count), 1)
	rows := g.Rows()
	w = cols*g.CellW + (cols-1)*g.GapX
	h = rows*g.CellH + max(rows-1, 0)*g.GapY
	return w, h
}

// Layout returns one rectangle per cell in reading order, with the grid
// centered inside area. A short last row is centered as well.
func (g Grid) Layout(area Rect) []Rect {
	if g.Count <= 0 {
		return nil
	}
	cols := max(g.Cols, 1)
	w, h := g.Size()
	originX := area.X + max((area.W-w)/2, 0)
	originY := area.Y + max((area.H-h)/2, 0)

	cells := make([]Rect, g.Count)
	for i := range cells {
		row, col := i/cols, i%cols
		inRow := min(cols, g.Count-row*cols)
		shift := (cols - inRow) * (g.CellW + g.GapX) / 2
		cells[i] = NewRect(
			originX+shift+col*(g.CellW+g.GapX),
			originY+row*(g.CellH+g.GapY),
			g.CellW,
			g.CellH,
		)
	}
	return cells
}

// HitCell returns the index of the first cell containing (x, y), or -1.
func HitCell(cells []Rect, x, y int) int {
	for i, c := range cells {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}
