package terminal

import (
	"github.com/gdamore/tcell/v2"

	"wraproids/geom"
)

const (
	runeLine = '*'
	runeDot  = '.'
)

// Canvas rasterises playfield drawing onto a grid of terminal cells.
// The whole field is scaled to fit the grid.
type Canvas struct {
	cols, rows     int
	fieldW, fieldH float64
	cells          []rune
}

// NewCanvas creates a canvas of cols x rows cells for a field
func NewCanvas(cols, rows int, fieldW, fieldH float64) *Canvas {
	c := &Canvas{fieldW: fieldW, fieldH: fieldH}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.cells = make([]rune, c.cols*c.rows)
	c.Clear()
}

// Cell returns the rune at a cell, or 0 outside the grid
func (c *Canvas) Cell(col, row int) rune {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) set(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = r
}

func (c *Canvas) toCell(x, y float64) (int, int) {
	if c.fieldW <= 0 || c.fieldH <= 0 {
		return 0, 0
	}
	col := int(x * float64(c.cols) / c.fieldW)
	row := int(y * float64(c.rows) / c.fieldH)
	if x < 0 {
		col--
	}
	if y < 0 {
		row--
	}
	return col, row
}

// Size returns the playfield size the canvas represents
func (c *Canvas) Size() (float64, float64) {
	return c.fieldW, c.fieldH
}

// Clear blanks every cell
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = ' '
	}
}

// Loop draws a closed outline
func (c *Canvas) Loop(points geom.Polygon) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		c.Line(a.X, a.Y, b.X, b.Y)
	}
}

// Line draws a segment with Bresenham's algorithm
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c0, r0 := c.toCell(x1, y1)
	c1, r1 := c.toCell(x2, y2)

	// skip segments entirely off the grid
	if (c0 < 0 && c1 < 0) || (r0 < 0 && r1 < 0) ||
		(c0 >= c.cols && c1 >= c.cols) || (r0 >= c.rows && r1 >= c.rows) {
		return
	}

	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}

	e := dc + dr
	for {
		c.set(c0, r0, runeLine)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// Dot marks a single cell unless a line already covers it
func (c *Canvas) Dot(x, y float64) {
	col, row := c.toCell(x, y)
	if c.Cell(col, row) == ' ' {
		c.set(col, row, runeDot)
	}
}

// Text writes s starting at the cell containing (x, y)
func (c *Canvas) Text(s string, x, y float64) {
	col, row := c.toCell(x, y)
	for _, r := range s {
		c.set(col, row, r)
		col++
	}
}

// TextSize returns the field extent of s, one cell per rune
func (c *Canvas) TextSize(s string) (float64, float64) {
	if c.cols == 0 || c.rows == 0 {
		return c.fieldW + 1, c.fieldH + 1
	}
	cellW := c.fieldW / float64(c.cols)
	cellH := c.fieldH / float64(c.rows)
	return float64(len([]rune(s))) * cellW, cellH
}

// Show copies the grid onto the screen
func (c *Canvas) Show(screen tcell.Screen, style tcell.Style) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			screen.SetContent(col, row, c.cells[row*c.cols+col], nil, style)
		}
	}
	screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
