package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Game objects draw in world coordinates; the canvas
// scales them to terminal sub-pixels and only repaints cells that changed.
type Canvas struct {
	termWidth  int
	termHeight int
	pixels     []uint8 // [y * termWidth + x]: palette index, 0 when unset
	drawn      []cell  // Last cell written per terminal position
	pen        uint8

	worldWidth  float64
	worldHeight float64
	scaleX      float64
	scaleY      float64

	// 0-based columns/rows to skip when the terminal is larger than the
	// render area.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	scaledBuf []Point
	pointBuf  []Point
}

// NewCanvas creates an unscaled canvas: one world unit per sub-pixel.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas of termWidth x termHeight cells showing a
// worldWidth x worldHeight world.
func NewScaledCanvas(termWidth, termHeight int, worldWidth, worldHeight float64) *Canvas {
	c := &Canvas{pen: penDefault, worldWidth: worldWidth, worldHeight: worldHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize changes the cell dimensions. The world size stays the same.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if c.pixels == nil || termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth, c.termHeight = termWidth, termHeight
		c.pixels = make([]uint8, termWidth*termHeight*2)
		c.drawn = make([]cell, termWidth*termHeight)
	}
	c.scaleX = float64(termWidth) / c.worldWidth
	c.scaleY = float64(termHeight*2) / c.worldHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas and the pen color.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.pen = penDefault
}

// SetColor selects the pen for following drawing calls from an entity color
// tag ("#rrggbb"). Unknown tags draw in the terminal's default color.
func (c *Canvas) SetColor(tag string) {
	c.pen = penFor(tag)
}

// setPixel paints a sub-pixel with the pen. Out of range is ignored.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.termHeight*2 {
		c.pixels[y*c.termWidth+x] = c.pen
	}
}

// toPixel maps a world position to the nearest sub-pixel.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// Set paints the sub-pixel at an integer world position.
func (c *Canvas) Set(x, y int) {
	c.SetFloat(float64(x), float64(y))
}

// SetFloat paints the sub-pixel at a world position.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// DrawLine draws a segment between two world positions, stepping once per
// sub-pixel along the longer axis.
func (c *Canvas) DrawLine(from, to Point) {
	x0, y0 := c.toPixel(from.X, from.Y)
	x1, y1 := c.toPixel(to.X, to.Y)

	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		c.setPixel(x0, y0)
		return
	}
	stepX := float64(x1-x0) / float64(steps)
	stepY := float64(y1-y0) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.setPixel(
			x0+int(math.Round(stepX*float64(i))),
			y0+int(math.Round(stepY*float64(i))),
		)
	}
}

// DrawPolygon outlines a closed polygon and optionally fills it.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	prev := points[len(points)-1]
	for _, p := range points {
		c.DrawLine(prev, p)
		prev = p
	}
}

// fillPolygon paints every sub-pixel whose center lies inside the polygon
// by the even-odd rule.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	poly := c.scaledBuf[:len(points)]

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range points {
		poly[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minX, maxX = math.Min(minX, poly[i].X), math.Max(maxX, poly[i].X)
		minY, maxY = math.Min(minY, poly[i].Y), math.Max(maxY, poly[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			if insidePolygon(poly, float64(x)+0.5, float64(y)+0.5) {
				c.setPixel(x, y)
			}
		}
	}
}

func insidePolygon(poly []Point, x, y float64) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > y) != (b.Y > y) && x < a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// cell is what one terminal position shows. The zero cell never matches a
// rendered one, so zeroing forces a repaint.
type cell struct {
	ch    rune
	color uint8
}

// cellAt combines the two sub-pixels of a terminal cell. A cell holds a
// single foreground color; the top half wins when the halves differ.
func (c *Canvas) cellAt(row, col int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	var bottom uint8
	if bottomY := row*2 + 1; bottomY < c.termHeight*2 {
		bottom = c.pixels[bottomY*c.termWidth+col]
	}

	switch {
	case top != 0 && bottom != 0:
		return cell{ch: BlockFull, color: top}
	case top != 0:
		return cell{ch: BlockUpperHalf, color: top}
	case bottom != 0:
		return cell{ch: BlockLowerHalf, color: bottom}
	default:
		return cell{ch: BlockEmpty}
	}
}

// Render outputs the cells that changed since the previous Render using
// colored half-block characters. Cells that became empty are overwritten
// with spaces.
func (c *Canvas) Render(w io.Writer) {
	// Reset and pre-grow buffer for better performance
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	var color uint8 // Color escape in effect; 0 until one is emitted
	for row := 0; row < c.termHeight; row++ {
		nextCol := -1 // Column the cursor sits on after the last write

		for col := 0; col < c.termWidth; col++ {
			i := row*c.termWidth + col
			cur := c.cellAt(row, col)
			if c.drawn[i] == cur {
				continue
			}
			c.drawn[i] = cur

			if col != nextCol {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			}
			if cur.color != 0 && cur.color != color {
				c.renderBuf.WriteString(palette[cur.color])
				color = cur.color
			}
			c.renderBuf.WriteRune(cur.ch)
			nextCol = col + 1
		}
	}
	if color != 0 {
		c.renderBuf.WriteString(ColorReset)
	}

	// Write output in chunks for optimal network flow
	_ = writeChunks(w, c.renderBuf.String())
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.drawn)
}

// MarkTextDirty records that text was written over n cells starting at the
// 1-based canvas position (col,row), so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+n, c.termWidth); x++ {
		c.drawn[r*c.termWidth+x] = cell{}
	}
}

// RenderBorder frames the render area when the terminal has spare rows or
// columns around it. Bars are drawn only on the axes that have room.
func (c *Canvas) RenderBorder(w io.Writer) {
	sides := c.offsetCol >= 1
	ends := c.offsetRow >= 1
	if !sides && !ends {
		return
	}

	left, right := c.offsetCol, c.offsetCol+c.termWidth+1
	top, bottom := c.offsetRow, c.offsetRow+c.termHeight+1
	bar := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if ends {
		if sides {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐\033[%d;%dH└%s┘", top, left, bar, bottom, left, bar)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s\033[%d;%dH%s", top, left+1, bar, bottom, left+1, bar)
		}
	}
	if sides {
		for row := top + 1; row < bottom; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	io.WriteString(w, buf.String())
}

// TerminalWidth returns the render area width in cells.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area height in cells.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// BorrowPoints returns a scratch slice of n points, valid until the next
// call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}
