// Package draw renders the game field to a terminal using ANSI sequences
// and half-block characters for 2x vertical resolution.
package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used for rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game code draws in a fixed logical coordinate space; the
// canvas scales to the actual terminal size.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offsets for centering when the terminal is larger
	// than the render area.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
}

// NewScaledCanvas creates a canvas mapping logicalWidth x logicalHeight
// coordinates onto termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]bool, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions, keeping the
// logical coordinate space.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column/row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// SetFloat sets a pixel at logical coordinates.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillRect fills an axis-aligned rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x1 := int(math.Round(x * c.scaleX))
	y1 := int(math.Round(y * c.scaleY))
	x2 := int(math.Round((x + w) * c.scaleX))
	y2 := int(math.Round((y + h) * c.scaleY))

	for py := y1; py <= y2; py++ {
		for px := x1; px <= x2; px++ {
			c.setPixel(px, py)
		}
	}
}

// RectOutline draws the border of an axis-aligned rectangle.
func (c *Canvas) RectOutline(x, y, w, h float64) {
	c.DrawLine(Point{X: x, Y: y}, Point{X: x + w, Y: y})
	c.DrawLine(Point{X: x + w, Y: y}, Point{X: x + w, Y: y + h})
	c.DrawLine(Point{X: x + w, Y: y + h}, Point{X: x, Y: y + h})
	c.DrawLine(Point{X: x, Y: y + h}, Point{X: x, Y: y})
}

// FillCircle fills a circle centered at (cx, cy) with the given radius,
// all in logical coordinates.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	px := cx * c.scaleX
	py := cy * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx <= 0 || ry <= 0 {
		c.setPixel(int(math.Round(px)), int(math.Round(py)))
		return
	}

	y1 := int(math.Floor(py - ry))
	y2 := int(math.Ceil(py + ry))
	for y := y1; y <= y2; y++ {
		dy := (float64(y) - py) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		span := rx * math.Sqrt(1-dy*dy)
		x1 := int(math.Ceil(px - span))
		x2 := int(math.Floor(px + span))
		for x := x1; x <= x2; x++ {
			c.setPixel(x, y)
		}
	}
}

// CircleOutline draws the rim of a circle in logical coordinates.
func (c *Canvas) CircleOutline(cx, cy, r float64) {
	steps := int(math.Max(12, 2*math.Pi*r*c.scaleX))
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		c.SetFloat(cx+math.Cos(a)*r, cy+math.Sin(a)*r)
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network
// flow. 1400 bytes stays under typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1
		topOffset := topY * c.termWidth
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := bottomY < c.subPixelHeight && c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// LogicalWidth returns the logical coordinate width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical coordinate height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position, for placing text overlays on top of canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
