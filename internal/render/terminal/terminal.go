// Package terminal renders frames into a character-cell terminal with tcell.
// Logical pixels from Game.Layout are scaled onto the cell grid, so the same
// game code drives both the window and the terminal.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	blockRune = '█'
	rayRune   = '·'
)

// Canvas implements render.Canvas on top of a tcell screen.
type Canvas struct {
	screen         tcell.Screen
	logicalWidth   int
	logicalHeight  int
	cols, rows     int
	scaleX, scaleY float64
}

// NewCanvas maps a logicalWidth x logicalHeight surface onto screen.
func NewCanvas(screen tcell.Screen, logicalWidth, logicalHeight int) *Canvas {
	cols, rows := screen.Size()
	c := &Canvas{
		screen:        screen,
		logicalWidth:  max(logicalWidth, 1),
		logicalHeight: max(logicalHeight, 1),
		cols:          cols,
		rows:          rows,
	}
	c.scaleX = float64(cols) / float64(c.logicalWidth)
	c.scaleY = float64(rows) / float64(c.logicalHeight)
	return c
}

// Size returns the logical width and height.
func (c *Canvas) Size() (width, height int) {
	return c.logicalWidth, c.logicalHeight
}

// Fill paints every cell with the background color.
func (c *Canvas) Fill(clr color.Color) {
	style := tcell.StyleDefault.Background(toTcellColor(clr))
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillRect paints the cells covered by the rectangle. Any rectangle with a
// positive size covers at least one cell.
func (c *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}

	x0, x1 := c.span(float64(x), float64(width), c.scaleX, c.cols)
	y0, y1 := c.span(float64(y), float64(height), c.scaleY, c.rows)

	style := tcell.StyleDefault.Foreground(toTcellColor(clr))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetContent(cx, cy, blockRune, nil, style)
		}
	}
}

// span converts a logical interval to a clipped half-open cell range.
func (c *Canvas) span(start, length, scale float64, limit int) (int, int) {
	lo := int(math.Floor(start * scale))
	hi := int(math.Floor((start + length) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, limit)
}

// StrokeLine plots the cells along the segment. Stroke width is ignored;
// a cell is already wider than any stroke.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, _ float32, clr color.Color) {
	cx1, cy1 := float64(x1)*c.scaleX, float64(y1)*c.scaleY
	cx2, cy2 := float64(x2)*c.scaleX, float64(y2)*c.scaleY

	steps := int(math.Ceil(math.Max(math.Abs(cx2-cx1), math.Abs(cy2-cy1))))
	style := tcell.StyleDefault.Foreground(toTcellColor(clr))

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := int(math.Floor(cx1 + (cx2-cx1)*t))
		cy := int(math.Floor(cy1 + (cy2-cy1)*t))
		if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
			continue
		}
		c.screen.SetContent(cx, cy, rayRune, nil, style)
	}
}

// DrawText writes text starting at the cell under (x, y), advancing by each
// rune's display width.
func (c *Canvas) DrawText(text string, x, y int) {
	cx := int(math.Floor(float64(x) * c.scaleX))
	cy := int(math.Floor(float64(y) * c.scaleY))
	if cy < 0 || cy >= c.rows {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cx >= c.cols {
			return
		}
		if cx >= 0 {
			c.screen.SetContent(cx, cy, r, nil, style)
		}
		cx += w
	}
}

// toTcellColor converts clr to a terminal RGB color. Translucent colors are
// composited over black, which is what RGBA's premultiplied values already are.
func toTcellColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
