package tui

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Canvas is a core.Surface that rasterizes a game's pixel playfield onto a
// character Screen. Each cell covers a ScaleX by ScaleY block of pixels.
type Canvas struct {
	screen *core.Screen
	w, h   float64 // Logical playfield size in pixels
}

// NewCanvas returns a canvas mapping a w by h pixel playfield onto screen.
func NewCanvas(screen *core.Screen, w, h float64) *Canvas {
	return &Canvas{screen: screen, w: w, h: h}
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *core.Screen { return c.screen }

// Scale returns the pixels covered by one cell on each axis.
func (c *Canvas) Scale() (sx, sy float64) {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols == 0 || rows == 0 {
		return 1, 1
	}
	return c.w / float64(cols), c.h / float64(rows)
}

// PixelX converts a terminal column to the pixel x at the cell's center.
func (c *Canvas) PixelX(col int) float64 {
	sx, _ := c.Scale()
	return (float64(col) + 0.5) * sx
}

// Size implements core.Surface.
func (c *Canvas) Size() (float64, float64) { return c.w, c.h }

// Clear implements core.Surface. The terminal's own background shows
// through, so bg is not painted.
func (c *Canvas) Clear(core.Color) {
	c.screen.Clear()
}

// cellSpan maps the pixel interval [lo, hi) to a cell interval, covering at
// least one cell for any non-empty interval.
func cellSpan(lo, hi, scale float64) (int, int) {
	first := int(math.Round(lo / scale))
	last := int(math.Round(hi / scale))
	if last <= first && hi > lo {
		last = first + 1
	}
	return first, last
}

func (c *Canvas) cells(r core.Rect) (x, y, w, h int) {
	sx, sy := c.Scale()
	x0, x1 := cellSpan(r.X, r.Right(), sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), sy)
	return x0, y0, x1 - x0, y1 - y0
}

// FillRect implements core.Surface.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	x, y, w, h := c.cells(r)
	rn := '█'
	if col == core.ColorBlack {
		rn = ' '
	}
	c.screen.FillArea(x, y, w, h, rn, col)
}

// StrokeRect implements core.Surface. Outlines too small to hold a box are
// skipped so they never cover what they frame.
func (c *Canvas) StrokeRect(r core.Rect, col core.Color) {
	x, y, w, h := c.cells(r)
	if w < 3 || h < 3 {
		return
	}
	c.screen.DrawBox(x, y, w, h, col)
}

// FillCircle implements core.Surface. A circle smaller than a cell still
// marks the cell holding its center.
func (c *Canvas) FillCircle(cx, cy, radius float64, col core.Color) {
	sx, sy := c.Scale()
	if radius < sx && radius < sy {
		c.screen.Set(int(cx/sx), int(cy/sy), '●', col)
		return
	}
	x, y, w, h := c.cells(core.RectAround(cx, cy, radius))
	for row := y; row < y+h; row++ {
		for cl := x; cl < x+w; cl++ {
			px, py := (float64(cl)+0.5)*sx, (float64(row)+0.5)*sy
			if math.Hypot(px-cx, py-cy) <= radius {
				c.screen.Set(cl, row, '█', col)
			}
		}
	}
}

// StrokeCircle implements core.Surface. Terminal cells are too coarse for
// an outline, so it is not drawn.
func (c *Canvas) StrokeCircle(float64, float64, float64, core.Color) {}

// Text implements core.Surface. Text centered on the playfield stays
// centered in cells instead of drifting with rounding.
func (c *Canvas) Text(x, y float64, s string, col core.Color) {
	sx, sy := c.Scale()
	row := int(math.Round(y / sy))

	tw, _ := c.TextSize(s)
	if math.Abs(x+tw/2-c.w/2) < sx/2 {
		c.screen.DrawTextCentered(row, s, col)
		return
	}
	c.screen.DrawText(int(math.Round(x/sx)), row, s, col)
}

// TextSize implements core.Surface: one cell per character, one row high.
func (c *Canvas) TextSize(s string) (float64, float64) {
	sx, sy := c.Scale()
	return float64(len([]rune(s))) * sx, sy
}
