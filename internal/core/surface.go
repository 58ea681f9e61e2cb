package core

// Surface is a 2D drawing target measured in surface pixels.
// The engine draws a complete frame through it; hosts decide how pixels
// reach the user (terminal cells, a window image, a test recorder).
type Surface interface {
	// Size returns the logical drawing area in pixels.
	Size() (w, h float64)

	Clear(bg Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	FillCircle(cx, cy, radius float64, c Color)
	StrokeCircle(cx, cy, radius float64, c Color)

	// Text draws a status line with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)

	// TextSize returns the pixel extent Text would use for s.
	TextSize(s string) (w, h float64)
}

// Labels receives the integer counters a host shows next to the playfield.
// Each setter is called only when its value changes.
type Labels interface {
	SetScore(score int)
	SetLives(lives int)
	SetLevel(level int)
}
