// Package window is the desktop host: an Ebitengine game that drives a
// registry.Game with keyboard, mouse and touch input.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Debug font metrics of ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	lineH  = 16
)

// strokeWidth is the outline width in logical pixels.
const strokeWidth = 1

// imageSurface is a core.Surface over an Ebitengine image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s imageSurface) Clear(bg core.Color) {
	s.img.Fill(bg.RGBA())
}

func (s imageSurface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

func (s imageSurface) StrokeRect(r core.Rect, c core.Color) {
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), strokeWidth, c.RGBA(), false)
}

func (s imageSurface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), c.RGBA(), true)
}

func (s imageSurface) StrokeCircle(cx, cy, radius float64, c core.Color) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(radius), strokeWidth, c.RGBA(), true)
}

// Text draws with the debug font, which is always white.
func (s imageSurface) Text(x, y float64, str string, _ core.Color) {
	ebitenutil.DebugPrintAt(s.img, str, int(x), int(y))
}

func (s imageSurface) TextSize(str string) (float64, float64) {
	return textSize(str)
}

func textSize(str string) (float64, float64) {
	return float64(len([]rune(str)) * glyphW), lineH
}
