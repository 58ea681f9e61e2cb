package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// hudMargin is the inset of the score line from the surface edges.
const hudMargin = 8

type palette struct {
	background core.Color
	paddle     core.Color
	ball       core.Color
	text       core.Color
	accent     core.Color
}

func newPalette(cfg config.Game) palette {
	return palette{
		background: colorOr(cfg.Surface.Background, core.ColorBlack),
		paddle:     colorOr(cfg.Paddle.Color, core.ColorWhite),
		ball:       colorOr(cfg.Ball.Color, core.ColorWhite),
		text:       core.ColorWhite,
		accent:     core.ColorGold,
	}
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Render draws the current frame: background, alive bricks, paddle, ball,
// the score line and any phase overlay. It does not modify the engine.
func (e *Engine) Render(dst core.Surface) {
	dst.Clear(e.palette.background)

	e.renderBricks(dst)
	e.renderPaddle(dst)
	if e.phase != core.PhaseGameOver {
		e.renderBall(dst)
	}
	e.renderHUD(dst)
	e.renderOverlay(dst)
}

// renderBricks draws all alive bricks with a dark outline.
func (e *Engine) renderBricks(dst core.Surface) {
	for i := range e.grid.Bricks {
		b := &e.grid.Bricks[i]
		if !b.Alive {
			continue
		}
		dst.FillRect(b.Rect, b.Color)
		dst.StrokeRect(b.Rect, core.ColorBlack)
	}
}

func (e *Engine) renderPaddle(dst core.Surface) {
	dst.FillRect(e.paddle.Rect(), e.palette.paddle)
}

func (e *Engine) renderBall(dst core.Surface) {
	dst.FillCircle(e.ball.X, e.ball.Y, e.ball.Radius, e.palette.ball)
	dst.StrokeCircle(e.ball.X, e.ball.Y, e.ball.Radius, e.palette.accent)
}

// renderHUD draws the score, lives, and level indicator.
func (e *Engine) renderHUD(dst core.Surface) {
	w, _ := dst.Size()

	// Score on left
	dst.Text(hudMargin, hudMargin, fmt.Sprintf("Score: %d", e.score), e.palette.text)

	// Lives in center
	lives := fmt.Sprintf("Lives: %d", e.lives)
	lw, _ := dst.TextSize(lives)
	dst.Text((w-lw)/2, hudMargin, lives, e.palette.text)

	// Level on right
	level := fmt.Sprintf("Level: %d", e.level)
	levelW, _ := dst.TextSize(level)
	dst.Text(w-levelW-hudMargin, hudMargin, level, e.palette.text)
}

// renderOverlay draws game state messages.
func (e *Engine) renderOverlay(dst core.Surface) {
	switch e.phase {
	case core.PhaseIdle:
		e.drawCenteredBox(dst, e.cfg.Title, "Press SPACE to start")

	case core.PhasePlaying:
		if !e.ball.Launched {
			e.drawHint(dst, "Press SPACE to launch")
		}

	case core.PhasePaused:
		e.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case core.PhaseLevelComplete:
		e.drawCenteredBox(dst,
			fmt.Sprintf("LEVEL %d COMPLETE", e.level-1),
			fmt.Sprintf("Score: %d  |  Press SPACE for level %d", e.score, e.level))

	case core.PhaseGameOver:
		e.drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", e.score))
	}
}

// drawHint draws one line of text centered between the bricks and the paddle.
func (e *Engine) drawHint(dst core.Surface, text string) {
	w, h := dst.Size()
	tw, th := dst.TextSize(text)
	dst.Text((w-tw)/2, h*0.6-th/2, text, e.palette.text)
}

// drawCenteredBox draws a centered message box.
func (e *Engine) drawCenteredBox(dst core.Surface, title, subtitle string) {
	w, h := dst.Size()
	titleW, lineH := dst.TextSize(title)
	subtitleW, _ := dst.TextSize(subtitle)

	pad := lineH
	boxW := max(titleW, subtitleW) + 2*pad
	boxH := 4 * lineH
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, e.palette.background)
	dst.StrokeRect(box, e.palette.accent)

	dst.Text(box.X+(boxW-titleW)/2, box.Y+lineH*0.5, title, e.palette.accent)
	dst.Text(box.X+(boxW-subtitleW)/2, box.Y+lineH*2.5, subtitle, e.palette.text)
}
