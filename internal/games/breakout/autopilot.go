package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Autopilot returns the input a simple computer player would give this
// frame: keep the paddle under the ball with a slowly drifting offset so
// returns vary in angle, and press launch whenever the game waits for it.
// It is deterministic in the engine state.
func Autopilot(e *Engine) core.InputFrame {
	in := core.NewInputFrame()

	switch e.phase {
	case core.PhaseIdle, core.PhaseLevelComplete:
		in.Set(core.ActionLaunch)
		return in
	case core.PhasePlaying:
	default:
		return in
	}

	if !e.ball.Launched {
		in.Set(core.ActionLaunch)
	}

	w, _ := e.Size()
	drift := math.Sin(float64(e.tick)*0.037) * e.paddle.Width * 0.35
	in.SetPointer(core.Clamp(e.ball.X+drift, 1, w-1))
	return in
}
