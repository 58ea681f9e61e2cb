package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// ConfigurationError reports a degenerate configuration value.
// The engine refuses to start with one, since a broken grid or paddle would
// corrupt the clear check and the clamp.
type ConfigurationError struct {
	Field  string // YAML path of the offending key, e.g. "paddle.width"
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks cfg and returns the first problem found as a
// *ConfigurationError, or nil.
func Validate(cfg Game) error {
	checks := []func(Game) *ConfigurationError{
		validateSurface,
		validatePaddle,
		validateBall,
		validateGrid,
		validateRules,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateSurface(cfg Game) *ConfigurationError {
	if cfg.Surface.Width <= 0 {
		return invalid("surface.width", "must be > 0, got %v", cfg.Surface.Width)
	}
	if cfg.Surface.Height <= 0 {
		return invalid("surface.height", "must be > 0, got %v", cfg.Surface.Height)
	}
	return validateColor("surface.background", cfg.Surface.Background)
}

func validatePaddle(cfg Game) *ConfigurationError {
	p := cfg.Paddle
	switch {
	case p.Width <= 0:
		return invalid("paddle.width", "must be > 0, got %v", p.Width)
	case p.Width > cfg.Surface.Width:
		return invalid("paddle.width", "%v exceeds surface width %v", p.Width, cfg.Surface.Width)
	case p.Height <= 0:
		return invalid("paddle.height", "must be > 0, got %v", p.Height)
	case p.Speed <= 0:
		return invalid("paddle.speed", "must be > 0, got %v", p.Speed)
	case p.BottomOffset < p.Height || p.BottomOffset >= cfg.Surface.Height:
		return invalid("paddle.bottom_offset", "must be within [%v, %v), got %v",
			p.Height, cfg.Surface.Height, p.BottomOffset)
	}
	return validateColor("paddle.color", p.Color)
}

func validateBall(cfg Game) *ConfigurationError {
	b := cfg.Ball
	switch {
	case b.Radius <= 0:
		return invalid("ball.radius", "must be > 0, got %v", b.Radius)
	case 2*b.Radius >= cfg.Surface.Width || 2*b.Radius >= cfg.Surface.Height:
		return invalid("ball.radius", "ball of radius %v does not fit the surface", b.Radius)
	case b.Speed <= 0:
		return invalid("ball.speed", "must be > 0, got %v", b.Speed)
	case b.SpeedIncrement < 0:
		return invalid("ball.speed_increment", "must be >= 0, got %v", b.SpeedIncrement)
	case b.MaxSpeed < b.Speed:
		return invalid("ball.max_speed", "%v is below ball.speed %v", b.MaxSpeed, b.Speed)
	case b.MaxSpeed > b.Radius+cfg.Paddle.Height:
		// A faster ball can skip the paddle band in one step
		return invalid("ball.max_speed", "%v exceeds ball.radius + paddle.height = %v",
			b.MaxSpeed, b.Radius+cfg.Paddle.Height)
	case b.PinGap < 0:
		return invalid("ball.pin_gap", "must be >= 0, got %v", b.PinGap)
	}
	return validateColor("ball.color", b.Color)
}

func validateGrid(cfg Game) *ConfigurationError {
	g := cfg.Grid
	switch {
	case g.Rows < 1:
		return invalid("grid.rows", "must be >= 1, got %d", g.Rows)
	case g.Cols < 1:
		return invalid("grid.cols", "must be >= 1, got %d", g.Cols)
	case g.BrickWidth <= 0:
		return invalid("grid.brick_width", "must be > 0, got %v", g.BrickWidth)
	case g.BrickHeight <= 0:
		return invalid("grid.brick_height", "must be > 0, got %v", g.BrickHeight)
	case g.Padding < 0:
		return invalid("grid.padding", "must be >= 0, got %v", g.Padding)
	case g.OffsetX < 0 || g.OffsetY < 0:
		return invalid("grid.offset", "must be >= 0, got (%v, %v)", g.OffsetX, g.OffsetY)
	case len(g.Points) == 0:
		return invalid("grid.points", "must list at least one value")
	}

	if right := g.OffsetX + float64(g.Cols)*(g.BrickWidth+g.Padding) - g.Padding; right > cfg.Surface.Width {
		return invalid("grid.cols", "bricks reach x=%v, beyond surface width %v", right, cfg.Surface.Width)
	}
	paddleTop := cfg.Surface.Height - cfg.Paddle.BottomOffset
	if bottom := g.OffsetY + float64(g.Rows)*(g.BrickHeight+g.Padding) - g.Padding; bottom > paddleTop {
		return invalid("grid.rows", "bricks reach y=%v, below the paddle top %v", bottom, paddleTop)
	}

	for i, p := range g.Points {
		if p < 0 {
			return invalid(fmt.Sprintf("grid.points[%d]", i), "must be >= 0, got %d", p)
		}
	}
	for i, name := range g.Colors {
		if err := validateColor(fmt.Sprintf("grid.colors[%d]", i), name); err != nil {
			return err
		}
	}

	if len(g.Layout) == 0 {
		return nil
	}
	if len(g.Layout) != g.Rows {
		return invalid("grid.layout", "has %d lines, want %d rows", len(g.Layout), g.Rows)
	}
	bricks := 0
	for i, line := range g.Layout {
		if len(line) != g.Cols {
			return invalid(fmt.Sprintf("grid.layout[%d]", i), "has %d cells, want %d cols", len(line), g.Cols)
		}
		for _, ch := range line {
			switch {
			case ch == '#' || (ch >= '1' && ch <= '9'):
				bricks++
			case ch == '.':
			default:
				return invalid(fmt.Sprintf("grid.layout[%d]", i), "unknown cell %q", ch)
			}
		}
	}
	if bricks == 0 {
		return invalid("grid.layout", "contains no bricks")
	}
	return nil
}

func validateRules(cfg Game) *ConfigurationError {
	switch cfg.Launch.Mode {
	case LaunchStraight, LaunchRandom:
	default:
		return invalid("launch.mode", "want %q or %q, got %q", LaunchStraight, LaunchRandom, cfg.Launch.Mode)
	}
	if cfg.Launch.Spread < 0 || cfg.Launch.Spread >= 90 {
		return invalid("launch.spread", "must be within [0, 90) degrees, got %v", cfg.Launch.Spread)
	}

	if cfg.Gameplay.Lives < 1 {
		return invalid("gameplay.lives", "must be >= 1, got %d", cfg.Gameplay.Lives)
	}
	switch cfg.Gameplay.Reflection {
	case ReflectVertical, ReflectAxis:
	default:
		return invalid("gameplay.reflection", "want %q or %q, got %q", ReflectVertical, ReflectAxis, cfg.Gameplay.Reflection)
	}

	switch cfg.Difficulty.Progression.Type {
	case "", "none", "level":
	default:
		return invalid("difficulty.progression.type", "want \"level\" or \"none\", got %q", cfg.Difficulty.Progression.Type)
	}
	return nil
}

// validateColor accepts an empty name, meaning the host default.
func validateColor(field, name string) *ConfigurationError {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if _, ok := core.ParseColor(name); !ok {
		return invalid(field, "unknown color %q", name)
	}
	return nil
}
