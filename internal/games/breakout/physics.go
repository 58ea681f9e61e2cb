package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// MaxBounceAngle is the steepest paddle return, measured from vertical.
const MaxBounceAngle = math.Pi / 6

// Ball represents the ball state in surface pixels.
type Ball struct {
	X, Y     float64 // Center
	Radius   float64
	DX, DY   float64 // Velocity per step
	Launched bool    // False while the ball rides the paddle
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return core.RectAround(b.X, b.Y, b.Radius)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return core.Speed(b.DX, b.DY)
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// SetHeading points the ball at angle radians from vertical (positive is
// to the right, upward travel) while keeping the given speed.
func (b *Ball) SetHeading(speed, angle float64) {
	b.DX = speed * math.Sin(angle)
	b.DY = -speed * math.Cos(angle)
}

// Paddle represents the player's paddle.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	Dir           int // -1 left, 0 idle, +1 right
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Move advances the paddle by its intent and clamps it to [0, surfaceW-Width].
func (p *Paddle) Move(surfaceW float64) {
	p.X = core.Clamp(p.X+float64(p.Dir)*p.Speed, 0, surfaceW-p.Width)
}

// CenterOn centers the paddle on x, clamped to the surface.
func (p *Paddle) CenterOn(x, surfaceW float64) {
	p.X = core.Clamp(x-p.Width/2, 0, surfaceW-p.Width)
}

// CollisionSide indicates which walls the ball touched.
type CollisionSide int

const (
	CollisionNone CollisionSide = 0
	CollisionLeft CollisionSide = 1 << iota
	CollisionRight
	CollisionTop
)

// ReflectWalls bounces the ball off the side and top walls.
// The velocity component is pointed back into the playfield rather than
// negated blindly, and the center is clamped inside, so a fast ball cannot
// stick to a wall. Speed magnitude is unchanged.
func ReflectWalls(ball *Ball, surfaceW float64) CollisionSide {
	side := CollisionNone
	r := ball.Radius

	if ball.X-r < 0 {
		ball.DX = math.Abs(ball.DX)
		ball.X = r
		side |= CollisionLeft
	} else if ball.X+r > surfaceW {
		ball.DX = -math.Abs(ball.DX)
		ball.X = surfaceW - r
		side |= CollisionRight
	}

	if ball.Y-r < 0 {
		ball.DY = math.Abs(ball.DY)
		ball.Y = r
		side |= CollisionTop
	}
	return side
}

// BouncePaddle reflects a descending ball whose bottom edge has crossed the
// paddle's top edge while its center lies within the paddle span.
// The return angle depends on where the ball hit: center hits go straight
// up, edge hits leave at up to MaxBounceAngle. Speed magnitude is preserved.
func BouncePaddle(ball *Ball, paddle *Paddle) bool {
	if ball.DY <= 0 {
		return false
	}
	if ball.Y+ball.Radius < paddle.Y || ball.Y > paddle.Y+paddle.Height {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.X+paddle.Width {
		return false
	}

	hitPos := core.Clamp((ball.X-paddle.X)/paddle.Width, 0, 1)
	angle := (hitPos - 0.5) * 2 * MaxBounceAngle

	ball.SetHeading(ball.Speed(), angle)
	ball.Y = paddle.Y - ball.Radius
	return true
}

// HitBrick finds the first alive brick overlapping the ball in row-major
// order and returns it, or nil. Only one brick is resolved per step so a
// single contact never scores twice.
func HitBrick(ball *Ball, grid *Grid) *Brick {
	box := ball.Rect()
	for i := range grid.Bricks {
		b := &grid.Bricks[i]
		if b.Alive && box.Intersects(b.Rect) {
			return b
		}
	}
	return nil
}

// ReflectOffBrick applies the configured brick reflection model.
// "vertical" inverts DY. "axis" inverts the component along the axis of
// least penetration, so side hits bounce sideways.
func ReflectOffBrick(ball *Ball, brick *Brick, model string) {
	if model == config.ReflectAxis {
		px, py := ball.Rect().Penetration(brick.Rect)
		if px < py {
			ball.DX = -ball.DX
			return
		}
	}
	ball.DY = -ball.DY
}

// FellOff reports whether the ball's bottom edge passed the floor.
func FellOff(ball *Ball, surfaceH float64) bool {
	return ball.Y+ball.Radius > surfaceH
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so runs replay exactly from a seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Between returns a random float64 in [lo, hi).
func (r *SimpleRNG) Between(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
