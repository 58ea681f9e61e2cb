package breakout

import "math"

// Snapshot contains the complete engine state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Phase     string
	Score     int
	Lives     int
	Level     int
	BaseSpeed float64

	PaddleX   float64
	PaddleDir int

	BallX, BallY   float64
	BallDX, BallDY float64
	BallLaunched   bool

	// Brick states, row-major: 1 alive, 0 destroyed or hole
	BrickData []int

	// RNG state for launch angles
	RNGState uint64
}

// Snapshot returns the current engine state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	bricks := make([]int, len(e.grid.Bricks))
	for i, b := range e.grid.Bricks {
		if b.Alive {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Tick:      e.tick,
		Phase:     string(e.phase),
		Score:     e.score,
		Lives:     e.lives,
		Level:     e.level,
		BaseSpeed: e.baseSpeed,

		PaddleX:   e.paddle.X,
		PaddleDir: e.paddle.Dir,

		BallX:        e.ball.X,
		BallY:        e.ball.Y,
		BallDX:       e.ball.DX,
		BallDY:       e.ball.DY,
		BallLaunched: e.ball.Launched,

		BrickData: bricks,
		RNGState:  e.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range []byte(snap.Phase) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleDir) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.BaseSpeed, snap.PaddleX, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.BallLaunched {
		h = h*31 + 1
	} else {
		h *= 31
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
