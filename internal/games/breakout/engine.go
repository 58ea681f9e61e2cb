package breakout

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Engine owns the paddle, ball and brick grid of one game and advances them
// one step at a time. It is not safe for concurrent use; hosts drive it from
// a single goroutine.
type Engine struct {
	cfg     config.Game
	palette palette

	paddle Paddle
	ball   Ball
	grid   *Grid

	phase     core.Phase
	score     int
	lives     int
	level     int
	baseSpeed float64 // Launch speed before difficulty scaling
	tick      uint64

	left, right bool

	seed       int64
	rng        *SimpleRNG
	difficulty *config.DifficultyManager

	pending []core.Event // Emitted since the last Step
	labels  core.Labels
	shown   struct{ score, lives, level int }
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed sets the seed of the launch-angle RNG.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithLabels attaches a sink for score, lives and level changes.
func WithLabels(l core.Labels) Option {
	return func(e *Engine) { e.labels = l }
}

// WithLogger sets the logger used for lifecycle transitions.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New validates cfg and returns an engine in the Idle phase.
// A degenerate config yields an error wrapping *config.ConfigurationError.
func New(cfg config.Game, opts ...Option) (*Engine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		palette:    newPalette(cfg),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.Reset()
	return e, nil
}

// ID returns the variant id.
func (e *Engine) ID() string { return e.cfg.ID }

// Title returns the variant's display name.
func (e *Engine) Title() string { return e.cfg.Title }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Game { return e.cfg }

// Size returns the playfield dimensions in pixels.
func (e *Engine) Size() (w, h float64) {
	return e.cfg.Surface.Width, e.cfg.Surface.Height
}

// SetLabels replaces the label sink and pushes the current values to it.
func (e *Engine) SetLabels(l core.Labels) {
	e.labels = l
	e.syncLabels(true)
}

// Reset restores the initial state from any phase: score 0, full lives,
// level 1, a fresh grid, the paddle centered with the ball on it, Idle.
func (e *Engine) Reset() {
	e.score = 0
	e.lives = e.cfg.Gameplay.Lives
	e.level = 1
	e.baseSpeed = e.cfg.Ball.Speed
	e.tick = 0
	e.rng = NewSimpleRNG(e.seed)
	e.pending = e.pending[:0]

	e.paddle = Paddle{
		Width:  e.cfg.Paddle.Width,
		Height: e.cfg.Paddle.Height,
		Speed:  e.cfg.Paddle.Speed,
		Y:      e.cfg.Surface.Height - e.cfg.Paddle.BottomOffset,
		Dir:    e.paddle.Dir,
	}
	e.paddle.X = (e.cfg.Surface.Width - e.paddle.Width) / 2

	e.grid = BuildGrid(e.cfg.Grid)
	e.pinBall()
	e.setPhase(core.PhaseIdle)
	e.syncLabels(true)
}

// Start begins play from Idle with the ball on the paddle.
func (e *Engine) Start() {
	if e.phase != core.PhaseIdle {
		return
	}
	e.setPhase(core.PhasePlaying)
}

// Pause freezes a game in progress.
func (e *Engine) Pause() {
	if e.phase == core.PhasePlaying {
		e.setPhase(core.PhasePaused)
	}
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if e.phase == core.PhasePaused {
		e.setPhase(core.PhasePlaying)
	}
}

// TogglePause switches between Playing and Paused.
func (e *Engine) TogglePause() {
	switch e.phase {
	case core.PhasePlaying:
		e.Pause()
	case core.PhasePaused:
		e.Resume()
	}
}

// NextLevel continues after a cleared grid with a fresh grid and the ball
// back on the paddle. Only valid in LevelComplete.
func (e *Engine) NextLevel() {
	if e.phase != core.PhaseLevelComplete {
		return
	}
	e.grid = BuildGrid(e.cfg.Grid)
	e.pinBall()
	e.setPhase(core.PhasePlaying)
}

// Launch frees the ball from the paddle. Only valid while playing with the
// ball not yet launched.
func (e *Engine) Launch() {
	if e.phase != core.PhasePlaying || e.ball.Launched {
		return
	}

	var angle float64
	if e.cfg.Launch.Mode == config.LaunchRandom {
		spread := e.cfg.Launch.Spread * math.Pi / 180
		angle = e.rng.Between(-spread, spread)
	}

	e.ball.Launched = true
	e.ball.SetHeading(e.LaunchSpeed(), angle)
	e.emit(core.Event{Kind: core.EventLaunch})
	e.logger.Debug("ball launched", "speed", e.LaunchSpeed(), "angle", angle*180/math.Pi)
}

// LaunchSpeed returns the speed the next launch will use: the level's base
// speed scaled by difficulty, capped at the configured maximum.
func (e *Engine) LaunchSpeed() float64 {
	return min(e.difficulty.Speed(e.baseSpeed, e.level), e.cfg.Ball.MaxSpeed)
}

// MoveLeft sets or clears the leftward movement intent.
func (e *Engine) MoveLeft(active bool) {
	e.left = active
	e.updateDir()
}

// MoveRight sets or clears the rightward movement intent.
func (e *Engine) MoveRight(active bool) {
	e.right = active
	e.updateDir()
}

func (e *Engine) updateDir() {
	e.paddle.Dir = 0
	if e.right {
		e.paddle.Dir++
	}
	if e.left {
		e.paddle.Dir--
	}
}

// PointerMove centers the paddle on a pointer x inside the surface.
// Positions on or outside the surface edges are ignored, as is any pointer
// movement while not playing.
func (e *Engine) PointerMove(x float64) {
	if e.phase != core.PhasePlaying {
		return
	}
	if x <= 0 || x >= e.cfg.Surface.Width {
		return
	}
	e.paddle.CenterOn(x, e.cfg.Surface.Width)
}

// Apply maps one frame of semantic input onto the lifecycle and intent
// operations. Launch doubles as the "continue" button: it starts an idle
// game, resumes a paused one, advances a cleared level and restarts after
// game over.
func (e *Engine) Apply(in core.InputFrame) {
	e.MoveLeft(in.Has(core.ActionLeft))
	e.MoveRight(in.Has(core.ActionRight))

	switch {
	case in.Has(core.ActionRestart):
		e.Reset()
		e.Start()
	case in.Has(core.ActionPause):
		e.TogglePause()
	case in.Has(core.ActionNextLevel):
		e.NextLevel()
	case in.Has(core.ActionLaunch):
		switch e.phase {
		case core.PhaseIdle:
			e.Start()
			e.Launch()
		case core.PhasePlaying:
			e.Launch()
		case core.PhasePaused:
			e.Resume()
		case core.PhaseLevelComplete:
			e.NextLevel()
		case core.PhaseGameOver:
			e.Reset()
			e.Start()
		}
	}

	if in.HasPointer {
		e.PointerMove(in.Pointer)
	}
}

// Step advances the game by one frame. Outside the Playing phase it changes
// nothing. The result carries the events emitted since the previous Step
// and whether the host should schedule another frame.
func (e *Engine) Step() core.StepResult {
	if e.phase == core.PhasePlaying {
		e.tick++
		e.update()
	}

	result := core.StepResult{
		State:     e.State(),
		NextFrame: e.phase == core.PhasePlaying,
	}
	if len(e.pending) > 0 {
		result.Events = make([]core.Event, len(e.pending))
		copy(result.Events, e.pending)
		e.pending = e.pending[:0]
	}
	return result
}

// update runs the physics of one frame in a fixed order: paddle, ball,
// walls, paddle bounce, bricks and clear check, floor.
func (e *Engine) update() {
	w, h := e.Size()

	e.paddle.Move(w)

	if !e.ball.Launched {
		e.pinBall()
		return
	}

	e.ball.Move()

	if ReflectWalls(&e.ball, w) != CollisionNone {
		e.emit(core.Event{Kind: core.EventWall})
	}

	if BouncePaddle(&e.ball, &e.paddle) {
		e.emit(core.Event{Kind: core.EventPaddle})
	}

	if brick := HitBrick(&e.ball, e.grid); brick != nil {
		ReflectOffBrick(&e.ball, brick, e.cfg.Gameplay.Reflection)
		brick.Alive = false
		e.score += brick.Points
		e.emit(core.Event{Kind: core.EventBrick, Row: brick.Row, Col: brick.Col, Points: brick.Points})
		e.syncLabels(false)

		// Clearing the last brick wins over a miss in the same step
		if e.grid.Cleared() {
			e.handleLevelClear()
			return
		}
	}

	if FellOff(&e.ball, h) {
		e.handleMiss()
	}
}

// handleMiss takes a life and either ends the game or re-pins the ball.
func (e *Engine) handleMiss() {
	e.lives = max(e.lives-1, 0)
	e.emit(core.Event{Kind: core.EventLifeLost})

	if e.lives == 0 {
		e.ball.DX, e.ball.DY = 0, 0
		e.emit(core.Event{Kind: core.EventGameOver})
		e.setPhase(core.PhaseGameOver)
		e.logger.Info("game over", "score", e.score, "level", e.level)
	} else {
		e.pinBall()
		e.logger.Debug("life lost", "lives", e.lives)
	}
	e.syncLabels(false)
}

// handleLevelClear freezes the game, bumps the level and the base speed.
func (e *Engine) handleLevelClear() {
	e.level++
	e.baseSpeed += e.cfg.Ball.SpeedIncrement
	e.baseSpeed = min(e.baseSpeed, e.cfg.Ball.MaxSpeed)

	e.emit(core.Event{Kind: core.EventLevelComplete})
	e.setPhase(core.PhaseLevelComplete)
	e.syncLabels(false)
	e.logger.Info("level complete", "level", e.level-1, "score", e.score, "next_speed", e.baseSpeed)
}

// pinBall puts the ball on the paddle, not launched, velocity zeroed.
func (e *Engine) pinBall() {
	e.ball = Ball{
		X:      e.paddle.CenterX(),
		Y:      e.paddle.Y - e.cfg.Ball.Radius - e.cfg.Ball.PinGap,
		Radius: e.cfg.Ball.Radius,
	}
}

func (e *Engine) setPhase(p core.Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
}

func (e *Engine) emit(ev core.Event) {
	e.pending = append(e.pending, ev)
}

// syncLabels pushes counters that changed since the last push.
func (e *Engine) syncLabels(force bool) {
	if e.labels == nil {
		return
	}
	if force || e.shown.score != e.score {
		e.labels.SetScore(e.score)
	}
	if force || e.shown.lives != e.lives {
		e.labels.SetLives(e.lives)
	}
	if force || e.shown.level != e.level {
		e.labels.SetLevel(e.level)
	}
	e.shown.score, e.shown.lives, e.shown.level = e.score, e.lives, e.level
}

// State returns the current game state summary.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Phase:    e.phase,
		Score:    e.score,
		Lives:    e.lives,
		Level:    e.level,
		Launched: e.ball.Launched,
	}
}

// Grid returns the live brick grid. Callers must not modify it.
func (e *Engine) Grid() *Grid { return e.grid }

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball { return e.ball }

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Paddle { return e.paddle }
