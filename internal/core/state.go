package core

// RuntimeConfig contains configuration passed to games at initialization.
// Hosts fill it from CLI flags; games use it to locate their variant config
// and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Host width (terminal columns or window pixels)
	ScreenH    int    // Host height (terminal rows or window pixels)
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional custom variant YAML
	Difficulty string // Optional difficulty preset name
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of a game.
type Phase string

const (
	PhaseIdle          Phase = "idle"           // Not started yet
	PhasePlaying       Phase = "playing"        // Simulation running
	PhasePaused        Phase = "paused"         // Frozen until resumed
	PhaseLevelComplete Phase = "level_complete" // Grid cleared, waiting for next level
	PhaseGameOver      Phase = "game_over"      // Lives exhausted, terminal until reset
)

// GameState is the summary a game reports to its host after every call.
type GameState struct {
	Phase    Phase
	Score    int
	Lives    int
	Level    int
	Launched bool // Ball is free-moving (false means it rides the paddle)
}

// GameOver reports whether the game reached its terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventLaunch EventKind = iota
	EventWall
	EventPaddle
	EventBrick
	EventLifeLost
	EventLevelComplete
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventWall:
		return "wall"
	case EventPaddle:
		return "paddle"
	case EventBrick:
		return "brick"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event describes one physics or state-machine outcome.
// Row, Col and Points are only meaningful for EventBrick.
type Event struct {
	Kind   EventKind
	Row    int
	Col    int
	Points int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event

	// NextFrame is false when the host should stop scheduling ticks
	// (idle, paused, level complete, game over).
	NextFrame bool
}

// EventSink consumes the events of each step, e.g. to play sounds.
type EventSink interface {
	HandleEvents(events []Event)
}
