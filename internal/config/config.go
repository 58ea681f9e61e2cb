// Package config provides YAML-based variant configuration loading,
// validation and difficulty management for the brick breaker engine.
package config

// Game contains all configuration for one breakout variant.
// Lengths are in surface pixels, speeds in pixels per step.
type Game struct {
	ID         string           `yaml:"id"`
	Title      string           `yaml:"title"`
	Surface    Surface          `yaml:"surface"`
	Paddle     Paddle           `yaml:"paddle"`
	Ball       Ball             `yaml:"ball"`
	Grid       Grid             `yaml:"grid"`
	Launch     Launch           `yaml:"launch"`
	Gameplay   Gameplay         `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Surface defines the playfield.
type Surface struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// Paddle defines the player's paddle.
type Paddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the surface bottom to the paddle top
	Color        string  `yaml:"color"`
}

// Ball defines the ball and its speed progression.
type Ball struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to the base speed on every cleared level
	MaxSpeed       float64 `yaml:"max_speed"`       // At most radius + paddle height
	PinGap         float64 `yaml:"pin_gap"`         // Gap between a pinned ball and the paddle
	Color          string  `yaml:"color"`
}

// Grid defines the brick layout.
type Grid struct {
	Rows        int      `yaml:"rows"`
	Cols        int      `yaml:"cols"`
	BrickWidth  float64  `yaml:"brick_width"`
	BrickHeight float64  `yaml:"brick_height"`
	Padding     float64  `yaml:"padding"`
	OffsetX     float64  `yaml:"offset_x"`
	OffsetY     float64  `yaml:"offset_y"`
	Colors      []string `yaml:"colors"` // Per row, cycled
	Points      []int    `yaml:"points"` // Per row, cycled
	Layout      []string `yaml:"layout"` // Optional ASCII map, one line per row
}

// Launch modes.
const (
	LaunchStraight = "straight"
	LaunchRandom   = "random"
)

// Launch defines how the ball leaves the paddle.
type Launch struct {
	Mode   string  `yaml:"mode"`   // "straight" or "random"
	Spread float64 `yaml:"spread"` // Max deviation from vertical in degrees (random mode)
}

// Brick reflection models.
const (
	ReflectVertical = "vertical"
	ReflectAxis     = "axis"
)

// Gameplay defines rules that are not tied to a single entity.
type Gameplay struct {
	Lives      int    `yaml:"lives"`
	Reflection string `yaml:"reflection"` // "vertical" or "axis"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
