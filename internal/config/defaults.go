package config

import (
	"embed"
	"path"
	"slices"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Variant identifiers shipped with the engine.
const (
	VariantClassic = "classic"
	VariantArcade  = "arcade"
	VariantShooter = "shooter"
)

// Variants returns the built-in variant ids in display order.
func Variants() []string {
	return []string{VariantClassic, VariantArcade, VariantShooter}
}

// IsVariant reports whether id names a built-in variant.
func IsVariant(id string) bool {
	return slices.Contains(Variants(), id)
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	if !IsVariant(variant) {
		return nil
	}
	data, err := defaultFS.ReadFile(path.Join("defaults", variant+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// Default returns the hardcoded configuration for a variant.
// Unknown ids fall back to classic.
func Default(variant string) Game {
	switch variant {
	case VariantArcade:
		return DefaultArcadeConfig()
	case VariantShooter:
		return DefaultShooterConfig()
	default:
		return DefaultClassicConfig()
	}
}

func defaultDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "none",
			MaxAt: 10,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 0.5,
		},
	}
}

// DefaultClassicConfig returns the 800x600 six-row game with tiered points.
func DefaultClassicConfig() Game {
	return Game{
		ID:    VariantClassic,
		Title: "Classic",
		Surface: Surface{
			Width:      800,
			Height:     600,
			Background: "black",
		},
		Paddle: Paddle{
			Width:        120,
			Height:       15,
			Speed:        8,
			BottomOffset: 40,
			Color:        "white",
		},
		Ball: Ball{
			Radius:         8,
			Speed:          4,
			SpeedIncrement: 0.5,
			MaxSpeed:       12,
			PinGap:         2,
			Color:          "white",
		},
		Grid: Grid{
			Rows:        6,
			Cols:        14,
			BrickWidth:  55,
			BrickHeight: 20,
			Padding:     2,
			OffsetX:     4,
			OffsetY:     60,
			Colors:      []string{"cyan", "lime", "red", "orange", "gold", "gold"},
			Points:      []int{7, 7, 4, 4, 1, 1},
		},
		Launch: Launch{
			Mode:   LaunchRandom,
			Spread: 45,
		},
		Gameplay: Gameplay{
			Lives:      3,
			Reflection: ReflectVertical,
		},
		Difficulty: defaultDifficulty(),
	}
}

// DefaultArcadeConfig returns the twelve-column game with flat scoring and a
// straight launch.
func DefaultArcadeConfig() Game {
	return Game{
		ID:    VariantArcade,
		Title: "Arcade",
		Surface: Surface{
			Width:      840,
			Height:     600,
			Background: "black",
		},
		Paddle: Paddle{
			Width:        100,
			Height:       15,
			Speed:        8,
			BottomOffset: 25,
			Color:        "sky",
		},
		Ball: Ball{
			Radius:         8,
			Speed:          7,
			SpeedIncrement: 0.5,
			MaxSpeed:       14,
			PinGap:         2,
			Color:          "white",
		},
		Grid: Grid{
			Rows:        6,
			Cols:        12,
			BrickWidth:  60,
			BrickHeight: 25,
			Padding:     5,
			OffsetX:     30,
			OffsetY:     50,
			Colors:      []string{"red", "orange", "yellow", "green", "blue", "magenta"},
			Points:      []int{1},
		},
		Launch: Launch{
			Mode:   LaunchStraight,
			Spread: 0,
		},
		Gameplay: Gameplay{
			Lives:      3,
			Reflection: ReflectVertical,
		},
		Difficulty: defaultDifficulty(),
	}
}

// DefaultShooterConfig returns the narrow ten-column game worth ten points
// per brick.
func DefaultShooterConfig() Game {
	return Game{
		ID:    VariantShooter,
		Title: "Shooter",
		Surface: Surface{
			Width:      480,
			Height:     600,
			Background: "black",
		},
		Paddle: Paddle{
			Width:        80,
			Height:       12,
			Speed:        7,
			BottomOffset: 30,
			Color:        "white",
		},
		Ball: Ball{
			Radius:         8,
			Speed:          4.2,
			SpeedIncrement: 0.3,
			MaxSpeed:       10,
			PinGap:         2,
			Color:          "gold",
		},
		Grid: Grid{
			Rows:        6,
			Cols:        10,
			BrickWidth:  42,
			BrickHeight: 20,
			Padding:     5,
			OffsetX:     15,
			OffsetY:     60,
			Colors:      []string{"red", "orange", "yellow", "turquoise", "sky", "green"},
			Points:      []int{10},
		},
		Launch: Launch{
			Mode:   LaunchRandom,
			Spread: 45,
		},
		Gameplay: Gameplay{
			Lives:      3,
			Reflection: ReflectVertical,
		},
		Difficulty: defaultDifficulty(),
	}
}
