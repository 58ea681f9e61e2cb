package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration of a variant.
// Search order: customPath -> ~/.brickbreaker/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hardcoded default.
//
// Files are decoded on top of the variant's hardcoded defaults, so a file
// only needs the keys it changes. The result is not validated; callers run
// Validate (the engine does so in its constructor).
func Load(variant, customPath string) (Game, error) {
	if !IsVariant(variant) {
		return Game{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Game{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(variant, data)
		if err != nil {
			return Game{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(variant, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(variant, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(variant, GetDefaultYAML(variant))
	if err != nil {
		return Default(variant), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults of a variant.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(variant string, data []byte) (Game, error) {
	cfg := Default(variant)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Game{}, err
	}
	if cfg.ID == "" {
		cfg.ID = variant
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Game) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: encode %s: %w", cfg.ID, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode %s: %w", cfg.ID, err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}

// ParsePreset resolves a difficulty preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Game, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = min(cfg.Paddle.Width*1.25, cfg.Surface.Width)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
	}
}
