package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// NewVariant loads the configuration of a built-in variant (honoring the
// runtime's config path and difficulty preset) and builds an engine for it.
func NewVariant(id string, rt core.RuntimeConfig, opts ...Option) (*Engine, error) {
	cfg, err := config.Load(id, rt.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(rt.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)

	opts = append([]Option{WithSeed(rt.Seed)}, opts...)
	e, err := New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", id, err)
	}
	return e, nil
}

// Register the variants with the registry
func init() {
	for i, id := range config.Variants() {
		info := registry.GameInfo{
			ID:    id,
			Title: config.Default(id).Title,
			Order: i,
		}
		registry.Register(info, func(opts registry.Options) (registry.Game, error) {
			var engineOpts []Option
			if opts.Logger != nil {
				engineOpts = append(engineOpts, WithLogger(opts.Logger.WithPrefix(id)))
			}
			e, err := NewVariant(id, opts.Runtime, engineOpts...)
			if err != nil {
				return nil, err
			}
			return e, nil
		})
	}
}
