package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/vmath"
)

// Builder assembles a Game from a config with optional overrides
//
//	g, err := engine.NewBuilder().WithBounds(40, 20).WithBulletCooldown(5).Build()
type Builder struct {
	config GameConfig
	rng    vmath.RNG
}

// NewBuilder starts from defaults with empty bounds; WithBounds is required
func NewBuilder() *Builder {
	return &Builder{config: DefaultGameConfig(0, 0)}
}

func (b *Builder) WithBounds(width, height int) *Builder {
	b.config.Bounds = vmath.NewBounds(width, height)
	return b
}

func (b *Builder) WithBulletCapacity(capacity int) *Builder {
	b.config.BulletCapacity = capacity
	return b
}

func (b *Builder) WithEventCapacity(capacity int) *Builder {
	b.config.EventCapacity = capacity
	return b
}

func (b *Builder) WithBulletCooldown(ticks int) *Builder {
	b.config.BulletCooldown = ticks
	return b
}

func (b *Builder) WithSeed(seed uint64) *Builder {
	b.config.Seed = seed
	return b
}

// WithRand overrides the seed with an explicit randomness source
func (b *Builder) WithRand(rng vmath.RNG) *Builder {
	b.rng = rng
	return b
}

// Config returns the config assembled so far
func (b *Builder) Config() GameConfig {
	return b.config
}

// Build validates and constructs the game
func (b *Builder) Build() (*Game, error) {
	if err := b.config.Validate(); err != nil {
		return nil, fmt.Errorf("build game: %w", err)
	}
	rng := b.rng
	if rng == nil {
		rng = b.config.newRand()
	}
	return newGame(b.config, rng), nil
}
