package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

var (
	ErrInvalidBounds   = errors.New("invalid bounds")
	ErrInvalidCapacity = errors.New("invalid capacity")
	ErrInvalidCooldown = errors.New("invalid cooldown")
)

// GameConfig holds everything fixed at construction
// Bullet speed, bullet lifetime and food speed use entity defaults
type GameConfig struct {
	Bounds         vmath.Bounds
	BulletCapacity int
	EventCapacity  int
	BulletCooldown int    // Ticks between shots
	Seed           uint64 // Food RNG seed, 0 = time based
}

// DefaultGameConfig returns a config for a width × height board
func DefaultGameConfig(width, height int) GameConfig {
	return GameConfig{
		Bounds:         vmath.NewBounds(width, height),
		BulletCapacity: constants.BulletPoolCapacity,
		EventCapacity:  constants.EventQueueCapacity,
		BulletCooldown: constants.BulletCooldownTicks,
	}
}

// Validate reports the first unusable field
func (c GameConfig) Validate() error {
	if c.Bounds.Width < 1 || c.Bounds.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, c.Bounds.Width, c.Bounds.Height)
	}
	if c.BulletCapacity < 1 {
		return fmt.Errorf("%w: bullet capacity %d", ErrInvalidCapacity, c.BulletCapacity)
	}
	if c.EventCapacity < 1 {
		return fmt.Errorf("%w: event capacity %d", ErrInvalidCapacity, c.EventCapacity)
	}
	if c.BulletCooldown < 0 {
		return fmt.Errorf("%w: %d ticks", ErrInvalidCooldown, c.BulletCooldown)
	}
	return nil
}

func (c GameConfig) newRand() vmath.RNG {
	if c.Seed == 0 {
		return vmath.NewTimeSeededRand()
	}
	return vmath.NewFastRand(c.Seed)
}
