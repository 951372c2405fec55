package entities

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

// FoodConfig styles a food instance
type FoodConfig struct {
	SpeedMultiplier int
	Color           tcell.Color
}

// DefaultFoodConfig moves one cell per tick, drawn purple
func DefaultFoodConfig() FoodConfig {
	return FoodConfig{
		SpeedMultiplier: constants.FoodSpeedMultiplier,
		Color:           constants.RgbFood,
	}
}

// WithSpeed returns a copy with the given speed multiplier
func (c FoodConfig) WithSpeed(speed int) FoodConfig {
	c.SpeedMultiplier = speed
	return c
}

// WithColor returns a copy with the given color
func (c FoodConfig) WithColor(color tcell.Color) FoodConfig {
	c.Color = color
	return c
}

// Food is the single mobile target
// Stationary unless spawned from an edge; leaving the field respawns it from a
// random edge in the same tick
type Food struct {
	position vmath.Vec2
	velocity vmath.Vec2
	active   bool
	config   FoodConfig
	rng      vmath.RNG
}

// NewFood places stationary food at pos
func NewFood(pos vmath.Vec2) *Food {
	return NewFoodWithConfig(pos, DefaultFoodConfig(), nil)
}

// NewFoodWithConfig places stationary food at pos; nil rng selects a time-seeded generator
func NewFoodWithConfig(pos vmath.Vec2, cfg FoodConfig, rng vmath.RNG) *Food {
	if rng == nil {
		rng = vmath.NewTimeSeededRand()
	}
	return &Food{
		position: pos,
		active:   true,
		config:   cfg,
		rng:      rng,
	}
}

// SpawnFoodAtEdge creates food on a random cell of edge, travelling inward
func SpawnFoodAtEdge(edge vmath.Edge, bounds vmath.Bounds, cfg FoodConfig, rng vmath.RNG) *Food {
	f := NewFoodWithConfig(vmath.Vec2{}, cfg, rng)
	f.placeAtEdge(edge, bounds)
	return f
}

// SpawnFoodAtRandomEdge picks one of the four edges uniformly
func SpawnFoodAtRandomEdge(bounds vmath.Bounds, cfg FoodConfig, rng vmath.RNG) *Food {
	f := NewFoodWithConfig(vmath.Vec2{}, cfg, rng)
	f.RespawnFromRandomEdge(bounds)
	return f
}

func (f *Food) placeAtEdge(edge vmath.Edge, bounds vmath.Bounds) {
	switch edge {
	case vmath.EdgeTop:
		f.position = vmath.V(f.rng.Intn(bounds.Width), 0)
	case vmath.EdgeBottom:
		f.position = vmath.V(f.rng.Intn(bounds.Width), bounds.Height-1)
	case vmath.EdgeLeft:
		f.position = vmath.V(0, f.rng.Intn(bounds.Height))
	case vmath.EdgeRight:
		f.position = vmath.V(bounds.Width-1, f.rng.Intn(bounds.Height))
	}
	f.velocity = edge.Direction().Vec().Scale(f.config.SpeedMultiplier)
	f.active = true
}

// RespawnFromRandomEdge re-derives position and velocity from a random edge and reactivates
func (f *Food) RespawnFromRandomEdge(bounds vmath.Bounds) {
	f.placeAtEdge(vmath.RandomEdge(f.rng), bounds)
}

// Tick advances the food; exiting bounds respawns it immediately
func (f *Food) Tick(bounds vmath.Bounds) {
	if !f.active {
		return
	}
	ApplyMovement(f)
	if f.IsOutOfBounds(bounds) {
		f.RespawnFromRandomEdge(bounds)
	}
}

func (f *Food) Position() vmath.Vec2 {
	return f.position
}

// SetPosition places the food and reactivates it
func (f *Food) SetPosition(pos vmath.Vec2) {
	f.position = pos
	f.active = true
}

func (f *Food) Velocity() vmath.Vec2 {
	return f.velocity
}

func (f *Food) SetVelocity(vel vmath.Vec2) {
	f.velocity = vel
}

func (f *Food) IsActive() bool {
	return f.active
}

func (f *Food) Deactivate() {
	f.active = false
}

// IsValidTarget is true while the food is active
func (f *Food) IsValidTarget() bool {
	return f.active
}

// IsOutOfBounds reports whether the food left the field
func (f *Food) IsOutOfBounds(bounds vmath.Bounds) bool {
	return !bounds.Contains(f.position)
}

func (f *Food) Config() FoodConfig {
	return f.config
}

// Color is the configured draw color
func (f *Food) Color() tcell.Color {
	return f.config.Color
}

var (
	_ Moveable      = (*Food)(nil)
	_ Active        = (*Food)(nil)
	_ Targetable    = (*Food)(nil)
	_ BoundedTicker = (*Food)(nil)
)
