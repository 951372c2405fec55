package entities

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/vmath"
)

// BulletConfig sets projectile speed and lifetime
type BulletConfig struct {
	MaxLifetime int
	Speed       int
}

// DefaultBulletConfig travels two cells per tick for fifty ticks
func DefaultBulletConfig() BulletConfig {
	return BulletConfig{MaxLifetime: constants.BulletMaxLifetime, Speed: constants.BulletSpeed}
}

// Bullet is a short-lived projectile moving in a straight line
type Bullet struct {
	position    vmath.Vec2
	velocity    vmath.Vec2
	active      bool
	lifetime    int
	maxLifetime int
}

// NewBullet fires from pos along dir with the default config
func NewBullet(pos vmath.Vec2, dir vmath.Direction) Bullet {
	return NewBulletWithConfig(pos, dir, DefaultBulletConfig())
}

// NewBulletWithConfig fires from pos along dir
func NewBulletWithConfig(pos vmath.Vec2, dir vmath.Direction, cfg BulletConfig) Bullet {
	return Bullet{
		position:    pos,
		velocity:    dir.Vec().Scale(cfg.Speed),
		active:      true,
		lifetime:    cfg.MaxLifetime,
		maxLifetime: cfg.MaxLifetime,
	}
}

// Tick spends one tick of lifetime, then moves unless the next cell is outside bounds
func (b *Bullet) Tick(bounds vmath.Bounds) {
	if !b.IsActive() {
		return
	}

	b.lifetime--
	if b.lifetime <= 0 {
		b.active = false
		return
	}

	next := b.position.Add(b.velocity)
	if !bounds.Contains(next) {
		b.active = false
		return
	}
	b.position = next
}

// IsActive is true while the active flag is set and lifetime remains
func (b *Bullet) IsActive() bool {
	return b.active && b.lifetime > 0
}

func (b *Bullet) Deactivate() {
	b.active = false
}

func (b *Bullet) Lifetime() int {
	return b.lifetime
}

func (b *Bullet) MaxLifetime() int {
	return b.maxLifetime
}

// LifetimeFraction is remaining/max in [0,1], 0 when max is 0
func (b *Bullet) LifetimeFraction() float64 {
	if b.maxLifetime <= 0 {
		return 0
	}
	return float64(b.lifetime) / float64(b.maxLifetime)
}

func (b *Bullet) Position() vmath.Vec2 {
	return b.position
}

func (b *Bullet) SetPosition(pos vmath.Vec2) {
	b.position = pos
}

func (b *Bullet) Velocity() vmath.Vec2 {
	return b.velocity
}

func (b *Bullet) SetVelocity(vel vmath.Vec2) {
	b.velocity = vel
}

var (
	_ Moveable      = (*Bullet)(nil)
	_ Active        = (*Bullet)(nil)
	_ BoundedTicker = (*Bullet)(nil)
)
