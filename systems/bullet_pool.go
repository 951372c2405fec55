package systems

import (
	"iter"
	"math"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/entities"
	"github.com/lixenwraith/vi-snake/vmath"
)

// DefaultBulletCapacity is the declared pool size when none is configured
const DefaultBulletCapacity = constants.BulletPoolCapacity

// BulletPool owns every live projectile
//
// Capacity is advisory: Spawn never rejects and Available reports unlimited
type BulletPool struct {
	bullets  []entities.Bullet
	capacity int
	config   entities.BulletConfig
}

// NewBulletPool creates an empty pool with the declared capacity
func NewBulletPool(capacity int) *BulletPool {
	return NewBulletPoolWithConfig(capacity, entities.DefaultBulletConfig())
}

// NewBulletPoolWithConfig creates an empty pool spawning bullets with cfg
func NewBulletPoolWithConfig(capacity int, cfg entities.BulletConfig) *BulletPool {
	return &BulletPool{
		bullets:  make([]entities.Bullet, 0, max(capacity, 0)),
		capacity: capacity,
		config:   cfg,
	}
}

// Spawn purges inactive bullets and appends a new one, always succeeding
func (p *BulletPool) Spawn(pos vmath.Vec2, dir vmath.Direction) bool {
	p.cleanup()
	p.bullets = append(p.bullets, entities.NewBulletWithConfig(pos, dir, p.config))
	return true
}

// Tick advances every bullet and drops the ones that died this step
func (p *BulletPool) Tick(bounds vmath.Bounds) {
	for i := range p.bullets {
		p.bullets[i].Tick(bounds)
	}
	p.cleanup()
}

// CheckCollisionBeforeTick tests each active bullet's current cell and the cells
// of its pending step against target
// The first bullet found is deactivated; must run before Tick
func (p *BulletPool) CheckCollisionBeforeTick(target vmath.Vec2, bounds vmath.Bounds) bool {
	for i := range p.bullets {
		b := &p.bullets[i]
		if !b.IsActive() {
			continue
		}
		if sweepAhead(b.Position(), b.Velocity(), target, bounds) {
			b.Deactivate()
			return true
		}
	}
	return false
}

// sweepAhead walks pos+sign(vel)*i for i in 1..speed, stopping at the field edge
func sweepAhead(pos, vel, target vmath.Vec2, bounds vmath.Bounds) bool {
	if pos == target {
		return true
	}
	step := vel.Signum()
	speed := vel.ChebyshevLen()
	for i := 1; i <= speed; i++ {
		cell := pos.Add(step.Scale(i))
		if !bounds.Contains(cell) {
			break
		}
		if cell == target {
			return true
		}
	}
	return false
}

// CheckCollision tests each active bullet's current cell and, for bullets faster
// than one cell per tick, the cells crossed since its previous position
// Alternate check kept alongside CheckCollisionBeforeTick; the game loop uses the latter
func (p *BulletPool) CheckCollision(target vmath.Vec2) bool {
	for i := range p.bullets {
		b := &p.bullets[i]
		if !b.IsActive() {
			continue
		}
		if sweepBehind(b.Position(), b.Velocity(), target) {
			b.Deactivate()
			return true
		}
	}
	return false
}

// sweepBehind walks prev+sign(vel)*i for i in 0..speed-1 where prev = pos-vel
func sweepBehind(pos, vel, target vmath.Vec2) bool {
	if pos == target {
		return true
	}
	speed := vel.ChebyshevLen()
	if speed <= 1 {
		return false
	}
	prev := pos.Sub(vel)
	step := vel.Signum()
	for i := 0; i < speed; i++ {
		if prev.Add(step.Scale(i)) == target {
			return true
		}
	}
	return false
}

func (p *BulletPool) cleanup() {
	n := 0
	for _, b := range p.bullets {
		if b.IsActive() {
			p.bullets[n] = b
			n++
		}
	}
	clear(p.bullets[n:])
	p.bullets = p.bullets[:n]
}

// Active returns a copy of the live bullets
func (p *BulletPool) Active() []entities.Bullet {
	out := make([]entities.Bullet, 0, len(p.bullets))
	for _, b := range p.bullets {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	return out
}

// All yields every live bullet without copying the pool
func (p *BulletPool) All() iter.Seq[*entities.Bullet] {
	return func(yield func(*entities.Bullet) bool) {
		for i := range p.bullets {
			if !p.bullets[i].IsActive() {
				continue
			}
			if !yield(&p.bullets[i]) {
				return
			}
		}
	}
}

func (p *BulletPool) ActiveCount() int {
	n := 0
	for i := range p.bullets {
		if p.bullets[i].IsActive() {
			n++
		}
	}
	return n
}

// Capacity returns the declared, unenforced capacity
func (p *BulletPool) Capacity() int {
	return p.capacity
}

// Available always reports unlimited room
func (p *BulletPool) Available() int {
	return math.MaxInt
}

// Clear drops every bullet
func (p *BulletPool) Clear() {
	clear(p.bullets)
	p.bullets = p.bullets[:0]
}
