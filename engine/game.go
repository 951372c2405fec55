package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/entities"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/systems"
	"github.com/lixenwraith/vi-snake/vmath"
)

// maxFoodSpawnAttempts bounds the retry loop that keeps food off the snake
// A board fully covered by the snake would otherwise never terminate
const maxFoodSpawnAttempts = 256

// Game owns one simulation: snake, food, bullets, scope and the event ring
// Not safe for concurrent use; the driver calls methods sequentially
type Game struct {
	snake   *entities.Snake
	food    *entities.Food
	bullets *systems.BulletPool
	scope   *systems.Scope
	events  *events.EventQueue

	state  GameState
	score  uint32
	config GameConfig
	rng    vmath.RNG

	bulletCooldown int
	tickCount      uint64

	pending *GameConfig // Applied at next Restart
}

// NewGame creates a game with default settings, clamping to at least 1x1
func NewGame(width, height int) *Game {
	cfg := DefaultGameConfig(max(width, 1), max(height, 1))
	return newGame(cfg, cfg.newRand())
}

// NewGameWithConfig validates cfg and creates a game
func NewGameWithConfig(cfg GameConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return newGame(cfg, cfg.newRand()), nil
}

func newGame(cfg GameConfig, rng vmath.RNG) *Game {
	g := &Game{
		events: events.NewEventQueue(cfg.EventCapacity),
		config: cfg,
		rng:    rng,
	}
	g.reset()
	return g
}

// reset rebuilds every entity from config, keeping the event queue
func (g *Game) reset() {
	g.snake = entities.NewSnake(g.config.Bounds.Center())
	g.bullets = systems.NewBulletPool(g.config.BulletCapacity)
	g.scope = systems.NewScope()
	g.state = StatePlaying
	g.score = 0
	g.bulletCooldown = 0
	g.tickCount = 0

	g.spawnFood()
	g.updateScope()
}

// spawnFood replaces the food with a fresh edge spawn not on the snake
func (g *Game) spawnFood() {
	cfg := entities.DefaultFoodConfig()
	var food *entities.Food
	for range maxFoodSpawnAttempts {
		food = entities.SpawnFoodAtRandomEdge(g.config.Bounds, cfg, g.rng)
		if !g.snake.ContainsPosition(food.Position()) {
			break
		}
	}
	g.food = food
}

func (g *Game) updateScope() {
	g.scope.Update(g.snake.Head(), g.snake.Direction(), g.food.Position(), g.config.Bounds)
}

func (g *Game) push(ev events.GameEvent) {
	ev.Tick = g.tickCount
	g.events.Push(ev)
}

// Tick advances food and bullets one step and resolves their collisions
// The snake does not move here; see MoveSnake
func (g *Game) Tick() {
	if !g.state.IsActive() {
		return
	}
	g.tickCount++

	if g.bulletCooldown > 0 {
		g.bulletCooldown--
	}

	g.food.Tick(g.config.Bounds)
	g.checkFoodSnakeCollision()
	g.checkBulletFoodCollision()
	g.bullets.Tick(g.config.Bounds)
	g.updateScope()
}

// checkFoodSnakeCollision handles food drifting into the snake
// Head contact counts as eating; body contact truncates the snake and respawns food
func (g *Game) checkFoodSnakeCollision() {
	pos := g.food.Position()
	if pos == g.snake.Head() {
		g.collectFood(false)
		return
	}
	if damage, hit := g.snake.DamageAtPosition(pos); hit {
		if damage.IsSignificant() {
			g.push(events.SnakeDamaged(pos, damage.SegmentsLost))
		}
		g.spawnFood()
	}
}

func (g *Game) checkBulletFoodCollision() {
	if g.bullets.CheckCollisionBeforeTick(g.food.Position(), g.config.Bounds) {
		g.collectFood(true)
	}
}

func (g *Game) collectFood(byBullet bool) {
	g.score++
	g.snake.Grow()
	g.push(events.FoodCollected(g.food.Position(), byBullet))
	g.spawnFood()
}

// MoveSnake advances the snake one cell
// Reaching the food collects it; a wall or self hit ends the game
func (g *Game) MoveSnake() {
	if !g.state.IsActive() {
		return
	}

	result := g.snake.Tick(g.config.Bounds)
	switch result.Kind {
	case entities.MoveMoved:
		if result.Position == g.food.Position() {
			g.collectFood(false)
		}
	case entities.MoveHitWall:
		g.state = StateDead
		g.push(events.SnakeDied(events.DeathHitWall))
	case entities.MoveHitSelf:
		g.state = StateDead
		g.push(events.SnakeDied(events.DeathHitSelf))
	}

	g.updateScope()
}

// SetDirection buffers a turn for the next move
func (g *Game) SetDirection(dir vmath.Direction) {
	g.snake.SetDirection(dir)
}

// Fire spawns a bullet one cell ahead of the head
// Fails while not Playing, on cooldown, or when that cell is off the board
func (g *Game) Fire() bool {
	if !g.CanFire() {
		return false
	}

	dir := g.snake.Direction()
	spawn := g.snake.Head().Add(dir.Vec())
	if !g.config.Bounds.Contains(spawn) {
		return false
	}

	if !g.bullets.Spawn(spawn, dir) {
		return false
	}
	g.bulletCooldown = g.config.BulletCooldown
	g.push(events.BulletFired(spawn, dir))
	return true
}

// CanFire reports whether Fire would pass the state and cooldown checks
func (g *Game) CanFire() bool {
	return g.state.IsActive() && g.bulletCooldown == 0
}

// TogglePause flips Playing and Paused; Dead is unaffected
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		g.push(events.GamePaused())
	case StatePaused:
		g.state = StatePlaying
		g.push(events.GameResumed())
	}
}

// Restart rebuilds the game with the same bounds
// Settings staged by ApplyConfig take effect here; unread events are kept
func (g *Game) Restart() {
	if g.pending != nil {
		next := *g.pending
		next.Bounds = g.config.Bounds
		g.pending = nil
		if next.EventCapacity != g.config.EventCapacity {
			g.resizeEvents(next.EventCapacity)
		}
		if next.Seed != g.config.Seed && next.Seed != 0 {
			g.rng = vmath.NewFastRand(next.Seed)
		}
		g.config = next
	}

	g.reset()
	g.push(events.GameRestarted())
}

func (g *Game) resizeEvents(capacity int) {
	q := events.NewEventQueue(capacity)
	for ev := range g.events.Drain() {
		q.Push(ev)
	}
	g.events = q
}

// ApplyConfig stages bullet, event and seed settings for the next Restart
// Bounds are ignored; the board only changes by building a new game
func (g *Game) ApplyConfig(cfg GameConfig) error {
	cfg.Bounds = g.config.Bounds
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	g.pending = &cfg
	return nil
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Score() uint32 {
	return g.score
}

// Bounds returns (width, height)
func (g *Game) Bounds() (int, int) {
	return g.config.Bounds.Width, g.config.Bounds.Height
}

func (g *Game) Board() vmath.Bounds {
	return g.config.Bounds
}

func (g *Game) Config() GameConfig {
	return g.config
}

func (g *Game) Snake() *entities.Snake {
	return g.snake
}

func (g *Game) Food() *entities.Food {
	return g.food
}

func (g *Game) Bullets() *systems.BulletPool {
	return g.bullets
}

func (g *Game) Scope() *systems.Scope {
	return g.scope
}

func (g *Game) IsScopeAligned() bool {
	return g.scope.IsAligned()
}

// Events exposes the queue so the driver can drain it
func (g *Game) Events() *events.EventQueue {
	return g.events
}

// BulletCooldown returns the ticks left before the next shot
func (g *Game) BulletCooldown() int {
	return g.bulletCooldown
}

// TickCount returns Tick calls since the last (re)start
func (g *Game) TickCount() uint64 {
	return g.tickCount
}
