package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/vmath"
)

// newTestGame builds a game whose food always spawns at (0,0) moving down
func newTestGame(t *testing.T, width, height int) *Game {
	t.Helper()
	g, err := NewBuilder().WithBounds(width, height).WithRand(vmath.NewSequenceRand(0, 0)).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

// pinFood parks the food at pos with the given velocity
func pinFood(g *Game, pos, vel vmath.Vec2) {
	g.Food().SetPosition(pos)
	g.Food().SetVelocity(vel)
}

func drainTypes(g *Game) []events.EventType {
	var out []events.EventType
	for ev := range g.Events().Drain() {
		out = append(out, ev.Type)
	}
	return out
}

func findEvent(evs []events.GameEvent, et events.EventType) (events.GameEvent, bool) {
	for _, ev := range evs {
		if ev.Type == et {
			return ev, true
		}
	}
	return events.GameEvent{}, false
}

func TestNewGame(t *testing.T) {
	g := NewGame(20, 15)

	if g.State() != StatePlaying {
		t.Errorf("Expected Playing, got %v", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if w, h := g.Bounds(); w != 20 || h != 15 {
		t.Errorf("Expected bounds (20,15), got (%d,%d)", w, h)
	}
	if g.Snake().Head() != vmath.V(10, 7) {
		t.Errorf("Expected snake at center (10,7), got %v", g.Snake().Head())
	}
	if g.Snake().ContainsPosition(g.Food().Position()) {
		t.Error("Food spawned on the snake")
	}
	if !g.Board().Contains(g.Food().Position()) {
		t.Errorf("Food spawned off board at %v", g.Food().Position())
	}
}

func TestNewGameClampsBounds(t *testing.T) {
	g := NewGame(0, -3)
	if w, h := g.Bounds(); w != 1 || h != 1 {
		t.Errorf("Expected clamped 1x1, got %dx%d", w, h)
	}
	// Food cannot avoid the only cell; construction must still terminate
	if g.State() != StatePlaying {
		t.Errorf("Expected Playing, got %v", g.State())
	}
}

func TestBuilderValidation(t *testing.T) {
	if _, err := NewBuilder().Build(); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Expected ErrInvalidBounds without bounds, got %v", err)
	}
	if _, err := NewBuilder().WithBounds(10, 10).WithBulletCapacity(0).Build(); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Expected ErrInvalidCapacity, got %v", err)
	}
	if _, err := NewBuilder().WithBounds(10, 10).WithEventCapacity(-1).Build(); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Expected ErrInvalidCapacity, got %v", err)
	}
	if _, err := NewBuilder().WithBounds(10, 10).WithBulletCooldown(-1).Build(); !errors.Is(err, ErrInvalidCooldown) {
		t.Errorf("Expected ErrInvalidCooldown, got %v", err)
	}
	if _, err := NewGameWithConfig(DefaultGameConfig(0, 4)); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Expected wrapped ErrInvalidBounds, got %v", err)
	}
	if _, err := NewBuilder().Build(); err == nil || !strings.HasPrefix(err.Error(), "build game: ") {
		t.Errorf("Expected build error prefixed with operation, got %v", err)
	}

	g, err := NewBuilder().WithBounds(30, 10).WithBulletCapacity(4).WithEventCapacity(8).WithBulletCooldown(1).WithSeed(5).Build()
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if g.Bullets().Capacity() != 4 || g.Events().Capacity() != 8 || g.Config().BulletCooldown != 1 {
		t.Errorf("Builder overrides not applied: %+v", g.Config())
	}
}

func TestFireAndCooldown(t *testing.T) {
	g := NewGame(20, 15)

	if !g.Fire() {
		t.Fatal("Expected first fire to succeed")
	}
	if g.Bullets().ActiveCount() != 1 {
		t.Errorf("Expected 1 active bullet, got %d", g.Bullets().ActiveCount())
	}
	if g.Fire() {
		t.Error("Expected second immediate fire to fail on cooldown")
	}
	if g.CanFire() {
		t.Error("Expected CanFire false on cooldown")
	}

	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if g.State() != StatePlaying {
		t.Fatalf("Unexpected state %v", g.State())
	}
	if !g.Fire() {
		t.Error("Expected fire to succeed after cooldown")
	}
}

func TestFireEvent(t *testing.T) {
	g := newTestGame(t, 20, 15)
	g.Fire()

	evs := g.Events().Consume()
	ev, ok := findEvent(evs, events.EventBulletFired)
	if !ok {
		t.Fatal("Expected BulletFired event")
	}
	p := ev.Payload.(events.BulletFiredPayload)
	if p.Position != vmath.V(11, 7) || p.Direction != vmath.DirRight {
		t.Errorf("Unexpected payload %+v", p)
	}
}

func TestFireRefusedAtWall(t *testing.T) {
	g := newTestGame(t, 20, 15)
	for i := 0; i < 9; i++ {
		g.MoveSnake()
	}
	if g.Snake().Head() != vmath.V(19, 7) {
		t.Fatalf("Expected head at (19,7), got %v", g.Snake().Head())
	}
	if g.Fire() {
		t.Error("Expected fire into the wall to fail")
	}
	if !g.CanFire() {
		t.Error("A refused shot must not start the cooldown")
	}
}

func TestFireRefusedWhenNotPlaying(t *testing.T) {
	g := newTestGame(t, 20, 15)
	g.TogglePause()
	if g.Fire() {
		t.Error("Expected fire to fail while paused")
	}
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(t, 20, 15)
	for i := 0; i < 9; i++ {
		g.MoveSnake()
	}
	g.Events().Clear()

	g.MoveSnake()
	if g.State() != StateDead {
		t.Fatalf("Expected Dead, got %v", g.State())
	}
	ev, ok := findEvent(g.Events().Consume(), events.EventSnakeDied)
	if !ok {
		t.Fatal("Expected SnakeDied event")
	}
	if cause := ev.Payload.(events.SnakeDiedPayload).Cause; cause != events.DeathHitWall {
		t.Errorf("Expected HitWall, got %v", cause)
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 20, 15)
	for i := 0; i < 4; i++ {
		g.Snake().Grow()
	}
	for i := 0; i < 4; i++ {
		g.MoveSnake()
	}
	if g.Snake().Length() != 5 {
		t.Fatalf("Expected length 5, got %d", g.Snake().Length())
	}

	for _, d := range []vmath.Direction{vmath.DirDown, vmath.DirLeft, vmath.DirUp} {
		g.SetDirection(d)
		g.MoveSnake()
	}

	if g.State() != StateDead {
		t.Fatalf("Expected Dead, got %v", g.State())
	}
	ev, ok := findEvent(g.Events().Consume(), events.EventSnakeDied)
	if !ok {
		t.Fatal("Expected SnakeDied event")
	}
	if cause := ev.Payload.(events.SnakeDiedPayload).Cause; cause != events.DeathHitSelf {
		t.Errorf("Expected HitSelf, got %v", cause)
	}

	// Dead is terminal for every mutating call
	head := g.Snake().Head()
	g.MoveSnake()
	g.Tick()
	g.TogglePause()
	if g.State() != StateDead || g.Snake().Head() != head {
		t.Error("Dead game must not change until restart")
	}
}

func TestMoveOntoFood(t *testing.T) {
	g := newTestGame(t, 20, 15)
	pinFood(g, vmath.V(11, 7), vmath.Zero())

	g.MoveSnake()
	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
	if g.Snake().GrowPending() != 1 {
		t.Errorf("Expected one pending growth, got %d", g.Snake().GrowPending())
	}
	if g.Food().Position() != vmath.V(0, 0) {
		t.Errorf("Expected food respawned at (0,0), got %v", g.Food().Position())
	}
	ev, ok := findEvent(g.Events().Consume(), events.EventFoodCollected)
	if !ok || ev.Payload.(events.FoodCollectedPayload).ByBullet {
		t.Error("Expected FoodCollected not by bullet")
	}

	g.MoveSnake()
	if g.Snake().Length() != 2 {
		t.Errorf("Expected length 2 after next move, got %d", g.Snake().Length())
	}
}

func TestFoodDriftsIntoHead(t *testing.T) {
	g := newTestGame(t, 20, 15)
	pinFood(g, vmath.V(10, 6), vmath.V(0, 1))

	g.Tick()
	if g.Score() != 1 {
		t.Errorf("Expected food drifting into head to count, score %d", g.Score())
	}
}

func TestFoodDamagesBody(t *testing.T) {
	g := newTestGame(t, 20, 15)
	for i := 0; i < 4; i++ {
		g.Snake().Grow()
		g.MoveSnake()
	}
	// Segments (14,7) (13,7) (12,7) (11,7) (10,7)
	g.Events().Clear()
	pinFood(g, vmath.V(12, 6), vmath.V(0, 1))

	g.Tick()
	if g.Snake().Length() != 3 {
		t.Errorf("Expected length 3 after body hit, got %d", g.Snake().Length())
	}
	if g.Score() != 0 {
		t.Errorf("Body hit must not score, got %d", g.Score())
	}
	ev, ok := findEvent(g.Events().Consume(), events.EventSnakeDamaged)
	if !ok {
		t.Fatal("Expected SnakeDamaged event")
	}
	p := ev.Payload.(events.SnakeDamagedPayload)
	if p.Position != vmath.V(12, 7) || p.SegmentsLost != 2 {
		t.Errorf("Unexpected payload %+v", p)
	}
	if g.Food().Position() != vmath.V(0, 0) {
		t.Errorf("Expected food respawned, got %v", g.Food().Position())
	}
}

func TestBulletShootsFood(t *testing.T) {
	g := newTestGame(t, 20, 15)
	pinFood(g, vmath.V(15, 7), vmath.Zero())

	if !g.Fire() {
		t.Fatal("Expected fire to succeed")
	}
	g.Events().Clear()

	g.Tick()
	if g.Score() != 0 {
		t.Fatalf("Expected no hit on first tick, score %d", g.Score())
	}
	g.Tick()
	if g.Score() != 1 {
		t.Fatalf("Expected bullet to collect food, score %d", g.Score())
	}
	if g.Bullets().ActiveCount() != 0 {
		t.Errorf("Expected bullet consumed, %d active", g.Bullets().ActiveCount())
	}
	ev, ok := findEvent(g.Events().Consume(), events.EventFoodCollected)
	if !ok || !ev.Payload.(events.FoodCollectedPayload).ByBullet {
		t.Error("Expected FoodCollected by bullet")
	}
	if g.Snake().GrowPending() != 1 {
		t.Error("Expected shot food to grow the snake")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 20, 15)
	g.Events().Clear()

	g.TogglePause()
	if g.State() != StatePaused {
		t.Fatalf("Expected Paused, got %v", g.State())
	}
	food := g.Food().Position()
	head := g.Snake().Head()
	g.Tick()
	g.MoveSnake()
	if g.Food().Position() != food || g.Snake().Head() != head {
		t.Error("Paused game must not advance")
	}

	g.TogglePause()
	if g.State() != StatePlaying {
		t.Errorf("Expected Playing, got %v", g.State())
	}

	types := drainTypes(g)
	if len(types) != 2 || types[0] != events.EventGamePaused || types[1] != events.EventGameResumed {
		t.Errorf("Expected [GamePaused GameResumed], got %v", types)
	}
}

func TestRestart(t *testing.T) {
	g, err := NewBuilder().WithBounds(20, 15).WithBulletCapacity(7).WithBulletCooldown(5).
		WithRand(vmath.NewSequenceRand(0, 0)).Build()
	if err != nil {
		t.Fatal(err)
	}
	pinFood(g, vmath.V(11, 7), vmath.Zero())
	g.MoveSnake()
	for i := 0; i < 10; i++ {
		g.MoveSnake()
	}
	if g.State() != StateDead || g.Score() != 1 {
		t.Fatalf("Setup failed: state %v score %d", g.State(), g.Score())
	}
	g.Events().Clear()

	g.Restart()
	if g.State() != StatePlaying || g.Score() != 0 {
		t.Errorf("Expected fresh Playing game, got %v score %d", g.State(), g.Score())
	}
	if w, h := g.Bounds(); w != 20 || h != 15 {
		t.Errorf("Expected bounds preserved, got (%d,%d)", w, h)
	}
	if g.Bullets().Capacity() != 7 {
		t.Errorf("Expected bullet capacity 7, got %d", g.Bullets().Capacity())
	}
	if g.Snake().Length() != 1 || g.Snake().Head() != vmath.V(10, 7) {
		t.Error("Expected a fresh snake at center")
	}

	g.Fire()
	if g.BulletCooldown() != 5 {
		t.Errorf("Expected cooldown 5 preserved, got %d", g.BulletCooldown())
	}

	types := drainTypes(g)
	if len(types) == 0 || types[0] != events.EventGameRestarted {
		t.Errorf("Expected GameRestarted first, got %v", types)
	}
}

func TestApplyConfigAtRestart(t *testing.T) {
	g := newTestGame(t, 20, 15)

	cfg := DefaultGameConfig(99, 99)
	cfg.BulletCooldown = 9
	cfg.EventCapacity = 4
	if err := g.ApplyConfig(cfg); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	g.Fire()
	if g.BulletCooldown() != 3 {
		t.Errorf("Running game must keep cooldown 3, got %d", g.BulletCooldown())
	}

	g.Restart()
	if w, h := g.Bounds(); w != 20 || h != 15 {
		t.Errorf("Bounds must not change on ApplyConfig, got (%d,%d)", w, h)
	}
	if g.Events().Capacity() != 4 {
		t.Errorf("Expected event capacity 4, got %d", g.Events().Capacity())
	}
	g.Fire()
	if g.BulletCooldown() != 9 {
		t.Errorf("Expected cooldown 9 after restart, got %d", g.BulletCooldown())
	}

	bad := DefaultGameConfig(20, 15)
	bad.BulletCapacity = 0
	if err := g.ApplyConfig(bad); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Expected ErrInvalidCapacity, got %v", err)
	}
}

func TestScopeTracksSnakeAndFood(t *testing.T) {
	g := newTestGame(t, 20, 15)
	pinFood(g, vmath.V(16, 7), vmath.Zero())
	g.Tick()
	if !g.IsScopeAligned() {
		t.Error("Expected scope aligned with food ahead on the same row")
	}

	g.SetDirection(vmath.DirUp)
	g.MoveSnake()
	if g.IsScopeAligned() {
		t.Error("Expected scope unaligned after turning away")
	}
	if g.Scope().Origin() != g.Snake().Head() {
		t.Error("Expected scope origin to follow the head")
	}
}

func TestEventTickStamp(t *testing.T) {
	g := newTestGame(t, 20, 15)
	g.Tick()
	g.Tick()
	g.Fire()
	ev, ok := g.Events().Peek()
	if !ok || ev.Tick != 2 {
		t.Errorf("Expected event stamped with tick 2, got %d", ev.Tick)
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	rng := vmath.NewFastRand(1234)
	dirs := []vmath.Direction{vmath.DirUp, vmath.DirDown, vmath.DirLeft, vmath.DirRight}

	for run := 0; run < 10; run++ {
		g, err := NewBuilder().WithBounds(16, 10).WithSeed(uint64(run + 1)).Build()
		if err != nil {
			t.Fatal(err)
		}

		for step := 0; step < 500; step++ {
			switch rng.Intn(6) {
			case 0:
				g.SetDirection(dirs[rng.Intn(len(dirs))])
			case 1:
				g.Fire()
			}

			g.Tick()
			if !g.Board().Contains(g.Food().Position()) {
				t.Fatalf("Food out of bounds at %v", g.Food().Position())
			}
			g.MoveSnake()

			if g.Snake().Length() < 1 {
				t.Fatal("Snake length below 1")
			}
			seen := make(map[vmath.Vec2]bool)
			for _, p := range g.Snake().Segments() {
				if seen[p] {
					t.Fatalf("Duplicate snake cell %v", p)
				}
				seen[p] = true
			}

			if g.State().IsDead() {
				g.Restart()
			}
		}
	}
}
