package events

import "github.com/lixenwraith/vi-snake/vmath"

// DeathCause tells why the snake died
type DeathCause uint8

const (
	DeathHitWall DeathCause = iota
	DeathHitSelf
)

func (c DeathCause) String() string {
	if c == DeathHitSelf {
		return "HitSelf"
	}
	return "HitWall"
}

// FoodCollectedPayload carries where the food was taken and how
type FoodCollectedPayload struct {
	Position vmath.Vec2
	ByBullet bool
}

// BulletFiredPayload carries the spawn cell and heading
type BulletFiredPayload struct {
	Position  vmath.Vec2
	Direction vmath.Direction
}

type SnakeDiedPayload struct {
	Cause DeathCause
}

// SnakeDamagedPayload carries the struck cell and the trailing segments removed
type SnakeDamagedPayload struct {
	Position     vmath.Vec2
	SegmentsLost int
}

func FoodCollected(pos vmath.Vec2, byBullet bool) GameEvent {
	return GameEvent{Type: EventFoodCollected, Payload: FoodCollectedPayload{Position: pos, ByBullet: byBullet}}
}

func BulletFired(pos vmath.Vec2, dir vmath.Direction) GameEvent {
	return GameEvent{Type: EventBulletFired, Payload: BulletFiredPayload{Position: pos, Direction: dir}}
}

func SnakeDied(cause DeathCause) GameEvent {
	return GameEvent{Type: EventSnakeDied, Payload: SnakeDiedPayload{Cause: cause}}
}

func SnakeDamaged(pos vmath.Vec2, lost int) GameEvent {
	return GameEvent{Type: EventSnakeDamaged, Payload: SnakeDamagedPayload{Position: pos, SegmentsLost: lost}}
}

func GamePaused() GameEvent {
	return GameEvent{Type: EventGamePaused}
}

func GameResumed() GameEvent {
	return GameEvent{Type: EventGameResumed}
}

func GameRestarted() GameEvent {
	return GameEvent{Type: EventGameRestarted}
}
