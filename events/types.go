package events

// EventType represents the type of game event
type EventType int

const (
	// EventFoodCollected signals the food was eaten or shot
	// Trigger: Game.MoveSnake onto food, bullet sweep hit in Game.Tick
	// Consumer: audio, status | Payload: FoodCollectedPayload
	EventFoodCollected EventType = iota

	// EventBulletFired signals a successful fire
	// Trigger: Game.Fire | Payload: BulletFiredPayload
	EventBulletFired

	// EventSnakeDied signals the transition to Dead
	// Trigger: Game.MoveSnake wall or self collision
	// Consumer: audio, status, snapshot | Payload: SnakeDiedPayload
	EventSnakeDied

	// EventSnakeDamaged signals moving food struck the snake body
	// Trigger: Game.Tick food-vs-body check | Payload: SnakeDamagedPayload
	EventSnakeDamaged

	// EventGamePaused and EventGameResumed follow Game.TogglePause
	// Payload: nil
	EventGamePaused
	EventGameResumed

	// EventGameRestarted signals a fresh game after Game.Restart
	// Consumer: status (session), logging | Payload: nil
	EventGameRestarted

	eventTypeCount
)

// GameEvent is one observed simulation fact
// Tick is the game tick counter at the time of the push
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := GetEventName(t); ok {
		return name
	}
	return "Unknown"
}

// AllEventTypes lists every defined event type in declaration order
func AllEventTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
