package audio

import "github.com/lixenwraith/vi-snake/events"

// EventHandler plays a sound for each gameplay event it is routed
type EventHandler[T any] struct {
	player Player
}

func NewEventHandler[T any](p Player) *EventHandler[T] {
	return &EventHandler[T]{player: p}
}

func (h *EventHandler[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodCollected,
		events.EventBulletFired,
		events.EventSnakeDied,
		events.EventSnakeDamaged,
	}
}

func (h *EventHandler[T]) HandleEvent(_ T, ev events.GameEvent) {
	if st, ok := SoundFor(ev); ok {
		h.player.Play(st)
	}
}

// SoundFor maps an event to its effect
func SoundFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventFoodCollected:
		if p, ok := ev.Payload.(events.FoodCollectedPayload); ok && p.ByBullet {
			return SoundCoin, true
		}
		return SoundBell, true
	case events.EventBulletFired:
		return SoundWhoosh, true
	case events.EventSnakeDied:
		return SoundError, true
	case events.EventSnakeDamaged:
		return SoundThud, true
	}
	return 0, false
}
