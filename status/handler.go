package status

import "github.com/lixenwraith/vi-snake/events"

// EventCounter turns routed game events into counters
type EventCounter[T any] struct {
	reg *Registry
}

func NewEventCounter[T any](reg *Registry) *EventCounter[T] {
	return &EventCounter[T]{reg: reg}
}

func (c *EventCounter[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodCollected,
		events.EventBulletFired,
		events.EventSnakeDamaged,
		events.EventSnakeDied,
		events.EventGameRestarted,
	}
}

func (c *EventCounter[T]) HandleEvent(_ T, ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodCollected:
		if p, ok := ev.Payload.(events.FoodCollectedPayload); ok && p.ByBullet {
			c.reg.Inc(MetricFoodShot)
		} else {
			c.reg.Inc(MetricFoodEaten)
		}
	case events.EventBulletFired:
		c.reg.Inc(MetricBulletsFired)
	case events.EventSnakeDamaged:
		c.reg.Inc(MetricSnakeDamaged)
		if p, ok := ev.Payload.(events.SnakeDamagedPayload); ok {
			c.reg.Counter(MetricSegmentsLost).Add(int64(p.SegmentsLost))
		}
	case events.EventSnakeDied:
		c.reg.Inc(MetricDeaths)
	case events.EventGameRestarted:
		c.reg.Inc(MetricRestarts)
	}
}
