package events

import (
	"fmt"
	"log"
)

// LogHandler writes every routed event to a logger
type LogHandler[T any] struct {
	logger *log.Logger
}

// NewLogHandler logs through l, or the standard logger when l is nil
func NewLogHandler[T any](l *log.Logger) *LogHandler[T] {
	if l == nil {
		l = log.Default()
	}
	return &LogHandler[T]{logger: l}
}

func (h *LogHandler[T]) EventTypes() []EventType {
	return AllEventTypes()
}

func (h *LogHandler[T]) HandleEvent(_ T, ev GameEvent) {
	h.logger.Printf("[EVENT] tick=%d %s", ev.Tick, Describe(ev))
}

// Describe renders an event with its payload on one line
func Describe(ev GameEvent) string {
	switch p := ev.Payload.(type) {
	case FoodCollectedPayload:
		return fmt.Sprintf("%s pos=%v bullet=%t", ev.Type, p.Position, p.ByBullet)
	case BulletFiredPayload:
		return fmt.Sprintf("%s pos=%v dir=%v", ev.Type, p.Position, p.Direction)
	case SnakeDiedPayload:
		return fmt.Sprintf("%s cause=%v", ev.Type, p.Cause)
	case SnakeDamagedPayload:
		return fmt.Sprintf("%s pos=%v lost=%d", ev.Type, p.Position, p.SegmentsLost)
	default:
		return ev.Type.String()
	}
}
