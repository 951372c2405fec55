package events

import (
	"reflect"
	"strings"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

func init() {
	RegisterType("FoodCollected", EventFoodCollected, FoodCollectedPayload{})
	RegisterType("BulletFired", EventBulletFired, BulletFiredPayload{})
	RegisterType("SnakeDied", EventSnakeDied, SnakeDiedPayload{})
	RegisterType("SnakeDamaged", EventSnakeDamaged, SnakeDamagedPayload{})
	RegisterType("GamePaused", EventGamePaused, nil)
	RegisterType("GameResumed", EventGameResumed, nil)
	RegisterType("GameRestarted", EventGameRestarted, nil)
}

// RegisterType maps a name to an EventType and its payload struct type
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the registered name for an EventType
func GetEventName(et EventType) (string, bool) {
	name, ok := typeToName[et]
	return name, ok
}

// PayloadType returns the payload struct type, false for events without payload
func PayloadType(et EventType) (reflect.Type, bool) {
	t, ok := typeToPayload[et]
	return t, ok
}
