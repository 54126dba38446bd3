package ecs

import (
	"github.com/phanxgames/uzu"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for uzu touch tracker events.
var InputEventType = events.NewEventType[uzu.InputEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Tracker events are published to InputEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) uzu.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event uzu.InputEvent) {
	InputEventType.Publish(s.world, event)
}
