// Package ecs provides ECS adapters for flexui.
package ecs

import (
	"github.com/phanxgames/flexui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for flexui input events.
// Subscribe to this in your ECS systems to receive pointer, wheel, key and
// resize events after the widget tree has seen them.
var EventType = events.NewEventType[flexui.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to EventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) flexui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event flexui.Event) {
	EventType.Publish(s.world, event)
}
