// Package ecs provides ECS adapters for thicket.
package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for thicket widget events.
// Subscribe to this in your ECS systems to receive clicks, drags, keys and
// focus changes.
var WidgetEventType = events.NewEventType[thicket.WidgetEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Widget events are published to WidgetEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) thicket.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event thicket.WidgetEvent) {
	WidgetEventType.Publish(s.world, event)
}
