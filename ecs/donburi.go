package ecs

import (
	"github.com/phanxgames/glide"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for glide tween lifecycle events.
// Subscribe to this in your ECS systems to react when tweens start, finish,
// or skip a target.
var TweenEventType = events.NewEventType[glide.TweenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Tween events are published to TweenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) glide.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event glide.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}
