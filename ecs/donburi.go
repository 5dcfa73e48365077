// Package ecs provides ECS adapters for twine.
package ecs

import (
	"github.com/phanxgames/twine"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for tween lifecycle events.
var TweenEventType = events.NewEventType[twine.TweenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on TweenEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) twine.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTweenEvent(event twine.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}
