// Package ecs provides ECS adapters for twine's tween lifecycle events.
//
// [NewDonburiSink] forwards completed, repeated, replaced and dropped tween
// events into a [Donburi] world as typed events. Subscribe to
// [TweenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sched.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
