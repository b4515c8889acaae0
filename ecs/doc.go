// Package ecs provides ECS adapters for glide's tween lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges glide tween events
// (started, finished, skipped) into a [Donburi] world as typed events.
// Subscribe to [TweenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.Animator().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
