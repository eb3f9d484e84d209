// Package ecs provides ECS adapters for flexui's event dispatch.
//
// The primary adapter is [NewDonburiSink], which forwards every event the
// scene dispatches (mouse, wheel, keys, text input, resize) into a [Donburi]
// world as typed events. Subscribe to [EventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
