// Package ecs provides ECS adapters for thicket's widget events.
//
// The primary adapter is [NewDonburiSink], which bridges widget events
// (press, drag, click, key, focus) into a [Donburi] world as typed events.
// Subscribe to [WidgetEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	gui.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
