// Package ecs provides ECS adapters for uzu's touch tracker.
//
// The primary adapter is [NewDonburiStore], which bridges tracker output
// (touch begin, update and end) into a [Donburi] world as typed events.
// Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	tracker.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
