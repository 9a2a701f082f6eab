// Package ecs bridges the lizard's per-frame poses into a [Donburi] world.
//
// [NewDonburiSink] returns a PoseSink that keeps a creature entity's
// [PoseComponent] current and publishes typed events. Subscribe to
// [PoseEventType] or [StateChangeEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	sink := ecs.NewDonburiSink(world)
//	err := render.Run(render.RunConfig{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
