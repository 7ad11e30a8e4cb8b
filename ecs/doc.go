// Package ecs bridges textbind bindings into a [Donburi] world.
//
// [NewEventSink] returns a TextSink that publishes a [TextChanged] event
// whenever the text it holds changes. Subscribe to [TextChangedEvent] in
// your ECS systems to react to formatted HUD text without polling:
//
//	sink := ecs.NewEventSink(world, "score")
//	b := textbind.NewBinding("Score: {0}", score)
//	b.Sink = sink
//	_ = b.Bind(scene.Scheduler())
//
//	ecs.TextChangedEvent.Subscribe(world, func(w donburi.World, e ecs.TextChanged) {
//		...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
