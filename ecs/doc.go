// Package ecs provides [Donburi] adapters for the cursor.
//
// [World] stores entity positions and overlap shapes in Donburi components
// and implements cursor.PositionStore, cursor.Receiver and
// cursor.OverlapFeed. Delivered events are published as [TargetEventType];
// the owner mirror created by [NewOwner] publishes [OwnerEventType]. Subscribe
// to them in your ECS systems and drain them with ProcessEvents.
//
// Usage:
//
//	w := ecs.NewWorld(donburi.NewWorld())
//	id := w.Spawn(cursor.Vec2{X: 100, Y: 100}, "cards", cursor.HitRect{Width: 60, Height: 80}, 1)
//
//	cur, _ := cursor.New(cfg, w)
//	cur.SetPositionStore(w)
//	cur.SetOverlapFeed(w)
//	cur.SetOwner(ecs.NewOwner(w.Donburi()))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
