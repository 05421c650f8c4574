package ecs

import (
	"github.com/phanxgames/cursor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractiveData makes an entity pickable by the cursor.
type InteractiveData struct {
	Group string
	Shape cursor.HitShape
	Depth float64
}

// Position is the world position of an entity.
var Position = donburi.NewComponentType[cursor.Vec2]()

// Interactive marks entities the cursor can hover, press and drag.
var Interactive = donburi.NewComponentType[InteractiveData]()

// TargetEventType carries events addressed to a live entity.
var TargetEventType = events.NewEventType[cursor.Event]()

// OwnerEvent is the mirrored copy of an event with the target identity
// attached. The entity may already be gone.
type OwnerEvent struct {
	Type  cursor.EventType
	ID    cursor.EntityID
	Group string
}

// OwnerEventType carries mirrored events.
var OwnerEventType = events.NewEventType[OwnerEvent]()

var interactiveQuery = donburi.NewQuery(filter.Contains(Position, Interactive))

// World adapts a donburi.World to the cursor's position store, receiver and
// overlap feed.
type World struct {
	world donburi.World
}

// NewWorld wraps w.
func NewWorld(w donburi.World) *World {
	return &World{world: w}
}

// Donburi returns the wrapped world.
func (w *World) Donburi() donburi.World {
	return w.world
}

// Spawn creates an interactive entity at pos and returns its cursor id.
func (w *World) Spawn(pos cursor.Vec2, group string, shape cursor.HitShape, depth float64) cursor.EntityID {
	e := w.world.Create(Position, Interactive)
	entry := w.world.Entry(e)
	Position.SetValue(entry, pos)
	Interactive.SetValue(entry, InteractiveData{Group: group, Shape: shape, Depth: depth})
	return cursor.EntityID(e)
}

// Despawn removes the entity. Later events addressed to it are stale.
func (w *World) Despawn(id cursor.EntityID) {
	e := donburi.Entity(id)
	if w.world.Valid(e) {
		w.world.Remove(e)
	}
}

// entry returns the live entry for id, or nil.
func (w *World) entry(id cursor.EntityID) *donburi.Entry {
	e := donburi.Entity(id)
	if !w.world.Valid(e) {
		return nil
	}
	return w.world.Entry(e)
}

// Position implements cursor.PositionStore.
func (w *World) Position(id cursor.EntityID) (cursor.Vec2, bool) {
	entry := w.entry(id)
	if entry == nil || !entry.HasComponent(Position) {
		return cursor.Vec2{}, false
	}
	return *Position.Get(entry), true
}

// SetPosition implements cursor.PositionStore.
func (w *World) SetPosition(id cursor.EntityID, p cursor.Vec2) bool {
	entry := w.entry(id)
	if entry == nil || !entry.HasComponent(Position) {
		return false
	}
	Position.SetValue(entry, p)
	return true
}

// Deliver implements cursor.Receiver by publishing ev as a TargetEventType
// event. Removed entities are stale targets.
func (w *World) Deliver(ev cursor.Event) error {
	if !w.world.Valid(donburi.Entity(ev.Target.ID)) {
		return cursor.ErrStaleTarget
	}
	TargetEventType.Publish(w.world, ev)
	return nil
}

// ReportOverlaps implements cursor.OverlapFeed over every entity with
// Position and Interactive components.
func (w *World) ReportOverlaps(r *cursor.Resolver, p cursor.Vec2) {
	interactiveQuery.Each(w.world, func(entry *donburi.Entry) {
		data := Interactive.Get(entry)
		if data.Shape == nil {
			return
		}
		local := p.Sub(*Position.Get(entry))
		if data.Shape.Contains(local.X, local.Y) {
			r.Report(cursor.EntityID(entry.Entity()), data.Group, data.Depth)
		}
	})
}

type donburiOwner struct {
	world donburi.World
}

// NewOwner creates a cursor.Owner publishing mirrored events to world as
// OwnerEventType.
func NewOwner(world donburi.World) cursor.Owner {
	return &donburiOwner{world: world}
}

func (o *donburiOwner) Observe(ev cursor.Event) {
	OwnerEventType.Publish(o.world, OwnerEvent{Type: ev.Type, ID: ev.Target.ID, Group: ev.Target.Group})
}
