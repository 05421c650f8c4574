package ecs

import (
	"errors"
	"testing"

	"github.com/phanxgames/cursor"

	"github.com/yohamta/donburi"
)

func TestWorld_SpawnPosition(t *testing.T) {
	w := NewWorld(donburi.NewWorld())
	id := w.Spawn(cursor.Vec2{X: 10, Y: 20}, "cards", cursor.HitRect{Width: 5, Height: 5}, 1)

	p, ok := w.Position(id)
	if !ok || p != (cursor.Vec2{X: 10, Y: 20}) {
		t.Fatalf("Position = %v, %v", p, ok)
	}
	if !w.SetPosition(id, cursor.Vec2{X: 3, Y: 4}) {
		t.Fatal("SetPosition failed for a live entity")
	}
	if p, _ := w.Position(id); p != (cursor.Vec2{X: 3, Y: 4}) {
		t.Errorf("Position after set = %v", p)
	}
}

func TestWorld_Despawn(t *testing.T) {
	w := NewWorld(donburi.NewWorld())
	id := w.Spawn(cursor.Vec2{}, "cards", nil, 0)
	w.Despawn(id)
	w.Despawn(id)

	if _, ok := w.Position(id); ok {
		t.Error("Position reported for a removed entity")
	}
	if w.SetPosition(id, cursor.Vec2{X: 1}) {
		t.Error("SetPosition succeeded for a removed entity")
	}
	err := w.Deliver(cursor.Event{Type: cursor.EventReleased, Target: cursor.Target{ID: id}})
	if !errors.Is(err, cursor.ErrStaleTarget) {
		t.Errorf("Deliver = %v, want ErrStaleTarget", err)
	}
}

func TestWorld_DeliverPublishes(t *testing.T) {
	world := donburi.NewWorld()
	w := NewWorld(world)
	id := w.Spawn(cursor.Vec2{}, "cards", nil, 0)

	var received []cursor.Event
	TargetEventType.Subscribe(world, func(_ donburi.World, ev cursor.Event) {
		received = append(received, ev)
	})

	ev := cursor.Event{Type: cursor.EventPressed, Target: cursor.Target{ID: id, Group: "cards"}}
	if err := w.Deliver(ev); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatal("event delivered before ProcessEvents")
	}
	TargetEventType.ProcessEvents(world)
	if len(received) != 1 || received[0] != ev {
		t.Errorf("received %v, want [%v]", received, ev)
	}
}

func TestWorld_ReportOverlaps(t *testing.T) {
	w := NewWorld(donburi.NewWorld())
	back := w.Spawn(cursor.Vec2{X: 0, Y: 0}, "board", cursor.HitRect{Width: 100, Height: 100}, 0)
	front := w.Spawn(cursor.Vec2{X: 40, Y: 40}, "cards", cursor.HitCircle{Radius: 10}, 5)
	w.Spawn(cursor.Vec2{X: 0, Y: 0}, "ghost", nil, 9)

	var r cursor.Resolver
	w.ReportOverlaps(&r, cursor.Vec2{X: 45, Y: 45})
	if r.Count() != 2 {
		t.Fatalf("Count = %d, want 2", r.Count())
	}
	c, ok := r.Resolve()
	if !ok || c.Target.ID != front || c.Target.Group != "cards" {
		t.Errorf("Resolve = %+v, want front card", c)
	}

	w.ReportOverlaps(&r, cursor.Vec2{X: 80, Y: 10})
	c, ok = r.Resolve()
	if !ok || c.Target.ID != back {
		t.Errorf("Resolve = %+v, want board", c)
	}
}

func TestOwner_Publishes(t *testing.T) {
	world := donburi.NewWorld()
	owner := NewOwner(world)

	var got []OwnerEvent
	OwnerEventType.Subscribe(world, func(_ donburi.World, ev OwnerEvent) {
		got = append(got, ev)
	})

	owner.Observe(cursor.Event{Type: cursor.EventCursorOut, Target: cursor.Target{ID: 99, Group: "gone"}})
	OwnerEventType.ProcessEvents(world)

	if len(got) != 1 || got[0] != (OwnerEvent{Type: cursor.EventCursorOut, ID: 99, Group: "gone"}) {
		t.Errorf("owner events = %v", got)
	}
}

// Drives an Interactor against a Donburi world: drag a card, then remove
// it from inside a released handler.
func TestInteractorIntegration(t *testing.T) {
	world := donburi.NewWorld()
	w := NewWorld(world)
	id := w.Spawn(cursor.Vec2{X: 100, Y: 100}, "cards", cursor.HitRect{Width: 60, Height: 80}, 1)

	cfg := cursor.DefaultConfig()
	cfg.Device = cursor.DevicePointer
	cfg.SkipFrames = 0
	cfg.DragThreshold = 5
	cfg.MirrorEventsToOwner = true

	it, err := cursor.New(cfg, w)
	if err != nil {
		t.Fatal(err)
	}
	it.SetPositionStore(w)
	it.SetOverlapFeed(w)
	it.SetOwner(NewOwner(world))

	var delivered []string
	TargetEventType.Subscribe(world, func(_ donburi.World, ev cursor.Event) {
		delivered = append(delivered, ev.Type.String())
		if ev.Type == cursor.EventReleased {
			w.Despawn(ev.Target.ID)
		}
	})
	var mirrored int
	OwnerEventType.Subscribe(world, func(donburi.World, OwnerEvent) { mirrored++ })

	frame := func(ev cursor.RawEvent) {
		it.HandleInput(ev)
		it.Update()
	}
	frame(cursor.RawEvent{X: 110, Y: 110, HasPosition: true})
	frame(cursor.RawEvent{Action: cursor.ActionMouseLeft, X: 110, Y: 110, HasPosition: true, Pressed: true})
	frame(cursor.RawEvent{X: 130, Y: 110, HasPosition: true})

	if p, _ := w.Position(id); p != (cursor.Vec2{X: 120, Y: 100}) {
		t.Errorf("dragged position = %v, want (120,100)", p)
	}

	frame(cursor.RawEvent{Action: cursor.ActionMouseLeft, X: 130, Y: 110, HasPosition: true, Released: true})
	TargetEventType.ProcessEvents(world)
	OwnerEventType.ProcessEvents(world)

	want := []string{"cursor_over", "pressed", "drag_start", "drag_end", "released"}
	if len(delivered) != len(want) {
		t.Fatalf("delivered %v, want %v", delivered, want)
	}
	for i := range want {
		if delivered[i] != want[i] {
			t.Fatalf("delivered %v, want %v", delivered, want)
		}
	}
	if mirrored != 5 {
		t.Errorf("mirrored = %d, want 5", mirrored)
	}

	// The entity is gone; the next frame drops hover and the cursor_out is
	// stale for the target but still mirrored.
	frame(cursor.RawEvent{X: 130, Y: 110, HasPosition: true})
	TargetEventType.ProcessEvents(world)
	OwnerEventType.ProcessEvents(world)
	if len(delivered) != len(want) {
		t.Errorf("stale event delivered: %v", delivered)
	}
	if mirrored != 6 {
		t.Errorf("mirrored = %d, want 6", mirrored)
	}
	if it.State().Hovering {
		t.Error("still hovering a removed entity")
	}
}
