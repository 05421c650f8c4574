package cursor

import (
	"errors"
	"testing"
)

func TestRegistry_DeliverRoutesByType(t *testing.T) {
	reg := NewRegistry()
	var got []EventType
	record := func(ev Event) { got = append(got, ev.Type) }
	reg.Register(1, Handlers{
		OnCursorOver: record,
		OnCursorOut:  record,
		OnPressed:    record,
		OnReleased:   record,
		OnDragStart:  record,
		OnDragEnd:    record,
	})

	for t2 := EventCursorOver; t2 < numEventTypes; t2++ {
		if err := reg.Deliver(Event{Type: t2, Target: targetA}); err != nil {
			t.Fatalf("Deliver(%s): %v", t2, err)
		}
	}
	if len(got) != int(numEventTypes) {
		t.Fatalf("handlers run = %v", got)
	}
	for i, et := range got {
		if et != EventType(i) {
			t.Errorf("handler %d got %s", i, et)
		}
	}
}

func TestRegistry_NilHandlerSkipped(t *testing.T) {
	reg := NewRegistry()
	reg.Register(1, Handlers{})
	if err := reg.Deliver(Event{Type: EventPressed, Target: targetA}); err != nil {
		t.Errorf("Deliver: %v", err)
	}
}

func TestRegistry_StaleTarget(t *testing.T) {
	reg := NewRegistry()
	reg.Register(1, Handlers{})
	reg.Unregister(1)

	if reg.Has(1) {
		t.Error("Has(1) after Unregister")
	}
	err := reg.Deliver(Event{Type: EventReleased, Target: targetA})
	if !errors.Is(err, ErrStaleTarget) {
		t.Errorf("Deliver = %v, want ErrStaleTarget", err)
	}
}

func TestRegistry_UnregisterDuringHandler(t *testing.T) {
	reg := NewRegistry()
	reg.Register(1, Handlers{
		OnReleased: func(ev Event) { reg.Unregister(ev.Target.ID) },
	})

	if err := reg.Deliver(Event{Type: EventReleased, Target: targetA}); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if reg.Has(1) {
		t.Error("entity still registered")
	}
	if err := reg.Deliver(Event{Type: EventCursorOut, Target: targetA}); !errors.Is(err, ErrStaleTarget) {
		t.Errorf("follow-up Deliver = %v, want ErrStaleTarget", err)
	}
}
